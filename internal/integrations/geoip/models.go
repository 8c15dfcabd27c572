package geoip

// Position координаты и таймзона, определённые по IP
type Position struct {
	IP        string  `json:"ip"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
}

// ErrorResponse модель ошибки от geoip сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
