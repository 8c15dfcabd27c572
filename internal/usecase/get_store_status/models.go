package get_store_status

import "github.com/AjwadDaiki/isopen-service/internal/domain"

// Request модель запроса статуса бренда
type Request struct {
	BrandSlug string   // slug бренда (обязательный)
	Timezone  string   // явная IANA таймзона (опционально)
	Latitude  *float64 // координаты для поиска ближайшей точки (опционально)
	Longitude *float64
	ClientIP  string // IP клиента для geoip, если координаты не переданы
}

// Response модель ответа со статусом открыто/закрыто
type Response struct {
	BrandSlug string
	BrandName string
	Source    domain.HoursSource // brand или location
	Status    *domain.OpenStatus
}
