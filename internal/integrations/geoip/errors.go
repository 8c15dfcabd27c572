package geoip

import "errors"

var (
	// ErrPositionNotFound возвращается, когда для IP нет координат
	ErrPositionNotFound = errors.New("geoip client: position not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("geoip client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("geoip client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation.
	// Указывает, что geoip недоступен и статус считается по расписанию бренда
	ErrServiceDegraded = errors.New("geoip unavailable: graceful degradation applied")
)
