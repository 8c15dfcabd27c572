package geo

import "errors"

var (
	// ErrNoLocationsFound возвращается, когда в радиусе поиска нет ни одной точки
	ErrNoLocationsFound = errors.New("geo.index: no locations within radius")

	// ErrIndexUnavailable возвращается при ошибках соединения с redis
	ErrIndexUnavailable = errors.New("geo.index: index unavailable")

	// ErrBadMember возвращается при некорректном имени member в гео-индексе
	ErrBadMember = errors.New("geo.index: malformed member name")
)
