package get_store_status

import (
	"errors"

	"github.com/AjwadDaiki/isopen-service/pkg/types"
)

var (
	// ErrBrandNotFound возвращается, когда бренд не найден
	ErrBrandNotFound = errors.New("brand not found")

	// ErrInvalidTimezone возвращается при неизвестном IANA идентификаторе таймзоны
	ErrInvalidTimezone = errors.New("invalid timezone identifier")

	// ErrMalformedTime возвращается при некорректной строке времени HH:MM в расписании.
	// Алиас на sentinel из pkg/types, чтобы handlers матчились через errors.Is
	ErrMalformedTime = types.ErrMalformedTime

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
