package brands

import (
	"errors"

	"github.com/AjwadDaiki/isopen-service/pkg/types"
)

var (
	// ErrBrandNotFound возвращается, когда бренд не найден
	ErrBrandNotFound = errors.New("brands.service: brand not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("brands.service: invalid input data")

	// ErrMalformedTime возвращается при некорректной строке времени HH:MM.
	// Валидация расписания живёт на границе приёма данных, до движка статусов
	ErrMalformedTime = types.ErrMalformedTime

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("brands.service: internal error")
)
