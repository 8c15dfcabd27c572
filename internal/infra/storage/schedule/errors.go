package schedule

import "errors"

var (
	// ErrHolidayNotFound возвращается, когда на дату нет праздничного закрытия
	ErrHolidayNotFound = errors.New("schedule.repository: holiday not found")

	// ErrSpecialHoursNotFound возвращается, когда на дату нет разового исключения
	ErrSpecialHoursNotFound = errors.New("schedule.repository: special hours not found")

	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("schedule.repository: transaction error")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")

	// ErrMalformedStoredTime возвращается, когда в БД лежит время не в формате HH:MM.
	// Сигнал о нарушении целостности данных - не маскируется
	ErrMalformedStoredTime = errors.New("schedule.repository: malformed time value in storage")
)
