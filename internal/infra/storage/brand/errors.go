package brand

import "errors"

var (
	// ErrBrandNotFound возвращается, когда бренд не найден
	ErrBrandNotFound = errors.New("brand.repository: brand not found")

	// ErrLocationNotFound возвращается, когда точка не найдена
	ErrLocationNotFound = errors.New("brand.repository: location not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("brand.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("brand.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("brand.repository: failed to scan row")
)
