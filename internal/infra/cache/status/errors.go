package status

import "errors"

var (
	// ErrCacheMiss возвращается, когда ключа нет в кеше
	ErrCacheMiss = errors.New("status.cache: cache miss")

	// ErrCacheUnavailable возвращается при ошибках соединения с redis
	ErrCacheUnavailable = errors.New("status.cache: cache unavailable")
)
