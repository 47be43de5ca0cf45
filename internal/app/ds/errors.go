package ds

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrIOFailure            = errors.New("io failure")
	ErrUnknownQueryKind     = errors.New("unknown query kind")
	ErrCacheMiss            = errors.New("cache miss")
	ErrStoreUnavailable     = errors.New("object store is not configured")
)
