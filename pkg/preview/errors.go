package preview

import "errors"

var (
	ErrCreateFailed = errors.New("preview: failed to create reference")
	ErrNotFound     = errors.New("preview: reference not found")
	ErrStoreFailed  = errors.New("preview: store operation failed")
)
