package biodata

import "errors"

var (
	ErrInvalidMessages = errors.New("biodata: invalid message catalog")
	ErrUnknownField    = errors.New("biodata: unknown field")
)
