package file

import "errors"

var (
	ErrNilFileHeader    = errors.New("file header is nil")
	ErrFileTooLarge     = errors.New("file size exceeds maximum allowed size")
	ErrFailedToOpenFile = errors.New("failed to open file")
	ErrFailedToReadFile = errors.New("failed to read file")
)
