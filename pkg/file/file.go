package file

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
)

// Upload is a file read from a multipart request.
// ContentType is the type declared by the client.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

// IsImageContentType reports whether a declared content type names an image.
// The check is a case-sensitive "image/" prefix match, the same test a browser
// page applies to File.type.
func IsImageContentType(contentType string) bool {
	return strings.HasPrefix(contentType, "image/")
}

// DeclaredContentType returns the Content-Type the client sent for the part.
// Empty when the client did not declare one.
func DeclaredContentType(fh *multipart.FileHeader) string {
	if fh == nil {
		return ""
	}
	return fh.Header.Get("Content-Type")
}

// DetectContentType sniffs the content type from the first 512 bytes.
// Resets file position to allow subsequent reads of the same file.
func DetectContentType(fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", ErrNilFileHeader
	}

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
	}
	defer func() { _ = f.Close() }()

	// 512 bytes is the maximum http.DetectContentType reads
	buffer := make([]byte, 512)
	n, err := f.Read(buffer)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}

	if seeker, ok := f.(io.Seeker); ok {
		_, _ = seeker.Seek(0, io.SeekStart)
	}

	return http.DetectContentType(buffer[:n]), nil
}

// ValidateSize checks if the file size is within the allowed limit.
// FileHeader.Size may be 0 for streamed parts; Read enforces the limit on the bytes.
func ValidateSize(fh *multipart.FileHeader, maxBytes int64) error {
	if fh == nil {
		return ErrNilFileHeader
	}
	if maxBytes > 0 && fh.Size > maxBytes {
		return fmt.Errorf("file size %d bytes exceeds %d bytes limit: %w", fh.Size, maxBytes, ErrFileTooLarge)
	}
	return nil
}

// Read loads the part into memory. maxBytes <= 0 disables the size limit.
//
// Example:
//
//	up, err := file.Read(fh, 10<<20)
//	if err != nil {
//	    return err
//	}
func Read(fh *multipart.FileHeader, maxBytes int64) (Upload, error) {
	if err := ValidateSize(fh, maxBytes); err != nil {
		return Upload{}, err
	}

	f, err := fh.Open()
	if err != nil {
		return Upload{}, fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	if maxBytes > 0 {
		r = io.LimitReader(f, maxBytes+1)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return Upload{}, fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return Upload{}, fmt.Errorf("file exceeds %d bytes limit: %w", maxBytes, ErrFileTooLarge)
	}

	return Upload{
		Filename:    SanitizeFilename(fh.Filename),
		ContentType: DeclaredContentType(fh),
		Size:        int64(len(data)),
		Data:        data,
	}, nil
}

// SanitizeFilename removes any path components and dangerous characters from a filename.
// Returns "unnamed" for empty or special directory references.
//
// Example:
//
//	safe := file.SanitizeFilename("../../../etc/passwd") // Returns "passwd"
//	safe = file.SanitizeFilename("C:\\Windows\\photo.jpg") // Returns "photo.jpg"
func SanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)
	filename = strings.ReplaceAll(filename, "\x00", "")

	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		filename = "unnamed"
	}

	return filename
}
