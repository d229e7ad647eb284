package binder

import (
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"reflect"
	"strings"

	"github.com/dmitrymomot/biodata/pkg/file"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20 // 10 MB

// Form creates a form binder using DefaultMaxMemory.
func Form() func(r *http.Request, v any) error {
	return FormWithMaxMemory(DefaultMaxMemory)
}

// FormWithMaxMemory creates a unified binder for both form data and file uploads.
// It handles application/x-www-form-urlencoded and multipart/form-data content
// types and reports ErrBinderNotApplicable for anything else, so it can be
// chained after the signals binder.
//
// Supported struct tags:
//   - `form:"name"` - binds to form field "name"
//   - `form:"-"`    - skips the field
//   - `file:"name"` - binds to uploaded file "name"
//
// Embedded structs without tags are bound recursively.
//
// Supported types for file fields:
//   - *multipart.FileHeader - single file
//   - []*multipart.FileHeader - multiple files
//
// Example:
//
//	type PhotoRequest struct {
//		PreviewID string                `form:"previewId"`
//		Photo     *multipart.FileHeader `file:"photoUpload"`
//	}
func FormWithMaxMemory(maxMemory int64) func(r *http.Request, v any) error {
	if maxMemory <= 0 {
		maxMemory = DefaultMaxMemory
	}

	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return ErrBinderNotApplicable
		}

		mediaType, params, err := mime.ParseMediaType(contentType)
		if err != nil {
			return fmt.Errorf("%w: malformed content type: %v", ErrInvalidForm, err)
		}

		var values map[string][]string
		var files map[string][]*multipart.FileHeader

		switch mediaType {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			values = r.Form

		case "multipart/form-data":
			boundary, ok := params["boundary"]
			if !ok || boundary == "" {
				return fmt.Errorf("%w: missing boundary in content type", ErrInvalidForm)
			}
			if !validateBoundary(boundary) {
				return fmt.Errorf("%w: invalid boundary parameter", ErrInvalidForm)
			}

			if err := r.ParseMultipartForm(maxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			values = r.MultipartForm.Value
			files = r.MultipartForm.File

		default:
			return ErrBinderNotApplicable
		}

		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Ptr || rv.IsNil() {
			return fmt.Errorf("%w: target must be a non-nil pointer", ErrInvalidForm)
		}
		rv = rv.Elem()
		if rv.Kind() != reflect.Struct {
			return fmt.Errorf("%w: target must be a pointer to struct", ErrInvalidForm)
		}

		return bindFormAndFiles(rv, values, files)
	}
}

// validateBoundary checks the boundary against RFC 2046: 1 to 70 characters
// from the bchars set, not ending with a space.
func validateBoundary(boundary string) bool {
	if len(boundary) == 0 || len(boundary) > 70 {
		return false
	}
	if strings.HasSuffix(boundary, " ") {
		return false
	}
	for _, c := range boundary {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case strings.ContainsRune("'()+_,-./:=? ", c):
		default:
			return false
		}
	}
	return true
}

func bindFormAndFiles(rv reflect.Value, values map[string][]string, files map[string][]*multipart.FileHeader) error {
	rt := rv.Type()

	for i := range rv.NumField() {
		field := rv.Field(i)
		fieldType := rt.Field(i)

		formTag := fieldType.Tag.Get("form")
		fileTag := fieldType.Tag.Get("file")

		// Exported fields of embedded structs are settable even when the
		// embedded type itself is not.
		if formTag == "" && fileTag == "" {
			if fieldType.Anonymous && field.Kind() == reflect.Struct {
				if err := bindFormAndFiles(field, values, files); err != nil {
					return err
				}
			}
			continue
		}

		if !field.CanSet() {
			continue
		}

		if formTag != "" && formTag != "-" {
			paramName, _, _ := strings.Cut(formTag, ",")
			if fieldValues, exists := values[paramName]; paramName != "" && exists && len(fieldValues) > 0 {
				if err := assign(field, fieldValues); err != nil {
					return fmt.Errorf("%w: field %s: %v", ErrInvalidForm, fieldType.Name, err)
				}
			}
		}

		if fileTag != "" && fileTag != "-" && files != nil {
			if fileHeaders, exists := files[fileTag]; exists && len(fileHeaders) > 0 {
				if err := setFileField(field, fieldType.Type, fileHeaders); err != nil {
					return fmt.Errorf("%w: field %s: %v", ErrInvalidForm, fieldType.Name, err)
				}
			}
		}
	}

	return nil
}

var fileHeaderType = reflect.TypeOf((*multipart.FileHeader)(nil))

func setFileField(field reflect.Value, fieldType reflect.Type, fileHeaders []*multipart.FileHeader) error {
	for _, fh := range fileHeaders {
		fh.Filename = file.SanitizeFilename(fh.Filename)
	}

	if fieldType.Kind() == reflect.Slice {
		if fieldType.Elem() != fileHeaderType {
			return fmt.Errorf("unsupported slice element type for file field: %v", fieldType.Elem())
		}

		slice := reflect.MakeSlice(fieldType, len(fileHeaders), len(fileHeaders))
		for i, fh := range fileHeaders {
			slice.Index(i).Set(reflect.ValueOf(fh))
		}
		field.Set(slice)
		return nil
	}

	if fieldType == fileHeaderType {
		field.Set(reflect.ValueOf(fileHeaders[0]))
		return nil
	}

	return fmt.Errorf("unsupported type for file field: %v (expected *multipart.FileHeader or []*multipart.FileHeader)", fieldType)
}
