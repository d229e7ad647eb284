package binder

import (
	"fmt"
	"net/http"
	"reflect"
)

// Path creates a path parameter binder function using the provided extractor.
// The extractor function is called for each struct field to get its path parameter value.
//
// It supports struct tags for custom parameter names:
//   - `path:"name"` - binds to path parameter "name"
//   - `path:"-"` - skips the field
//
// Supported types:
//   - string, integer kinds and bool
//   - Pointers for optional fields
//
// Example with chi router:
//
//	type FieldRequest struct {
//		Field string `path:"field"`
//	}
//
//	r.Post("/fields/{field}", handler.Wrap(h,
//		handler.WithBinders[handler.Context, FieldRequest](
//			binder.Path(chi.URLParam),
//			binder.Signals(),
//		),
//	))
func Path(extractor func(r *http.Request, fieldName string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: extractor function is nil", ErrInvalidPath)
		}

		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Ptr || rv.IsNil() {
			return fmt.Errorf("%w: target must be a non-nil pointer", ErrInvalidPath)
		}

		rv = rv.Elem()
		if rv.Kind() != reflect.Struct {
			return fmt.Errorf("%w: target must be a pointer to struct", ErrInvalidPath)
		}

		rt := rv.Type()
		for i := range rv.NumField() {
			field := rv.Field(i)
			fieldType := rt.Field(i)

			if !field.CanSet() {
				continue
			}

			paramName, skip := tagName(fieldType, "path")
			if skip {
				continue
			}

			value := extractor(r, paramName)
			if value == "" {
				continue
			}

			if err := assign(field, []string{value}); err != nil {
				return fmt.Errorf("%w: field %s: %v", ErrInvalidPath, fieldType.Name, err)
			}
		}

		return nil
	}
}
