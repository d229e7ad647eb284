package binder

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// tagName returns the parameter a struct field binds to. Untagged fields use
// their lowercased name.
func tagName(field reflect.StructField, tag string) (name string, skip bool) {
	v, ok := field.Tag.Lookup(tag)
	if !ok || v == "" {
		return strings.ToLower(field.Name), false
	}
	if v == "-" {
		return "", true
	}
	name, _, _ = strings.Cut(v, ",")
	return name, false
}

// assign stores submitted values in dst. Scalars take the first value. A
// []string takes every value as submitted: form text such as an address may
// itself contain commas, so values are never split.
func assign(dst reflect.Value, values []string) error {
	if dst.Kind() == reflect.Pointer {
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}
		return assign(dst.Elem(), values)
	}

	if dst.Kind() == reflect.Slice {
		if dst.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type %s", dst.Type())
		}
		out := reflect.MakeSlice(dst.Type(), len(values), len(values))
		for i, v := range values {
			out.Index(i).SetString(v)
		}
		dst.Set(out)
		return nil
	}

	if len(values) == 0 {
		return nil
	}
	raw := values[0]

	switch dst.Kind() {
	case reflect.String:
		dst.SetString(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, dst.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid integer %q", raw)
		}
		dst.SetInt(n)
	case reflect.Bool:
		b, err := parseBool(raw)
		if err != nil {
			return err
		}
		dst.SetBool(b)
	default:
		return fmt.Errorf("unsupported type %s", dst.Type())
	}
	return nil
}

// parseBool accepts strconv forms plus the "on" a checked checkbox submits.
func parseBool(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "on", "yes":
		return true, nil
	case "off", "no", "":
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid bool %q", raw)
	}
	return b, nil
}
