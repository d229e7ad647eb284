package binder

import (
	"fmt"
	"mime"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// Signals creates a binder for DataStar signals. GET requests carry them in
// the "datastar" query parameter, other methods as a JSON body. Requests that
// carry no signals report ErrBinderNotApplicable.
//
// Signals are decoded with encoding/json rules, so the target uses json tags:
//
//	type FieldRequest struct {
//		Field string `path:"field" json:"-"`
//		BirthDate string `json:"birthDate"`
//	}
func Signals() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if !hasSignals(r) {
			return ErrBinderNotApplicable
		}
		if err := datastar.ReadSignals(r, v); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSignals, err)
		}
		return nil
	}
}

func hasSignals(r *http.Request) bool {
	if r.Method == http.MethodGet {
		return r.URL.Query().Has("datastar")
	}
	if r.Header.Get("Datastar-Request") != "true" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}
