package biodataform

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Mountable interface {
	Handle() http.Handler
}

// RouterOptions selects the services mounted by Router. Nil services are skipped.
type RouterOptions struct {
	Form Mountable
	API  Mountable
}

// Router mounts the form at the root and the JSON API under /api.
//
//	form, err := biodataform.NewFormService(cfg, v, previews, nil, metrics, log, nil)
//	if err != nil {
//		return err
//	}
//	r.Mount("/", biodataform.Router(biodataform.RouterOptions{
//		Form: form,
//		API:  biodataform.NewAPIService(v, metrics, log),
//	}))
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()
	if opts.API != nil {
		r.Mount("/api", opts.API.Handle())
	}
	if opts.Form != nil {
		r.Mount("/", opts.Form.Handle())
	}
	return r
}
