package biodataform

import (
	"errors"

	"github.com/dmitrymomot/biodata/pkg/biodata"
)

// Config controls the form module. Every field has an environment binding for
// pkg/config.
type Config struct {
	// BasePath is the prefix the module is mounted under, without a trailing slash.
	BasePath string `env:"FORM_BASE_PATH" envDefault:""`

	// UploadMaxMemory bounds the memory used to parse the photo multipart form.
	UploadMaxMemory int64 `env:"UPLOAD_MAX_MEMORY" envDefault:"10485760"`

	// PhotoMaxSize bounds the bytes read from one selected photo.
	PhotoMaxSize int64 `env:"PHOTO_MAX_SIZE" envDefault:"5242880"`

	// PreviewCapacity is the number of live preview references kept in memory.
	PreviewCapacity int `env:"PREVIEW_CAPACITY" envDefault:"256"`

	// OptionalFields lists fields rendered without the required attribute.
	OptionalFields []string `env:"FORM_OPTIONAL_FIELDS" envSeparator:","`

	DatastarScriptURL string `env:"DATASTAR_SCRIPT_URL" envDefault:"https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		UploadMaxMemory:   10 << 20,
		PhotoMaxSize:      5 << 20,
		PreviewCapacity:   256,
		DatastarScriptURL: "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js",
	}
}

// Optional parses OptionalFields.
func (c Config) Optional() ([]biodata.Field, error) {
	return parseFields(c.OptionalFields)
}

func parseFields(ids []string) ([]biodata.Field, error) {
	fields := make([]biodata.Field, 0, len(ids))
	var errs []error
	for _, id := range ids {
		f, err := biodata.ParseField(id)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		fields = append(fields, f)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return fields, nil
}

func (c Config) path(p string) string {
	return c.BasePath + p
}
