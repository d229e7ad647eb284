package biodata

import "github.com/dmitrymomot/biodata/pkg/file"

// PhotoDecision is what happens to a photo selection.
type PhotoDecision int

const (
	// PhotoIgnore leaves everything unchanged; nothing was selected.
	PhotoIgnore PhotoDecision = iota
	// PhotoReject clears the selection and shows the invalid image notice.
	PhotoReject
	// PhotoPreview shows the selected file as the preview image.
	PhotoPreview
)

func (d PhotoDecision) String() string {
	switch d {
	case PhotoIgnore:
		return "ignore"
	case PhotoReject:
		return "reject"
	case PhotoPreview:
		return "preview"
	default:
		return "unknown"
	}
}

// PhotoSelection describes the file chosen in the photo control.
// ContentType is the type declared by the client, not sniffed.
type PhotoSelection struct {
	Present     bool
	ContentType string
}

// CheckPhoto decides how to handle a photo selection.
func CheckPhoto(sel PhotoSelection) PhotoDecision {
	if !sel.Present {
		return PhotoIgnore
	}
	if !file.IsImageContentType(sel.ContentType) {
		return PhotoReject
	}
	return PhotoPreview
}

// PhotoPresenter extends Presenter with the photo control effects.
type PhotoPresenter interface {
	Presenter
	// ClearSelection empties the file control f.
	ClearSelection(f Field)
	// ShowPreview points the preview image at src.
	ShowPreview(src string)
}

// SelectPhoto applies the photo decision to p. createRef is only called for
// accepted images and returns the preview source; its error is returned as is
// and leaves the preview unchanged.
func (v *Validator) SelectPhoto(p PhotoPresenter, sel PhotoSelection, createRef func() (string, error)) (PhotoDecision, error) {
	d := CheckPhoto(sel)
	switch d {
	case PhotoReject:
		p.Notify(v.messages.InvalidImage)
		p.ClearSelection(PhotoUpload)
	case PhotoPreview:
		src, err := createRef()
		if err != nil {
			return d, err
		}
		p.ShowPreview(src)
	}
	return d, nil
}
