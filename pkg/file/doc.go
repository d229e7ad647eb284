// Package file provides helpers for files received in multipart requests.
//
// It separates the content type a client declares (DeclaredContentType) from
// the one sniffed from the bytes (DetectContentType). Acceptance decisions use
// the declared type through IsImageContentType; the sniffed type is meant for
// diagnostics. Read loads a part into memory with a size limit and a sanitized
// filename.
//
// Example:
//
//	fh := r.MultipartForm.File["photoUpload"][0]
//	if !file.IsImageContentType(file.DeclaredContentType(fh)) {
//	    // reject
//	}
//	up, err := file.Read(fh, 10<<20)
package file
