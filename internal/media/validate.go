// Package media validates uploaded files and forwards them to the remote
// asset host.
package media

import (
	"github.com/jobportal/jobportal/internal/platform/httpx"
)

// Kind classifies an accepted upload so callers can route the resulting URL
// without re-inspecting the mimetype.
type Kind int

const (
	KindImage Kind = iota
	KindDocument
)

// Size limits per flow.
const (
	MaxPhotoBytes  = 5 << 20
	MaxUploadBytes = 8 << 20
)

var imageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/webp": {},
}

// File is an in-memory upload taken from a multipart request. Raw bytes are
// never persisted; only the URL returned by the host is retained.
type File struct {
	Name     string
	MimeType string
	Size     int64
	Data     []byte
}

// ValidatePhoto accepts profile photos: images only, up to 5 MB.
func ValidatePhoto(f *File) (Kind, error) {
	if f.Size > MaxPhotoBytes {
		return 0, httpx.Errorf(httpx.ErrValidation, "Uploaded file is too large (max 5MB).")
	}
	if _, ok := imageTypes[f.MimeType]; !ok {
		return 0, httpx.Errorf(httpx.ErrValidation, "Unsupported file type for profile photo.")
	}
	return KindImage, nil
}

// ValidateProfileUpload accepts images or PDF resumes, up to 8 MB, and
// reports which kind was received.
func ValidateProfileUpload(f *File) (Kind, error) {
	if f.Size > MaxUploadBytes {
		return 0, httpx.Errorf(httpx.ErrValidation, "Uploaded file is too large (max 8MB).")
	}
	if _, ok := imageTypes[f.MimeType]; ok {
		return KindImage, nil
	}
	if f.MimeType == "application/pdf" {
		return KindDocument, nil
	}
	return 0, httpx.Errorf(httpx.ErrValidation, "Unsupported file type.")
}
