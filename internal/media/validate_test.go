package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobportal/jobportal/internal/platform/httpx"
)

func TestValidatePhoto(t *testing.T) {
	tests := []struct {
		name     string
		file     File
		wantErr  bool
		wantKind Kind
	}{
		{name: "jpeg ok", file: File{MimeType: "image/jpeg", Size: 1024}, wantKind: KindImage},
		{name: "webp ok", file: File{MimeType: "image/webp", Size: 4 << 20}, wantKind: KindImage},
		{name: "too large", file: File{MimeType: "image/png", Size: 6 << 20}, wantErr: true},
		{name: "pdf rejected for photo", file: File{MimeType: "application/pdf", Size: 1024}, wantErr: true},
		{name: "gif rejected", file: File{MimeType: "image/gif", Size: 1024}, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			kind, err := ValidatePhoto(&tc.file)
			if tc.wantErr {
				assert.ErrorIs(t, err, httpx.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantKind, kind)
		})
	}
}

func TestValidateProfileUpload(t *testing.T) {
	tests := []struct {
		name     string
		file     File
		wantErr  bool
		wantKind Kind
	}{
		{name: "png is image", file: File{MimeType: "image/png", Size: 1024}, wantKind: KindImage},
		{name: "pdf is document", file: File{MimeType: "application/pdf", Size: 1024}, wantKind: KindDocument},
		{name: "7MB pdf ok", file: File{MimeType: "application/pdf", Size: 7 << 20}, wantKind: KindDocument},
		{name: "10MB rejected", file: File{MimeType: "application/pdf", Size: 10 << 20}, wantErr: true},
		{name: "docx rejected", file: File{MimeType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document", Size: 1024}, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			kind, err := ValidateProfileUpload(&tc.file)
			if tc.wantErr {
				assert.ErrorIs(t, err, httpx.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantKind, kind)
		})
	}
}
