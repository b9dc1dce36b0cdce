package upload

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrUnsupportedType rejects uploads outside the image/video allowlist.
var ErrUnsupportedType = errors.New("unsupported media type")

var allowedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".mp4":  true,
	".mov":  true,
	".webm": true,
}

// Filename builds a collision-free stored name for an uploaded file,
// keeping only the (lowercased) extension of the original.
func Filename(original string) (string, error) {
	ext := strings.ToLower(filepath.Ext(original))
	if !allowedExts[ext] {
		return "", ErrUnsupportedType
	}
	return uuid.NewString() + ext, nil
}

// SaveMedia writes the uploaded file into dir and returns the public URL
// path it will be served under.
func SaveMedia(fh *multipart.FileHeader, dir string) (string, error) {
	name, err := Filename(fh.Filename)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}
