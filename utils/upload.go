package utils

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrFileTooLarge     = errors.New("image exceeds the upload size limit")
	ErrUnsupportedImage = errors.New("only jpeg, jpg, png and gif images are allowed")
)

var imageTypes = map[string]string{
	".jpeg": "image/jpeg",
	".jpg":  "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
}

// ImageStore writes uploaded images to a directory served under URLPrefix.
type ImageStore struct {
	Dir       string
	URLPrefix string
	MaxBytes  int64
}

// Save checks the extension, declared content type and size of fh, writes it
// under a fresh name and returns the public URL path.
func (s ImageStore) Save(fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	want, ok := imageTypes[ext]
	if !ok {
		return "", ErrUnsupportedImage
	}
	if ct := fh.Header.Get("Content-Type"); ct != "" && !strings.EqualFold(ct, want) {
		return "", ErrUnsupportedImage
	}
	if s.MaxBytes > 0 && fh.Size > s.MaxBytes {
		return "", ErrFileTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	name := "image-" + uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return path.Join(s.URLPrefix, name), nil
}

// Remove deletes an image previously returned by Save. URLs outside the store are ignored.
func (s ImageStore) Remove(url string) error {
	prefix := strings.TrimSuffix(s.URLPrefix, "/") + "/"
	if !strings.HasPrefix(url, prefix) {
		return nil
	}
	err := os.Remove(filepath.Join(s.Dir, path.Base(url)))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
