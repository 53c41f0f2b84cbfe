package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var ErrInvalidImageURL = errors.New("invalid image URL")

// DiskStore writes uploads under dir and serves them at baseURL/uploads/products.
type DiskStore struct {
	dir     string
	baseURL string
}

func NewDiskStore(dir, baseURL string) *DiskStore {
	return &DiskStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

// Upload saves the image under a timestamped name and returns its public URL.
func (s *DiskStore) Upload(file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload folder: %w", err)
	}

	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	base = strings.ReplaceAll(base, " ", "_")
	filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)
	savePath := filepath.Join(s.dir, filename)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(savePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(savePath)
		return "", err
	}

	return fmt.Sprintf("%s/uploads/products/%s", s.baseURL, filename), nil
}

// Delete removes the file named by the URL's last path segment. A file that
// is already gone is not an error.
func (s *DiskStore) Delete(publicURL string) error {
	parts := strings.Split(publicURL, "/")
	name := parts[len(parts)-1]
	if name == "" || name == "." || name == ".." || strings.Contains(name, string(os.PathSeparator)) {
		return ErrInvalidImageURL
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
