package storage

import "mime/multipart"

// ImageStore is the narrow surface the product controllers depend on. Upload
// returns a public URL; Delete takes that URL back and is keyed by its
// trailing path segment.
type ImageStore interface {
	Upload(file *multipart.FileHeader) (string, error)
	Delete(publicURL string) error
}
