package storage

import "io"

// ObjectStorage is the file-storage collaborator boundary: profile images
// go in, a public URL comes out.
type ObjectStorage interface {
	Upload(key string, reader io.Reader) error
	Delete(key string) error
	PublicURL(key string) string
}
