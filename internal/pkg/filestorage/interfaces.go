package filestorage

import (
	"mime/multipart"
)

// FileStorage defines the interface for storing uploaded media blobs
type FileStorage interface {
	// SaveFile saves a file under the storage root and returns its public URL
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// SaveFileWithPath saves a file under the given subdirectory and returns
	// its public URL
	SaveFileWithPath(fileHeader *multipart.FileHeader, path string) (string, error)

	// DeleteFile removes a previously stored file given its public URL or
	// storage-relative path
	DeleteFile(fileURL string) error

	// GetFullPath returns the filesystem path backing a stored file URL
	GetFullPath(fileURL string) string

	// GetBaseURL returns the public URL prefix for stored files
	GetBaseURL() string
}
