package storage

import "mime/multipart"

// Storage persists uploaded files and returns a URL the frontend can use.
type Storage interface {
	Save(file *multipart.FileHeader, subdir string) (url string, err error)
}
