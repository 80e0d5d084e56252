package domain

import "context"

// FileDto carries an uploaded file across the handler/usecase boundary.
// It is never persisted as-is: the usecase turns it into a stored object
// plus a File metadata row.
type FileDto struct {
	Name    string
	Content []byte
}

// File is the metadata row for one stored object. Path is the storage
// key (a disk path or an S3 object key, depending on the backend).
type File struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
}

type FileRepository interface {
	Save(ctx context.Context, file *File) error
	FindByID(ctx context.Context, id int) (*File, error)
	DeleteByID(ctx context.Context, id int) (bool, error)
}

type FileUsecase interface {
	GetFileByID(ctx context.Context, id int) (*FileDto, error)
	Save(ctx context.Context, dto FileDto) (*File, error)
	DeleteByID(ctx context.Context, id int) error
}
