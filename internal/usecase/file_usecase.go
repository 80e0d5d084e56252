package usecase

import (
	"context"
	"fmt"

	"go-dreamjob/internal/domain"
	"go-dreamjob/internal/storage"
	"go-dreamjob/pkg/apperror"
	"go-dreamjob/pkg/logger"

	"github.com/google/uuid"
)

type fileUsecase struct {
	repo  domain.FileRepository
	store storage.Store
}

func NewFileUsecase(repo domain.FileRepository, store storage.Store) domain.FileUsecase {
	return &fileUsecase{repo: repo, store: store}
}

func (u *fileUsecase) GetFileByID(ctx context.Context, id int) (*domain.FileDto, error) {
	file, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, apperror.NotFound("File not found")
	}

	content, err := u.store.Read(ctx, file.Path)
	if err != nil {
		return nil, fmt.Errorf("read stored file %s: %w", file.Path, err)
	}
	return &domain.FileDto{Name: file.Name, Content: content}, nil
}

// Save writes the content under a fresh object key, then records the
// metadata row. The stored object is removed again if the row insert
// fails, so no orphans accumulate in the store.
func (u *fileUsecase) Save(ctx context.Context, dto domain.FileDto) (*domain.File, error) {
	key := uuid.NewString()
	content := storage.NormalizeImage(dto.Content)

	if err := u.store.Write(ctx, key, content); err != nil {
		return nil, fmt.Errorf("write stored file: %w", err)
	}

	file := &domain.File{Name: dto.Name, Path: key}
	if err := u.repo.Save(ctx, file); err != nil {
		if removeErr := u.store.Remove(ctx, key); removeErr != nil {
			logger.Log.Error("compensating file removal failed", "key", key, "error", removeErr)
		}
		return nil, err
	}
	return file, nil
}

func (u *fileUsecase) DeleteByID(ctx context.Context, id int) error {
	file, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if file == nil {
		return nil
	}

	if _, err := u.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	if err := u.store.Remove(ctx, file.Path); err != nil {
		// The row is already gone; losing the object is logged, not fatal.
		logger.Log.Error("remove stored file failed", "key", file.Path, "error", err)
	}
	return nil
}
