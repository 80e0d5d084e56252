package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-dreamjob/internal/domain"
	"go-dreamjob/internal/usecase"
	"go-dreamjob/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCandidateSave(t *testing.T) {
	ctx := context.Background()
	file := domain.FileDto{Name: "testFile.img", Content: []byte{1, 2, 3}}

	t.Run("Should store file first and attach its id", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		files := new(MockFileUsecase)
		uc := usecase.NewCandidateUsecase(repo, files, validator.New())

		files.On("Save", ctx, file).Return(&domain.File{ID: 42, Name: "testFile.img"}, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*domain.Candidate")).Return(nil).Run(func(args mock.Arguments) {
			c := args.Get(1).(*domain.Candidate)
			assert.Equal(t, 42, c.FileID)
			assert.False(t, c.CreationDate.IsZero())
			c.ID = 7
		})

		saved, err := uc.Save(ctx, &domain.Candidate{Name: "name1", Description: "desc1"}, file)

		assert.NoError(t, err)
		assert.Equal(t, 7, saved.ID)
		files.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("Should delete stored file when candidate insert fails", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		files := new(MockFileUsecase)
		uc := usecase.NewCandidateUsecase(repo, files, validator.New())

		files.On("Save", ctx, file).Return(&domain.File{ID: 42}, nil)
		repo.On("Save", ctx, mock.Anything).Return(errors.New("insert failed"))
		files.On("DeleteByID", ctx, 42).Return(nil)

		_, err := uc.Save(ctx, &domain.Candidate{Name: "name1"}, file)

		assert.Error(t, err)
		files.AssertCalled(t, "DeleteByID", ctx, 42)
	})

	t.Run("Should reject candidate without a name", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		files := new(MockFileUsecase)
		uc := usecase.NewCandidateUsecase(repo, files, validator.New())

		_, err := uc.Save(ctx, &domain.Candidate{}, file)

		assert.Error(t, err)
		files.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestCandidateFindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Should pass through an existing candidate", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, new(MockFileUsecase), validator.New())

		expected := &domain.Candidate{ID: 1, Name: "name1"}
		repo.On("FindByID", ctx, 1).Return(expected, nil)

		candidate, err := uc.FindByID(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, expected, candidate)
	})

	t.Run("Should report a fixed not-found message for a missing id", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, new(MockFileUsecase), validator.New())

		repo.On("FindByID", ctx, 99).Return(nil, nil)

		_, err := uc.FindByID(ctx, 99)

		assert.Error(t, err)
		assert.True(t, apperror.IsNotFound(err))
		assert.Equal(t, domain.MsgCandidateNotFound, err.Error())
	})
}

func TestCandidateUpdate(t *testing.T) {
	ctx := context.Background()
	file := domain.FileDto{Name: "testFile.img", Content: []byte{1, 2, 3}}

	t.Run("Should report true when a row changed", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		files := new(MockFileUsecase)
		uc := usecase.NewCandidateUsecase(repo, files, validator.New())

		files.On("Save", ctx, file).Return(&domain.File{ID: 5}, nil)
		repo.On("Update", ctx, mock.Anything).Return(true, nil)

		ok, err := uc.Update(ctx, &domain.Candidate{ID: 1, Name: "name1"}, file)

		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Should clean up the new file when no row changed", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		files := new(MockFileUsecase)
		uc := usecase.NewCandidateUsecase(repo, files, validator.New())

		files.On("Save", ctx, file).Return(&domain.File{ID: 5}, nil)
		repo.On("Update", ctx, mock.Anything).Return(false, nil)
		files.On("DeleteByID", ctx, 5).Return(nil)

		ok, err := uc.Update(ctx, &domain.Candidate{ID: 99, Name: "name1"}, file)

		assert.NoError(t, err)
		assert.False(t, ok)
		files.AssertCalled(t, "DeleteByID", ctx, 5)
	})
}

func TestCandidateDeleteByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Should delete the candidate and its owned file", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		files := new(MockFileUsecase)
		uc := usecase.NewCandidateUsecase(repo, files, validator.New())

		repo.On("FindByID", ctx, 1).Return(&domain.Candidate{ID: 1, FileID: 42}, nil)
		repo.On("DeleteByID", ctx, 1).Return(true, nil)
		files.On("DeleteByID", ctx, 42).Return(nil)

		ok, err := uc.DeleteByID(ctx, 1)

		assert.NoError(t, err)
		assert.True(t, ok)
		files.AssertCalled(t, "DeleteByID", ctx, 42)
	})

	t.Run("Should report false for a missing id without touching files", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		files := new(MockFileUsecase)
		uc := usecase.NewCandidateUsecase(repo, files, validator.New())

		repo.On("FindByID", ctx, 99).Return(nil, nil)

		ok, err := uc.DeleteByID(ctx, 99)

		assert.NoError(t, err)
		assert.False(t, ok)
		files.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	})
}
