package usecase_test

import (
	"context"
	"testing"

	"go-dreamjob/internal/domain"
	"go-dreamjob/internal/usecase"
	"go-dreamjob/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestVacancySave(t *testing.T) {
	ctx := context.Background()
	file := domain.FileDto{Name: "testFile.img", Content: []byte{1, 2, 3}}

	repo := new(MockVacancyRepo)
	files := new(MockFileUsecase)
	uc := usecase.NewVacancyUsecase(repo, files, validator.New())

	files.On("Save", ctx, file).Return(&domain.File{ID: 42}, nil)
	repo.On("Save", ctx, mock.AnythingOfType("*domain.Vacancy")).Return(nil).Run(func(args mock.Arguments) {
		v := args.Get(1).(*domain.Vacancy)
		assert.Equal(t, 42, v.FileID)
		assert.True(t, v.Visible)
		v.ID = 3
	})

	saved, err := uc.Save(ctx, &domain.Vacancy{Title: "title1", Visible: true}, file)

	assert.NoError(t, err)
	assert.Equal(t, 3, saved.ID)
	repo.AssertExpectations(t)
}

func TestVacancyFindByID(t *testing.T) {
	ctx := context.Background()

	repo := new(MockVacancyRepo)
	uc := usecase.NewVacancyUsecase(repo, new(MockFileUsecase), validator.New())

	repo.On("FindByID", ctx, 99).Return(nil, nil)

	_, err := uc.FindByID(ctx, 99)

	assert.True(t, apperror.IsNotFound(err))
	assert.Equal(t, domain.MsgVacancyNotFound, err.Error())
}

func TestVacancyDeleteByID(t *testing.T) {
	ctx := context.Background()

	repo := new(MockVacancyRepo)
	files := new(MockFileUsecase)
	uc := usecase.NewVacancyUsecase(repo, files, validator.New())

	repo.On("FindByID", ctx, 1).Return(&domain.Vacancy{ID: 1, FileID: 8}, nil)
	repo.On("DeleteByID", ctx, 1).Return(true, nil)
	files.On("DeleteByID", ctx, 8).Return(nil)

	ok, err := uc.DeleteByID(ctx, 1)

	assert.NoError(t, err)
	assert.True(t, ok)
	files.AssertCalled(t, "DeleteByID", ctx, 8)
}
