package usecase

import (
	"context"
	"time"

	"go-dreamjob/internal/domain"
	"go-dreamjob/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type candidateUsecase struct {
	repo     domain.CandidateRepository
	files    domain.FileUsecase
	validate *validator.Validate
}

func NewCandidateUsecase(repo domain.CandidateRepository, files domain.FileUsecase, validate *validator.Validate) domain.CandidateUsecase {
	return &candidateUsecase{
		repo:     repo,
		files:    files,
		validate: validate,
	}
}

// Save stores the uploaded file first, attaches the resulting file id and
// then persists the candidate. If the candidate insert fails the stored
// file is deleted again so it cannot leak.
func (u *candidateUsecase) Save(ctx context.Context, candidate *domain.Candidate, file domain.FileDto) (*domain.Candidate, error) {
	if err := u.validate.Struct(candidate); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	stored, err := u.files.Save(ctx, file)
	if err != nil {
		return nil, err
	}
	candidate.FileID = stored.ID
	candidate.CreationDate = time.Now()

	if err := u.repo.Save(ctx, candidate); err != nil {
		_ = u.files.DeleteByID(ctx, stored.ID)
		return nil, err
	}
	return candidate, nil
}

func (u *candidateUsecase) FindByID(ctx context.Context, id int) (*domain.Candidate, error) {
	candidate, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, apperror.NotFound(domain.MsgCandidateNotFound)
	}
	return candidate, nil
}

func (u *candidateUsecase) FindAll(ctx context.Context) ([]domain.Candidate, error) {
	return u.repo.FindAll(ctx)
}

// Update follows the same file-then-entity order as Save and reports
// whether the candidate row actually changed.
func (u *candidateUsecase) Update(ctx context.Context, candidate *domain.Candidate, file domain.FileDto) (bool, error) {
	stored, err := u.files.Save(ctx, file)
	if err != nil {
		return false, err
	}
	candidate.FileID = stored.ID

	ok, err := u.repo.Update(ctx, candidate)
	if err != nil || !ok {
		_ = u.files.DeleteByID(ctx, stored.ID)
		return false, err
	}
	return true, nil
}

// DeleteByID removes the candidate and the file it owns.
func (u *candidateUsecase) DeleteByID(ctx context.Context, id int) (bool, error) {
	candidate, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	if candidate == nil {
		return false, nil
	}

	ok, err := u.repo.DeleteByID(ctx, id)
	if err != nil || !ok {
		return false, err
	}
	if err := u.files.DeleteByID(ctx, candidate.FileID); err != nil {
		return false, err
	}
	return true, nil
}
