package web_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"go-dreamjob/internal/domain"
	"go-dreamjob/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestVacancyGetAll(t *testing.T) {
	f := newFixture(t)
	vacancies := []domain.Vacancy{
		{ID: 1, Title: "title1", Description: "desc1", CreationDate: time.Now(), Visible: true, CityID: 1, FileID: 2},
		{ID: 2, Title: "title2", Description: "desc2", CreationDate: time.Now(), Visible: false, CityID: 3, FileID: 4},
	}
	f.vacancyUC.On("FindAll", mock.Anything).Return(vacancies, nil)

	w := f.get(t, "/vacancies")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "title1")
	assert.Contains(t, w.Body.String(), "title2")
}

func TestVacancyCreate(t *testing.T) {
	f := newFixture(t)

	var gotVacancy *domain.Vacancy
	var gotFile domain.FileDto
	f.vacancyUC.On("Save", mock.Anything, mock.AnythingOfType("*domain.Vacancy"), mock.AnythingOfType("domain.FileDto")).
		Return(&domain.Vacancy{ID: 1}, nil).
		Run(func(args mock.Arguments) {
			gotVacancy = args.Get(1).(*domain.Vacancy)
			gotFile = args.Get(2).(domain.FileDto)
		})

	req := multipartRequest(t, "/vacancies/create", map[string]string{
		"title":       "title1",
		"description": "desc1",
		"visible":     "true",
		"cityId":      "1",
	}, "testFile.img", []byte{1, 2, 3})
	w := f.do(t, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/vacancies", w.Header().Get("Location"))
	assert.Equal(t, "title1", gotVacancy.Title)
	assert.True(t, gotVacancy.Visible)
	assert.Equal(t, "testFile.img", gotFile.Name)
	assert.Equal(t, []byte{1, 2, 3}, gotFile.Content)
}

func TestVacancyCreateError(t *testing.T) {
	f := newFixture(t)
	f.vacancyUC.On("Save", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("Exception1"))

	req := multipartRequest(t, "/vacancies/create", map[string]string{"title": "title1"}, "testFile.img", []byte{1, 2, 3})
	w := f.do(t, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Exception1")
}

func TestVacancyGetByIDMissing(t *testing.T) {
	f := newFixture(t)
	f.vacancyUC.On("FindByID", mock.Anything, 99).
		Return(nil, apperror.NotFound(domain.MsgVacancyNotFound))

	w := f.get(t, "/vacancies/99")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), domain.MsgVacancyNotFound)
}

func TestVacancyUpdateMissing(t *testing.T) {
	f := newFixture(t)
	f.vacancyUC.On("Update", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)

	req := multipartRequest(t, "/vacancies/update", map[string]string{"id": "99", "title": "title1"}, "testFile.img", []byte{1, 2, 3})
	w := f.do(t, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), domain.MsgVacancyNotFound)
}

func TestVacancyDelete(t *testing.T) {
	f := newFixture(t)
	f.vacancyUC.On("DeleteByID", mock.Anything, 1).Return(true, nil)

	w := f.get(t, "/vacancies/delete/1")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/vacancies", w.Header().Get("Location"))
}

func TestVacancyDeleteMissing(t *testing.T) {
	f := newFixture(t)
	f.vacancyUC.On("DeleteByID", mock.Anything, 99).Return(false, nil)

	w := f.get(t, "/vacancies/delete/99")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), domain.MsgVacancyNotFound)
}
