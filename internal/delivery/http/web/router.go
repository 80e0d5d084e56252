package web

import (
	"go-dreamjob/internal/domain"
	"go-dreamjob/internal/session"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	CandidateUC domain.CandidateUsecase
	VacancyUC   domain.VacancyUsecase
	CityUC      domain.CityUsecase
	UserUC      domain.UserUsecase
	FileUC      domain.FileUsecase
	Sessions    *session.Manager
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(deps.Sessions.Middleware())

	r.SetHTMLTemplate(Templates())

	NewIndexHandler(r)
	NewCandidateHandler(r, deps.CandidateUC, deps.CityUC)
	NewVacancyHandler(r, deps.VacancyUC, deps.CityUC)
	NewUserHandler(r, deps.UserUC, deps.Sessions)
	NewFileHandler(r, deps.FileUC)

	return r
}
