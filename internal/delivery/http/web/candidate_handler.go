package web

import (
	"net/http"
	"strconv"

	"go-dreamjob/internal/domain"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
	cityUC      domain.CityUsecase
}

func NewCandidateHandler(r *gin.Engine, candidateUC domain.CandidateUsecase, cityUC domain.CityUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC, cityUC: cityUC}

	candidates := r.Group("/candidates")
	{
		candidates.GET("", handler.GetAll)
		candidates.GET("/create", handler.GetCreationPage)
		candidates.POST("/create", handler.Create)
		candidates.GET("/:id", handler.GetByID)
		candidates.POST("/update", handler.Update)
		candidates.GET("/delete/:id", handler.Delete)
	}
}

type candidateForm struct {
	ID          int    `form:"id"`
	Name        string `form:"name"`
	Description string `form:"description"`
	CityID      int    `form:"cityId"`
}

func (f candidateForm) toDomain() *domain.Candidate {
	return &domain.Candidate{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		CityID:      f.CityID,
	}
}

func (h *CandidateHandler) GetAll(c *gin.Context) {
	candidates, err := h.candidateUC.FindAll(c.Request.Context())
	if err != nil {
		renderError(c, err.Error())
		return
	}
	c.HTML(http.StatusOK, "candidates/list", withUser(c, gin.H{"candidates": candidates}))
}

func (h *CandidateHandler) GetCreationPage(c *gin.Context) {
	cities, err := h.cityUC.FindAll(c.Request.Context())
	if err != nil {
		renderError(c, err.Error())
		return
	}
	c.HTML(http.StatusOK, "candidates/create", withUser(c, gin.H{"cities": cities}))
}

func (h *CandidateHandler) Create(c *gin.Context) {
	var form candidateForm
	if err := c.ShouldBind(&form); err != nil {
		renderError(c, err.Error())
		return
	}
	file, err := fileDtoFromForm(c)
	if err != nil {
		renderError(c, err.Error())
		return
	}

	if _, err := h.candidateUC.Save(c.Request.Context(), form.toDomain(), file); err != nil {
		renderError(c, err.Error())
		return
	}
	c.Redirect(http.StatusFound, "/candidates")
}

func (h *CandidateHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		renderError(c, domain.MsgCandidateNotFound)
		return
	}

	candidate, err := h.candidateUC.FindByID(c.Request.Context(), id)
	if err != nil {
		renderError(c, err.Error())
		return
	}
	cities, err := h.cityUC.FindAll(c.Request.Context())
	if err != nil {
		renderError(c, err.Error())
		return
	}
	c.HTML(http.StatusOK, "candidates/one", withUser(c, gin.H{
		"candidate": candidate,
		"cities":    cities,
	}))
}

func (h *CandidateHandler) Update(c *gin.Context) {
	var form candidateForm
	if err := c.ShouldBind(&form); err != nil {
		renderError(c, err.Error())
		return
	}
	file, err := fileDtoFromForm(c)
	if err != nil {
		renderError(c, err.Error())
		return
	}

	ok, err := h.candidateUC.Update(c.Request.Context(), form.toDomain(), file)
	if err != nil {
		renderError(c, err.Error())
		return
	}
	if !ok {
		renderError(c, domain.MsgCandidateNotFound)
		return
	}
	c.Redirect(http.StatusFound, "/candidates")
}

func (h *CandidateHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		renderError(c, domain.MsgCandidateNotFound)
		return
	}

	ok, err := h.candidateUC.DeleteByID(c.Request.Context(), id)
	if err != nil {
		renderError(c, err.Error())
		return
	}
	if !ok {
		renderError(c, domain.MsgCandidateNotFound)
		return
	}
	c.Redirect(http.StatusFound, "/candidates")
}
