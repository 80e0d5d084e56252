package web

import (
	"net/http"
	"strconv"

	"go-dreamjob/internal/domain"

	"github.com/gin-gonic/gin"
)

type VacancyHandler struct {
	vacancyUC domain.VacancyUsecase
	cityUC    domain.CityUsecase
}

func NewVacancyHandler(r *gin.Engine, vacancyUC domain.VacancyUsecase, cityUC domain.CityUsecase) {
	handler := &VacancyHandler{vacancyUC: vacancyUC, cityUC: cityUC}

	vacancies := r.Group("/vacancies")
	{
		vacancies.GET("", handler.GetAll)
		vacancies.GET("/create", handler.GetCreationPage)
		vacancies.POST("/create", handler.Create)
		vacancies.GET("/:id", handler.GetByID)
		vacancies.POST("/update", handler.Update)
		vacancies.GET("/delete/:id", handler.Delete)
	}
}

type vacancyForm struct {
	ID          int    `form:"id"`
	Title       string `form:"title"`
	Description string `form:"description"`
	Visible     bool   `form:"visible"`
	CityID      int    `form:"cityId"`
}

func (f vacancyForm) toDomain() *domain.Vacancy {
	return &domain.Vacancy{
		ID:          f.ID,
		Title:       f.Title,
		Description: f.Description,
		Visible:     f.Visible,
		CityID:      f.CityID,
	}
}

func (h *VacancyHandler) GetAll(c *gin.Context) {
	vacancies, err := h.vacancyUC.FindAll(c.Request.Context())
	if err != nil {
		renderError(c, err.Error())
		return
	}
	c.HTML(http.StatusOK, "vacancies/list", withUser(c, gin.H{"vacancies": vacancies}))
}

func (h *VacancyHandler) GetCreationPage(c *gin.Context) {
	cities, err := h.cityUC.FindAll(c.Request.Context())
	if err != nil {
		renderError(c, err.Error())
		return
	}
	c.HTML(http.StatusOK, "vacancies/create", withUser(c, gin.H{"cities": cities}))
}

func (h *VacancyHandler) Create(c *gin.Context) {
	var form vacancyForm
	if err := c.ShouldBind(&form); err != nil {
		renderError(c, err.Error())
		return
	}
	file, err := fileDtoFromForm(c)
	if err != nil {
		renderError(c, err.Error())
		return
	}

	if _, err := h.vacancyUC.Save(c.Request.Context(), form.toDomain(), file); err != nil {
		renderError(c, err.Error())
		return
	}
	c.Redirect(http.StatusFound, "/vacancies")
}

func (h *VacancyHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		renderError(c, domain.MsgVacancyNotFound)
		return
	}

	vacancy, err := h.vacancyUC.FindByID(c.Request.Context(), id)
	if err != nil {
		renderError(c, err.Error())
		return
	}
	cities, err := h.cityUC.FindAll(c.Request.Context())
	if err != nil {
		renderError(c, err.Error())
		return
	}
	c.HTML(http.StatusOK, "vacancies/one", withUser(c, gin.H{
		"vacancy": vacancy,
		"cities":  cities,
	}))
}

func (h *VacancyHandler) Update(c *gin.Context) {
	var form vacancyForm
	if err := c.ShouldBind(&form); err != nil {
		renderError(c, err.Error())
		return
	}
	file, err := fileDtoFromForm(c)
	if err != nil {
		renderError(c, err.Error())
		return
	}

	ok, err := h.vacancyUC.Update(c.Request.Context(), form.toDomain(), file)
	if err != nil {
		renderError(c, err.Error())
		return
	}
	if !ok {
		renderError(c, domain.MsgVacancyNotFound)
		return
	}
	c.Redirect(http.StatusFound, "/vacancies")
}

func (h *VacancyHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		renderError(c, domain.MsgVacancyNotFound)
		return
	}

	ok, err := h.vacancyUC.DeleteByID(c.Request.Context(), id)
	if err != nil {
		renderError(c, err.Error())
		return
	}
	if !ok {
		renderError(c, domain.MsgVacancyNotFound)
		return
	}
	c.Redirect(http.StatusFound, "/vacancies")
}
