package web

import (
	"net/http"

	"go-dreamjob/internal/domain"
	"go-dreamjob/internal/session"
	"go-dreamjob/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUC   domain.UserUsecase
	sessions *session.Manager
}

func NewUserHandler(r *gin.Engine, userUC domain.UserUsecase, sessions *session.Manager) {
	handler := &UserHandler{userUC: userUC, sessions: sessions}

	users := r.Group("/users")
	{
		users.GET("/register", handler.GetRegistrationPage)
		users.POST("/register", handler.Register)
		users.GET("/login", handler.GetLoginPage)
		users.POST("/login", handler.Login)
		users.GET("/logout", handler.Logout)
	}
}

type userForm struct {
	Email    string `form:"email"`
	Name     string `form:"name"`
	Password string `form:"password"`
}

// GetRegistrationPage pre-fills the form with the logged-in user, or a
// guest placeholder when nobody is signed in.
func (h *UserHandler) GetRegistrationPage(c *gin.Context) {
	user := session.UserFrom(c)
	if user == nil {
		user = &domain.User{Name: domain.GuestName}
	}
	c.HTML(http.StatusOK, "users/register", gin.H{domain.KeyUser: user})
}

func (h *UserHandler) Register(c *gin.Context) {
	var form userForm
	if err := c.ShouldBind(&form); err != nil {
		renderError(c, err.Error())
		return
	}

	user, err := h.userUC.Save(c.Request.Context(), &domain.User{
		Email:    form.Email,
		Name:     form.Name,
		Password: form.Password,
	})
	if err != nil {
		renderError(c, err.Error())
		return
	}

	if err := h.sessions.SignIn(c, user); err != nil {
		renderError(c, err.Error())
		return
	}
	c.Redirect(http.StatusFound, "/vacancies")
}

func (h *UserHandler) GetLoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "users/login", withUser(c, gin.H{}))
}

// Login re-renders the form with a fixed message on bad credentials and
// never touches the session in that case.
func (h *UserHandler) Login(c *gin.Context) {
	var form userForm
	if err := c.ShouldBind(&form); err != nil {
		renderError(c, err.Error())
		return
	}

	user, err := h.userUC.FindByEmailAndPassword(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		if apperror.IsNotFound(err) {
			c.HTML(http.StatusOK, "users/login", gin.H{"error": domain.MsgBadCredentials})
			return
		}
		renderError(c, err.Error())
		return
	}

	if err := h.sessions.SignIn(c, user); err != nil {
		renderError(c, err.Error())
		return
	}
	c.Redirect(http.StatusFound, "/vacancies")
}

func (h *UserHandler) Logout(c *gin.Context) {
	h.sessions.SignOut(c)
	c.Redirect(http.StatusFound, "/users/login")
}
