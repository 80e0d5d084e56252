package web

import (
	"io"
	"net/http"

	"go-dreamjob/internal/domain"
	"go-dreamjob/internal/session"

	"github.com/gin-gonic/gin"
)

// errorView is the single generic error page; every service-level
// failure renders through it with a "message" attribute.
const errorView = "errors/404"

// withUser merges the logged-in user into the view model so the nav bar
// can render it on every page.
func withUser(c *gin.Context, model gin.H) gin.H {
	if model == nil {
		model = gin.H{}
	}
	if _, ok := model[domain.KeyUser]; !ok {
		if user := session.UserFrom(c); user != nil {
			model[domain.KeyUser] = user
		}
	}
	return model
}

func renderError(c *gin.Context, message string) {
	c.HTML(http.StatusOK, errorView, withUser(c, gin.H{"message": message}))
}

// fileDtoFromForm reads the uploaded "file" field into a FileDto. A
// missing upload yields an empty dto rather than an error; the usecase
// stores whatever it gets, matching how the form behaves without a file.
func fileDtoFromForm(c *gin.Context) (domain.FileDto, error) {
	header, err := c.FormFile("file")
	if err != nil {
		return domain.FileDto{}, nil
	}

	f, err := header.Open()
	if err != nil {
		return domain.FileDto{}, err
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return domain.FileDto{}, err
	}
	return domain.FileDto{Name: header.Filename, Content: content}, nil
}
