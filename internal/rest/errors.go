package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/rest/middleware"
	"github.com/Guyuepp/forum-api/internal/rest/response"
)

const internalErrorMessage = "terjadi kegagalan pada server kami"

// getStatusCode will get the code of the error returned by the usecases
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func renderError(c *gin.Context, err error) {
	code := getStatusCode(err)
	if code == http.StatusInternalServerError {
		logrus.Errorf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(code, response.NewError(internalErrorMessage))
		return
	}
	c.JSON(code, response.NewFail(err.Error()))
}

// currentUser returns the user id put in the context by the auth middleware.
func currentUser(c *gin.Context) (string, bool) {
	uid := c.GetString(middleware.UserIDKey)
	if uid == "" {
		c.JSON(http.StatusUnauthorized, response.NewFail(domain.ErrUnauthorized.Error()))
		return "", false
	}
	return uid, true
}

func badPayload(c *gin.Context) {
	c.JSON(http.StatusBadRequest, response.NewFail("request body must be a JSON object"))
}
