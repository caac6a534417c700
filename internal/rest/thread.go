package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/rest/request"
	"github.com/Guyuepp/forum-api/internal/rest/response"
)

// ThreadHandler represent the httphandler for thread
type ThreadHandler struct {
	Service domain.ThreadUsecase
}

func NewThreadHandler(svc domain.ThreadUsecase) *ThreadHandler {
	return &ThreadHandler{
		Service: svc,
	}
}

// AddThread will store the thread by given request body
func (h *ThreadHandler) AddThread(c *gin.Context) {
	owner, ok := currentUser(c)
	if !ok {
		return
	}
	p, err := request.BindPayload(c)
	if err != nil {
		badPayload(c)
		return
	}

	added, err := h.Service.AddThread(c.Request.Context(), owner, p)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.NewSuccess(gin.H{
		"addedThread": response.NewAddedThreadFromDomain(added),
	}))
}

// GetThread will get the thread with its comments and replies
func (h *ThreadHandler) GetThread(c *gin.Context) {
	view, err := h.Service.GetThread(c.Request.Context(), c.Param("threadId"))
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewSuccess(gin.H{
		"thread": response.NewThreadFromDomain(view),
	}))
}
