package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/rest/request"
	"github.com/Guyuepp/forum-api/internal/rest/response"
)

type replyHandler struct {
	Service domain.ReplyUsecase
}

func NewReplyHandler(svc domain.ReplyUsecase) *replyHandler {
	return &replyHandler{
		Service: svc,
	}
}

func (h *replyHandler) AddReply(c *gin.Context) {
	owner, ok := currentUser(c)
	if !ok {
		return
	}
	p, err := request.BindPayload(c)
	if err != nil {
		badPayload(c)
		return
	}

	added, err := h.Service.AddReply(c.Request.Context(), c.Param("threadId"), c.Param("commentId"), owner, p)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.NewSuccess(gin.H{
		"addedReply": response.NewAddedReplyFromDomain(added),
	}))
}

func (h *replyHandler) DeleteReply(c *gin.Context) {
	owner, ok := currentUser(c)
	if !ok {
		return
	}

	err := h.Service.DeleteReply(c.Request.Context(), c.Param("threadId"), c.Param("commentId"), c.Param("replyId"), owner)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewSuccess(nil))
}
