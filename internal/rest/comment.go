package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/rest/request"
	"github.com/Guyuepp/forum-api/internal/rest/response"
)

type commentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *commentHandler {
	return &commentHandler{
		Service: svc,
	}
}

func (h *commentHandler) AddComment(c *gin.Context) {
	owner, ok := currentUser(c)
	if !ok {
		return
	}
	p, err := request.BindPayload(c)
	if err != nil {
		badPayload(c)
		return
	}

	added, err := h.Service.AddComment(c.Request.Context(), c.Param("threadId"), owner, p)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.NewSuccess(gin.H{
		"addedComment": response.NewAddedCommentFromDomain(added),
	}))
}

func (h *commentHandler) DeleteComment(c *gin.Context) {
	owner, ok := currentUser(c)
	if !ok {
		return
	}

	err := h.Service.DeleteComment(c.Request.Context(), c.Param("threadId"), c.Param("commentId"), owner)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewSuccess(nil))
}

// LikeComment toggles the like of the caller on a comment
func (h *commentHandler) LikeComment(c *gin.Context) {
	owner, ok := currentUser(c)
	if !ok {
		return
	}

	err := h.Service.LikeComment(c.Request.Context(), c.Param("threadId"), c.Param("commentId"), owner)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewSuccess(nil))
}
