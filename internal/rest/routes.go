package rest

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the forum endpoints. Every route but the thread read is behind auth.
func RegisterRoutes(route gin.IRouter, auth gin.HandlerFunc, th *ThreadHandler, ch *commentHandler, rh *replyHandler) {
	route.GET("/threads/:threadId", th.GetThread)

	authorized := route.Group("/")
	authorized.Use(auth)
	{
		authorized.POST("/threads", th.AddThread)
		authorized.POST("/threads/:threadId/comments", ch.AddComment)
		authorized.DELETE("/threads/:threadId/comments/:commentId", ch.DeleteComment)
		authorized.PUT("/threads/:threadId/comments/:commentId/likes", ch.LikeComment)
		authorized.POST("/threads/:threadId/comments/:commentId/replies", rh.AddReply)
		authorized.DELETE("/threads/:threadId/comments/:commentId/replies/:replyId", rh.DeleteReply)
	}
}
