package api

import (
	"github.com/gin-gonic/gin"

	"github.com/driftboard/driftboard/internal/board/service"
	"github.com/driftboard/driftboard/internal/common/logger"
)

// SetupRoutes configures the board API routes
func SetupRoutes(router *gin.RouterGroup, svc *service.Service, log *logger.Logger) {
	handler := NewHandler(svc, log)

	// Board routes
	board := router.Group("/board")
	{
		board.GET("", handler.GetBoard)
		board.PUT("/title", handler.UpdateBoardTitle)
	}

	// List routes
	lists := router.Group("/lists")
	{
		lists.POST("", handler.CreateList)
		lists.PUT("/move", handler.MoveList)
		lists.PUT("/:listId", handler.RenameList)
		lists.DELETE("/:listId", handler.DeleteList)

		// Card sub-resources
		lists.POST("/:listId/cards", handler.CreateCard)
		lists.GET("/:listId/cards/:cardId", handler.GetCard)
		lists.PUT("/:listId/cards/:cardId", handler.RenameCard)
		lists.PUT("/:listId/cards/:cardId/move", handler.MoveCard)
		lists.DELETE("/:listId/cards/:cardId", handler.DeleteCard)
		lists.POST("/:listId/cards/:cardId/comments", handler.AddComment)
	}
}
