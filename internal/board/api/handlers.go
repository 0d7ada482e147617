// Package api contains the HTTP handlers for the board service.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/driftboard/driftboard/internal/board/dto"
	"github.com/driftboard/driftboard/internal/board/service"
	"github.com/driftboard/driftboard/internal/common/errors"
	"github.com/driftboard/driftboard/internal/common/logger"
)

// Handler contains HTTP handlers for the board API
type Handler struct {
	service *service.Service
	logger  *logger.Logger
}

// NewHandler creates a new API handler
func NewHandler(svc *service.Service, log *logger.Logger) *Handler {
	return &Handler{
		service: svc,
		logger:  log,
	}
}

func respondError(c *gin.Context, err error) {
	if appErr, ok := err.(*errors.AppError); ok {
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}
	c.JSON(errors.GetHTTPStatus(err), gin.H{"error": err.Error()})
}

// GetBoard returns the whole board
// GET /api/v1/board
func (h *Handler) GetBoard(c *gin.Context) {
	board := h.service.GetBoard(c.Request.Context())
	c.JSON(http.StatusOK, dto.FromBoard(board))
}

// UpdateBoardTitle replaces the board title
// PUT /api/v1/board/title
func (h *Handler) UpdateBoardTitle(c *gin.Context) {
	var req UpdateBoardTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := errors.BadRequest(err.Error())
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	board, err := h.service.UpdateBoardTitle(c.Request.Context(), req.Title)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromBoard(board))
}

// CreateList creates a new list
// POST /api/v1/lists
func (h *Handler) CreateList(c *gin.Context) {
	var req CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := errors.BadRequest(err.Error())
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	list, err := h.service.CreateList(c.Request.Context(), req.Title)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromList(&list))
}

// RenameList renames a list
// PUT /api/v1/lists/:listId
func (h *Handler) RenameList(c *gin.Context) {
	listID := c.Param("listId")

	var req RenameListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := errors.BadRequest(err.Error())
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	if err := h.service.RenameList(c.Request.Context(), listID, req.Title); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// MoveList relocates a list by index
// PUT /api/v1/lists/move
func (h *Handler) MoveList(c *gin.Context) {
	var req MoveListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := errors.BadRequest(err.Error())
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	if err := h.service.MoveList(c.Request.Context(), req.FromIndex, req.ToIndex); err != nil {
		respondError(c, err)
		return
	}
	board := h.service.GetBoard(c.Request.Context())
	c.JSON(http.StatusOK, dto.FromBoard(board))
}

// DeleteList deletes a list and its cards
// DELETE /api/v1/lists/:listId
func (h *Handler) DeleteList(c *gin.Context) {
	listID := c.Param("listId")

	if err := h.service.DeleteList(c.Request.Context(), listID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateCard creates a new card in a list
// POST /api/v1/lists/:listId/cards
func (h *Handler) CreateCard(c *gin.Context) {
	listID := c.Param("listId")

	var req CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := errors.BadRequest(err.Error())
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	card, err := h.service.CreateCard(c.Request.Context(), listID, req.Title)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromCard(&card))
}

// GetCard returns a single card with its comments
// GET /api/v1/lists/:listId/cards/:cardId
func (h *Handler) GetCard(c *gin.Context) {
	listID := c.Param("listId")
	cardID := c.Param("cardId")

	card, err := h.service.GetCard(c.Request.Context(), listID, cardID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromCard(&card))
}

// RenameCard renames a card
// PUT /api/v1/lists/:listId/cards/:cardId
func (h *Handler) RenameCard(c *gin.Context) {
	listID := c.Param("listId")
	cardID := c.Param("cardId")

	var req RenameCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := errors.BadRequest(err.Error())
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	if err := h.service.RenameCard(c.Request.Context(), listID, cardID, req.Title); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// MoveCard relocates a card between or within lists
// PUT /api/v1/lists/:listId/cards/:cardId/move
func (h *Handler) MoveCard(c *gin.Context) {
	listID := c.Param("listId")

	var req MoveCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := errors.BadRequest(err.Error())
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	if err := h.service.MoveCard(c.Request.Context(), listID, req.DestListID, req.SourceIndex, req.DestIndex); err != nil {
		h.logger.Error("failed to move card", zap.String("list_id", listID), zap.Error(err))
		respondError(c, err)
		return
	}
	board := h.service.GetBoard(c.Request.Context())
	c.JSON(http.StatusOK, dto.FromBoard(board))
}

// DeleteCard deletes a card
// DELETE /api/v1/lists/:listId/cards/:cardId
func (h *Handler) DeleteCard(c *gin.Context) {
	listID := c.Param("listId")
	cardID := c.Param("cardId")

	if err := h.service.DeleteCard(c.Request.Context(), listID, cardID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddComment appends a comment to a card
// POST /api/v1/lists/:listId/cards/:cardId/comments
func (h *Handler) AddComment(c *gin.Context) {
	listID := c.Param("listId")
	cardID := c.Param("cardId")

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := errors.BadRequest(err.Error())
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	comment, err := h.service.AddComment(c.Request.Context(), listID, cardID, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":         comment.ID,
		"card_id":    cardID,
		"text":       comment.Text,
		"author":     comment.Author,
		"created_at": comment.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	})
}
