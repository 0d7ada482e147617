package wshandlers

import (
	"context"

	"github.com/driftboard/driftboard/internal/board/dto"
	ws "github.com/driftboard/driftboard/pkg/websocket"
)

// CreateCardRequest is the payload for card.create
type CreateCardRequest struct {
	ListID string `json:"list_id"`
	Title  string `json:"title"`
}

// CardResponse is the response for card operations
type CardResponse struct {
	Card dto.CardDTO `json:"card"`
}

// CreateCard handles card.create action
func (h *Handlers) CreateCard(ctx context.Context, msg *ws.Message) (*ws.Message, error) {
	var req CreateCardRequest
	if err := msg.ParsePayload(&req); err != nil {
		return ws.NewError(msg.ID, msg.Action, ws.ErrorCodeBadRequest, "Invalid payload: "+err.Error(), nil)
	}
	if req.ListID == "" {
		return ws.NewError(msg.ID, msg.Action, ws.ErrorCodeValidation, "list_id is required", nil)
	}

	card, err := h.service.CreateCard(ctx, req.ListID, req.Title)
	if err != nil {
		return errorResponse(msg, err)
	}
	return ws.NewResponse(msg.ID, msg.Action, CardResponse{Card: dto.FromCard(&card)})
}

// GetCardRequest is the payload for card.get
type GetCardRequest struct {
	ListID string `json:"list_id"`
	CardID string `json:"card_id"`
}

// GetCard handles card.get action
func (h *Handlers) GetCard(ctx context.Context, msg *ws.Message) (*ws.Message, error) {
	var req GetCardRequest
	if err := msg.ParsePayload(&req); err != nil {
		return ws.NewError(msg.ID, msg.Action, ws.ErrorCodeBadRequest, "Invalid payload: "+err.Error(), nil)
	}
	if req.CardID == "" {
		return ws.NewError(msg.ID, msg.Action, ws.ErrorCodeValidation, "card_id is required", nil)
	}

	card, err := h.service.GetCard(ctx, req.ListID, req.CardID)
	if err != nil {
		return errorResponse(msg, err)
	}
	return ws.NewResponse(msg.ID, msg.Action, CardResponse{Card: dto.FromCard(&card)})
}

// RenameCardRequest is the payload for card.rename
type RenameCardRequest struct {
	ListID string `json:"list_id"`
	CardID string `json:"card_id"`
	Title  string `json:"title"`
}

// RenameCard handles card.rename action
func (h *Handlers) RenameCard(ctx context.Context, msg *ws.Message) (*ws.Message, error) {
	var req RenameCardRequest
	if err := msg.ParsePayload(&req); err != nil {
		return ws.NewError(msg.ID, msg.Action, ws.ErrorCodeBadRequest, "Invalid payload: "+err.Error(), nil)
	}
	if req.CardID == "" {
		return ws.NewError(msg.ID, msg.Action, ws.ErrorCodeValidation, "card_id is required", nil)
	}

	if err := h.service.RenameCard(ctx, req.ListID, req.CardID, req.Title); err != nil {
		return errorResponse(msg, err)
	}
	return ws.NewResponse(msg.ID, msg.Action, map[string]interface{}{"card_id": req.CardID})
}

// MoveCardRequest is the payload for card.move
type MoveCardRequest struct {
	SourceListID string `json:"source_list_id"`
	DestListID   string `json:"dest_list_id"`
	SourceIndex  int    `json:"source_index"`
	DestIndex    int    `json:"dest_index"`
}

// MoveCard handles card.move action
func (h *Handlers) MoveCard(ctx context.Context, msg *ws.Message) (*ws.Message, error) {
	var req MoveCardRequest
	if err := msg.ParsePayload(&req); err != nil {
		return ws.NewError(msg.ID, msg.Action, ws.ErrorCodeBadRequest, "Invalid payload: "+err.Error(), nil)
	}
	if req.SourceListID == "" || req.DestListID == "" {
		return ws.NewError(msg.ID, msg.Action, ws.ErrorCodeValidation, "source_list_id and dest_list_id are required", nil)
	}

	if err := h.service.MoveCard(ctx, req.SourceListID, req.DestListID, req.SourceIndex, req.DestIndex); err != nil {
		return errorResponse(msg, err)
	}
	board := h.service.GetBoard(ctx)
	return ws.NewResponse(msg.ID, msg.Action, BoardResponse{Board: dto.FromBoard(board)})
}

// DeleteCardRequest is the payload for card.delete
type DeleteCardRequest struct {
	ListID string `json:"list_id"`
	CardID string `json:"card_id"`
}

// DeleteCard handles card.delete action
func (h *Handlers) DeleteCard(ctx context.Context, msg *ws.Message) (*ws.Message, error) {
	var req DeleteCardRequest
	if err := msg.ParsePayload(&req); err != nil {
		return ws.NewError(msg.ID, msg.Action, ws.ErrorCodeBadRequest, "Invalid payload: "+err.Error(), nil)
	}
	if req.CardID == "" {
		return ws.NewError(msg.ID, msg.Action, ws.ErrorCodeValidation, "card_id is required", nil)
	}

	if err := h.service.DeleteCard(ctx, req.ListID, req.CardID); err != nil {
		return errorResponse(msg, err)
	}
	return ws.NewResponse(msg.ID, msg.Action, map[string]interface{}{"card_id": req.CardID})
}
