package wshandlers

import (
	"context"

	"github.com/driftboard/driftboard/internal/board/dto"
	ws "github.com/driftboard/driftboard/pkg/websocket"
)

// CreateListRequest is the payload for list.create
type CreateListRequest struct {
	Title string `json:"title"`
}

// ListResponse is the response for list operations
type ListResponse struct {
	List dto.ListDTO `json:"list"`
}

// CreateList handles list.create action
func (h *Handlers) CreateList(ctx context.Context, msg *ws.Message) (*ws.Message, error) {
	var req CreateListRequest
	if err := msg.ParsePayload(&req); err != nil {
		return ws.NewError(msg.ID, msg.Action, ws.ErrorCodeBadRequest, "Invalid payload: "+err.Error(), nil)
	}

	list, err := h.service.CreateList(ctx, req.Title)
	if err != nil {
		return errorResponse(msg, err)
	}
	return ws.NewResponse(msg.ID, msg.Action, ListResponse{List: dto.FromList(&list)})
}

// RenameListRequest is the payload for list.rename
type RenameListRequest struct {
	ListID string `json:"list_id"`
	Title  string `json:"title"`
}

// RenameList handles list.rename action
func (h *Handlers) RenameList(ctx context.Context, msg *ws.Message) (*ws.Message, error) {
	var req RenameListRequest
	if err := msg.ParsePayload(&req); err != nil {
		return ws.NewError(msg.ID, msg.Action, ws.ErrorCodeBadRequest, "Invalid payload: "+err.Error(), nil)
	}
	if req.ListID == "" {
		return ws.NewError(msg.ID, msg.Action, ws.ErrorCodeValidation, "list_id is required", nil)
	}

	if err := h.service.RenameList(ctx, req.ListID, req.Title); err != nil {
		return errorResponse(msg, err)
	}
	return ws.NewResponse(msg.ID, msg.Action, map[string]interface{}{"list_id": req.ListID})
}

// MoveListRequest is the payload for list.move
type MoveListRequest struct {
	FromIndex int `json:"from_index"`
	ToIndex   int `json:"to_index"`
}

// MoveList handles list.move action
func (h *Handlers) MoveList(ctx context.Context, msg *ws.Message) (*ws.Message, error) {
	var req MoveListRequest
	if err := msg.ParsePayload(&req); err != nil {
		return ws.NewError(msg.ID, msg.Action, ws.ErrorCodeBadRequest, "Invalid payload: "+err.Error(), nil)
	}

	if err := h.service.MoveList(ctx, req.FromIndex, req.ToIndex); err != nil {
		return errorResponse(msg, err)
	}
	board := h.service.GetBoard(ctx)
	return ws.NewResponse(msg.ID, msg.Action, BoardResponse{Board: dto.FromBoard(board)})
}

// DeleteListRequest is the payload for list.delete
type DeleteListRequest struct {
	ListID string `json:"list_id"`
}

// DeleteList handles list.delete action
func (h *Handlers) DeleteList(ctx context.Context, msg *ws.Message) (*ws.Message, error) {
	var req DeleteListRequest
	if err := msg.ParsePayload(&req); err != nil {
		return ws.NewError(msg.ID, msg.Action, ws.ErrorCodeBadRequest, "Invalid payload: "+err.Error(), nil)
	}
	if req.ListID == "" {
		return ws.NewError(msg.ID, msg.Action, ws.ErrorCodeValidation, "list_id is required", nil)
	}

	if err := h.service.DeleteList(ctx, req.ListID); err != nil {
		return errorResponse(msg, err)
	}
	return ws.NewResponse(msg.ID, msg.Action, map[string]interface{}{"list_id": req.ListID})
}
