package wshandlers

import (
	"context"

	"github.com/driftboard/driftboard/internal/board/dto"
	ws "github.com/driftboard/driftboard/pkg/websocket"
)

// BoardResponse is the response for board.get and board.title
type BoardResponse struct {
	Board dto.BoardDTO `json:"board"`
}

// GetBoard handles board.get action
func (h *Handlers) GetBoard(ctx context.Context, msg *ws.Message) (*ws.Message, error) {
	board := h.service.GetBoard(ctx)
	return ws.NewResponse(msg.ID, msg.Action, BoardResponse{Board: dto.FromBoard(board)})
}

// UpdateBoardTitleRequest is the payload for board.title
type UpdateBoardTitleRequest struct {
	Title string `json:"title"`
}

// UpdateBoardTitle handles board.title action
func (h *Handlers) UpdateBoardTitle(ctx context.Context, msg *ws.Message) (*ws.Message, error) {
	var req UpdateBoardTitleRequest
	if err := msg.ParsePayload(&req); err != nil {
		return ws.NewError(msg.ID, msg.Action, ws.ErrorCodeBadRequest, "Invalid payload: "+err.Error(), nil)
	}

	board, err := h.service.UpdateBoardTitle(ctx, req.Title)
	if err != nil {
		return errorResponse(msg, err)
	}
	return ws.NewResponse(msg.ID, msg.Action, BoardResponse{Board: dto.FromBoard(board)})
}
