package wshandlers

import (
	"context"
	"time"

	ws "github.com/driftboard/driftboard/pkg/websocket"
)

// AddCommentRequest is the payload for comment.add
type AddCommentRequest struct {
	ListID string `json:"list_id"`
	CardID string `json:"card_id"`
	Text   string `json:"text"`
}

// CommentResponse is the response for comment operations
type CommentResponse struct {
	ID        string `json:"id"`
	CardID    string `json:"card_id"`
	Text      string `json:"text"`
	Author    string `json:"author"`
	CreatedAt string `json:"created_at"`
}

// AddComment handles comment.add action
func (h *Handlers) AddComment(ctx context.Context, msg *ws.Message) (*ws.Message, error) {
	var req AddCommentRequest
	if err := msg.ParsePayload(&req); err != nil {
		return ws.NewError(msg.ID, msg.Action, ws.ErrorCodeBadRequest, "Invalid payload: "+err.Error(), nil)
	}
	if req.CardID == "" {
		return ws.NewError(msg.ID, msg.Action, ws.ErrorCodeValidation, "card_id is required", nil)
	}

	comment, err := h.service.AddComment(ctx, req.ListID, req.CardID, req.Text)
	if err != nil {
		return errorResponse(msg, err)
	}

	resp := CommentResponse{
		ID:        comment.ID,
		CardID:    req.CardID,
		Text:      comment.Text,
		Author:    comment.Author,
		CreatedAt: comment.CreatedAt.UTC().Format(time.RFC3339),
	}
	return ws.NewResponse(msg.ID, msg.Action, resp)
}
