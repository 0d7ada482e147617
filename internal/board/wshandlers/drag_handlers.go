package wshandlers

import (
	"context"

	"github.com/driftboard/driftboard/internal/dnd/collision"
	"github.com/driftboard/driftboard/internal/dnd/geometry"
	"github.com/driftboard/driftboard/internal/dnd/session"
	ws "github.com/driftboard/driftboard/pkg/websocket"
)

// StartDragRequest is the payload for drag.start
type StartDragRequest struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

// DragStateResponse reports the session state after a drag transition
type DragStateResponse struct {
	Dragging bool   `json:"dragging"`
	TargetID string `json:"target_id,omitempty"`
}

// StartDrag handles drag.start action
func (h *Handlers) StartDrag(ctx context.Context, msg *ws.Message) (*ws.Message, error) {
	var req StartDragRequest
	if err := msg.ParsePayload(&req); err != nil {
		return ws.NewError(msg.ID, msg.Action, ws.ErrorCodeBadRequest, "Invalid payload: "+err.Error(), nil)
	}
	if req.ID == "" {
		return ws.NewError(msg.ID, msg.Action, ws.ErrorCodeValidation, "id is required", nil)
	}
	kind := collision.ItemKind(req.Kind)
	if kind != collision.KindList && kind != collision.KindCard {
		return ws.NewError(msg.ID, msg.Action, ws.ErrorCodeValidation, "kind must be 'list' or 'card'", nil)
	}

	started := h.session.Start(ctx, session.DragItem{Kind: kind, ID: req.ID})
	if !started {
		return ws.NewError(msg.ID, msg.Action, ws.ErrorCodeBadRequest, "A drag session is already active", nil)
	}
	return ws.NewResponse(msg.ID, msg.Action, DragStateResponse{Dragging: true})
}

// CandidatePayload is the wire form of a droppable candidate
type CandidatePayload struct {
	ID          string        `json:"id"`
	Kind        string        `json:"kind"`
	ContainerID string        `json:"container_id,omitempty"`
	Rect        geometry.Rect `json:"rect"`
}

// HoverDragRequest is the payload for drag.hover
type HoverDragRequest struct {
	OverID     string             `json:"over_id"`
	OverRect   geometry.Rect      `json:"over_rect"`
	ActiveRect geometry.Rect      `json:"active_rect"`
	Pointer    geometry.Point     `json:"pointer"`
	Candidates []CandidatePayload `json:"candidates"`
}

// HoverDrag handles drag.hover action
func (h *Handlers) HoverDrag(ctx context.Context, msg *ws.Message) (*ws.Message, error) {
	var req HoverDragRequest
	if err := msg.ParsePayload(&req); err != nil {
		return ws.NewError(msg.ID, msg.Action, ws.ErrorCodeBadRequest, "Invalid payload: "+err.Error(), nil)
	}

	candidates := make([]collision.Candidate, len(req.Candidates))
	for i, c := range req.Candidates {
		candidates[i] = collision.Candidate{
			ID:          c.ID,
			Kind:        collision.ItemKind(c.Kind),
			ContainerID: c.ContainerID,
			Rect:        c.Rect,
		}
	}

	target, ok := h.session.Hover(ctx, session.HoverEvent{
		OverID:     req.OverID,
		OverRect:   req.OverRect,
		ActiveRect: req.ActiveRect,
		Pointer:    req.Pointer,
		Candidates: candidates,
	})
	resp := DragStateResponse{Dragging: true}
	if ok {
		resp.TargetID = target
	}
	return ws.NewResponse(msg.ID, msg.Action, resp)
}

// EndDragRequest is the payload for drag.end
type EndDragRequest struct {
	OverID string `json:"over_id"`
}

// EndDrag handles drag.end action
func (h *Handlers) EndDrag(ctx context.Context, msg *ws.Message) (*ws.Message, error) {
	var req EndDragRequest
	if err := msg.ParsePayload(&req); err != nil {
		return ws.NewError(msg.ID, msg.Action, ws.ErrorCodeBadRequest, "Invalid payload: "+err.Error(), nil)
	}

	h.session.End(ctx, session.EndEvent{OverID: req.OverID})
	return ws.NewResponse(msg.ID, msg.Action, DragStateResponse{Dragging: false})
}

// CancelDrag handles drag.cancel action
func (h *Handlers) CancelDrag(ctx context.Context, msg *ws.Message) (*ws.Message, error) {
	h.session.Cancel(ctx)
	return ws.NewResponse(msg.ID, msg.Action, DragStateResponse{Dragging: false})
}
