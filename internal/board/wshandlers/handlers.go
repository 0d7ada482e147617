// Package wshandlers provides WebSocket message handlers for the board service.
package wshandlers

import (
	"go.uber.org/zap"

	"github.com/driftboard/driftboard/internal/board/service"
	"github.com/driftboard/driftboard/internal/common/errors"
	"github.com/driftboard/driftboard/internal/common/logger"
	"github.com/driftboard/driftboard/internal/dnd/session"
	ws "github.com/driftboard/driftboard/pkg/websocket"
)

// Handlers contains WebSocket handlers for the board API
type Handlers struct {
	service *service.Service
	session *session.Controller
	logger  *logger.Logger
}

// NewHandlers creates a new WebSocket handlers instance
func NewHandlers(svc *service.Service, drag *session.Controller, log *logger.Logger) *Handlers {
	return &Handlers{
		service: svc,
		session: drag,
		logger:  log.WithFields(zap.String("component", "board-ws-handlers")),
	}
}

// RegisterHandlers registers all board handlers with the dispatcher
func (h *Handlers) RegisterHandlers(d *ws.Dispatcher) {
	// Board handlers
	d.RegisterFunc(ws.ActionBoardGet, h.GetBoard)
	d.RegisterFunc(ws.ActionBoardTitle, h.UpdateBoardTitle)

	// List handlers
	d.RegisterFunc(ws.ActionListCreate, h.CreateList)
	d.RegisterFunc(ws.ActionListRename, h.RenameList)
	d.RegisterFunc(ws.ActionListMove, h.MoveList)
	d.RegisterFunc(ws.ActionListDelete, h.DeleteList)

	// Card handlers
	d.RegisterFunc(ws.ActionCardCreate, h.CreateCard)
	d.RegisterFunc(ws.ActionCardGet, h.GetCard)
	d.RegisterFunc(ws.ActionCardRename, h.RenameCard)
	d.RegisterFunc(ws.ActionCardMove, h.MoveCard)
	d.RegisterFunc(ws.ActionCardDelete, h.DeleteCard)

	// Comment handlers
	d.RegisterFunc(ws.ActionCommentAdd, h.AddComment)

	// Drag session handlers
	d.RegisterFunc(ws.ActionDragStart, h.StartDrag)
	d.RegisterFunc(ws.ActionDragHover, h.HoverDrag)
	d.RegisterFunc(ws.ActionDragEnd, h.EndDrag)
	d.RegisterFunc(ws.ActionDragCancel, h.CancelDrag)
}

// errorResponse maps a service error to a WebSocket error message.
func errorResponse(msg *ws.Message, err error) (*ws.Message, error) {
	if appErr, ok := err.(*errors.AppError); ok {
		code := ws.ErrorCodeInternalError
		switch appErr.Code {
		case errors.ErrCodeNotFound:
			code = ws.ErrorCodeNotFound
		case errors.ErrCodeBadRequest:
			code = ws.ErrorCodeBadRequest
		case errors.ErrCodeValidationError:
			code = ws.ErrorCodeValidation
		}
		return ws.NewError(msg.ID, msg.Action, code, appErr.Message, nil)
	}
	return ws.NewError(msg.ID, msg.Action, ws.ErrorCodeInternalError, err.Error(), nil)
}
