package websocket

// Action constants for WebSocket messages
const (
	// Health
	ActionHealthCheck = "health.check"

	// Board actions
	ActionBoardGet   = "board.get"
	ActionBoardTitle = "board.title"

	// List actions
	ActionListCreate = "list.create"
	ActionListRename = "list.rename"
	ActionListMove   = "list.move"
	ActionListDelete = "list.delete"

	// Card actions
	ActionCardCreate = "card.create"
	ActionCardGet    = "card.get"
	ActionCardRename = "card.rename"
	ActionCardMove   = "card.move"
	ActionCardDelete = "card.delete"

	// Comment actions
	ActionCommentAdd = "comment.add"

	// Drag session actions
	ActionDragStart  = "drag.start"
	ActionDragHover  = "drag.hover"
	ActionDragEnd    = "drag.end"
	ActionDragCancel = "drag.cancel"

	// Notification actions (server -> client)
	ActionBoardChanged = "board.changed"
	ActionDragTarget   = "drag.target"
)

// Error codes
const (
	ErrorCodeBadRequest    = "BAD_REQUEST"
	ErrorCodeNotFound      = "NOT_FOUND"
	ErrorCodeInternalError = "INTERNAL_ERROR"
	ErrorCodeValidation    = "VALIDATION_ERROR"
	ErrorCodeUnknownAction = "UNKNOWN_ACTION"
)
