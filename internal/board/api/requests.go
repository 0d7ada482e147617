package api

// UpdateBoardTitleRequest is the request body for updating the board title
type UpdateBoardTitleRequest struct {
	Title string `json:"title" binding:"required"`
}

// CreateListRequest is the request body for creating a list
type CreateListRequest struct {
	Title string `json:"title" binding:"required"`
}

// RenameListRequest is the request body for renaming a list
type RenameListRequest struct {
	Title string `json:"title" binding:"required"`
}

// MoveListRequest is the request body for moving a list
type MoveListRequest struct {
	FromIndex int `json:"from_index"`
	ToIndex   int `json:"to_index"`
}

// CreateCardRequest is the request body for creating a card
type CreateCardRequest struct {
	Title string `json:"title" binding:"required"`
}

// RenameCardRequest is the request body for renaming a card
type RenameCardRequest struct {
	Title string `json:"title" binding:"required"`
}

// MoveCardRequest is the request body for moving a card
type MoveCardRequest struct {
	DestListID  string `json:"dest_list_id" binding:"required"`
	SourceIndex int    `json:"source_index"`
	DestIndex   int    `json:"dest_index"`
}

// AddCommentRequest is the request body for adding a comment
type AddCommentRequest struct {
	Text string `json:"text" binding:"required"`
}
