// Package events provides event subjects and utilities for the Driftboard event system.
package events

// Event types for the board
const (
	BoardUpdated = "board.updated"
)

// Event types for lists
const (
	ListCreated = "list.created"
	ListRenamed = "list.renamed"
	ListMoved   = "list.moved"
	ListDeleted = "list.deleted"
)

// Event types for cards
const (
	CardCreated = "card.created"
	CardRenamed = "card.renamed"
	CardMoved   = "card.moved"
	CardDeleted = "card.deleted"
)

// Event types for comments
const (
	CommentAdded = "comment.added"
)

// Event types for drag sessions
const (
	DragStarted   = "drag.started"
	DragTargeted  = "drag.targeted"
	DragEnded     = "drag.ended"
	DragCancelled = "drag.cancelled"
)

// BuildCardSubject creates a card event subject scoped to a specific list.
func BuildCardSubject(eventType, listID string) string {
	return eventType + "." + listID
}

// BuildCardWildcardSubject creates a wildcard subscription for a card event
// type across all lists.
func BuildCardWildcardSubject(eventType string) string {
	return eventType + ".*"
}
