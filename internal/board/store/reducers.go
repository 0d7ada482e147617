// Package store implements the ordered-collection operations over the board
// tree, plus the container locator used by the drag engine.
//
// Every operation is a pure reducer: it takes the current board and returns a
// new board value, or the input board unchanged when a referenced id or index
// cannot be resolved. Domain failures are never errors; "state unchanged" is
// the only failure signal, which keeps the reducers total and the drag hot
// path free of error branches.
package store

import (
	"time"

	"github.com/driftboard/driftboard/internal/board/models"
)

// UpdateBoardTitle replaces the board title unconditionally.
func UpdateBoardTitle(b *models.Board, title string) *models.Board {
	next := b.Clone()
	next.Title = title
	return next
}

// AddList appends a list with the given id and an empty card sequence.
func AddList(b *models.Board, id, title string) *models.Board {
	next := b.Clone()
	next.Lists = append(next.Lists, models.List{
		ID:    id,
		Title: title,
		Cards: []models.Card{},
	})
	return next
}

// DeleteList removes the list with the given id. Cards owned by the list and
// their comments are discarded with it. No-op if the id is absent.
func DeleteList(b *models.Board, listID string) *models.Board {
	idx := b.FindList(listID)
	if idx < 0 {
		return b
	}
	next := b.Clone()
	next.Lists = append(next.Lists[:idx], next.Lists[idx+1:]...)
	return next
}

// UpdateListTitle replaces one list's title by id. No-op if absent.
func UpdateListTitle(b *models.Board, listID, title string) *models.Board {
	idx := b.FindList(listID)
	if idx < 0 {
		return b
	}
	next := b.Clone()
	next.Lists[idx].Title = title
	return next
}

// MoveList removes the list at fromIndex and reinserts it at toIndex in the
// resulting (shortened) sequence. An out-of-bounds fromIndex leaves the board
// unchanged; toIndex is clamped to the nearest valid insertion point.
func MoveList(b *models.Board, fromIndex, toIndex int) *models.Board {
	if fromIndex < 0 || fromIndex >= len(b.Lists) {
		return b
	}
	next := b.Clone()
	moved := next.Lists[fromIndex]
	rest := append(next.Lists[:fromIndex:fromIndex], next.Lists[fromIndex+1:]...)
	if toIndex < 0 {
		toIndex = 0
	}
	if toIndex > len(rest) {
		toIndex = len(rest)
	}
	lists := make([]models.List, 0, len(rest)+1)
	lists = append(lists, rest[:toIndex]...)
	lists = append(lists, moved)
	lists = append(lists, rest[toIndex:]...)
	next.Lists = lists
	return next
}

// AddCard appends a card with the given id to the named list. No-op if the
// list is absent.
func AddCard(b *models.Board, listID, id, title string, createdAt time.Time) *models.Board {
	idx := b.FindList(listID)
	if idx < 0 {
		return b
	}
	next := b.Clone()
	next.Lists[idx].Cards = append(next.Lists[idx].Cards, models.Card{
		ID:        id,
		Title:     title,
		Comments:  []models.Comment{},
		CreatedAt: createdAt,
	})
	return next
}

// DeleteCard removes a card by id from the named list. No-op if either id is
// absent.
func DeleteCard(b *models.Board, listID, cardID string) *models.Board {
	li := b.FindList(listID)
	if li < 0 {
		return b
	}
	ci := b.Lists[li].FindCard(cardID)
	if ci < 0 {
		return b
	}
	next := b.Clone()
	cards := next.Lists[li].Cards
	next.Lists[li].Cards = append(cards[:ci], cards[ci+1:]...)
	return next
}

// UpdateCardTitle replaces one card's title. No-op if either id is absent.
func UpdateCardTitle(b *models.Board, listID, cardID, title string) *models.Board {
	li := b.FindList(listID)
	if li < 0 {
		return b
	}
	ci := b.Lists[li].FindCard(cardID)
	if ci < 0 {
		return b
	}
	next := b.Clone()
	next.Lists[li].Cards[ci].Title = title
	return next
}

// MoveCard removes the card at sourceIndex from the source list and inserts
// it into the destination list, clamping the destination index to the
// destination length. Source and destination may be the same list, in which
// case this is an in-list reorder. The board is unchanged when either list id
// is absent or sourceIndex is out of range.
func MoveCard(b *models.Board, sourceListID, destListID string, sourceIndex, destIndex int) *models.Board {
	si := b.FindList(sourceListID)
	di := b.FindList(destListID)
	if si < 0 || di < 0 {
		return b
	}
	if sourceIndex < 0 || sourceIndex >= len(b.Lists[si].Cards) {
		return b
	}

	next := b.Clone()
	src := next.Lists[si].Cards
	moved := src[sourceIndex]
	next.Lists[si].Cards = append(src[:sourceIndex:sourceIndex], src[sourceIndex+1:]...)

	dst := next.Lists[di].Cards
	if destIndex < 0 {
		destIndex = 0
	}
	if destIndex > len(dst) {
		destIndex = len(dst)
	}
	cards := make([]models.Card, 0, len(dst)+1)
	cards = append(cards, dst[:destIndex]...)
	cards = append(cards, moved)
	cards = append(cards, dst[destIndex:]...)
	next.Lists[di].Cards = cards
	return next
}

// AddComment appends a comment to the named card. No-op if either id is
// absent.
func AddComment(b *models.Board, listID, cardID, id, text, author string, createdAt time.Time) *models.Board {
	li := b.FindList(listID)
	if li < 0 {
		return b
	}
	ci := b.Lists[li].FindCard(cardID)
	if ci < 0 {
		return b
	}
	next := b.Clone()
	next.Lists[li].Cards[ci].Comments = append(next.Lists[li].Cards[ci].Comments, models.Comment{
		ID:        id,
		Text:      text,
		Author:    author,
		CreatedAt: createdAt,
	})
	return next
}

// GetCard looks up a card by list and card id.
func GetCard(b *models.Board, listID, cardID string) (models.Card, bool) {
	li := b.FindList(listID)
	if li < 0 {
		return models.Card{}, false
	}
	ci := b.Lists[li].FindCard(cardID)
	if ci < 0 {
		return models.Card{}, false
	}
	return b.Lists[li].Cards[ci], true
}
