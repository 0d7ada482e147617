package store

import (
	"sync"
	"time"

	"github.com/driftboard/driftboard/internal/board/models"
	"github.com/driftboard/driftboard/internal/common/idgen"
)

// Store owns the current board value. All mutations go through the pure
// reducers; the store serializes them behind a mutex and swaps the snapshot
// pointer atomically, so readers holding a previous snapshot are never
// affected (single-writer discipline).
type Store struct {
	mu    sync.RWMutex
	board *models.Board
	ids   *idgen.Generator
	now   func() time.Time
}

// New creates a store owning the given initial board.
func New(board *models.Board, ids *idgen.Generator) *Store {
	if board.Lists == nil {
		board.Lists = []models.List{}
	}
	return &Store{
		board: board,
		ids:   ids,
		now:   time.Now,
	}
}

// SetClock overrides the timestamp source. Intended for tests.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// Snapshot returns the current board value. The returned value is immutable
// by convention: reducers clone before mutating.
func (s *Store) Snapshot() *models.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board
}

// apply runs a reducer under the write lock and reports whether the board
// changed. Reducers return the input pointer unchanged on failure, which is
// what makes this comparison valid.
func (s *Store) apply(reduce func(*models.Board) *models.Board) (*models.Board, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := reduce(s.board)
	changed := next != s.board
	s.board = next
	return next, changed
}

// UpdateBoardTitle replaces the board title.
func (s *Store) UpdateBoardTitle(title string) *models.Board {
	b, _ := s.apply(func(b *models.Board) *models.Board {
		return UpdateBoardTitle(b, title)
	})
	return b
}

// AddList appends a new list with a freshly minted id and returns it.
func (s *Store) AddList(title string) (models.List, *models.Board) {
	id := s.ids.Generate(idgen.KindList)
	b, _ := s.apply(func(b *models.Board) *models.Board {
		return AddList(b, id, title)
	})
	return b.Lists[len(b.Lists)-1], b
}

// DeleteList removes a list by id.
func (s *Store) DeleteList(listID string) (*models.Board, bool) {
	return s.apply(func(b *models.Board) *models.Board {
		return DeleteList(b, listID)
	})
}

// UpdateListTitle replaces one list's title.
func (s *Store) UpdateListTitle(listID, title string) (*models.Board, bool) {
	return s.apply(func(b *models.Board) *models.Board {
		return UpdateListTitle(b, listID, title)
	})
}

// MoveList relocates the list at fromIndex to toIndex.
func (s *Store) MoveList(fromIndex, toIndex int) (*models.Board, bool) {
	return s.apply(func(b *models.Board) *models.Board {
		return MoveList(b, fromIndex, toIndex)
	})
}

// AddCard appends a new card to the named list and returns it.
func (s *Store) AddCard(listID, title string) (models.Card, *models.Board, bool) {
	id := s.ids.Generate(idgen.KindCard)
	at := s.now().UTC()
	b, changed := s.apply(func(b *models.Board) *models.Board {
		return AddCard(b, listID, id, title, at)
	})
	if !changed {
		return models.Card{}, b, false
	}
	li := b.FindList(listID)
	return b.Lists[li].Cards[len(b.Lists[li].Cards)-1], b, true
}

// DeleteCard removes a card by id from the named list.
func (s *Store) DeleteCard(listID, cardID string) (*models.Board, bool) {
	return s.apply(func(b *models.Board) *models.Board {
		return DeleteCard(b, listID, cardID)
	})
}

// UpdateCardTitle replaces one card's title.
func (s *Store) UpdateCardTitle(listID, cardID, title string) (*models.Board, bool) {
	return s.apply(func(b *models.Board) *models.Board {
		return UpdateCardTitle(b, listID, cardID, title)
	})
}

// MoveCard relocates a card between (or within) lists.
func (s *Store) MoveCard(sourceListID, destListID string, sourceIndex, destIndex int) (*models.Board, bool) {
	return s.apply(func(b *models.Board) *models.Board {
		return MoveCard(b, sourceListID, destListID, sourceIndex, destIndex)
	})
}

// AddComment appends a comment to the named card and returns it.
func (s *Store) AddComment(listID, cardID, text, author string) (models.Comment, *models.Board, bool) {
	id := s.ids.Generate(idgen.KindComment)
	at := s.now().UTC()
	b, changed := s.apply(func(b *models.Board) *models.Board {
		return AddComment(b, listID, cardID, id, text, author, at)
	})
	if !changed {
		return models.Comment{}, b, false
	}
	card, _ := GetCard(b, listID, cardID)
	return card.Comments[len(card.Comments)-1], b, true
}

// GetCard looks up a card in the current snapshot.
func (s *Store) GetCard(listID, cardID string) (models.Card, bool) {
	return GetCard(s.Snapshot(), listID, cardID)
}

// Locate resolves the owning list of an item in the current snapshot.
func (s *Store) Locate(itemID string) (string, bool) {
	return Locate(s.Snapshot(), itemID)
}
