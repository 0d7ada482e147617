// Package models defines the board entity tree.
//
// Ownership is strictly tree-shaped and exclusive: the board owns its lists,
// a list owns its cards, a card owns its comments. Sequence order is
// semantically significant and only ever changes through explicit store
// operations.
package models

import "time"

// Board is the root entity. One board value exists per process; every
// mutation produces a new value rather than editing the previous one.
type Board struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Lists []List `json:"lists"`
}

// List is an ordered column of cards on the board.
type List struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Cards []Card `json:"cards"`
}

// Card is a single work item within a list.
type Card struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment is a note attached to a card.
type Comment struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// Clone returns a deep copy of the board. Store reducers copy before they
// mutate so callers holding the previous value never observe changes.
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	out := &Board{
		ID:    b.ID,
		Title: b.Title,
		Lists: make([]List, len(b.Lists)),
	}
	for i, l := range b.Lists {
		out.Lists[i] = l.clone()
	}
	return out
}

func (l List) clone() List {
	out := List{
		ID:    l.ID,
		Title: l.Title,
		Cards: make([]Card, len(l.Cards)),
	}
	for i, c := range l.Cards {
		out.Cards[i] = c.clone()
	}
	return out
}

func (c Card) clone() Card {
	out := Card{
		ID:        c.ID,
		Title:     c.Title,
		Comments:  make([]Comment, len(c.Comments)),
		CreatedAt: c.CreatedAt,
	}
	copy(out.Comments, c.Comments)
	return out
}

// FindList returns the index of the list with the given id, or -1.
func (b *Board) FindList(listID string) int {
	for i := range b.Lists {
		if b.Lists[i].ID == listID {
			return i
		}
	}
	return -1
}

// FindCard returns the index of the card with the given id, or -1.
func (l *List) FindCard(cardID string) int {
	for i := range l.Cards {
		if l.Cards[i].ID == cardID {
			return i
		}
	}
	return -1
}
