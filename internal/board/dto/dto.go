// Package dto defines wire representations of board entities.
package dto

import (
	"time"

	"github.com/driftboard/driftboard/internal/board/models"
)

// BoardDTO is the wire representation of the whole board.
type BoardDTO struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Lists []ListDTO `json:"lists"`
}

// ListDTO is the wire representation of a list.
type ListDTO struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Cards []CardDTO `json:"cards"`
}

// CardDTO is the wire representation of a card. CreatedAt is ISO-8601.
type CardDTO struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Comments  []CommentDTO `json:"comments"`
	CreatedAt string       `json:"created_at"`
}

// CommentDTO is the wire representation of a comment.
type CommentDTO struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Author    string `json:"author"`
	CreatedAt string `json:"created_at"`
}

// FromBoard converts a board to its wire form.
func FromBoard(b *models.Board) BoardDTO {
	out := BoardDTO{
		ID:    b.ID,
		Title: b.Title,
		Lists: make([]ListDTO, 0, len(b.Lists)),
	}
	for i := range b.Lists {
		out.Lists = append(out.Lists, FromList(&b.Lists[i]))
	}
	return out
}

// FromList converts a list to its wire form.
func FromList(l *models.List) ListDTO {
	out := ListDTO{
		ID:    l.ID,
		Title: l.Title,
		Cards: make([]CardDTO, 0, len(l.Cards)),
	}
	for i := range l.Cards {
		out.Cards = append(out.Cards, FromCard(&l.Cards[i]))
	}
	return out
}

// FromCard converts a card to its wire form.
func FromCard(c *models.Card) CardDTO {
	out := CardDTO{
		ID:        c.ID,
		Title:     c.Title,
		Comments:  make([]CommentDTO, 0, len(c.Comments)),
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
	}
	for _, cm := range c.Comments {
		out.Comments = append(out.Comments, CommentDTO{
			ID:        cm.ID,
			Text:      cm.Text,
			Author:    cm.Author,
			CreatedAt: cm.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return out
}
