package store

import "github.com/driftboard/driftboard/internal/board/models"

// Locate resolves the list that currently owns the given item. A list id
// locates itself (a list is its own container for drag purposes); a card id
// resolves to its owning list. The lookup is recomputed from the board value
// on every call and holds no state of its own.
func Locate(b *models.Board, itemID string) (string, bool) {
	if b.FindList(itemID) >= 0 {
		return itemID, true
	}
	for i := range b.Lists {
		if b.Lists[i].FindCard(itemID) >= 0 {
			return b.Lists[i].ID, true
		}
	}
	return "", false
}
