package store

import (
	"testing"
	"time"

	"github.com/driftboard/driftboard/internal/board/models"
)

func testBoard() *models.Board {
	return &models.Board{
		ID:    "board-1",
		Title: "Sprint",
		Lists: []models.List{
			{
				ID:    "list-a",
				Title: "Todo",
				Cards: []models.Card{
					{ID: "card-a1", Title: "one", Comments: []models.Comment{}},
					{ID: "card-a2", Title: "two", Comments: []models.Comment{}},
					{ID: "card-a3", Title: "three", Comments: []models.Comment{}},
				},
			},
			{
				ID:    "list-b",
				Title: "Doing",
				Cards: []models.Card{
					{ID: "card-b1", Title: "four", Comments: []models.Comment{}},
				},
			},
			{
				ID:    "list-c",
				Title: "Done",
				Cards: []models.Card{},
			},
		},
	}
}

func cardIDs(l models.List) []string {
	out := make([]string, len(l.Cards))
	for i, c := range l.Cards {
		out[i] = c.ID
	}
	return out
}

func listIDs(b *models.Board) []string {
	out := make([]string, len(b.Lists))
	for i, l := range b.Lists {
		out[i] = l.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestUpdateBoardTitle(t *testing.T) {
	b := testBoard()
	next := UpdateBoardTitle(b, "Renamed")

	if next == b {
		t.Fatal("expected a new board value")
	}
	if next.Title != "Renamed" {
		t.Errorf("expected title Renamed, got %s", next.Title)
	}
	if b.Title != "Sprint" {
		t.Errorf("original board mutated: %s", b.Title)
	}
}

func TestAddList(t *testing.T) {
	b := testBoard()
	next := AddList(b, "list-d", "Backlog")

	if len(next.Lists) != 4 {
		t.Fatalf("expected 4 lists, got %d", len(next.Lists))
	}
	added := next.Lists[3]
	if added.ID != "list-d" || added.Title != "Backlog" {
		t.Errorf("unexpected list appended: %+v", added)
	}
	if added.Cards == nil || len(added.Cards) != 0 {
		t.Error("new list must start with an empty card sequence")
	}
}

func TestDeleteList(t *testing.T) {
	b := testBoard()
	next := DeleteList(b, "list-a")

	if len(next.Lists) != 2 {
		t.Fatalf("expected 2 lists, got %d", len(next.Lists))
	}
	if next.FindList("list-a") >= 0 {
		t.Error("list-a still present after delete")
	}
	// Owned cards go with the list
	if _, ok := GetCard(next, "list-a", "card-a1"); ok {
		t.Error("card survived its list's deletion")
	}
}

func TestDeleteListAbsentIsNoOp(t *testing.T) {
	b := testBoard()
	if next := DeleteList(b, "list-zzz"); next != b {
		t.Error("expected the input board back for an unknown list id")
	}
	// Deleting twice: second call sees the id gone
	once := DeleteList(b, "list-b")
	if twice := DeleteList(once, "list-b"); twice != once {
		t.Error("second delete of the same id must be a no-op")
	}
}

func TestUpdateListTitle(t *testing.T) {
	b := testBoard()
	next := UpdateListTitle(b, "list-b", "In Progress")

	if next.Lists[1].Title != "In Progress" {
		t.Errorf("expected In Progress, got %s", next.Lists[1].Title)
	}
	if next := UpdateListTitle(b, "nope", "x"); next != b {
		t.Error("expected no-op for unknown list id")
	}
}

func TestMoveList(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []string
		changed  bool
	}{
		{"forward", 0, 2, []string{"list-b", "list-c", "list-a"}, true},
		{"backward", 2, 0, []string{"list-c", "list-a", "list-b"}, true},
		{"same position", 1, 1, []string{"list-a", "list-b", "list-c"}, true},
		{"to clamped high", 0, 99, []string{"list-b", "list-c", "list-a"}, true},
		{"to clamped negative", 2, -5, []string{"list-c", "list-a", "list-b"}, true},
		{"from out of range", 7, 0, nil, false},
		{"from negative", -1, 0, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testBoard()
			next := MoveList(b, tt.from, tt.to)
			if !tt.changed {
				if next != b {
					t.Fatal("expected the input board back")
				}
				return
			}
			if !equalIDs(listIDs(next), tt.want) {
				t.Errorf("got order %v, want %v", listIDs(next), tt.want)
			}
			if len(next.Lists) != len(b.Lists) {
				t.Error("list count changed by a move")
			}
		})
	}
}

func TestMoveListCarriesCards(t *testing.T) {
	b := testBoard()
	next := MoveList(b, 0, 2)
	moved := next.Lists[next.FindList("list-a")]
	if !equalIDs(cardIDs(moved), []string{"card-a1", "card-a2", "card-a3"}) {
		t.Errorf("cards reordered by a list move: %v", cardIDs(moved))
	}
}

func TestAddCard(t *testing.T) {
	b := testBoard()
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	next := AddCard(b, "list-c", "card-c1", "new", at)

	cards := next.Lists[2].Cards
	if len(cards) != 1 {
		t.Fatalf("expected 1 card, got %d", len(cards))
	}
	if cards[0].ID != "card-c1" || !cards[0].CreatedAt.Equal(at) {
		t.Errorf("unexpected card: %+v", cards[0])
	}
	if next := AddCard(b, "nope", "card-x", "x", at); next != b {
		t.Error("expected no-op for unknown list id")
	}
}

func TestDeleteCard(t *testing.T) {
	b := testBoard()
	next := DeleteCard(b, "list-a", "card-a2")

	if !equalIDs(cardIDs(next.Lists[0]), []string{"card-a1", "card-a3"}) {
		t.Errorf("unexpected order after delete: %v", cardIDs(next.Lists[0]))
	}
	// Wrong list, unknown card
	if next := DeleteCard(b, "list-b", "card-a1"); next != b {
		t.Error("expected no-op when the card lives in another list")
	}
	if next := DeleteCard(b, "list-a", "card-zzz"); next != b {
		t.Error("expected no-op for unknown card id")
	}
}

func TestUpdateCardTitle(t *testing.T) {
	b := testBoard()
	next := UpdateCardTitle(b, "list-a", "card-a1", "renamed")
	if next.Lists[0].Cards[0].Title != "renamed" {
		t.Errorf("got %s", next.Lists[0].Cards[0].Title)
	}
	if next := UpdateCardTitle(b, "list-a", "card-b1", "x"); next != b {
		t.Error("expected no-op when the card is not in the named list")
	}
}

func TestMoveCardAcrossLists(t *testing.T) {
	b := testBoard()
	next := MoveCard(b, "list-a", "list-b", 0, 1)

	if !equalIDs(cardIDs(next.Lists[0]), []string{"card-a2", "card-a3"}) {
		t.Errorf("source order: %v", cardIDs(next.Lists[0]))
	}
	if !equalIDs(cardIDs(next.Lists[1]), []string{"card-b1", "card-a1"}) {
		t.Errorf("dest order: %v", cardIDs(next.Lists[1]))
	}
}

func TestMoveCardWithinList(t *testing.T) {
	b := testBoard()
	next := MoveCard(b, "list-a", "list-a", 0, 2)

	if !equalIDs(cardIDs(next.Lists[0]), []string{"card-a2", "card-a3", "card-a1"}) {
		t.Errorf("got order %v", cardIDs(next.Lists[0]))
	}
}

func TestMoveCardClampsDestIndex(t *testing.T) {
	b := testBoard()

	next := MoveCard(b, "list-a", "list-b", 1, 99)
	if !equalIDs(cardIDs(next.Lists[1]), []string{"card-b1", "card-a2"}) {
		t.Errorf("high index should clamp to append: %v", cardIDs(next.Lists[1]))
	}

	next = MoveCard(b, "list-a", "list-b", 1, -3)
	if !equalIDs(cardIDs(next.Lists[1]), []string{"card-a2", "card-b1"}) {
		t.Errorf("negative index should clamp to front: %v", cardIDs(next.Lists[1]))
	}
}

func TestMoveCardToEmptyList(t *testing.T) {
	b := testBoard()
	next := MoveCard(b, "list-a", "list-c", 2, 0)
	if !equalIDs(cardIDs(next.Lists[2]), []string{"card-a3"}) {
		t.Errorf("got %v", cardIDs(next.Lists[2]))
	}
}

func TestMoveCardInvalidInputs(t *testing.T) {
	b := testBoard()
	cases := []struct {
		name     string
		src, dst string
		si, di   int
	}{
		{"unknown source list", "nope", "list-b", 0, 0},
		{"unknown dest list", "list-a", "nope", 0, 0},
		{"source index too high", "list-a", "list-b", 3, 0},
		{"source index negative", "list-a", "list-b", -1, 0},
		{"empty source list", "list-c", "list-a", 0, 0},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if next := MoveCard(b, tt.src, tt.dst, tt.si, tt.di); next != b {
				t.Error("expected the input board back")
			}
		})
	}
}

// A move never creates or destroys cards, whatever the indices.
func TestMoveCardConservation(t *testing.T) {
	b := testBoard()
	total := func(b *models.Board) int {
		n := 0
		for _, l := range b.Lists {
			n += len(l.Cards)
		}
		return n
	}

	for si := -1; si <= 3; si++ {
		for di := -1; di <= 4; di++ {
			next := MoveCard(b, "list-a", "list-b", si, di)
			if total(next) != total(b) {
				t.Fatalf("card count changed for si=%d di=%d", si, di)
			}
		}
	}
}

func TestAddComment(t *testing.T) {
	b := testBoard()
	at := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	next := AddComment(b, "list-b", "card-b1", "comment-1", "looks good", "anonymous", at)

	card, ok := GetCard(next, "list-b", "card-b1")
	if !ok {
		t.Fatal("card not found")
	}
	if len(card.Comments) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(card.Comments))
	}
	cm := card.Comments[0]
	if cm.ID != "comment-1" || cm.Text != "looks good" || cm.Author != "anonymous" {
		t.Errorf("unexpected comment: %+v", cm)
	}

	if next := AddComment(b, "list-b", "card-zzz", "c", "x", "a", at); next != b {
		t.Error("expected no-op for unknown card id")
	}
}

func TestReducersDoNotMutateInput(t *testing.T) {
	b := testBoard()
	AddList(b, "list-x", "X")
	DeleteList(b, "list-a")
	MoveList(b, 0, 2)
	MoveCard(b, "list-a", "list-b", 0, 0)
	DeleteCard(b, "list-a", "card-a1")
	AddComment(b, "list-a", "card-a1", "c", "t", "a", time.Now())

	fresh := testBoard()
	if !equalIDs(listIDs(b), listIDs(fresh)) {
		t.Fatal("list order of the input board changed")
	}
	for i := range b.Lists {
		if !equalIDs(cardIDs(b.Lists[i]), cardIDs(fresh.Lists[i])) {
			t.Fatalf("card order of list %s changed", b.Lists[i].ID)
		}
	}
}
