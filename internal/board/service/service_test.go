package service

import (
	"context"
	"sync"
	"testing"

	"github.com/driftboard/driftboard/internal/board/models"
	"github.com/driftboard/driftboard/internal/board/store"
	"github.com/driftboard/driftboard/internal/common/errors"
	"github.com/driftboard/driftboard/internal/common/idgen"
	"github.com/driftboard/driftboard/internal/common/logger"
	"github.com/driftboard/driftboard/internal/events/bus"
)

// MockEventBus implements bus.EventBus for testing
type MockEventBus struct {
	mu       sync.Mutex
	subjects []string
	types    []string
}

func NewMockEventBus() *MockEventBus {
	return &MockEventBus{}
}

func (m *MockEventBus) Publish(ctx context.Context, subject string, event *bus.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subjects = append(m.subjects, subject)
	m.types = append(m.types, event.Type)
	return nil
}

func (m *MockEventBus) Subscribe(subject string, handler bus.EventHandler) (bus.Subscription, error) {
	return nil, nil
}

func (m *MockEventBus) QueueSubscribe(subject, queue string, handler bus.EventHandler) (bus.Subscription, error) {
	return nil, nil
}

func (m *MockEventBus) Close() {}

func (m *MockEventBus) IsConnected() bool { return true }

func (m *MockEventBus) LastSubject() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.subjects) == 0 {
		return ""
	}
	return m.subjects[len(m.subjects)-1]
}

func (m *MockEventBus) LastType() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.types) == 0 {
		return ""
	}
	return m.types[len(m.types)-1]
}

func setupTestService(t *testing.T) (*Service, *MockEventBus) {
	t.Helper()
	board := &models.Board{
		ID:    "board-1",
		Title: "Sprint",
		Lists: []models.List{
			{
				ID:    "list-a",
				Title: "Todo",
				Cards: []models.Card{
					{ID: "card-a1", Title: "one", Comments: []models.Comment{}},
				},
			},
			{ID: "list-b", Title: "Done", Cards: []models.Card{}},
		},
	}
	st := store.New(board, idgen.New())
	eventBus := NewMockEventBus()
	log, _ := logger.NewLogger(logger.LoggingConfig{Level: "error", Format: "json", OutputPath: "stdout"})
	return NewService(st, eventBus, log), eventBus
}

func TestUpdateBoardTitle(t *testing.T) {
	svc, eventBus := setupTestService(t)
	ctx := context.Background()

	board, err := svc.UpdateBoardTitle(ctx, "  Renamed  ")
	if err != nil {
		t.Fatalf("UpdateBoardTitle failed: %v", err)
	}
	if board.Title != "Renamed" {
		t.Errorf("expected trimmed title, got %q", board.Title)
	}
	if eventBus.LastSubject() != "board.updated" {
		t.Errorf("expected board.updated event, got %s", eventBus.LastSubject())
	}
}

func TestUpdateBoardTitleBlank(t *testing.T) {
	svc, _ := setupTestService(t)

	_, err := svc.UpdateBoardTitle(context.Background(), "   ")
	if err == nil {
		t.Fatal("expected validation error for blank title")
	}
	if !errors.IsBadRequest(err) {
		t.Errorf("expected a bad request class error, got %v", err)
	}
}

func TestCreateList(t *testing.T) {
	svc, eventBus := setupTestService(t)

	list, err := svc.CreateList(context.Background(), "Backlog")
	if err != nil {
		t.Fatalf("CreateList failed: %v", err)
	}
	if list.Title != "Backlog" || list.ID == "" {
		t.Errorf("unexpected list: %+v", list)
	}
	if eventBus.LastSubject() != "list.created" {
		t.Errorf("expected list.created event, got %s", eventBus.LastSubject())
	}
}

func TestDeleteListNotFound(t *testing.T) {
	svc, _ := setupTestService(t)

	err := svc.DeleteList(context.Background(), "list-zzz")
	if !errors.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestRenameListBlank(t *testing.T) {
	svc, _ := setupTestService(t)

	err := svc.RenameList(context.Background(), "list-a", "\t ")
	if err == nil || !errors.IsBadRequest(err) {
		t.Errorf("expected validation error, got %v", err)
	}
	// Original title untouched
	board := svc.GetBoard(context.Background())
	if board.Lists[0].Title != "Todo" {
		t.Errorf("title changed on rejected rename: %s", board.Lists[0].Title)
	}
}

func TestMoveListOutOfRange(t *testing.T) {
	svc, _ := setupTestService(t)

	err := svc.MoveList(context.Background(), 9, 0)
	if !errors.IsBadRequest(err) {
		t.Errorf("expected bad request, got %v", err)
	}
}

func TestCreateCardPublishesScopedSubject(t *testing.T) {
	svc, eventBus := setupTestService(t)

	card, err := svc.CreateCard(context.Background(), "list-a", "new card")
	if err != nil {
		t.Fatalf("CreateCard failed: %v", err)
	}
	if card.CreatedAt.IsZero() {
		t.Error("card missing creation timestamp")
	}
	// Subject carries the list scope, type stays bare
	if eventBus.LastSubject() != "card.created.list-a" {
		t.Errorf("subject = %s", eventBus.LastSubject())
	}
	if eventBus.LastType() != "card.created" {
		t.Errorf("type = %s", eventBus.LastType())
	}
}

func TestCreateCardUnknownList(t *testing.T) {
	svc, _ := setupTestService(t)

	_, err := svc.CreateCard(context.Background(), "list-zzz", "x")
	if !errors.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestMoveCard(t *testing.T) {
	svc, eventBus := setupTestService(t)
	ctx := context.Background()

	if err := svc.MoveCard(ctx, "list-a", "list-b", 0, 0); err != nil {
		t.Fatalf("MoveCard failed: %v", err)
	}
	board := svc.GetBoard(ctx)
	if len(board.Lists[1].Cards) != 1 || board.Lists[1].Cards[0].ID != "card-a1" {
		t.Errorf("card not relocated: %+v", board.Lists[1].Cards)
	}
	if eventBus.LastSubject() != "card.moved.list-b" {
		t.Errorf("subject = %s", eventBus.LastSubject())
	}

	if err := svc.MoveCard(ctx, "list-a", "list-b", 5, 0); !errors.IsBadRequest(err) {
		t.Errorf("expected bad request for bad index, got %v", err)
	}
}

func TestAddComment(t *testing.T) {
	svc, eventBus := setupTestService(t)

	comment, err := svc.AddComment(context.Background(), "list-a", "card-a1", "nice")
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	if comment.Author != defaultAuthor {
		t.Errorf("author = %s", comment.Author)
	}
	if eventBus.LastSubject() != "comment.added" {
		t.Errorf("subject = %s", eventBus.LastSubject())
	}

	if _, err := svc.AddComment(context.Background(), "list-a", "card-zzz", "x"); !errors.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
	if _, err := svc.AddComment(context.Background(), "list-a", "card-a1", "  "); err == nil {
		t.Error("expected validation error for blank text")
	}
}

func TestGetCard(t *testing.T) {
	svc, _ := setupTestService(t)

	card, err := svc.GetCard(context.Background(), "list-a", "card-a1")
	if err != nil {
		t.Fatalf("GetCard failed: %v", err)
	}
	if card.ID != "card-a1" {
		t.Errorf("got %s", card.ID)
	}

	if _, err := svc.GetCard(context.Background(), "list-b", "card-a1"); !errors.IsNotFound(err) {
		t.Errorf("expected not found for wrong list, got %v", err)
	}
}

func TestServiceWithoutEventBus(t *testing.T) {
	board := &models.Board{ID: "b", Title: "t", Lists: []models.List{}}
	st := store.New(board, idgen.New())
	log, _ := logger.NewLogger(logger.LoggingConfig{Level: "error", Format: "json", OutputPath: "stdout"})
	svc := NewService(st, nil, log)

	if _, err := svc.CreateList(context.Background(), "L"); err != nil {
		t.Fatalf("CreateList without a bus failed: %v", err)
	}
}
