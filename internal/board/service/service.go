// Package service provides board business logic on top of the store:
// input validation, event publication, and logging. The store itself never
// validates text content and never errors; this layer is where blank input
// is rejected and where silent store no-ops are turned into API errors.
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/driftboard/driftboard/internal/board/models"
	"github.com/driftboard/driftboard/internal/board/store"
	"github.com/driftboard/driftboard/internal/common/errors"
	"github.com/driftboard/driftboard/internal/common/logger"
	"github.com/driftboard/driftboard/internal/events"
	"github.com/driftboard/driftboard/internal/events/bus"
)

// defaultAuthor is stamped on comments. There is no user model in this
// process; every comment is authored by the single local user.
const defaultAuthor = "anonymous"

// Service provides board business logic.
type Service struct {
	store    *store.Store
	eventBus bus.EventBus
	logger   *logger.Logger
}

// NewService creates a new board service.
func NewService(st *store.Store, eventBus bus.EventBus, log *logger.Logger) *Service {
	return &Service{
		store:    st,
		eventBus: eventBus,
		logger:   log,
	}
}

// Store exposes the underlying store for wiring the drag session controller.
func (s *Service) Store() *store.Store {
	return s.store
}

// GetBoard returns the current board snapshot.
func (s *Service) GetBoard(ctx context.Context) *models.Board {
	return s.store.Snapshot()
}

// UpdateBoardTitle replaces the board title.
func (s *Service) UpdateBoardTitle(ctx context.Context, title string) (*models.Board, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.ValidationError("title", "must not be blank")
	}

	board := s.store.UpdateBoardTitle(title)
	s.logger.Info("board title updated", zap.String("title", title))
	s.publish(ctx, events.BoardUpdated, events.BoardUpdated, map[string]interface{}{"board_id": board.ID})
	return board, nil
}

// CreateList appends a new list to the board.
func (s *Service) CreateList(ctx context.Context, title string) (models.List, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.List{}, errors.ValidationError("title", "must not be blank")
	}

	list, _ := s.store.AddList(title)
	s.logger.Info("list created", zap.String("list_id", list.ID), zap.String("title", title))
	s.publish(ctx, events.ListCreated, events.ListCreated, map[string]interface{}{"list_id": list.ID})
	return list, nil
}

// DeleteList removes a list and everything it owns.
func (s *Service) DeleteList(ctx context.Context, listID string) error {
	if _, changed := s.store.DeleteList(listID); !changed {
		return errors.NotFound("list", listID)
	}
	s.logger.Info("list deleted", zap.String("list_id", listID))
	s.publish(ctx, events.ListDeleted, events.ListDeleted, map[string]interface{}{"list_id": listID})
	return nil
}

// RenameList replaces a list's title.
func (s *Service) RenameList(ctx context.Context, listID, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errors.ValidationError("title", "must not be blank")
	}
	if _, changed := s.store.UpdateListTitle(listID, title); !changed {
		return errors.NotFound("list", listID)
	}
	s.publish(ctx, events.ListRenamed, events.ListRenamed, map[string]interface{}{"list_id": listID})
	return nil
}

// MoveList relocates the list at fromIndex to toIndex.
func (s *Service) MoveList(ctx context.Context, fromIndex, toIndex int) error {
	if _, changed := s.store.MoveList(fromIndex, toIndex); !changed {
		return errors.BadRequest("fromIndex out of range")
	}
	s.logger.Info("list moved", zap.Int("from", fromIndex), zap.Int("to", toIndex))
	s.publish(ctx, events.ListMoved, events.ListMoved, map[string]interface{}{"from": fromIndex, "to": toIndex})
	return nil
}

// CreateCard appends a new card to the named list.
func (s *Service) CreateCard(ctx context.Context, listID, title string) (models.Card, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Card{}, errors.ValidationError("title", "must not be blank")
	}

	card, _, changed := s.store.AddCard(listID, title)
	if !changed {
		return models.Card{}, errors.NotFound("list", listID)
	}
	s.logger.Info("card created",
		zap.String("card_id", card.ID),
		zap.String("list_id", listID))
	s.publish(ctx, events.BuildCardSubject(events.CardCreated, listID), events.CardCreated, map[string]interface{}{
		"card_id": card.ID,
		"list_id": listID,
	})
	return card, nil
}

// DeleteCard removes a card from the named list.
func (s *Service) DeleteCard(ctx context.Context, listID, cardID string) error {
	if _, changed := s.store.DeleteCard(listID, cardID); !changed {
		return errors.NotFound("card", cardID)
	}
	s.logger.Info("card deleted",
		zap.String("card_id", cardID),
		zap.String("list_id", listID))
	s.publish(ctx, events.BuildCardSubject(events.CardDeleted, listID), events.CardDeleted, map[string]interface{}{
		"card_id": cardID,
		"list_id": listID,
	})
	return nil
}

// RenameCard replaces a card's title.
func (s *Service) RenameCard(ctx context.Context, listID, cardID, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errors.ValidationError("title", "must not be blank")
	}
	if _, changed := s.store.UpdateCardTitle(listID, cardID, title); !changed {
		return errors.NotFound("card", cardID)
	}
	s.publish(ctx, events.BuildCardSubject(events.CardRenamed, listID), events.CardRenamed, map[string]interface{}{
		"card_id": cardID,
		"list_id": listID,
	})
	return nil
}

// MoveCard relocates a card between (or within) lists.
func (s *Service) MoveCard(ctx context.Context, sourceListID, destListID string, sourceIndex, destIndex int) error {
	if _, changed := s.store.MoveCard(sourceListID, destListID, sourceIndex, destIndex); !changed {
		return errors.BadRequest("unknown list or sourceIndex out of range")
	}
	s.logger.Info("card moved",
		zap.String("from_list", sourceListID),
		zap.String("to_list", destListID),
		zap.Int("source_index", sourceIndex),
		zap.Int("dest_index", destIndex))
	s.publish(ctx, events.BuildCardSubject(events.CardMoved, destListID), events.CardMoved, map[string]interface{}{
		"from_list":    sourceListID,
		"to_list":      destListID,
		"source_index": sourceIndex,
		"dest_index":   destIndex,
	})
	return nil
}

// AddComment appends a comment to the named card.
func (s *Service) AddComment(ctx context.Context, listID, cardID, text string) (models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Comment{}, errors.ValidationError("text", "must not be blank")
	}

	comment, _, changed := s.store.AddComment(listID, cardID, text, defaultAuthor)
	if !changed {
		return models.Comment{}, errors.NotFound("card", cardID)
	}
	s.logger.Info("comment added",
		zap.String("comment_id", comment.ID),
		zap.String("card_id", cardID))
	s.publish(ctx, events.CommentAdded, events.CommentAdded, map[string]interface{}{
		"comment_id": comment.ID,
		"card_id":    cardID,
		"list_id":    listID,
	})
	return comment, nil
}

// GetCard looks up a card for detail views.
func (s *Service) GetCard(ctx context.Context, listID, cardID string) (models.Card, error) {
	card, ok := s.store.GetCard(listID, cardID)
	if !ok {
		return models.Card{}, errors.NotFound("card", cardID)
	}
	return card, nil
}

func (s *Service) publish(ctx context.Context, subject, eventType string, data map[string]interface{}) {
	if s.eventBus == nil {
		return
	}
	event := bus.NewEvent(eventType, "board_service", data)
	if err := s.eventBus.Publish(ctx, subject, event); err != nil {
		s.logger.Warn("failed to publish event",
			zap.String("subject", subject),
			zap.Error(err))
	}
}
