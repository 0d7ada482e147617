package websocket

import (
	"context"

	"go.uber.org/zap"

	"github.com/driftboard/driftboard/internal/common/logger"
	"github.com/driftboard/driftboard/internal/events"
	"github.com/driftboard/driftboard/internal/events/bus"
	ws "github.com/driftboard/driftboard/pkg/websocket"
)

// BoardEventBroadcaster relays board and drag events from the event bus to
// every connected WebSocket client.
type BoardEventBroadcaster struct {
	hub           *Hub
	subscriptions []bus.Subscription
	logger        *logger.Logger
}

// RegisterBoardNotifications subscribes to all board-changing subjects and
// forwards each event as a notification. Drag target changes are forwarded
// under their own action so clients can move the drop indicator without
// re-rendering the board.
func RegisterBoardNotifications(ctx context.Context, eventBus bus.EventBus, hub *Hub, log *logger.Logger) *BoardEventBroadcaster {
	b := &BoardEventBroadcaster{
		hub:    hub,
		logger: log.WithFields(zap.String("component", "ws-board-broadcaster")),
	}
	if eventBus == nil {
		return b
	}

	b.subscribe(eventBus, events.BoardUpdated, ws.ActionBoardChanged)
	b.subscribe(eventBus, events.ListCreated, ws.ActionBoardChanged)
	b.subscribe(eventBus, events.ListRenamed, ws.ActionBoardChanged)
	b.subscribe(eventBus, events.ListMoved, ws.ActionBoardChanged)
	b.subscribe(eventBus, events.ListDeleted, ws.ActionBoardChanged)
	b.subscribe(eventBus, events.BuildCardWildcardSubject(events.CardCreated), ws.ActionBoardChanged)
	b.subscribe(eventBus, events.BuildCardWildcardSubject(events.CardRenamed), ws.ActionBoardChanged)
	b.subscribe(eventBus, events.BuildCardWildcardSubject(events.CardMoved), ws.ActionBoardChanged)
	b.subscribe(eventBus, events.BuildCardWildcardSubject(events.CardDeleted), ws.ActionBoardChanged)
	b.subscribe(eventBus, events.CommentAdded, ws.ActionBoardChanged)
	// The drag session publishes card.moved on the bare subject, without a
	// list scope, so both forms need a subscription.
	b.subscribe(eventBus, events.CardMoved, ws.ActionBoardChanged)
	b.subscribe(eventBus, events.DragTargeted, ws.ActionDragTarget)

	go func() {
		<-ctx.Done()
		b.Close()
	}()

	return b
}

// Close unsubscribes from all subjects
func (b *BoardEventBroadcaster) Close() {
	for _, sub := range b.subscriptions {
		if sub != nil && sub.IsValid() {
			_ = sub.Unsubscribe()
		}
	}
	b.subscriptions = nil
}

func (b *BoardEventBroadcaster) subscribe(eventBus bus.EventBus, subject, action string) {
	sub, err := eventBus.Subscribe(subject, func(ctx context.Context, event *bus.Event) error {
		msg, err := ws.NewNotification(action, map[string]interface{}{
			"event_type": event.Type,
			"data":       event.Data,
		})
		if err != nil {
			b.logger.Error("failed to build websocket notification",
				zap.String("action", action),
				zap.Error(err))
			return nil
		}
		b.hub.Broadcast(msg)
		return nil
	})
	if err != nil {
		b.logger.Error("failed to subscribe",
			zap.String("subject", subject),
			zap.Error(err))
		return
	}
	b.subscriptions = append(b.subscriptions, sub)
}
