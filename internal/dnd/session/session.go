// Package session implements the drag-session state machine.
//
// A session tracks at most one active drag (a list or a card), resolves its
// drop target from geometry on every hover tick, and applies cross-container
// card moves optimistically while the drag is still in progress. All
// transitions are total: anything that cannot be resolved simply performs no
// board mutation.
package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/driftboard/driftboard/internal/board/store"
	"github.com/driftboard/driftboard/internal/common/logger"
	"github.com/driftboard/driftboard/internal/dnd/collision"
	"github.com/driftboard/driftboard/internal/dnd/geometry"
	"github.com/driftboard/driftboard/internal/events"
	"github.com/driftboard/driftboard/internal/events/bus"
)

// DragItem is the tagged payload of a drag: what kind of thing is being
// dragged, and which one.
type DragItem struct {
	Kind collision.ItemKind `json:"kind"`
	ID   string             `json:"id"`
}

// HoverEvent carries one pointer-move tick of an active drag.
type HoverEvent struct {
	OverID     string
	OverRect   geometry.Rect
	ActiveRect geometry.Rect
	Pointer    geometry.Point
	Candidates []collision.Candidate
}

// EndEvent carries the drop position of a finishing drag.
type EndEvent struct {
	OverID string
}

// Controller orchestrates drag start/hover/end/cancel transitions against
// the board store. The hysteresis trackers (last resolved target, the
// just-switched-container flag) are explicit fields here rather than ambient
// mutable state, so every transition is inspectable.
type Controller struct {
	mu     sync.Mutex
	store  *store.Store
	bus    bus.EventBus
	logger *logger.Logger

	dragging     bool
	item         DragItem
	lastTarget   string
	justSwitched bool
}

// NewController creates a drag session controller.
func NewController(st *store.Store, eventBus bus.EventBus, log *logger.Logger) *Controller {
	return &Controller{
		store:  st,
		bus:    eventBus,
		logger: log.WithFields(zap.String("component", "drag_session")),
	}
}

// Active returns the currently dragged item, if any.
func (c *Controller) Active() (DragItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.item, c.dragging
}

// Target returns the currently resolved drop target, if any.
func (c *Controller) Target() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.dragging || c.lastTarget == "" {
		return "", false
	}
	return c.lastTarget, true
}

// Start begins a drag. Only valid from the idle state; a Start while another
// drag is active is ignored. Starting has no effect on the board.
func (c *Controller) Start(ctx context.Context, item DragItem) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.dragging {
		c.logger.Warn("drag start ignored, session already active",
			zap.String("active_id", c.item.ID),
			zap.String("requested_id", item.ID))
		return false
	}

	c.dragging = true
	c.item = item
	c.lastTarget = ""
	c.justSwitched = false

	c.logger.Debug("drag started",
		zap.String("kind", string(item.Kind)),
		zap.String("item_id", item.ID))
	c.publish(ctx, events.DragStarted, map[string]interface{}{
		"kind": string(item.Kind),
		"id":   item.ID,
	})
	return true
}

// Hover processes one pointer-move tick. It resolves the drop target from
// geometry, and for card drags that have crossed into a different container
// it applies the relocation to the board immediately (optimistic move) rather
// than waiting for the drag to end. Repeated identical hovers are idempotent:
// once the card is in the over-container, no further moves are issued.
func (c *Controller) Hover(ctx context.Context, ev HoverEvent) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.dragging {
		return "", false
	}

	target, ok := collision.Resolve(collision.Input{
		ActiveKind:     c.item.Kind,
		ActiveRect:     ev.ActiveRect,
		Pointer:        ev.Pointer,
		Candidates:     ev.Candidates,
		PreviousTarget: c.lastTarget,
		JustSwitched:   c.justSwitched,
	})
	// The flag covers exactly one resolution cycle after a container switch.
	c.justSwitched = false
	c.setTarget(ctx, target, ok)

	if c.item.Kind != collision.KindCard || ev.OverID == "" {
		return target, ok
	}

	board := c.store.Snapshot()
	activeContainer, found := store.Locate(board, c.item.ID)
	if !found {
		return target, ok
	}
	overContainer, found := store.Locate(board, ev.OverID)
	if !found || overContainer == activeContainer {
		// Same-list hover never reorders mid-drag; that happens at End.
		return target, ok
	}

	destList := board.Lists[board.FindList(overContainer)]
	insertAt := len(destList.Cards)
	if ev.OverID != overContainer {
		// Hovering a sibling card: insert before it, or after when the
		// pointer is below the sibling's vertical midpoint.
		insertAt = destList.FindCard(ev.OverID)
		if insertAt < 0 {
			return target, ok
		}
		if ev.Pointer.Y > ev.OverRect.VerticalMid() {
			insertAt++
		}
	}

	srcList := board.Lists[board.FindList(activeContainer)]
	sourceIndex := srcList.FindCard(c.item.ID)
	if sourceIndex < 0 {
		return target, ok
	}

	if _, changed := c.store.MoveCard(activeContainer, overContainer, sourceIndex, insertAt); changed {
		c.justSwitched = true
		c.logger.Debug("card moved across containers mid-drag",
			zap.String("card_id", c.item.ID),
			zap.String("from_list", activeContainer),
			zap.String("to_list", overContainer),
			zap.Int("index", insertAt))
		c.publish(ctx, events.CardMoved, map[string]interface{}{
			"card_id":   c.item.ID,
			"from_list": activeContainer,
			"to_list":   overContainer,
			"index":     insertAt,
		})
	}

	return target, ok
}

// End finishes the drag and applies the final reorder. For list drags this
// moves the active list to the over list's position. For card drags only a
// same-container reorder remains; any cross-container relocation has already
// been committed by Hover.
func (c *Controller) End(ctx context.Context, ev EndEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.dragging {
		return
	}
	item := c.item
	c.reset()

	board := c.store.Snapshot()

	switch item.Kind {
	case collision.KindList:
		if ev.OverID == "" || ev.OverID == item.ID {
			break
		}
		from := board.FindList(item.ID)
		to := board.FindList(ev.OverID)
		if from < 0 || to < 0 {
			break
		}
		if _, changed := c.store.MoveList(from, to); changed {
			c.publish(ctx, events.ListMoved, map[string]interface{}{
				"list_id": item.ID,
				"from":    from,
				"to":      to,
			})
		}

	case collision.KindCard:
		if ev.OverID == "" {
			break
		}
		activeContainer, found := store.Locate(board, item.ID)
		if !found {
			break
		}
		overContainer, found := store.Locate(board, ev.OverID)
		if !found || overContainer != activeContainer {
			break
		}
		list := board.Lists[board.FindList(activeContainer)]
		from := list.FindCard(item.ID)
		to := list.FindCard(ev.OverID)
		if from < 0 || to < 0 || from == to {
			break
		}
		if _, changed := c.store.MoveCard(activeContainer, activeContainer, from, to); changed {
			c.publish(ctx, events.CardMoved, map[string]interface{}{
				"card_id": item.ID,
				"list_id": activeContainer,
				"from":    from,
				"to":      to,
			})
		}
	}

	c.logger.Debug("drag ended",
		zap.String("kind", string(item.Kind)),
		zap.String("item_id", item.ID),
		zap.String("over_id", ev.OverID))
	c.publish(ctx, events.DragEnded, map[string]interface{}{
		"kind":    string(item.Kind),
		"id":      item.ID,
		"over_id": ev.OverID,
	})
}

// Cancel abandons the drag, resetting session bookkeeping only. Cross-
// container moves already committed during Hover are not reversed.
func (c *Controller) Cancel(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.dragging {
		return
	}
	item := c.item
	c.reset()

	c.logger.Debug("drag cancelled",
		zap.String("kind", string(item.Kind)),
		zap.String("item_id", item.ID))
	c.publish(ctx, events.DragCancelled, map[string]interface{}{
		"kind": string(item.Kind),
		"id":   item.ID,
	})
}

func (c *Controller) reset() {
	c.dragging = false
	c.item = DragItem{}
	c.lastTarget = ""
	c.justSwitched = false
}

// setTarget records the resolved target and announces changes. Unchanged
// targets are not re-announced, keeping rapid hover ticks quiet.
func (c *Controller) setTarget(ctx context.Context, target string, ok bool) {
	if !ok {
		target = ""
	}
	if target == c.lastTarget {
		return
	}
	c.lastTarget = target
	c.publish(ctx, events.DragTargeted, map[string]interface{}{
		"kind":      string(c.item.Kind),
		"id":        c.item.ID,
		"target_id": target,
	})
}

func (c *Controller) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if c.bus == nil {
		return
	}
	if err := c.bus.Publish(ctx, eventType, bus.NewEvent(eventType, "drag_session", data)); err != nil {
		c.logger.Warn("failed to publish drag event",
			zap.String("event_type", eventType),
			zap.Error(err))
	}
}
