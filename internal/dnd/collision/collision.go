// Package collision chooses the best drop target for an in-progress drag
// from the current geometry of the dragged item and its candidate targets.
//
// Strategy selection is an internal detail: list drags use closest-center
// only, card drags try strict pointer containment first and fall back to
// bounding-box intersection, and a list-level hit is refined to the nearest
// card inside that list so a card can be dropped precisely among siblings
// even when the pointer is over the list background.
package collision

import "github.com/driftboard/driftboard/internal/dnd/geometry"

// ItemKind tags a draggable or droppable item.
type ItemKind string

const (
	KindList ItemKind = "list"
	KindCard ItemKind = "card"
)

// Candidate is one droppable target with its current screen geometry.
// ContainerID names the owning list for card candidates and is empty for
// list candidates.
type Candidate struct {
	ID          string
	Kind        ItemKind
	ContainerID string
	Rect        geometry.Rect
}

// Input carries one resolution cycle's worth of drag geometry.
// PreviousTarget and JustSwitched belong to the drag session: the session
// controller feeds back the last resolution and whether the dragged card has
// just been moved into a new container.
type Input struct {
	ActiveKind     ItemKind
	ActiveRect     geometry.Rect
	Pointer        geometry.Point
	Candidates     []Candidate
	PreviousTarget string
	JustSwitched   bool
}

// Resolve returns the id of the chosen drop target, or ok=false when there
// is none. The function is pure: repeated calls with identical input return
// identical results.
func Resolve(in Input) (string, bool) {
	if in.ActiveKind == KindList {
		return resolveListDrag(in)
	}
	return resolveCardDrag(in)
}

// resolveListDrag restricts candidates to list-level targets; cards are
// never valid drop targets for a list drag.
func resolveListDrag(in Input) (string, bool) {
	lists := make([]Candidate, 0, len(in.Candidates))
	for _, c := range in.Candidates {
		if c.Kind == KindList {
			lists = append(lists, c)
		}
	}
	if best, ok := closestCenter(in.ActiveRect.Center(), lists); ok {
		return best.ID, true
	}
	return fallback(in)
}

func resolveCardDrag(in Input) (string, bool) {
	hits := pointerWithin(in.Pointer, in.Candidates)
	if len(hits) == 0 {
		hits = rectIntersection(in.ActiveRect, in.Candidates)
	}
	if len(hits) == 0 {
		return fallback(in)
	}

	first := hits[0]
	if first.Kind == KindList {
		// Refine a list-level hit to the nearest card inside that list, so
		// the drop lands among siblings rather than on the container.
		if best, ok := closestCenter(in.ActiveRect.Center(), cardsOf(first.ID, in.Candidates)); ok {
			return best.ID, true
		}
	}
	return first.ID, true
}

// fallback implements the hysteresis rule: when nothing matches, re-emit the
// previous cycle's target so the drop indicator does not flicker while the
// pointer transiently leaves all droppable regions. The one exception is the
// cycle right after a container switch, where the previous target belongs to
// the old container and must be forgotten.
func fallback(in Input) (string, bool) {
	if in.JustSwitched || in.PreviousTarget == "" {
		return "", false
	}
	return in.PreviousTarget, true
}

func cardsOf(listID string, candidates []Candidate) []Candidate {
	cards := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Kind == KindCard && c.ContainerID == listID {
			cards = append(cards, c)
		}
	}
	return cards
}

// pointerWithin returns candidates whose rect strictly contains the pointer.
func pointerWithin(p geometry.Point, candidates []Candidate) []Candidate {
	hits := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Rect.Contains(p) {
			hits = append(hits, c)
		}
	}
	return hits
}

// rectIntersection returns candidates whose rect overlaps the active rect.
func rectIntersection(active geometry.Rect, candidates []Candidate) []Candidate {
	hits := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Rect.Intersects(active) {
			hits = append(hits, c)
		}
	}
	return hits
}

// closestCenter picks the candidate whose center is nearest to the given
// point.
func closestCenter(center geometry.Point, candidates []Candidate) (Candidate, bool) {
	if len(candidates) == 0 {
		return Candidate{}, false
	}
	best := candidates[0]
	bestDist := geometry.DistanceSq(center, best.Rect.Center())
	for _, c := range candidates[1:] {
		if d := geometry.DistanceSq(center, c.Rect.Center()); d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best, true
}
