package easel

import "sort"

// Selection is the editor's set of selected frame IDs. Mutations publish
// EventSelectionChanged on the attached bus.
type Selection struct {
	ids map[uint64]struct{}
	bus *EventBus
}

// NewSelection creates an empty selection publishing to bus. A nil bus is
// allowed and silences events.
func NewSelection(bus *EventBus) *Selection {
	return &Selection{ids: make(map[uint64]struct{}), bus: bus}
}

// Click applies single-click semantics to id. Without toggle the selection
// collapses to just id; with toggle (ctrl held) id flips in and out of the
// set while the rest stays.
func (s *Selection) Click(id uint64, toggle bool) {
	if !toggle {
		clear(s.ids)
		s.ids[id] = struct{}{}
		s.publish()
		return
	}
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
	} else {
		s.ids[id] = struct{}{}
	}
	s.publish()
}

// SelectRect selects every frame whose bounding rect intersects worldRect.
// Without additive the previous selection is replaced.
func (s *Selection) SelectRect(frames []Frame, worldRect Rect, additive bool) {
	if !additive {
		clear(s.ids)
	}
	for _, f := range frames {
		if f.AABB().Intersects(worldRect) {
			s.ids[f.ID] = struct{}{}
		}
	}
	s.publish()
}

// Clear empties the selection.
func (s *Selection) Clear() {
	if len(s.ids) == 0 {
		return
	}
	clear(s.ids)
	s.publish()
}

// Contains reports whether id is selected.
func (s *Selection) Contains(id uint64) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of selected frames.
func (s *Selection) Len() int {
	return len(s.ids)
}

// IDs returns the selected IDs in ascending order.
func (s *Selection) IDs() []uint64 {
	ids := make([]uint64, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (s *Selection) publish() {
	if s.bus == nil {
		return
	}
	s.bus.Publish(EditorEvent{Type: EventSelectionChanged, Selected: s.IDs()})
}
