package query

import "sort"

// Selection tracks the ids checked for batch actions. It is scoped to the
// current page: Prune drops ids that fell off the page, and AllSelected is
// recomputed by set membership rather than a stored count, so a deletion
// underneath the page cannot leave a stale "all selected" state.
type Selection struct {
	ids map[string]struct{}
}

func NewSelection() *Selection {
	return &Selection{ids: make(map[string]struct{})}
}

func (s *Selection) Toggle(id string) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return
	}
	s.ids[id] = struct{}{}
}

func (s *Selection) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// ToggleAll selects every id of the current page, or deselects them all
// when they are already all selected.
func (s *Selection) ToggleAll(pageIDs []string) {
	if s.AllSelected(pageIDs) {
		for _, id := range pageIDs {
			delete(s.ids, id)
		}
		return
	}
	for _, id := range pageIDs {
		s.ids[id] = struct{}{}
	}
}

func (s *Selection) AllSelected(pageIDs []string) bool {
	if len(pageIDs) == 0 {
		return false
	}
	for _, id := range pageIDs {
		if _, ok := s.ids[id]; !ok {
			return false
		}
	}
	return true
}

// Prune drops every selected id not present on the current page.
func (s *Selection) Prune(pageIDs []string) {
	onPage := make(map[string]struct{}, len(pageIDs))
	for _, id := range pageIDs {
		onPage[id] = struct{}{}
	}
	for id := range s.ids {
		if _, ok := onPage[id]; !ok {
			delete(s.ids, id)
		}
	}
}

func (s *Selection) Clear() {
	s.ids = make(map[string]struct{})
}

func (s *Selection) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
