package entities

import "sort"

// CategoryFilter tracks the active category tags and the derived visibility
// of a fixed list of project cards.
//
// The active set is never empty and never holds CategoryAll together with a
// specific tag.
type CategoryFilter struct {
	cards   []Project
	active  map[string]struct{}
	visible []bool
}

// NewCategoryFilter creates a filter with only CategoryAll selected.
func NewCategoryFilter(cards []Project) *CategoryFilter {
	f := &CategoryFilter{
		cards:   cards,
		visible: make([]bool, len(cards)),
	}
	f.selectAll()
	return f
}

// Toggle applies a click on the filter button for tag.
//
// Selecting CategoryAll resets the filter. Any other tag removes CategoryAll
// and flips its own membership. Deselecting the last specific tag falls back
// to CategoryAll, so toggling a tag twice is not always a no-op.
func (f *CategoryFilter) Toggle(tag string) {
	if tag == CategoryAll {
		f.selectAll()
		return
	}

	delete(f.active, CategoryAll)

	if _, ok := f.active[tag]; ok {
		delete(f.active, tag)
	} else {
		f.active[tag] = struct{}{}
	}

	if len(f.active) == 0 {
		f.selectAll()
		return
	}

	for i, card := range f.cards {
		_, ok := f.active[card.Category]
		f.visible[i] = ok
	}
}

// IsActive reports whether tag is currently selected.
func (f *CategoryFilter) IsActive(tag string) bool {
	_, ok := f.active[tag]
	return ok
}

// Active returns the selected tags in lexical order.
func (f *CategoryFilter) Active() []string {
	tags := make([]string, 0, len(f.active))
	for tag := range f.active {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Visible returns the visible cards in catalog order.
func (f *CategoryFilter) Visible() []Project {
	out := make([]Project, 0, len(f.cards))
	for i, card := range f.cards {
		if f.visible[i] {
			out = append(out, card)
		}
	}
	return out
}

// Cards returns every card known to the filter, visible or not.
func (f *CategoryFilter) Cards() []Project {
	return f.cards
}

func (f *CategoryFilter) selectAll() {
	f.active = map[string]struct{}{CategoryAll: {}}
	for i := range f.visible {
		f.visible[i] = true
	}
}
