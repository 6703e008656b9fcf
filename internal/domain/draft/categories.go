package draft

import "strings"

// AddCategory appends a category label. Empty or whitespace-only labels and
// exact duplicates (case-sensitive) are ignored, so the list behaves as an
// ordered set.
func (d *Draft) AddCategory(label string) {
	if strings.TrimSpace(label) == "" {
		return
	}
	if d.HasCategory(label) {
		return
	}
	d.Categories = append(d.Categories, label)
}

// RemoveCategory removes the label if present.
func (d *Draft) RemoveCategory(label string) {
	for i, c := range d.Categories {
		if c == label {
			d.Categories = append(d.Categories[:i], d.Categories[i+1:]...)
			return
		}
	}
}

// ToggleCategory adds the label when absent and removes it when present.
// The suggested-category palette in the UI drives this.
func (d *Draft) ToggleCategory(label string) {
	if d.HasCategory(label) {
		d.RemoveCategory(label)
		return
	}
	d.AddCategory(label)
}

// HasCategory reports whether the label is already in the list.
func (d *Draft) HasCategory(label string) bool {
	for _, c := range d.Categories {
		if c == label {
			return true
		}
	}
	return false
}
