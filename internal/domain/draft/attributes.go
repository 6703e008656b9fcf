package draft

// Attribute is one free-form (name, value) pair. Position in the slice is
// its only identity; duplicate names are allowed and coexist.
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// AddAttribute appends an empty attribute pair. There is no upper bound.
func (d *Draft) AddAttribute() {
	d.Attributes = append(d.Attributes, Attribute{})
}

// SetAttributeName sets the name of the attribute at index i.
// Out-of-range indices are ignored.
func (d *Draft) SetAttributeName(i int, name string) {
	if i < 0 || i >= len(d.Attributes) {
		return
	}
	d.Attributes[i].Name = name
}

// SetAttributeValue sets the value of the attribute at index i.
// Out-of-range indices are ignored.
func (d *Draft) SetAttributeValue(i int, value string) {
	if i < 0 || i >= len(d.Attributes) {
		return
	}
	d.Attributes[i].Value = value
}

// RemoveAttribute deletes the attribute at index i, shifting later entries
// down by one. Indices held by the caller are stale after this call.
func (d *Draft) RemoveAttribute(i int) {
	if i < 0 || i >= len(d.Attributes) {
		return
	}
	d.Attributes = append(d.Attributes[:i], d.Attributes[i+1:]...)
}
