package draft

// Variation is one named axis of product differentiation (e.g. "Size") and
// its ordered option values. A variation always holds at least one option
// slot; an option may be blank but the last slot cannot be removed.
type Variation struct {
	Name    string   `json:"name"`
	Options []string `json:"options"`
}

// AddVariation appends a new variation with a single empty option slot.
func (d *Draft) AddVariation() {
	d.Variations = append(d.Variations, Variation{Options: []string{""}})
}

// SetVariationName sets the name of the variation at index v.
// Out-of-range indices are ignored.
func (d *Draft) SetVariationName(v int, name string) {
	if v < 0 || v >= len(d.Variations) {
		return
	}
	d.Variations[v].Name = name
}

// AddOption appends an empty option slot to the variation at index v.
// There is no upper bound on option count.
func (d *Draft) AddOption(v int) {
	if v < 0 || v >= len(d.Variations) {
		return
	}
	d.Variations[v].Options = append(d.Variations[v].Options, "")
}

// SetOption sets the option value at (v, o). Out-of-range indices are
// ignored.
func (d *Draft) SetOption(v, o int, value string) {
	if v < 0 || v >= len(d.Variations) {
		return
	}
	opts := d.Variations[v].Options
	if o < 0 || o >= len(opts) {
		return
	}
	opts[o] = value
}

// RemoveOption deletes the option at (v, o). Removing the last remaining
// option of a variation is refused: a variation with zero options is an
// invalid state, so the call is a no-op and the UI disables the control.
func (d *Draft) RemoveOption(v, o int) {
	if v < 0 || v >= len(d.Variations) {
		return
	}
	opts := d.Variations[v].Options
	if o < 0 || o >= len(opts) || len(opts) <= 1 {
		return
	}
	d.Variations[v].Options = append(opts[:o], opts[o+1:]...)
}

// RemoveVariation deletes the whole variation row at index v.
func (d *Draft) RemoveVariation(v int) {
	if v < 0 || v >= len(d.Variations) {
		return
	}
	d.Variations = append(d.Variations[:v], d.Variations[v+1:]...)
}
