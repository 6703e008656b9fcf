package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDraftWithVariation(t *testing.T, name string, options ...string) *Draft {
	t.Helper()
	d := New()
	d.AddVariation()
	d.SetVariationName(0, name)
	for i, opt := range options {
		if i > 0 {
			d.AddOption(0)
		}
		d.SetOption(0, i, opt)
	}
	return d
}

func TestAddVariation_StartsWithOneEmptyOption(t *testing.T) {
	d := New()

	d.AddVariation()

	require.Len(t, d.Variations, 1)
	assert.Equal(t, []string{""}, d.Variations[0].Options)
}

func TestSetVariationName(t *testing.T) {
	d := New()
	d.AddVariation()

	d.SetVariationName(0, "Size")

	assert.Equal(t, "Size", d.Variations[0].Name)
}

func TestAddOption_AppendsEmptySlot(t *testing.T) {
	d := newDraftWithVariation(t, "Size", "Small")

	d.AddOption(0)

	assert.Equal(t, []string{"Small", ""}, d.Variations[0].Options)
}

func TestSetOption_OutOfRangeIsIgnored(t *testing.T) {
	d := newDraftWithVariation(t, "Size", "Small")

	d.SetOption(0, 4, "Large")
	d.SetOption(2, 0, "Large")

	assert.Equal(t, []string{"Small"}, d.Variations[0].Options)
}

func TestRemoveOption(t *testing.T) {
	d := newDraftWithVariation(t, "Size", "Small", "Medium", "Large")

	d.RemoveOption(0, 1)

	assert.Equal(t, []string{"Small", "Large"}, d.Variations[0].Options)
}

func TestRemoveOption_RefusesLastOption(t *testing.T) {
	d := newDraftWithVariation(t, "Size", "Small")

	d.RemoveOption(0, 0)

	assert.Equal(t, []string{"Small"}, d.Variations[0].Options)
}

func TestRemoveOption_FloorHoldsUnderRepeatedRemoval(t *testing.T) {
	d := newDraftWithVariation(t, "Size", "S", "M", "L", "XL")

	for i := 0; i < 10; i++ {
		d.RemoveOption(0, 0)
	}

	require.Len(t, d.Variations[0].Options, 1)
	assert.Equal(t, "XL", d.Variations[0].Options[0])
}

func TestRemoveVariation(t *testing.T) {
	d := New()
	d.AddVariation()
	d.SetVariationName(0, "Size")
	d.AddVariation()
	d.SetVariationName(1, "Color")

	d.RemoveVariation(0)

	require.Len(t, d.Variations, 1)
	assert.Equal(t, "Color", d.Variations[0].Name)
}

func TestVariations_PreserveInsertionOrder(t *testing.T) {
	d := newDraftWithVariation(t, "Size", "Zulu", "Alpha", "Mike")

	assert.Equal(t, []string{"Zulu", "Alpha", "Mike"}, d.Variations[0].Options)
}
