package draft

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddImage_UpToLimit(t *testing.T) {
	d := New()

	for i := 0; i < MaxImages; i++ {
		err := d.AddImage(fmt.Sprintf("data:image/png;base64,%d", i))
		require.NoError(t, err)
	}

	assert.Len(t, d.Images, MaxImages)
}

func TestAddImage_SixthIsRejected(t *testing.T) {
	d := New()
	for i := 0; i < MaxImages; i++ {
		require.NoError(t, d.AddImage(fmt.Sprintf("data:image/png;base64,%d", i)))
	}

	err := d.AddImage("data:image/png;base64,extra")

	assert.ErrorIs(t, err, ErrImageLimitReached)
	assert.Len(t, d.Images, MaxImages)
	assert.Equal(t, "data:image/png;base64,0", d.Images[0])
}

func TestRemoveImage_ShiftsAndFreesASlot(t *testing.T) {
	d := New()
	for i := 0; i < MaxImages; i++ {
		require.NoError(t, d.AddImage(fmt.Sprintf("data:image/png;base64,%d", i)))
	}

	d.RemoveImage(0)
	require.Len(t, d.Images, MaxImages-1)
	assert.Equal(t, "data:image/png;base64,1", d.Images[0])

	assert.NoError(t, d.AddImage("data:image/png;base64,new"))
}

func TestRemoveImage_OutOfRangeIsIgnored(t *testing.T) {
	d := New()
	require.NoError(t, d.AddImage("data:image/png;base64,a"))

	d.RemoveImage(1)
	d.RemoveImage(-1)

	assert.Len(t, d.Images, 1)
}
