package coords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSourceSpace_FullDisplayMapsToFullSource(t *testing.T) {
	display := Size{Width: 600, Height: 400}
	source := Size{Width: 1920, Height: 1080}

	got, err := ToSourceSpace(Rectangle{X: 0, Y: 0, Width: 600, Height: 400}, display, source)
	require.NoError(t, err)
	assert.Equal(t, Rectangle{X: 0, Y: 0, Width: 1920, Height: 1080}, got)
}

func TestToSourceSpace_ScalesAndRounds(t *testing.T) {
	display := Size{Width: 320, Height: 240}
	source := Size{Width: 640, Height: 480}

	got, err := ToSourceSpace(Rectangle{X: 10, Y: 20, Width: 50, Height: 25}, display, source)
	require.NoError(t, err)
	assert.Equal(t, Rectangle{X: 20, Y: 40, Width: 100, Height: 50}, got)
}

func TestToSourceSpace_ClampsOutOfBounds(t *testing.T) {
	display := Size{Width: 100, Height: 100}
	source := Size{Width: 200, Height: 200}

	// Negative origin and overflowing extent both end up inside the source.
	got, err := ToSourceSpace(Rectangle{X: -10, Y: -10, Width: 150, Height: 150}, display, source)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, got.X, 0)
	assert.GreaterOrEqual(t, got.Y, 0)
	assert.LessOrEqual(t, got.X+got.Width, source.Width)
	assert.LessOrEqual(t, got.Y+got.Height, source.Height)
	assert.GreaterOrEqual(t, got.Width, 1)
	assert.GreaterOrEqual(t, got.Height, 1)
}

func TestToSourceSpace_DegenerateSelectionKeepsPositiveArea(t *testing.T) {
	display := Size{Width: 100, Height: 100}
	source := Size{Width: 100, Height: 100}

	got, err := ToSourceSpace(Rectangle{X: 50, Y: 50, Width: 0, Height: 0}, display, source)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Width)
	assert.Equal(t, 1, got.Height)
}

func TestToSourceSpace_ZeroDisplayFails(t *testing.T) {
	_, err := ToSourceSpace(Rectangle{Width: 10, Height: 10}, Size{Width: 0, Height: 400}, Size{Width: 640, Height: 480})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrZeroDisplay)

	_, err = ToSourceSpace(Rectangle{Width: 10, Height: 10}, Size{Width: 600, Height: 0}, Size{Width: 640, Height: 480})
	assert.ErrorIs(t, err, ErrZeroDisplay)
}

func TestToDisplaySpace_InvertsSourceMapping(t *testing.T) {
	display := Size{Width: 320, Height: 240}
	source := Size{Width: 640, Height: 480}

	src := Rectangle{X: 100, Y: 60, Width: 200, Height: 120}
	got, err := ToDisplaySpace(src, display, source)
	require.NoError(t, err)
	assert.Equal(t, Rectangle{X: 50, Y: 30, Width: 100, Height: 60}, got)

	back, err := ToSourceSpace(got, display, source)
	require.NoError(t, err)
	assert.Equal(t, src, back)
}

func TestToDisplaySpace_ZeroSourceFails(t *testing.T) {
	_, err := ToDisplaySpace(Rectangle{Width: 10, Height: 10}, Size{Width: 600, Height: 400}, Size{Width: 0, Height: 480})
	assert.ErrorIs(t, err, ErrZeroDisplay)
}

func TestRectangleEmpty(t *testing.T) {
	assert.True(t, Rectangle{Width: 0, Height: 5}.Empty())
	assert.True(t, Rectangle{Width: 5, Height: -1}.Empty())
	assert.False(t, Rectangle{Width: 1, Height: 1}.Empty())
}
