package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scribe/internal/domain"
)

func TestScrollSaturatesAtZero(t *testing.T) {
	v := New(10, 5)

	v.ScrollUp(3)
	v.ScrollLeft(1)
	assert.Equal(t, 0, v.RowOffset())
	assert.Equal(t, 0, v.ColOffset())

	v.ScrollDown(4)
	v.ScrollRight(7)
	assert.Equal(t, 4, v.RowOffset())
	assert.Equal(t, 7, v.ColOffset())

	v.ScrollUp(10)
	v.ScrollLeft(2)
	assert.Equal(t, 0, v.RowOffset())
	assert.Equal(t, 5, v.ColOffset())

	v.ResetColOffset()
	v.ScrollDown(2)
	v.ResetRowOffset()
	assert.Equal(t, domain.Origin(), v.Offset())
}

func TestResizeKeepsPositiveDimensions(t *testing.T) {
	v := New(0, -3)
	assert.Equal(t, 1, v.Width)
	assert.Equal(t, 1, v.Height)

	v.Resize(80, 23)
	assert.Equal(t, 80, v.Width)
	assert.Equal(t, 23, v.Height)
}

func TestRelativeAbsoluteConversion(t *testing.T) {
	v := New(10, 5)
	v.ScrollDown(3)
	v.ScrollRight(2)

	abs := domain.NewCoordinates(4, 6)
	rel := v.ToRelative(abs)
	assert.Equal(t, domain.NewCoordinates(2, 3), rel)
	assert.Equal(t, abs, v.ToAbsolute(rel))
}

func TestFollow(t *testing.T) {
	tests := []struct {
		name       string
		startRow   int
		startCol   int
		target     domain.Coordinates
		wantOffset domain.Coordinates
	}{
		{"already visible", 0, 0, domain.NewCoordinates(3, 2), domain.NewCoordinates(0, 0)},
		{"below the bottom row", 0, 0, domain.NewCoordinates(0, 5), domain.NewCoordinates(0, 1)},
		{"above the top row", 4, 0, domain.NewCoordinates(0, 1), domain.NewCoordinates(0, 1)},
		{"right of the last column", 0, 0, domain.NewCoordinates(12, 0), domain.NewCoordinates(3, 0)},
		{"left of the first column", 0, 6, domain.NewCoordinates(2, 0), domain.NewCoordinates(2, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(10, 5)
			v.ScrollDown(tt.startRow)
			v.ScrollRight(tt.startCol)

			v.Follow(tt.target)

			assert.Equal(t, tt.wantOffset, v.Offset())
			assert.True(t, v.Contains(tt.target))
		})
	}
}

func TestCenterOn(t *testing.T) {
	v := New(20, 10)
	v.ScrollRight(50)

	v.CenterOn(domain.NewCoordinates(3, 30))
	assert.Equal(t, domain.NewCoordinates(0, 25), v.Offset())
	assert.Equal(t, domain.NewCoordinates(3, 5), v.ToRelative(domain.NewCoordinates(3, 30)))

	v.CenterOn(domain.NewCoordinates(45, 2))
	assert.Equal(t, domain.NewCoordinates(35, 0), v.Offset())
}
