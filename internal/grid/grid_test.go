package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTabWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 68, TabWidth(1))
	assert.Equal(t, 68, TabWidth(2))
	assert.Equal(t, 40, TabWidth(3))
	assert.Equal(t, 40, TabWidth(12))
}

func TestWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		numTabs   int
		available int
		want      int
	}{
		{"five tabs fit", 5, 400, 208},
		{"five tabs clamped", 5, 150, 150},
		{"two wide tabs", 2, 400, 138},
		{"single tab", 1, 400, 68},
		{"no space", 5, 0, 0},
		{"no tabs", 0, 400, 0},
		{"negative available clamped", 5, -10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Width(tt.numTabs, tt.available))
		})
	}
}

func TestWidth_neverExceedsAvailable(t *testing.T) {
	t.Parallel()

	for numTabs := 0; numTabs <= 16; numTabs++ {
		for available := 0; available <= 500; available += 7 {
			got := Width(numTabs, available)
			assert.LessOrEqual(t, got, available)
			assert.GreaterOrEqual(t, got, 0)
		}
	}
}

func TestColumnCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		numTabs   int
		gridWidth int
		want      int
	}{
		// 5 tabs at width 208: floor(208/42)=4, but the fifth tab fits
		// without its trailing spacer: 5*40+4*2 = 208.
		{"boundary correction adds a column", 5, 208, 5},
		// 5 tabs at width 150: floor(150/42)=3, and 4*40+3*2=166 > 150.
		{"correction rejected", 5, 150, 3},
		{"single tab never wraps", 1, 10, 1},
		{"single tab wide", 1, 1000, 1},
		// Narrower than one tab still yields a degenerate single column.
		{"clamped to one", 4, 10, 1},
		{"zero width clamped", 4, 0, 1},
		// Exactly divisible by tab+spacer: 3 units of 42 = 126; the
		// correction check 4*40+3*2=166 > 126 leaves the count at 3.
		{"exact multiple", 6, 126, 3},
		{"two wide tabs one row", 2, 138, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ColumnCount(tt.numTabs, tt.gridWidth))
		})
	}
}

func TestColumnCount_atLeastOne(t *testing.T) {
	t.Parallel()

	for numTabs := 1; numTabs <= 12; numTabs++ {
		for gridWidth := 0; gridWidth <= 300; gridWidth += 3 {
			assert.GreaterOrEqual(t, ColumnCount(numTabs, gridWidth), 1)
		}
	}
}

func TestOffset(t *testing.T) {
	t.Parallel()

	// (248-208)/2 - 30 = -10, clamped.
	assert.Equal(t, 0, Offset(Left, 5, 208, 248))
	// (400-208)/2 - 30 = 66.
	assert.Equal(t, 66, Offset(Left, 5, 208, 400))
	// Magnitude is side-independent.
	assert.Equal(t, Offset(Left, 5, 208, 400), Offset(Right, 5, 208, 400))
	// Grid as wide as the panel never goes negative.
	assert.Equal(t, 0, Offset(Right, 5, 248, 248))
}

func TestLayout(t *testing.T) {
	t.Parallel()

	got := Layout(Left, 5, 400, 400)
	assert.Equal(t, Result{
		TabWidth:    40,
		SpacerWidth: 2,
		GridWidth:   208,
		ColumnCount: 5,
		Offset:      66,
	}, got)

	// Same inputs, same outputs: no hidden state.
	assert.Equal(t, got, Layout(Left, 5, 400, 400))
}

func TestLayout_degenerate(t *testing.T) {
	t.Parallel()

	got := Layout(Left, 4, 0, 0)
	assert.Equal(t, 0, got.GridWidth)
	assert.Equal(t, 1, got.ColumnCount)
	assert.Equal(t, 0, got.Offset)
}

func TestCells(t *testing.T) {
	t.Parallel()

	t.Run("five tabs in one row", func(t *testing.T) {
		cells := Cells(5, 5)
		for i, c := range cells {
			assert.Equal(t, i != 0, c.SpacerBefore, "index %d", i)
			assert.Equal(t, 0, c.Row, "index %d", i)
		}
		assert.True(t, cells[0].RoundLeading)
		assert.False(t, cells[1].RoundLeading)
		assert.True(t, cells[4].RoundTrailing)
		assert.False(t, cells[2].RoundTrailing)
	})

	t.Run("ragged last row", func(t *testing.T) {
		// 5 tabs at 3 columns: rows are [0 1 2] and [3 4]. The final tab
		// rounds its trailing edge even though it is not the last column.
		cells := Cells(5, 3)
		assert.Equal(t, 1, cells[3].Row)
		assert.True(t, cells[3].RoundLeading)
		assert.False(t, cells[3].SpacerBefore)
		assert.True(t, cells[2].RoundTrailing)
		assert.True(t, cells[4].RoundTrailing)
		assert.False(t, cells[4].RoundLeading)
	})

	t.Run("zero column count clamped", func(t *testing.T) {
		cells := Cells(3, 0)
		assert.Len(t, cells, 3)
		for _, c := range cells {
			assert.Equal(t, 0, c.Column)
		}
	})

	t.Run("no tabs", func(t *testing.T) {
		assert.Nil(t, Cells(0, 3))
	})
}

// The renderer sizes the grid in terminal cells rather than the reference
// pixel dimensions; the arithmetic must hold for any consistent unit.
func TestConfig_customUnits(t *testing.T) {
	t.Parallel()

	c := Config{SpacerWidth: 1, CloseControlWidth: 3, SmallTabWidth: 17, LargeTabWidth: 10}

	assert.Equal(t, 17, c.TabWidth(2))
	assert.Equal(t, 10, c.TabWidth(3))
	// 4 tabs in 50: natural = 4*10+3 = 43.
	assert.Equal(t, 43, c.Width(4, 50))
	// k = floor(43/11) = 3; 4*10+3*1 = 43 <= 43, so all four fit.
	assert.Equal(t, 4, c.ColumnCount(4, 43))
	// (60-43)/2 - 3 = 5.
	assert.Equal(t, 5, c.Offset(Left, 4, 43, 60))
}
