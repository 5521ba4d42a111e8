// Package grid computes the geometry of the side panel's wrapping tab grid.
// It is pure arithmetic: callers feed it a tab count and the horizontal space
// available, and it reports how wide each tab should be, how many columns fit
// before wrapping, and how far the grid must be nudged to stay centered
// against the panel's close control. Nothing here knows about rendering.
package grid

// Side is the edge of the screen the panel is anchored to. It determines
// which edge the centering offset is applied to: a left panel insets the grid
// from the right, a right panel from the left.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// Config holds the fixed dimensions the grid is computed against. All values
// share whatever horizontal unit the caller works in.
type Config struct {
	// SpacerWidth is the width of the separator between adjacent tabs in a
	// row. Spacers sit between tabs, not around them: n tabs have n-1
	// spacers.
	SpacerWidth int
	// CloseControlWidth is the space reserved for the collapse control
	// anchored to the panel's edge.
	CloseControlWidth int
	// SmallTabWidth is the tab width used when there are fewer than
	// smallTabThreshold tabs; fewer tabs get larger, more legible targets.
	SmallTabWidth int
	// LargeTabWidth is the tab width used once tabs must shrink to fit.
	LargeTabWidth int
}

// Default carries the reference dimensions the grid was designed around.
var Default = Config{
	SpacerWidth:       2,
	CloseControlWidth: 30,
	SmallTabWidth:     68,
	LargeTabWidth:     40,
}

// smallTabThreshold is the tab count at which tabs switch from the small
// (wide) width to the large-count (narrow) width.
const smallTabThreshold = 3

func init() {
	if Default.SmallTabWidth < Default.LargeTabWidth {
		panic("small tab counts must not produce narrower tabs than large counts")
	}
}

// TabWidth returns the width of a single tab for the given tab count.
func (c Config) TabWidth(numTabs int) int {
	if numTabs < smallTabThreshold {
		return c.SmallTabWidth
	}
	return c.LargeTabWidth
}

// Width returns the total width occupied by the tab grid: the width needed to
// lay every tab out in one row with a spacer between each pair, bounded above
// by the available width. When tabs would overflow, the caller wraps rows
// rather than the grid growing wider. A non-positive tab count yields 0.
func (c Config) Width(numTabs, availableWidth int) int {
	if numTabs <= 0 {
		return 0
	}
	natural := c.TabWidth(numTabs)*numTabs + (numTabs-1)*c.SpacerWidth
	return min(natural, max(availableWidth, 0))
}

// ColumnCount returns the number of tabs per row before wrapping.
//
// A lone tab never wraps; it is rendered through a distinct one-tab layout
// rather than the grid, so the count is 1 regardless of width.
//
// Otherwise count how many tab+spacer units fit, then correct for the last
// column in a row having no trailing spacer: if one more bare tab fits using
// k spacers instead of k+1, it joins the row. A naive floor division
// undercounts by exactly one column whenever the leftover width can hold a
// tab without its spacer. Clamped to at least 1 so downstream placement never
// divides by zero, even when the grid is narrower than a single tab.
func (c Config) ColumnCount(numTabs, gridWidth int) int {
	if numTabs == 1 {
		return 1
	}
	w := c.TabWidth(numTabs)
	k := gridWidth / (w + c.SpacerWidth)
	if (k+1)*w+k*c.SpacerWidth <= gridWidth {
		k++
	}
	return max(k, 1)
}

// Offset returns the horizontal inset that keeps the grid visually centered
// within the expanded panel after reserving room for the close control. The
// magnitude is the same for either side; side selects the edge the caller
// applies it to (right inset for a left panel, left inset for a right panel).
// Never negative, even when the grid nearly fills the panel.
func (c Config) Offset(side Side, numTabs, gridWidth, expandedWidth int) int {
	_ = side // direction is the caller's concern; magnitude is symmetric
	return max(0, (expandedWidth-gridWidth)/2-c.CloseControlWidth)
}

// Result is the geometry for one layout pass. It is recomputed on every call
// and never cached: a pure function of (tab count, available width, expanded
// width).
type Result struct {
	// TabWidth is the width of each tab cell.
	TabWidth int
	// SpacerWidth is the width of the separator between same-row tabs.
	SpacerWidth int
	// GridWidth is the total width consumed by the grid.
	GridWidth int
	// ColumnCount is the number of tabs per row.
	ColumnCount int
	// Offset is the centering inset; see Config.Offset for direction.
	Offset int
}

// Layout bundles the individual operations into a single geometry result.
func (c Config) Layout(side Side, numTabs, availableWidth, expandedWidth int) Result {
	gw := c.Width(numTabs, availableWidth)
	return Result{
		TabWidth:    c.TabWidth(numTabs),
		SpacerWidth: c.SpacerWidth,
		GridWidth:   gw,
		ColumnCount: c.ColumnCount(numTabs, gw),
		Offset:      c.Offset(side, numTabs, gw, expandedWidth),
	}
}

// Package-level counterparts computed against Default.

func TabWidth(numTabs int) int { return Default.TabWidth(numTabs) }

func Width(numTabs, availableWidth int) int { return Default.Width(numTabs, availableWidth) }

func ColumnCount(numTabs, gridWidth int) int { return Default.ColumnCount(numTabs, gridWidth) }

func Offset(side Side, numTabs, gridWidth, expandedWidth int) int {
	return Default.Offset(side, numTabs, gridWidth, expandedWidth)
}

func Layout(side Side, numTabs, availableWidth, expandedWidth int) Result {
	return Default.Layout(side, numTabs, availableWidth, expandedWidth)
}
