package grid

// Cell is the placement policy for one tab in the wrapped grid, consumed by
// the renderer when positioning and decorating tab cells.
type Cell struct {
	// Index is the tab's position in the flat tab list.
	Index int
	// Row and Column locate the cell in the wrapped grid.
	Row, Column int
	// SpacerBefore is true for every tab except the first in its row.
	SpacerBefore bool
	// RoundLeading is true for the first cell in each row.
	RoundLeading bool
	// RoundTrailing is true for the last column in a row and for the final
	// tab overall, which handles a ragged last row.
	RoundTrailing bool
}

// Cells returns the placement policy for each of numTabs tabs wrapped at
// columnCount columns. Disabled tabs occupy cells like any other; visual
// state is the renderer's concern. columnCount is clamped to at least 1.
func Cells(numTabs, columnCount int) []Cell {
	if numTabs <= 0 {
		return nil
	}
	columnCount = max(columnCount, 1)
	cells := make([]Cell, numTabs)
	for i := range cells {
		col := i % columnCount
		cells[i] = Cell{
			Index:         i,
			Row:           i / columnCount,
			Column:        col,
			SpacerBefore:  col != 0,
			RoundLeading:  col == 0,
			RoundTrailing: col == columnCount-1 || i == numTabs-1,
		}
	}
	return cells
}
