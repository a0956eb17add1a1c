package viewport

// Default cell size in pixels
const (
	DefaultCellWidth  = 8
	DefaultLineHeight = 16
)

// Metrics converts terminal cells to pixels
type Metrics struct {
	CellWidth  int
	LineHeight int
}

// DefaultMetrics returns the stock cell size
func DefaultMetrics() Metrics {
	return Metrics{CellWidth: DefaultCellWidth, LineHeight: DefaultLineHeight}
}

// WidthPx converts a column count to pixels
func (m Metrics) WidthPx(columns int) int {
	return columns * m.cellWidth()
}

// Columns converts a pixel width back to whole columns, rounding down
func (m Metrics) Columns(px int) int {
	if px <= 0 {
		return 0
	}
	return px / m.cellWidth()
}

// OffsetPx converts a line offset to pixels
func (m Metrics) OffsetPx(lines int) int {
	return lines * m.lineHeight()
}

// Lines converts a pixel offset back to whole lines, rounding down
func (m Metrics) Lines(px int) int {
	if px <= 0 {
		return 0
	}
	return px / m.lineHeight()
}

func (m Metrics) cellWidth() int {
	if m.CellWidth <= 0 {
		return DefaultCellWidth
	}
	return m.CellWidth
}

func (m Metrics) lineHeight() int {
	if m.LineHeight <= 0 {
		return DefaultLineHeight
	}
	return m.LineHeight
}
