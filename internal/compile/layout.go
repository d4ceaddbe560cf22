package compile

// Layout constants. The main chain runs left to right on one row; the
// error side path gets its own row below it.
const (
	layoutStartX = 250.0
	layoutStepX  = 220.0
	layoutMainY  = 300.0
	layoutErrorY = 520.0
)

// layoutCursor hands out node positions along a row.
type layoutCursor struct {
	x float64
	y float64
}

func newLayoutCursor(y float64) *layoutCursor {
	return &layoutCursor{x: layoutStartX, y: y}
}

// next returns the current position and advances one column.
func (c *layoutCursor) next() [2]float64 {
	pos := [2]float64{c.x, c.y}
	c.x += layoutStepX
	return pos
}
