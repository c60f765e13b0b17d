package rom

// Layout places synthesized nodes. Implementations must be pure functions
// of their arguments so that identical images produce identical documents.
type Layout interface {
	Output(bit int) Point
	Select(line int) Point
	Not(line int) Point
	Or(bit int) Point
	And(row, bit int) Point
}

// GridLayout arranges select lines on the left, minterm and OR columns in
// the middle, and output terminals on the right.
type GridLayout struct{}

var _ Layout = GridLayout{}

func (GridLayout) Output(bit int) Point {
	return Point{X: 832, Y: 90 + bit*10}
}

func (GridLayout) Select(line int) Point {
	return Point{X: 100, Y: 100 + line*10}
}

func (GridLayout) Not(line int) Point {
	return Point{X: 550, Y: 100 + line*30}
}

func (GridLayout) Or(bit int) Point {
	return Point{X: 700, Y: 100 + bit*30}
}

func (GridLayout) And(row, bit int) Point {
	return Point{X: 500, Y: 100 + bit*30 + row*15}
}
