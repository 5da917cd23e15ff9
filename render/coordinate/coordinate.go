package coordinate

// Point is a generic 2-D coordinate. X is the column, Y the row.
type Point[T comparable] struct {
	X T
	Y T
}

func NewPoint[T comparable](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}
