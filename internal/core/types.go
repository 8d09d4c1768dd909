package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Point is a 1-based terminal column/row pair.
type Point struct {
	X int
	Y int
}
