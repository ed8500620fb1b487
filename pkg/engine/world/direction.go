package world

// Direction is one of the four orthogonal neighbours of a cell
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
)

var directionDeltas = [...][2]int{
	North: {-1, 0},
	East:  {0, 1},
	South: {1, 0},
	West:  {0, -1},
}

var directionNames = [...]string{
	North: "North",
	East:  "East",
	South: "South",
	West:  "West",
}

// ScanOrder is the order neighbours are inspected in: (i-1,j), (i+1,j), (i,j-1), (i,j+1).
// Door carving depends on it for reproducible output, so do not reorder.
func ScanOrder() []Direction {
	return []Direction{North, South, West, East}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// String returns the string representation of a direction
func (d Direction) String() string {
	if !d.IsValid() {
		return "Unknown"
	}
	return directionNames[d]
}

// Delta returns the row and column offsets for this direction
func (d Direction) Delta() (rowDelta, colDelta int) {
	if !d.IsValid() {
		return 0, 0
	}
	return directionDeltas[d][0], directionDeltas[d][1]
}

// Opposite returns the direction pointing back the way d came
func (d Direction) Opposite() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + 2) % 4
}
