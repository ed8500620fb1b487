package world

import "fmt"

// ASCII symbols used by plain-text dumps and stored grids
var kindSymbols = [...]byte{
	OpenPath:   '.',
	Wall:       '#',
	RoomPath:   ',',
	RoomWall:   'W',
	Door:       'D',
	KeyFeature: 'K',
}

// Symbol returns the single ASCII character for a kind, '?' if unknown
func (k Kind) Symbol() byte {
	if int(k) >= len(kindSymbols) {
		return '?'
	}
	return kindSymbols[k]
}

// ParseSymbol is the inverse of Kind.Symbol
func ParseSymbol(b byte) (Kind, error) {
	for k, s := range kindSymbols {
		if s == b {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown cell symbol %q", b)
}

// EncodeRows returns one string of symbols per grid row
func (g *Grid) EncodeRows() []string {
	rows := make([]string, g.rows)
	line := make([]byte, g.cols)
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			line[col] = g.cells[row][col].Kind.Symbol()
		}
		rows[row] = string(line)
	}
	return rows
}

// DecodeRows rebuilds a grid from EncodeRows output
func DecodeRows(rows []string) (*Grid, error) {
	kinds := make([][]Kind, len(rows))
	for row, line := range rows {
		kinds[row] = make([]Kind, len(line))
		for col := 0; col < len(line); col++ {
			k, err := ParseSymbol(line[col])
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", row, col, err)
			}
			kinds[row][col] = k
		}
	}
	return FromKinds(kinds)
}
