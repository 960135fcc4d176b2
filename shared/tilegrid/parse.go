package tilegrid

import (
	"errors"
	"fmt"
)

var (
	// ErrRagged indicates rows of differing lengths.
	ErrRagged = errors.New("tilegrid: all rows must have the same length")
	// ErrBadCell indicates a rune Parse does not understand.
	ErrBadCell = errors.New("tilegrid: unknown cell rune")
)

// Parse builds a Labels grid from text rows. rows[i] is row y=i. '.' and
// ' ' are empty, '#' is solid in group 1 and '1'..'9' are solid in that group.
func Parse(rows ...string) (*Labels, error) {
	if len(rows) == 0 {
		return NewLabels(0, 0), nil
	}
	w := len(rows[0])
	l := NewLabels(w, len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), w, ErrRagged)
		}
		for x := 0; x < len(row); x++ {
			switch c := row[x]; {
			case c == '.' || c == ' ':
			case c == '#':
				l.Set(x, y, 1)
			case c >= '1' && c <= '9':
				l.Set(x, y, int(c-'0'))
			default:
				return nil, fmt.Errorf("cell (%d,%d) %q: %w", x, y, c, ErrBadCell)
			}
		}
	}
	return l, nil
}

// MustParse is Parse for fixtures known to be valid.
func MustParse(rows ...string) *Labels {
	l, err := Parse(rows...)
	if err != nil {
		panic(err)
	}
	return l
}
