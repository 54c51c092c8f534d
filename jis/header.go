package jis

import (
	"errors"
	"fmt"
	"strings"
)

const (
	nameColumn  = 20
	valueColumn = 20
)

var banner = []string{
	"// ========================================",
	"// JIS Keyboard Layout Definitions",
	"// ========================================",
}

// ErrNameTooLong is returned by PadExact for names that leave no room
// before the value column.
var ErrNameTooLong = errors.New("define name does not fit the name column")

// Padding returns the run of spaces placed between a define name and its value.
type Padding func(name string) (string, error)

// PadAtLeastOne aligns values at the name column and falls back to a
// single space for long names.
func PadAtLeastOne(name string) (string, error) {
	return strings.Repeat(" ", max(1, nameColumn-len(name))), nil
}

// PadExact aligns values at the name column and rejects names that would
// run into it.
func PadExact(name string) (string, error) {
	n := nameColumn - len(name)
	if n <= 0 {
		return "", fmt.Errorf("%w: %s (%d bytes, limit %d)", ErrNameTooLong, name, len(name), nameColumn-1)
	}
	return strings.Repeat(" ", n), nil
}

// RenderHeader renders the define block prepended to converted keymaps:
// the banner, one #define per entry and a trailing blank line.
func RenderHeader(t Table, pad Padding) (string, error) {
	if pad == nil {
		pad = PadAtLeastOne
	}

	var b strings.Builder
	for _, l := range banner {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	for _, e := range t {
		p, err := pad(e.Name)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "#define %s%s%-*s// %s\n", e.Name, p, valueColumn, e.Value, e.Symbol)
	}
	b.WriteByte('\n')
	return b.String(), nil
}

// HeaderLines is the number of lines RenderHeader produces for t.
func HeaderLines(t Table) int {
	return len(banner) + len(t) + 1
}
