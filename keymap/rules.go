package keymap

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Rules maps a binding keyword to the position of its key-name argument.
// Non-negative selectors index from the start of the argument list,
// negative ones from the end (-1 is the last argument).
type Rules map[string]int

// DefaultRules covers the bindings whose key argument position is
// unambiguous in ZMK keymaps.
func DefaultRules() Rules {
	return Rules{
		"kp":            0,
		"mt":            -1,
		"lt":            -1,
		"lt_to_layer_0": -1,
	}
}

// Resolve returns the absolute argument index for keyword given argc
// arguments. It reports false for unknown keywords and out of range
// selectors.
func (r Rules) Resolve(keyword string, argc int) (int, bool) {
	sel, ok := r[keyword]
	if !ok {
		return 0, false
	}
	idx := sel
	if sel < 0 {
		idx = argc + sel
	}
	if idx < 0 || idx >= argc {
		return 0, false
	}
	return idx, true
}

// Keywords returns the recognised binding keywords, sorted.
func (r Rules) Keywords() []string {
	out := make([]string, 0, len(r))
	for k := range r {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Merge returns a copy of r with the entries of other added or replaced.
func (r Rules) Merge(other Rules) Rules {
	out := make(Rules, len(r)+len(other))
	for k, v := range r {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// ParseRule parses a "keyword=selector" pair such as "mt=-1".
func ParseRule(s string) (string, int, error) {
	kw, sel, ok := strings.Cut(s, "=")
	if !ok {
		return "", 0, fmt.Errorf("invalid rule %q: expected keyword=index", s)
	}
	kw = strings.TrimSpace(kw)
	if !isKeyword(kw) {
		return "", 0, fmt.Errorf("invalid rule %q: %q is not a binding keyword", s, kw)
	}
	n, err := strconv.Atoi(strings.TrimSpace(sel))
	if err != nil {
		return "", 0, fmt.Errorf("invalid rule %q: %w", s, err)
	}
	return kw, n, nil
}

func isKeyword(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}
