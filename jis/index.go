package jis

// Index maps a US key name to the JIS define that replaces it.
type Index struct {
	m map[string]string
}

// BuildIndex registers every alias of every entry in table order. When an
// alias is listed more than once the last registration wins; use
// Table.Shadowed to find such aliases.
func BuildIndex(t Table) Index {
	m := make(map[string]string)
	for _, e := range t {
		for _, a := range e.Aliases {
			m[a] = e.Name
		}
	}
	return Index{m: m}
}

// Lookup returns the target name for a US key name.
func (i Index) Lookup(alias string) (string, bool) {
	name, ok := i.m[alias]
	return name, ok
}

// Len is the number of distinct aliases.
func (i Index) Len() int {
	return len(i.m)
}
