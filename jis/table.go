// Package jis holds the US to JIS key name conversion table and the
// derived lookup and header rendering built from it.
package jis

// Entry is one JIS define: the symbolic name written into the keymap, the
// US key names it replaces, and the US key code it expands to.
type Entry struct {
	Name    string   `yaml:"name" toml:"name"`
	Aliases []string `yaml:"aliases" toml:"aliases"`
	Value   string   `yaml:"value" toml:"value"`
	Symbol  string   `yaml:"symbol" toml:"symbol"`
}

// Table is an ordered list of entries. Order is significant: it is the
// header order and the alias registration order.
type Table []Entry

// DefaultTable returns the conversion table used by the general rewriter.
func DefaultTable() Table {
	return Table{
		{"JP_DQUOTE", []string{"DOUBLE_QUOTES", "DOUBLE_QUOTE", "DQT"}, "AT", `"`},
		{"JP_AMPERSAND", []string{"AMPERSAND", "AMPS", "AMP"}, "CARET", "&"},
		{"JP_QUOTE", []string{"SINGLE_QUOTE", "SQT", "APOS"}, "AMPERSAND", "'"},
		{"JP_EQUAL", []string{"EQUAL", "EQL"}, "UNDERSCORE", "="},
		{"JP_CARET", []string{"CARET"}, "EQUAL", "^"},
		{"JP_YEN", []string{"YEN", "BACKSLASH"}, Usage(UsageInternational3), "¥"},
		{"JP_PLUS", []string{"PLUS"}, "COLON", "+"},
		{"JP_TILDE", []string{"TILDE"}, "PLUS", "~"},
		{"JP_PIPE", []string{"PIPE"}, LeftShift(Usage(UsageInternational3)), "|"},
		{"JP_AT", []string{"AT"}, "LEFT_BRACKET", "@"},
		{"JP_COLON", []string{"COLON"}, "SINGLE_QUOTE", ":"},
		{"JP_ASTERISK", []string{"ASTERISK", "ASTRK", "STAR"}, "DOUBLE_QUOTES", "*"},
		{"JP_BACKQUOTE", []string{"BACKQUOTE", "GRAVE"}, "LEFT_BRACE", "`"},
		{"JP_UNDERSCORE", []string{"UNDERSCORE", "UNDER"}, LeftShift(Usage(UsageInternational1)), "_"},
		{"JP_LBRACKET", []string{"LEFT_BRACKET", "LBKT", "LBRC"}, "RIGHT_BRACKET", "["},
		{"JP_RBRACKET", []string{"RIGHT_BRACKET", "RBKT", "RBRC"}, "BACKSLASH", "]"},
		{"JP_LPAREN", []string{"LEFT_PARENTHESIS", "LPAR"}, "ASTERISK", "("},
		{"JP_RPAREN", []string{"RIGHT_PARENTHESIS", "RPAR"}, "LEFT_PARENTHESIS", ")"},
		{"JP_LBRACE", []string{"LEFT_BRACE", "LBRC"}, "RIGHT_BRACE", "{"},
		{"JP_RBRACE", []string{"RIGHT_BRACE", "RBRC"}, "PIPE", "}"},
		{"JP_KANA", []string{"KANA"}, "LANGUAGE_1", "kana"},
		{"JP_EISU", []string{"EISU"}, "LANGUAGE_2", "eisu"},
		{"JP_HANZEN", []string{"HANZEN", "HANKAKU_ZENKAKU"}, "GRAVE", "hankaku/zenkaku"},
	}
}

// RestrictedTable returns the table used by the kp-only rewriter. It is the
// default table without the BACKSLASH spelling for the yen key.
func RestrictedTable() Table {
	t := DefaultTable()
	for i := range t {
		if t[i].Name == "JP_YEN" {
			t[i].Aliases = []string{"YEN"}
		}
	}
	return t
}

// Names returns the target names in table order.
func (t Table) Names() []string {
	out := make([]string, 0, len(t))
	for _, e := range t {
		out = append(out, e.Name)
	}
	return out
}

// Shadow describes an alias registered under more than one target name.
// Winner is the target the index resolves the alias to.
type Shadow struct {
	Alias  string
	Losers []string
	Winner string
}

// Shadowed reports every alias that appears more than once in the table,
// in order of first appearance.
func (t Table) Shadowed() []Shadow {
	seen := map[string][]string{}
	var order []string
	for _, e := range t {
		for _, a := range e.Aliases {
			if _, ok := seen[a]; !ok {
				order = append(order, a)
			}
			seen[a] = append(seen[a], e.Name)
		}
	}

	var out []Shadow
	for _, a := range order {
		targets := seen[a]
		if len(targets) < 2 {
			continue
		}
		out = append(out, Shadow{
			Alias:  a,
			Losers: targets[:len(targets)-1],
			Winner: targets[len(targets)-1],
		})
	}
	return out
}
