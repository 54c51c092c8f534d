package keymap

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// bindingLexer splits a keymap line into the pieces a binding invocation is
// made of. Every byte of a line belongs to exactly one token, so the
// original text can always be reproduced from token offsets.
var bindingLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Binding marker: &kp, &mt, ...
	{Name: "Marker", Pattern: `&`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Space", Pattern: `\s+`},
	// Terminators of a binding's argument list inside bindings = <...>;
	{Name: "Stop", Pattern: `[,;>]`},
	{Name: "Other", Pattern: `[^&a-zA-Z_\s,;>]+`},
})

type lexerToken = lexer.Token

var (
	tokMarker = bindingLexer.Symbols()["Marker"]
	tokIdent  = bindingLexer.Symbols()["Ident"]
	tokSpace  = bindingLexer.Symbols()["Space"]
	tokStop   = bindingLexer.Symbols()["Stop"]
)

func tokenize(line string) ([]lexer.Token, error) {
	lex, err := bindingLexer.LexString("", line)
	if err != nil {
		return nil, err
	}
	return lexer.ConsumeAll(lex)
}

// invocation is one "&keyword args" occurrence. Offsets are byte offsets
// into the line; [start, end) is the text the invocation replaces.
type invocation struct {
	start    int
	keyword  string
	argStart int
	end      int
}

// parseInvocation tries to read an invocation starting at the marker
// token toks[i].
func parseInvocation(line string, toks []lexer.Token, i int, p Policy) (invocation, bool) {
	if i+3 >= len(toks) {
		return invocation{}, false
	}
	kw, sp := toks[i+1], toks[i+2]
	if kw.Type != tokIdent || sp.Type != tokSpace {
		return invocation{}, false
	}
	argStart := toks[i+3].Pos.Offset
	end := p.extent(line, toks[i+3:])
	if end <= argStart {
		return invocation{}, false
	}
	return invocation{
		start:    toks[i].Pos.Offset,
		keyword:  kw.Value,
		argStart: argStart,
		end:      end,
	}, true
}

// spanExtent runs the argument text up to the next terminator or the end
// of the line. Nested wrapper expressions such as LS(LC(A)) stay inside
// the span as ordinary text.
func spanExtent(line string, toks []lexer.Token) int {
	for _, t := range toks {
		if t.EOF() || t.Type == tokStop {
			return t.Pos.Offset
		}
	}
	return len(line)
}

// identExtent takes the longest run of upper case letters, digits and
// underscores.
func identExtent(line string, toks []lexer.Token) int {
	if len(toks) == 0 || toks[0].EOF() {
		return len(line)
	}
	i := toks[0].Pos.Offset
	for i < len(line) {
		c := line[i]
		if c != '_' && (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			break
		}
		i++
	}
	return i
}
