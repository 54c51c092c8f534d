// Package keymap rewrites key-name arguments of ZMK binding invocations
// (&kp, &mt, &lt, ...) using a jis.Index.
package keymap

import (
	"strings"

	"github.com/Alia5/zmkjis/jis"
)

// LineRewriter rewrites a single keymap line. The returned flag reports
// whether the output differs from the input.
type LineRewriter interface {
	Rewrite(line string) (string, bool)
}

// Policy controls how a binding's argument text is located and what is
// emitted for it.
type Policy struct {
	name   string
	extent func(line string, toks []lexerToken) int
	// claimUnknown lets bindings missing from the rules consume their
	// argument text, so invocations inside it are never looked at.
	claimUnknown bool
	// normalize rejoins arguments with single spaces even when the key
	// argument is not in the index.
	normalize bool
}

func (p Policy) String() string { return p.name }

var (
	// SpanPolicy treats everything up to ',', ';', '>' or the end of the
	// line as a whitespace separated argument list.
	SpanPolicy = Policy{name: "span", extent: spanExtent, claimUnknown: true, normalize: true}
	// IdentPolicy reads a single argument made of [A-Z0-9_] and only ever
	// touches the text when that argument is converted.
	IdentPolicy = Policy{name: "ident", extent: identExtent}
)

// Rewriter implements LineRewriter for one index, rule set and policy.
type Rewriter struct {
	index  jis.Index
	rules  Rules
	policy Policy
}

var _ LineRewriter = (*Rewriter)(nil)

// New builds a Rewriter.
func New(index jis.Index, rules Rules, policy Policy) *Rewriter {
	return &Rewriter{index: index, rules: rules, policy: policy}
}

// NewGeneral converts the selected argument of every binding in rules.
func NewGeneral(index jis.Index, rules Rules) *Rewriter {
	return New(index, rules, SpanPolicy)
}

// NewRestricted converts only the first argument of &kp.
func NewRestricted(index jis.Index) *Rewriter {
	return New(index, Rules{"kp": 0}, IdentPolicy)
}

// Rules returns the binding rules the rewriter applies.
func (r *Rewriter) Rules() Rules { return r.rules }

// Policy returns the argument policy.
func (r *Rewriter) Policy() Policy { return r.policy }

// Rewrite substitutes aliases in every recognized binding on line and
// reports whether the line changed.
func (r *Rewriter) Rewrite(line string) (string, bool) {
	toks, err := tokenize(line)
	if err != nil {
		return line, false
	}

	var b strings.Builder
	done := 0
	for i, t := range toks {
		if t.EOF() || t.Type != tokMarker || t.Pos.Offset < done {
			continue
		}
		inv, ok := parseInvocation(line, toks, i, r.policy)
		if !ok {
			continue
		}
		if _, known := r.rules[inv.keyword]; !known && !r.policy.claimUnknown {
			continue
		}
		b.WriteString(line[done:inv.start])
		b.WriteString(r.replace(line, inv))
		done = inv.end
	}
	if done == 0 {
		return line, false
	}
	b.WriteString(line[done:])

	out := b.String()
	return out, out != line
}

func (r *Rewriter) replace(line string, inv invocation) string {
	orig := line[inv.start:inv.end]

	args := strings.Fields(line[inv.argStart:inv.end])
	if len(args) == 0 {
		return orig
	}
	idx, ok := r.rules.Resolve(inv.keyword, len(args))
	if !ok {
		return orig
	}
	name, hit := r.index.Lookup(args[idx])
	if !hit && !r.policy.normalize {
		return orig
	}
	if hit {
		args[idx] = name
	}
	return "&" + inv.keyword + " " + strings.Join(args, " ")
}
