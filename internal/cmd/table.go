package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
)

// Header prints the define block that convert prepends.
type Header struct {
	out io.Writer
}

// Run is called by Kong when the header command is executed.
func (h *Header) Run(logger *slog.Logger, g *Globals) error {
	s, err := g.Setup(logger)
	if err != nil {
		return err
	}
	_, err = io.WriteString(writerOr(h.out), s.Header)
	return err
}

// Table lists the conversion table and binding rules in effect.
type Table struct {
	out io.Writer
}

// Run is called by Kong when the table command is executed.
func (t *Table) Run(logger *slog.Logger, g *Globals) error {
	s, err := g.Setup(logger)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(writerOr(t.out), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DEFINE\tVALUE\tSYMBOL\tALIASES")
	for _, e := range s.Table {
		var aliases []string
		for _, a := range e.Aliases {
			if name, _ := s.Index.Lookup(a); name != e.Name {
				a += " (-> " + name + ")"
			}
			aliases = append(aliases, a)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Name, e.Value, e.Symbol, strings.Join(aliases, ", "))
	}
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "BINDING\tARGUMENT\t(%s policy)\n", s.Rewriter.Policy())
	rules := s.Rewriter.Rules()
	for _, kw := range rules.Keywords() {
		fmt.Fprintf(tw, "&%s\t%s\t\n", kw, describeSelector(rules[kw]))
	}
	return tw.Flush()
}

func describeSelector(sel int) string {
	switch {
	case sel == -1:
		return "last"
	case sel < 0:
		return fmt.Sprintf("%d from end", -sel)
	default:
		return fmt.Sprintf("%d", sel)
	}
}

func writerOr(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
