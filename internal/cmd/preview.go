package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/Alia5/zmkjis/internal/convert"
)

const (
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiReset = "\x1b[0m"
)

// Preview shows what convert would change without touching any file.
type Preview struct {
	Color  string `help:"Colorize output" enum:"auto,always,never" default:"auto" env:"ZMKJIS_COLOR"`
	Header bool   `help:"Also print the generated header"`

	File string `arg:"" name:"file" help:"Keymap file to preview" type:"path"`

	out io.Writer
}

// Run is called by Kong when the preview command is executed.
func (p *Preview) Run(logger *slog.Logger, g *Globals) error {
	s, err := g.Setup(logger)
	if err != nil {
		return err
	}

	f, err := os.Open(p.File)
	if err != nil {
		return fmt.Errorf("%w: %w", convert.ErrRead, err)
	}
	defer f.Close()

	out, err := convert.New(convert.Options{Rewriter: s.Rewriter, Logger: logger}).Convert(f)
	if err != nil {
		return err
	}

	w := writerOr(p.out)
	color := useColor(p.Color, w)

	if p.Header {
		fmt.Fprint(w, s.Header)
	}
	for _, c := range out.Changes {
		if color {
			fmt.Fprintf(w, "%d:\n%s-%s%s\n%s+%s%s\n", c.Line, ansiRed, c.Old, ansiReset, ansiGreen, c.New, ansiReset)
		} else {
			fmt.Fprintf(w, "%d:\n-%s\n+%s\n", c.Line, c.Old, c.New)
		}
	}

	logger.Info("Preview completed", "path", p.File, "lines", out.Lines, "changed", len(out.Changes))
	return nil
}

func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
