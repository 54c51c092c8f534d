package cmd

import (
	"log/slog"
	"strings"

	"github.com/Alia5/zmkjis/internal/convert"
)

// Convert rewrites a keymap in place after copying it to a backup.
type Convert struct {
	File string `arg:"" name:"file" help:"Keymap file to convert in place" type:"path"`
}

// Run is called by Kong when the convert command is executed.
func (c *Convert) Run(logger *slog.Logger, g *Globals) error {
	s, err := g.Setup(logger)
	if err != nil {
		return err
	}

	conv := convert.New(convert.Options{
		Rewriter:     s.Rewriter,
		Header:       s.Header,
		BackupSuffix: g.BackupSuffix,
		Logger:       logger,
	})
	res, err := conv.ConvertFile(c.File)
	if err != nil {
		return err
	}

	logger.Info("Lines converted", "count", res.LinesChanged, "lines", res.Lines)
	logger.Info("Total key definitions", "entries", len(s.Table), "aliases", s.Index.Len())
	logger.Info("Target bindings", "bindings", strings.Join(s.Rewriter.Rules().Keywords(), ", "))
	return nil
}
