package cmd

import (
	"fmt"
	"log/slog"

	"github.com/Alia5/zmkjis/internal/log"
	"github.com/Alia5/zmkjis/jis"
	"github.com/Alia5/zmkjis/keymap"
)

// Globals are the flags every command accepts. Commands receive them through
// a kong binding, and config files set them by flag name at the top level.
type Globals struct {
	Log          log.Config `embed:"" prefix:"log-"`
	Layout       `embed:""`
	BackupSuffix string `help:"Suffix appended to the input path for the backup copy" default:"_original" env:"ZMKJIS_BACKUP_SUFFIX"`
}

// Layout holds the flags that select the conversion table and rewriter.
type Layout struct {
	Variant string   `help:"Rewriter variant: general (kp, mt, lt, ...) or restricted (kp only)" enum:"general,restricted" default:"general" env:"ZMKJIS_VARIANT"`
	Table   string   `help:"YAML or TOML conversion table used instead of the built-in one" type:"path" env:"ZMKJIS_TABLE"`
	Rule    []string `help:"Additional binding rule keyword=index, negative counts from the end (general variant only)" placeholder:"KW=IDX" env:"ZMKJIS_RULES"`
}

// Setup is everything a conversion needs, resolved from Layout.
type Setup struct {
	Table    jis.Table
	Index    jis.Index
	Header   string
	Rewriter *keymap.Rewriter
}

// Setup loads the selected table and builds the header, index and rewriter.
func (l *Layout) Setup(logger *slog.Logger) (*Setup, error) {
	restricted := l.Variant == "restricted"

	table := jis.DefaultTable()
	pad := jis.PadAtLeastOne
	rules := keymap.DefaultRules()
	if restricted {
		table = jis.RestrictedTable()
		pad = jis.PadExact
	}

	custom := len(l.Rule) > 0
	if l.Table != "" {
		tf, err := jis.LoadTableFile(l.Table)
		if err != nil {
			return nil, err
		}
		table = tf.Table()
		rules = rules.Merge(tf.Rules)
		custom = custom || len(tf.Rules) > 0
		logger.Info("Loaded conversion table", "path", l.Table, "entries", len(table), "rules", len(tf.Rules))
	}

	for _, r := range l.Rule {
		kw, sel, err := keymap.ParseRule(r)
		if err != nil {
			return nil, err
		}
		rules[kw] = sel
	}
	if restricted && custom {
		logger.Warn("Binding rules are ignored by the restricted variant")
	}

	for _, s := range table.Shadowed() {
		logger.Warn("Alias listed under several defines, last one wins",
			"alias", s.Alias, "winner", s.Winner, "shadowed", s.Losers)
	}

	header, err := jis.RenderHeader(table, pad)
	if err != nil {
		return nil, fmt.Errorf("failed to render header: %w", err)
	}

	index := jis.BuildIndex(table)
	rw := keymap.NewGeneral(index, rules)
	if restricted {
		rw = keymap.NewRestricted(index)
	}

	return &Setup{
		Table:    table,
		Index:    index,
		Header:   header,
		Rewriter: rw,
	}, nil
}
