// Package config defines the kong command line of zmkjis.
package config

import (
	"github.com/Alia5/zmkjis/internal/cmd"
)

// CLI is the root kong model. Global flags live here; every command is a
// struct with a Run method in internal/cmd.
type CLI struct {
	ConfigFile  string `name:"config" help:"Configuration file (json, yaml or toml)" type:"path" env:"ZMKJIS_CONFIG"`
	cmd.Globals `embed:""`

	Convert cmd.Convert       `cmd:"" default:"withargs" help:"Convert a US layout keymap to JIS aliases in place (default command)"`
	Preview cmd.Preview       `cmd:"" help:"Show the lines convert would change without writing anything"`
	Header  cmd.Header        `cmd:"" help:"Print the generated JIS define header"`
	Table   cmd.Table         `cmd:"" help:"List the conversion table and binding rules"`
	Config  cmd.ConfigCommand `cmd:"" help:"Configuration file helpers"`
}
