package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/Alia5/zmkjis/internal/configpaths"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// ConfigCommand groups config-related subcommands.
type ConfigCommand struct {
	Init ConfigInit `cmd:"" help:"Generate a configuration template"`
}

// ConfigInit scaffolds a configuration file holding the global flags.
type ConfigInit struct {
	Format string `help:"Output format" enum:"json,yaml,yml,toml" default:"yaml"`
	Output string `help:"Destination file path (defaults to ./.zmkjis.<format>)"`
	Force  bool   `help:"Overwrite if the file already exists"`
}

// Run generates a configuration template by reflecting over Globals and
// its kong tags.
func (c *ConfigInit) Run() error {
	format := normalizeFormat(c.Format)
	if format == "" {
		return fmt.Errorf("unsupported format: %s", c.Format)
	}

	root := Template()

	dest := c.Output
	if dest == "" {
		dest = ".zmkjis." + format
	}
	if !c.Force {
		if _, err := os.Stat(dest); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}
	if err := configpaths.EnsureDir(dest); err != nil {
		return err
	}

	data, err := marshalTemplate(root, format)
	if err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0o644)
}

// Template returns the defaults of Globals as a flat map keyed by flag name.
// kong.JSON, kong-yaml and kong-toml all resolve global flags from top level
// keys of that shape. Path flags and lists without a default are left out.
func Template() map[string]any {
	return buildMapFromStruct(reflect.TypeOf(Globals{}))
}

func marshalTemplate(root map[string]any, format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(root, "", "  ")
	case "yaml":
		return yaml.Marshal(root)
	case "toml":
		return toml.Marshal(root)
	}
	return nil, fmt.Errorf("unsupported format: %s", format)
}

func normalizeFormat(f string) string {
	switch strings.ToLower(f) {
	case "json":
		return "json"
	case "yaml", "yml":
		return "yaml"
	case "toml":
		return "toml"
	default:
		return ""
	}
}

// flagName mirrors kong's default flag naming: CamelCase becomes kebab-case.
func flagName(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

func buildMapFromStruct(t reflect.Type) map[string]any {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	out := map[string]any{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if f.Tag.Get("kong") == "-" {
			continue
		}
		if _, ok := f.Tag.Lookup("arg"); ok {
			continue
		}

		if _, ok := f.Tag.Lookup("embed"); ok {
			prefix := f.Tag.Get("prefix")
			for k, v := range buildMapFromStruct(f.Type) {
				out[prefix+k] = v
			}
			continue
		}

		key := f.Tag.Get("name")
		if key == "" {
			key = flagName(f.Name)
		}
		def := f.Tag.Get("default")
		if def == "" && f.Tag.Get("type") == "path" {
			continue
		}
		if val := defaultValueForField(f.Type, def); val != nil {
			out[key] = val
		}
	}
	return out
}

func defaultValueForField(t reflect.Type, def string) any {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return def
	case reflect.Bool:
		b, err := strconv.ParseBool(def)
		if err != nil {
			return false
		}
		return b
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(def, 10, 64)
		if err != nil {
			return 0
		}
		return n
	case reflect.Slice:
		if def == "" {
			return nil
		}
		var out []any
		for _, s := range strings.Split(def, ",") {
			out = append(out, s)
		}
		return out
	case reflect.Struct:
		return buildMapFromStruct(t)
	default:
		return nil
	}
}
