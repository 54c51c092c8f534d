package jis_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/zmkjis/jis"
)

const yamlTable = `
entries:
  - name: JP_AT
    aliases: [AT]
    value: LEFT_BRACKET
    symbol: "@"
  - name: JP_KANA
    aliases: [KANA, KATAKANA]
    value: LANGUAGE_1
rules:
  kp: 0
  my_mt: -1
`

const tomlTable = `
[[entries]]
name = "JP_AT"
aliases = ["AT"]
value = "LEFT_BRACKET"
symbol = "@"

[[entries]]
name = "JP_KANA"
aliases = ["KANA", "KATAKANA"]
value = "LANGUAGE_1"

[rules]
kp = 0
my_mt = -1
`

func assertLoadedTable(t *testing.T, tf *jis.TableFile) {
	t.Helper()

	table := tf.Table()
	require.Len(t, table, 2)
	assert.Equal(t, jis.Entry{Name: "JP_AT", Aliases: []string{"AT"}, Value: "LEFT_BRACKET", Symbol: "@"}, table[0])
	assert.Equal(t, []string{"KANA", "KATAKANA"}, table[1].Aliases)
	// Symbol defaults to the define name.
	assert.Equal(t, "JP_KANA", table[1].Symbol)
	assert.Equal(t, map[string]int{"kp": 0, "my_mt": -1}, tf.Rules)
}

func TestParseYAML(t *testing.T) {
	tf, err := jis.ParseYAML([]byte(yamlTable))
	require.NoError(t, err)
	assertLoadedTable(t, tf)
}

func TestParseTOML(t *testing.T) {
	tf, err := jis.ParseTOML([]byte(tomlTable))
	require.NoError(t, err)
	assertLoadedTable(t, tf)
}

func TestLoadTableFile(t *testing.T) {
	dir := t.TempDir()

	files := map[string]string{
		"table.yaml": yamlTable,
		"table.yml":  yamlTable,
		"table.toml": tomlTable,
	}
	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			tf, err := jis.LoadTableFile(path)
			require.NoError(t, err)
			assertLoadedTable(t, tf)
		})
	}
}

func TestLoadTableFileErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := jis.LoadTableFile(filepath.Join(dir, "missing.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unknown extension", func(t *testing.T) {
		path := filepath.Join(dir, "table.json")
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
		_, err := jis.LoadTableFile(path)
		assert.ErrorContains(t, err, "unsupported table file extension")
	})

	t.Run("invalid entry", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("entries:\n  - name: JP_AT\n    value: LEFT_BRACKET\n"), 0o644))
		_, err := jis.LoadTableFile(path)
		assert.ErrorContains(t, err, "no aliases")
		assert.ErrorContains(t, err, path)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := jis.ParseYAML([]byte("entries: ["))
		assert.ErrorContains(t, err, "failed to parse table YAML")
	})

	t.Run("malformed toml", func(t *testing.T) {
		_, err := jis.ParseTOML([]byte("[[entries]\n"))
		assert.ErrorContains(t, err, "failed to parse table TOML")
	})
}
