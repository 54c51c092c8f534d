package jis_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/zmkjis/jis"
)

func TestRenderHeader(t *testing.T) {
	table := jis.DefaultTable()
	header, err := jis.RenderHeader(table, jis.PadAtLeastOne)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(header, "\n"), "\n")
	require.Len(t, lines, jis.HeaderLines(table))
	assert.Equal(t, 3+23+1, jis.HeaderLines(table))

	assert.Equal(t, "// ========================================", lines[0])
	assert.Equal(t, "// JIS Keyboard Layout Definitions", lines[1])
	assert.Equal(t, "// ========================================", lines[2])
	assert.Equal(t, `#define JP_DQUOTE           AT                  // "`, lines[3])
	assert.Equal(t, "#define JP_YEN              0x89                // ¥", lines[8])
	assert.Equal(t, "#define JP_PIPE             LS(0x89)            // |", lines[11])
	assert.Equal(t, "#define JP_HANZEN           GRAVE               // hankaku/zenkaku", lines[25])
	assert.Equal(t, "", lines[26])
	assert.True(t, strings.HasSuffix(header, "hankaku/zenkaku\n\n"))
}

func TestRenderHeaderValueColumn(t *testing.T) {
	header, err := jis.RenderHeader(jis.DefaultTable(), jis.PadAtLeastOne)
	require.NoError(t, err)

	for _, l := range strings.Split(header, "\n") {
		if !strings.HasPrefix(l, "#define ") {
			continue
		}
		// "#define " + 20 name columns + 20 value columns
		assert.Equal(t, "// ", l[48:51], l)
	}
}

func TestPadding(t *testing.T) {
	tests := []struct {
		name    string
		define  string
		pad     jis.Padding
		want    int
		tooLong bool
	}{
		{"short at least one", "JP_AT", jis.PadAtLeastOne, 15, false},
		{"19 bytes at least one", strings.Repeat("X", 19), jis.PadAtLeastOne, 1, false},
		{"20 bytes at least one", strings.Repeat("X", 20), jis.PadAtLeastOne, 1, false},
		{"long at least one", strings.Repeat("X", 30), jis.PadAtLeastOne, 1, false},
		{"short exact", "JP_AT", jis.PadExact, 15, false},
		{"19 bytes exact", strings.Repeat("X", 19), jis.PadExact, 1, false},
		{"20 bytes exact", strings.Repeat("X", 20), jis.PadExact, 0, true},
		{"long exact", strings.Repeat("X", 30), jis.PadExact, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.pad(tt.define)
			if tt.tooLong {
				assert.ErrorIs(t, err, jis.ErrNameTooLong)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, strings.Repeat(" ", tt.want), got)
		})
	}
}

func TestRenderHeaderExactRejectsLongNames(t *testing.T) {
	table := jis.Table{{Name: "JP_A_VERY_LONG_DEFINE", Aliases: []string{"X"}, Value: "A", Symbol: "a"}}

	_, err := jis.RenderHeader(table, jis.PadExact)
	assert.ErrorIs(t, err, jis.ErrNameTooLong)

	header, err := jis.RenderHeader(table, jis.PadAtLeastOne)
	require.NoError(t, err)
	assert.Contains(t, header, "#define JP_A_VERY_LONG_DEFINE A                   // a\n")
}

func TestRenderHeaderRestrictedMatchesGeneral(t *testing.T) {
	// No built-in name reaches the name column, so both paddings agree.
	general, err := jis.RenderHeader(jis.RestrictedTable(), jis.PadAtLeastOne)
	require.NoError(t, err)
	exact, err := jis.RenderHeader(jis.RestrictedTable(), jis.PadExact)
	require.NoError(t, err)
	assert.Equal(t, general, exact)
}

func TestRenderHeaderNilPadding(t *testing.T) {
	a, err := jis.RenderHeader(jis.DefaultTable(), nil)
	require.NoError(t, err)
	b, err := jis.RenderHeader(jis.DefaultTable(), jis.PadAtLeastOne)
	require.NoError(t, err)
	assert.Equal(t, b, a)
}
