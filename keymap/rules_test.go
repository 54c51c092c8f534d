package keymap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/zmkjis/keymap"
)

func TestResolve(t *testing.T) {
	rules := keymap.DefaultRules()

	tests := []struct {
		name    string
		keyword string
		argc    int
		want    int
		ok      bool
	}{
		{"kp first", "kp", 1, 0, true},
		{"kp extra args", "kp", 3, 0, true},
		{"kp no args", "kp", 0, 0, false},
		{"mt last of two", "mt", 2, 1, true},
		{"mt last of one", "mt", 1, 0, true},
		{"lt last", "lt", 2, 1, true},
		{"lt_to_layer_0 last", "lt_to_layer_0", 2, 1, true},
		{"mt no args", "mt", 0, 0, false},
		{"unknown keyword", "bt", 2, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := rules.Resolve(tt.keyword, tt.argc)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeywords(t *testing.T) {
	assert.Equal(t, []string{"kp", "lt", "lt_to_layer_0", "mt"}, keymap.DefaultRules().Keywords())
	assert.Empty(t, keymap.Rules{}.Keywords())
}

func TestMerge(t *testing.T) {
	base := keymap.DefaultRules()
	merged := base.Merge(keymap.Rules{"mt": 0, "hm": -1})

	assert.Equal(t, 0, merged["mt"])
	assert.Equal(t, -1, merged["hm"])
	assert.Equal(t, 0, merged["kp"])
	// The receiver is left alone.
	assert.Equal(t, -1, base["mt"])
	assert.NotContains(t, base, "hm")

	assert.Equal(t, base, base.Merge(nil))
}

func TestParseRule(t *testing.T) {
	tests := []struct {
		in      string
		kw      string
		sel     int
		wantErr string
	}{
		{in: "mt=-1", kw: "mt", sel: -1},
		{in: "kp=0", kw: "kp", sel: 0},
		{in: " hm = 2 ", kw: "hm", sel: 2},
		{in: "lt_to_layer_0=-1", kw: "lt_to_layer_0", sel: -1},
		{in: "mt", wantErr: "expected keyword=index"},
		{in: "=1", wantErr: "is not a binding keyword"},
		{in: "1mt=1", wantErr: "is not a binding keyword"},
		{in: "&kp=0", wantErr: "is not a binding keyword"},
		{in: "mt=last", wantErr: "invalid syntax"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			kw, sel, err := keymap.ParseRule(tt.in)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.kw, kw)
			assert.Equal(t, tt.sel, sel)
		})
	}
}
