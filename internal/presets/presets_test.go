package presets

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/mazegen/internal/maze"
)

func TestLoadPresets(t *testing.T) {
	presets, err := LoadPresets()
	require.NoError(t, err)
	require.NotEmpty(t, presets)

	for _, p := range presets {
		assert.NotEmpty(t, p.ID)
		assert.GreaterOrEqual(t, p.Size, 1, "preset %s", p.ID)
		assert.LessOrEqual(t, p.Size, 100, "preset %s", p.ID)

		_, err := maze.ParseMethod(p.Method)
		assert.NoError(t, err, "preset %s has an unknown method", p.ID)
	}
}

func TestPresetRegistry(t *testing.T) {
	registry, err := LoadPresetRegistry()
	require.NoError(t, err)

	assert.Equal(t, 6, registry.Count())
	assert.Equal(t, []string{"tiny", "default", "medium", "tangled", "large", "huge"}, registry.IDs())

	def := registry.GetByID("default")
	require.NotNil(t, def)
	assert.Equal(t, 5, def.Size)
	assert.Equal(t, maze.DepthFirst1, def.GenerationMethod())

	assert.Nil(t, registry.GetByID("missing"))

	_, err = registry.Lookup("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestThemeRegistry(t *testing.T) {
	registry := MustLoadThemeRegistry()

	classic, err := registry.Lookup(DefaultThemeID)
	require.NoError(t, err)
	assert.Equal(t, tcell.NewRGBColor(255, 255, 255), classic.WallColor())
	assert.Equal(t, tcell.NewRGBColor(0, 0, 0), classic.PathColor())

	for _, theme := range registry.All() {
		for _, hex := range []string{theme.Wall, theme.Path, theme.Start, theme.End, theme.Walker} {
			_, err := ParseHexColor(hex)
			assert.NoError(t, err, "theme %s colour %s", theme.ID, hex)
		}
	}
}

func TestThemeFallbackColors(t *testing.T) {
	theme := ThemeDef{ID: "broken", Wall: "nope", Path: "#12"}
	assert.Equal(t, tcell.ColorWhite, theme.WallColor())
	assert.Equal(t, tcell.ColorBlack, theme.PathColor())
	assert.Equal(t, tcell.ColorGreen, theme.StartColor())
}

func TestNewRegistryDuplicates(t *testing.T) {
	registry := NewRegistry([]PresetDef{
		{ID: "a", Size: 1},
		{ID: "a", Size: 2},
	})
	assert.Equal(t, 2, registry.Count())
	assert.Equal(t, 2, registry.GetByID("a").Size)
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00ff00", true},
		{"#FFF", false},
		{"#GGGGGG", false},
		{"", false},
		{"#FF00000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid {
			assert.NoError(t, err, tt.input)
		} else {
			assert.Error(t, err, tt.input)
		}
	}

	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), MustParseHexColor("#FF0000"))
	assert.Panics(t, func() { MustParseHexColor("bad") })
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load[PresetsFile]("missing.json")
	assert.Error(t, err)
	assert.Panics(t, func() { MustLoad[PresetsFile]("missing.json") })
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := decode[PresetsFile]("bad.json", []byte(`{"presets": [{"id": "x", "sise": 4}]}`))
	assert.ErrorContains(t, err, "bad.json")

	_, err = decode[PresetsFile]("twice.json", []byte(`{"presets": []} {"presets": []}`))
	assert.Error(t, err)

	file, err := decode[PresetsFile]("ok.json", []byte(`{"presets": [{"id": "x", "size": 4}]}`))
	require.NoError(t, err)
	require.Len(t, file.Presets, 1)
	assert.Equal(t, 4, file.Presets[0].Size)
}
