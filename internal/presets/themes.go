package presets

import "github.com/gdamore/tcell/v2"

// DefaultThemeID names the theme used when none is configured.
const DefaultThemeID = "classic"

// ThemeDef defines the viewer colours loaded from JSON.
type ThemeDef struct {
	ID     string `json:"id"`     // Unique identifier (e.g., "classic")
	Name   string `json:"name"`   // Display name
	Wall   string `json:"wall"`   // Hex colour of wall pixels
	Path   string `json:"path"`   // Hex colour of open pixels
	Start  string `json:"start"`  // Hex colour of the entry marker
	End    string `json:"end"`    // Hex colour of the exit marker
	Walker string `json:"walker"` // Hex colour of the walker
}

// Key returns the theme ID.
func (t ThemeDef) Key() string {
	return t.ID
}

// WallColor returns the wall colour, white if the hex value is malformed.
func (t ThemeDef) WallColor() tcell.Color { return colorOr(t.Wall, tcell.ColorWhite) }

// PathColor returns the path colour, black if the hex value is malformed.
func (t ThemeDef) PathColor() tcell.Color { return colorOr(t.Path, tcell.ColorBlack) }

// StartColor returns the entry marker colour.
func (t ThemeDef) StartColor() tcell.Color { return colorOr(t.Start, tcell.ColorGreen) }

// EndColor returns the exit marker colour.
func (t ThemeDef) EndColor() tcell.Color { return colorOr(t.End, tcell.ColorRed) }

// WalkerColor returns the walker colour.
func (t ThemeDef) WalkerColor() tcell.Color { return colorOr(t.Walker, tcell.ColorYellow) }

func colorOr(hex string, fallback tcell.Color) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		return fallback
	}
	return color
}

// ThemesFile represents the structure of themes.json.
type ThemesFile struct {
	Themes []ThemeDef `json:"themes"`
}

// LoadThemes loads theme definitions from the embedded themes.json file.
func LoadThemes() ([]ThemeDef, error) {
	file, err := Load[ThemesFile]("themes.json")
	if err != nil {
		return nil, err
	}
	return file.Themes, nil
}

// LoadThemeRegistry loads themes.json into a registry.
func LoadThemeRegistry() (*Registry[ThemeDef], error) {
	themes, err := LoadThemes()
	if err != nil {
		return nil, err
	}
	return newLoadedRegistry("themes.json", themes)
}

// MustLoadThemeRegistry loads a theme registry, panicking on error.
func MustLoadThemeRegistry() *Registry[ThemeDef] {
	registry, err := LoadThemeRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}
