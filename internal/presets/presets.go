package presets

import "github.com/samdwyer/mazegen/internal/maze"

// PresetDef is a named size and generation method.
type PresetDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "large")
	Name        string `json:"name"`        // Display name (e.g., "Large")
	Size        int    `json:"size"`        // Cells per side
	Method      string `json:"method"`      // Generation method name
	Description string `json:"description"` // One line shown by `mazegen presets`
}

// Key returns the preset ID.
func (p PresetDef) Key() string {
	return p.ID
}

// GenerationMethod returns the preset's method. Unknown names are passed
// through so that maze.Generate applies its fallback.
func (p PresetDef) GenerationMethod() maze.Method {
	return maze.Method(p.Method)
}

// PresetsFile represents the structure of presets.json.
type PresetsFile struct {
	Presets []PresetDef `json:"presets"`
}

// LoadPresets loads preset definitions from the embedded presets.json file.
func LoadPresets() ([]PresetDef, error) {
	file, err := Load[PresetsFile]("presets.json")
	if err != nil {
		return nil, err
	}
	return file.Presets, nil
}

// LoadPresetRegistry loads presets.json into a registry.
func LoadPresetRegistry() (*Registry[PresetDef], error) {
	presets, err := LoadPresets()
	if err != nil {
		return nil, err
	}
	return newLoadedRegistry("presets.json", presets)
}

// MustLoadPresetRegistry loads a preset registry, panicking on error.
func MustLoadPresetRegistry() *Registry[PresetDef] {
	registry, err := LoadPresetRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}
