// Package viewer provides the interactive maze window: regenerate, size and
// method controls, and a walker to explore the result.
package viewer

// State represents what the viewer is doing.
type State int

const (
	// StateIdle accepts every command.
	StateIdle State = iota
	// StateGenerating means a worker is building a maze; further generate
	// requests are ignored until it reports back.
	StateGenerating
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateGenerating:
		return "generating"
	default:
		return "unknown"
	}
}
