package maze

import (
	"errors"
	"fmt"
)

// Method names a generation algorithm.
type Method string

const (
	// DepthFirst1 is the randomized depth-first traversal that tracks a seen
	// set, so no coordinate is pushed onto the stack twice.
	DepthFirst1 Method = "depth-first-1"
	// DepthFirst2 is the same traversal without the seen set. A coordinate
	// may sit on the stack several times before it is first popped.
	DepthFirst2 Method = "depth-first-2"

	// DefaultMethod is used when no method or an unknown one is requested.
	DefaultMethod = DepthFirst1
)

// ErrUnknownMethod is returned by ParseMethod for unrecognised names.
var ErrUnknownMethod = errors.New("unknown generation method")

// Methods returns every supported method in display order.
func Methods() []Method {
	return []Method{DepthFirst1, DepthFirst2}
}

// ParseMethod validates a method name.
func ParseMethod(name string) (Method, error) {
	switch m := Method(name); m {
	case DepthFirst1, DepthFirst2:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
}

// trackSeen reports whether the traversal keeps a seen set for m.
func (m Method) trackSeen() bool {
	return m != DepthFirst2
}

// Label returns the name shown in the viewer, e.g. "Depth First 1".
func (m Method) Label() string {
	switch m {
	case DepthFirst1:
		return "Depth First 1"
	case DepthFirst2:
		return "Depth First 2"
	default:
		return string(m)
	}
}
