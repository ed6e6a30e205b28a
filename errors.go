package typeschema

import (
	"errors"
	"fmt"
)

// ErrDepthExceeded reports a type graph deeper than the configured
// ConvertOpt.MaxDepth. Self-referential record types hit this guard
// instead of recursing without bound; they are otherwise unsupported.
var ErrDepthExceeded = errors.New("typeschema: type graph exceeds maximum depth")

// UnsupportedTypeError reports a descriptor that matched no dispatch rule
// and that no TypeHandler resolved. It propagates unchanged to the caller;
// there is no partial-result mode.
type UnsupportedTypeError struct {
	Type  Type   // offending descriptor; nil for a missing annotation
	Param string // parameter name when raised during signature conversion
}

func (e *UnsupportedTypeError) Error() string {
	switch {
	case e.Type == nil && e.Param != "":
		return fmt.Sprintf("typeschema: parameter %q is missing a type annotation", e.Param)
	case e.Type == nil:
		return "typeschema: missing type descriptor"
	case e.Param != "":
		return fmt.Sprintf("typeschema: unsupported type %s for parameter %q", e.Type, e.Param)
	default:
		return fmt.Sprintf("typeschema: unsupported type %s", e.Type)
	}
}
