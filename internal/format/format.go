// Package format renders records as text in the three styles used by the
// formatting exercise:
//
//	Debug   — one line, shows field names and quoted strings
//	Display — the record's own human-readable String()
//	Pretty  — multi-line structured dump, one field per line
package format

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// pretty is shared by every Pretty call. A spew.ConfigState is only
// read while dumping, so one value is safe to reuse.
var pretty = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true, // dump fields, not the String() result
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Debug returns the one-line debug form of v.
//
// Records that implement fmt.GoStringer choose their own debug text.
// Everything else falls back to the type name plus %+v, which prints
// field names next to their values:
//
//	types.DebugUser{Name:Bob Num:42}
func Debug(v any) string {
	if gs, ok := v.(fmt.GoStringer); ok {
		return gs.GoString()
	}
	return fmt.Sprintf("%T%+v", v, v)
}

// Display returns the human-readable form of v.
func Display(v fmt.Stringer) string {
	return v.String()
}

// Pretty returns a multi-line dump of v without the trailing newline:
//
//	(types.User) {
//	  Name: (string) (len=4) "fuyo",
//	  Age: (uint32) 21
//	}
func Pretty(v any) string {
	return strings.TrimRight(pretty.Sdump(v), "\n")
}
