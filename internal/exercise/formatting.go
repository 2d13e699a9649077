package exercise

import (
	"io"

	"github.com/aanand-mishra/lang-basics/internal/format"
	"github.com/aanand-mishra/lang-basics/internal/types"
	"github.com/aanand-mishra/lang-basics/internal/utils/report"
)

// Formatting prints one User in its debug, display, and pretty debug
// forms.
func Formatting() Func {
	return func(w io.Writer) error {
		user := types.User{Name: "fuyo", Age: 21}

		p := report.NewPrinter(w)
		p.Field("Debug format", format.Debug(user))
		p.Field("Display format", format.Display(user))
		p.Field("Pretty debug format", format.Pretty(user))
		return p.Err()
	}
}
