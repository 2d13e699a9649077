package exercise

import (
	"io"
	"strings"

	"github.com/aanand-mishra/lang-basics/internal/codec/text"
	"github.com/aanand-mishra/lang-basics/internal/format"
	"github.com/aanand-mishra/lang-basics/internal/types"
	"github.com/aanand-mishra/lang-basics/internal/utils/report"
)

// Attributes encodes records whose struct tags rename, conditionally
// omit, and always omit fields, using the text format f.
func Attributes(f text.Format) Func {
	return func(w io.Writer) error {
		label := strings.ToUpper(string(f))
		p := report.NewPrinter(w)

		// Basic round trip: encode, then decode into a fresh value.
		user := types.User{Name: "Alice", Age: 30}
		if err := report.Check(user); err != nil {
			return err
		}

		out, err := text.Encode(f, user)
		if err != nil {
			return err
		}
		p.Field(label, trim(out))

		var back types.User
		if err := text.Decode(f, out, &back); err != nil {
			return err
		}
		p.Field("Back to struct", format.Debug(back))

		// Tag policies: Email is nil so it is left out, Password always is.
		contact := types.Contact{Name: "Bob", Email: nil, Password: "secret"}
		if err := report.Check(contact); err != nil {
			return err
		}

		out, err = text.Encode(f, contact)
		if err != nil {
			return err
		}
		p.Field("Contact "+label, trim(out))

		out, err = text.Encode(f, statusDocument(f, types.StatusActive))
		if err != nil {
			return err
		}
		p.Field("Status", trim(out))

		return p.Err()
	}
}

// statusDocument returns the value to encode for a bare status. A TOML
// document must be a table, so there the status goes under a key.
func statusDocument(f text.Format, s types.Status) any {
	if f == text.TOML {
		return map[string]types.Status{"status": s}
	}
	return s
}

func trim(b []byte) string {
	return strings.TrimRight(string(b), "\n")
}
