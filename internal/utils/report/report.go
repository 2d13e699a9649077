// Package report provides helpers for writing consistent console output
// and for turning validation failures into one readable error.
//
// Every exercise prints numbered sections and labelled lines. Rather
// than repeating the same Fprintf calls everywhere, we centralise them
// here so all exercises look alike.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is created once: validator.New() builds and caches struct
// metadata, so sharing a single instance avoids redoing that work.
var validate = validator.New()

// Printer writes exercise output and remembers the first write error,
// so callers can print many lines and check once with Err.
type Printer struct {
	w   io.Writer
	err error
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Title prints a banner line followed by a blank line:
//
//	=== Custom Derive Macros Examples ===
func (p *Printer) Title(title string) {
	p.Linef("=== %s ===", title)
	p.Line("")
}

// Section prints a numbered section heading such as "1. Debug trait:".
func (p *Printer) Section(n int, heading string) {
	p.Linef("%d. %s:", n, heading)
}

// Field prints "label: value".
func (p *Printer) Field(label string, value any) {
	p.Linef("%s: %v", label, value)
}

func (p *Printer) Line(s string) {
	p.Linef("%s", s)
}

func (p *Printer) Linef(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

// Err returns the first write error, if any.
func (p *Printer) Err() error { return p.err }

// ─────────────────────────────────────────────────────────────────────────────
// Check validates v against its validate:"..." struct tags.
//
// It returns nil for a valid record, the ValidationError sentence for
// rule failures, and any other validator error (e.g. v is not a struct)
// unchanged.
// ─────────────────────────────────────────────────────────────────────────────
func Check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return ValidationError(verrs)
	}
	return err
}

// ValidationError converts a slice of validator.FieldError values into
// a single human-readable error.
//
// Example:
//
//	field Name is required, field Price must be greater than or equal to 0
func ValidationError(errs validator.ValidationErrors) error {
	var errMessages []string

	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is required", e.Field()))
		case "email":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be a valid email address", e.Field()))
		case "gte":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be greater than or equal to %s", e.Field(), e.Param()))
		default:
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return errors.New(strings.Join(errMessages, ", "))
}
