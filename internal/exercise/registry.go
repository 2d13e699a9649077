// Package exercise contains the runnable exercises and the registry that
// names and orders them.
//
// EXERCISE PATTERN USED HERE — THE CLOSURE / FACTORY PATTERN:
// ────────────────────────────────────────────────────────────
// Every exercise has the same signature:
//
//	func(w io.Writer) error
//
// That signature has no room for extra parameters like a database or an
// output format. To inject dependencies each exercise is built by a
// factory that:
//  1. Accepts dependencies (storage, format)
//  2. Returns a function with the exact signature the registry needs
//
//	reg.Handle("derives", exercise.Derives(store))
//	//                     ^^^^^^^^^^^^^^^^^^^^^^
//	//       Derives(store) is called ONCE at startup; the returned
//	//       function runs each time the exercise is run.
package exercise

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
)

// ErrUnknownExercise is returned when a name has no registered exercise.
var ErrUnknownExercise = errors.New("unknown exercise")

// Func is a single runnable exercise. It writes its output to w.
type Func func(w io.Writer) error

// Registry maps exercise names to their functions and remembers the
// order in which they were registered.
type Registry struct {
	names []string
	funcs map[string]Func
}

func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]Func)}
}

// Handle registers fn under name. Like http.ServeMux, registering the
// same name twice is a programming error and panics.
func (r *Registry) Handle(name string, fn Func) *Registry {
	if fn == nil {
		panic("exercise: nil func for " + name)
	}
	if _, exists := r.funcs[name]; exists {
		panic("exercise: duplicate registration for " + name)
	}

	r.names = append(r.names, name)
	r.funcs[name] = fn
	return r
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

// Run runs one exercise by name.
func (r *Registry) Run(name string, w io.Writer) error {
	fn, ok := r.funcs[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownExercise, name)
	}

	slog.Debug("running exercise", slog.String("name", name))

	if err := fn(w); err != nil {
		return fmt.Errorf("exercise %s: %w", name, err)
	}
	return nil
}

// RunAll runs every registered exercise in order.
func (r *Registry) RunAll(w io.Writer) error {
	return r.RunSelected(r.names, w)
}

// RunSelected runs the named exercises in the given order, separated by
// a blank line. The first failure stops the run: each exercise is
// terminal on error, as a standalone program would be.
// An empty list runs everything.
func (r *Registry) RunSelected(names []string, w io.Writer) error {
	if len(names) == 0 {
		names = r.names
	}

	// Resolve every name up front so a typo fails before any output.
	for _, name := range names {
		if _, ok := r.funcs[name]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownExercise, name)
		}
	}

	for i, name := range names {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := r.Run(name, w); err != nil {
			return err
		}
	}

	return nil
}
