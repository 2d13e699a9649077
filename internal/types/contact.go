package types

import "fmt"

// Contact demonstrates per-field encoding policies declared with struct
// tags. The same three policies are spelled out for every text format
// the codec supports:
//
//	Name     → renamed to "full_name" on output
//	Email    → omitted when absent (nil pointer)
//	Password → never encoded ("-")
//
// Email is a *string rather than a string so that "absent" (nil) and
// "present but empty" ("") are different values. The toml tag has no
// omitempty: BurntSushi/toml already skips nil pointers, and omitempty
// there would also drop a pointer to "".
type Contact struct {
	Name     string  `json:"full_name"       yaml:"full_name"       toml:"full_name"       validate:"required"`
	Email    *string `json:"email,omitempty" yaml:"email,omitempty" toml:"email"           validate:"omitempty,email"`
	Password string  `json:"-"               yaml:"-"               toml:"-"`
}

// Status is a unit enum: a closed set of named values with no payload.
type Status int

const (
	StatusActive Status = iota
	StatusInactive
	StatusPending
)

var statusNames = map[Status]string{
	StatusActive:   "Active",
	StatusInactive: "Inactive",
	StatusPending:  "Pending",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// MarshalText encodes the variant name. encoding/json, yaml.v3 and
// BurntSushi/toml all pick this up, so Status encodes as "Active"
// rather than 0 in every format.
func (s Status) MarshalText() ([]byte, error) {
	name, ok := statusNames[s]
	if !ok {
		return nil, fmt.Errorf("unknown status %d", int(s))
	}
	return []byte(name), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	for value, name := range statusNames {
		if name == string(text) {
			*s = value
			return nil
		}
	}
	return fmt.Errorf("unknown status %q", text)
}
