package types

import "fmt"

// User is the record used to show the difference between the
// human-readable and the debug rendering of a value.
//
// Two standard-library interfaces drive fmt's behaviour:
//
//   - fmt.Stringer   (String() string)   — used by %v and %s
//   - fmt.GoStringer (GoString() string) — used by %#v
//
// The json tags keep the keys lowercase, matching the text-encoding
// exercise output {"name":"Alice","age":30}.
type User struct {
	Name string `json:"name" yaml:"name" toml:"name" validate:"required"`
	Age  uint32 `json:"age"  yaml:"age"  toml:"age"`
}

// String is the display form: "fuyo is 21 years old".
func (u User) String() string {
	return fmt.Sprintf("%s is %d years old", u.Name, u.Age)
}

// GoString is the debug form: User { name: "fuyo", age: 21 }.
func (u User) GoString() string {
	return fmt.Sprintf("User { name: %q, age: %d }", u.Name, u.Age)
}

// DebugUser has no formatting methods of its own; it is rendered by the
// generic debug path in the format package.
type DebugUser struct {
	Name string
	Num  uint32
}
