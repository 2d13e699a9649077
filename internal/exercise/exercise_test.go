package exercise

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/lang-basics/internal/codec/text"
	"github.com/aanand-mishra/lang-basics/internal/storage"
	"github.com/aanand-mishra/lang-basics/internal/storage/sqlite"
	"github.com/aanand-mishra/lang-basics/internal/types"
)

func newStore(t *testing.T) storage.Storage {
	t.Helper()

	s, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func run(t *testing.T, fn Func) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, fn(&buf))
	return buf.String()
}

//
// -----------------------------------------------------------------------------
// Exercises
// -----------------------------------------------------------------------------

// TestShapes verifies the exact output of the shapes exercise.
func TestShapes(t *testing.T) {
	want := strings.Join([]string{
		"I am a rectangle",
		"the area of the rectangle is 200",
		"the perimeter of the rectangle is 60",
		"I am a square",
		"the area of the square is 100",
		"the perimeter of the square is 40",
	}, "\n") + "\n"

	assert.Equal(t, want, run(t, Shapes()))
}

// TestFormatting verifies the debug, display and pretty lines.
func TestFormatting(t *testing.T) {
	out := run(t, Formatting())

	assert.Contains(t, out, `Debug format: User { name: "fuyo", age: 21 }`+"\n")
	assert.Contains(t, out, "Display format: fuyo is 21 years old\n")
	assert.Contains(t, out, "Pretty debug format: (types.User) {\n")
	assert.Contains(t, out, `Name: (string) (len=4) "fuyo"`)
}

// TestDerives verifies the binary round trip, copy/clone and equality lines.
func TestDerives(t *testing.T) {
	out := run(t, Derives(newStore(t)))

	for _, line := range []string{
		"=== Custom Derive Macros Examples ===",
		"Original user: types.Account{Name:Alice Age:30 PubKey:[1 2 3 4 5]}",
		"Serialized bytes: [5 0 0 0 65 108 105 99 101 30 0 0 0 5 0 0 0 1 2 3 4 5]",
		"Deserialized user: types.Account{Name:Alice Age:30 PubKey:[1 2 3 4 5]}",
		"Round trip equal: true",
		"Encoded size: 22",
		"Streamed 22 bytes out, 22 bytes back, equal: true",
		"Debug output: types.DebugUser{Name:Bob Num:42}",
		"Copied point p2: types.Point{X:1 Y:2}",
		"Point p1 bytes: [1 0 0 0 2 0 0 0]",
		"Decoded point == p1: true",
		"Cloned person: types.Person{Name:Charlie Age:25}",
		"Product 1 == Product 2: true",
		"Product 1 == Product 3: false",
		"Product 1 binary size: 22",
		"Product 1 == decoded copy: true",
		"Product 1 == stored copy: true",
		"Stored products: 2",
		"  types.Product{ID:1 Name:Laptop Price:999.99}",
		"  types.Product{ID:2 Name:Mouse Price:25.5}",
		"Active: [0] (decodes to Active)",
		"Inactive: [1] (decodes to Inactive)",
		"Pending: [2] (decodes to Pending)",
		"=== Copy vs Clone Demonstration ===",
		"num1: 42, num2: 42",
		"point1: types.Point{X:10 Y:20}, point2: types.Point{X:10 Y:20}",
		"account1 key: [0 9 9], shared key: [0 9 9], cloned key: [9 0 9]",
	} {
		assert.Contains(t, out, line+"\n")
	}
}

// TestDerives_StoresRecords verifies the exercise really writes to storage.
func TestDerives_StoresRecords(t *testing.T) {
	store := newStore(t)
	run(t, Derives(store))

	products, err := store.GetProducts()
	require.NoError(t, err)
	assert.Equal(t, []types.Product{
		{ID: 1, Name: "Laptop", Price: 999.99},
		{ID: 2, Name: "Mouse", Price: 25.50},
	}, products)

	kind, data, err := store.GetBlobByID(1)
	require.NoError(t, err)
	assert.Equal(t, blobKindAccount, kind)
	assert.Len(t, data, 22)
}

// TestDerives_NilStorage verifies the exercise refuses to run without a store.
func TestDerives_NilStorage(t *testing.T) {
	err := Derives(nil)(io.Discard)
	require.Error(t, err)
}

// failingStore embeds a nil Storage so only overridden methods are callable.
type failingStore struct {
	storage.Storage
}

func (failingStore) SaveBlob(string, []byte) (int64, error) {
	return 0, errors.New("database is locked")
}

// TestDerives_StorageError verifies a storage failure ends the exercise.
func TestDerives_StorageError(t *testing.T) {
	err := Derives(failingStore{})(io.Discard)
	require.EqualError(t, err, "database is locked")
}

// TestAttributes_JSON verifies the JSON output matches the tag policies.
func TestAttributes_JSON(t *testing.T) {
	out := run(t, Attributes(text.JSON))

	want := strings.Join([]string{
		`JSON: {"name":"Alice","age":30}`,
		`Back to struct: User { name: "Alice", age: 30 }`,
		`Contact JSON: {"full_name":"Bob"}`,
		`Status: "Active"`,
	}, "\n") + "\n"
	assert.Equal(t, want, out)
}

// TestAttributes_YAML verifies the same exercise through yaml.v3.
func TestAttributes_YAML(t *testing.T) {
	out := run(t, Attributes(text.YAML))

	assert.Contains(t, out, "Back to struct: User { name: \"Alice\", age: 30 }\n")
	assert.Contains(t, out, "Contact YAML: full_name: Bob\n")
	assert.Contains(t, out, "Status: Active\n")
	assert.NotContains(t, out, "secret")
}

// TestAttributes_TOML verifies the status is wrapped in a table for TOML.
func TestAttributes_TOML(t *testing.T) {
	out := run(t, Attributes(text.TOML))

	assert.Contains(t, out, "Back to struct: User { name: \"Alice\", age: 30 }\n")
	assert.Contains(t, out, "Contact TOML: full_name = \"Bob\"\n")
	assert.Contains(t, out, "Status: status = \"Active\"\n")
}

// TestAttributes_UnknownFormat verifies an invalid format fails the exercise.
func TestAttributes_UnknownFormat(t *testing.T) {
	err := Attributes(text.Format("xml"))(io.Discard)
	require.ErrorIs(t, err, text.ErrUnknownFormat)
}
