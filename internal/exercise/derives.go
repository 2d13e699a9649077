package exercise

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/aanand-mishra/lang-basics/internal/format"
	"github.com/aanand-mishra/lang-basics/internal/storage"
	"github.com/aanand-mishra/lang-basics/internal/types"
	"github.com/aanand-mishra/lang-basics/internal/utils/report"
)

// blobKindAccount labels Borsh-encoded Account rows in storage.
const blobKindAccount = "account/borsh"

// Derives walks through the behaviour a record gets "for free" or with
// a few lines of code: binary encoding, debug output, copying, cloning,
// and equality. Encoded bytes and products pass through store so the
// exercise can show they come back unchanged.
func Derives(store storage.Storage) Func {
	return func(w io.Writer) error {
		if store == nil {
			return errors.New("derives: storage is required")
		}

		p := report.NewPrinter(w)
		p.Title("Custom Derive Macros Examples")

		// ── 1. Binary encoding round trip ─────────────────────────────
		p.Section(1, "Binary encode and decode")
		user := types.Account{
			Name:   "Alice",
			Age:    30,
			PubKey: []byte{1, 2, 3, 4, 5},
		}
		if err := report.Check(user); err != nil {
			return err
		}
		p.Field("Original user", format.Debug(user))

		serialized, err := user.MarshalBinary()
		if err != nil {
			return err
		}
		p.Field("Serialized bytes", serialized)

		// Store the bytes, read them back, and decode what came back.
		blobID, err := store.SaveBlob(blobKindAccount, serialized)
		if err != nil {
			return err
		}
		kind, stored, err := store.GetBlobByID(blobID)
		if err != nil {
			return err
		}
		if kind != blobKindAccount {
			return fmt.Errorf("blob %d: want kind %q, got %q", blobID, blobKindAccount, kind)
		}

		var deserialized types.Account
		if err := deserialized.UnmarshalBinary(stored); err != nil {
			return err
		}
		p.Field("Deserialized user", format.Debug(deserialized))
		p.Field("Round trip equal", user.Equal(deserialized))

		// The same layout streams through any io.Writer / io.Reader.
		var stream bytes.Buffer
		written, err := user.WriteTo(&stream)
		if err != nil {
			return err
		}
		var streamed types.Account
		read, err := streamed.ReadFrom(&stream)
		if err != nil {
			return err
		}
		p.Field("Encoded size", user.BinarySize())
		p.Linef("Streamed %d bytes out, %d bytes back, equal: %t",
			written, read, user.Equal(streamed))
		p.Line("")

		// ── 2. Debug output ───────────────────────────────────────────
		p.Section(2, "Debug output")
		debugUser := types.DebugUser{Name: "Bob", Num: 42}
		p.Field("Debug output", format.Debug(debugUser))
		p.Line("")

		// ── 3. Copy semantics ─────────────────────────────────────────
		// Assigning a struct copies every field. p1 stays usable.
		p.Section(3, "Copy and explicit copy")
		p1 := types.Point{X: 1, Y: 2}
		p2 := p1
		p.Field("Original point p1", format.Debug(p1))
		p.Field("Copied point p2", format.Debug(p2))
		p.Field("p1 is still usable after assignment", format.Debug(p1))

		p3 := p1
		p.Field("Explicitly copied point p3", format.Debug(p3))

		pointBytes, err := p1.MarshalBinary()
		if err != nil {
			return err
		}
		var decodedPoint types.Point
		if err := decodedPoint.UnmarshalBinary(pointBytes); err != nil {
			return err
		}
		p.Field("Point p1 bytes", pointBytes)
		p.Field("Decoded point == p1", decodedPoint == p1)
		p.Line("")

		// ── 4. Clone ──────────────────────────────────────────────────
		p.Section(4, "Clone")
		person1 := types.Person{Name: "Charlie", Age: 25}
		person2 := person1.Clone()
		p.Field("Original person", format.Debug(person1))
		p.Field("Cloned person", format.Debug(person2))
		p.Line("")

		// ── 5. Clone + equality, with a trip through storage ──────────
		p.Section(5, "Debug, Clone and equality together")
		product1 := types.Product{ID: 1, Name: "Laptop", Price: 999.99}
		product2 := product1.Clone()
		product3 := types.Product{ID: 2, Name: "Mouse", Price: 25.50}

		for _, prod := range []types.Product{product1, product3} {
			if err := report.Check(prod); err != nil {
				return err
			}
		}

		p.Field("Product 1", format.Debug(product1))
		p.Field("Product 2 (cloned)", format.Debug(product2))
		p.Field("Product 3", format.Debug(product3))
		p.Field("Product 1 == Product 2", product1 == product2)
		p.Field("Product 1 == Product 3", product1 == product3)

		productBytes, err := product1.MarshalBinary()
		if err != nil {
			return err
		}
		var decodedProduct types.Product
		if err := decodedProduct.UnmarshalBinary(productBytes); err != nil {
			return err
		}
		p.Field("Product 1 binary size", len(productBytes))
		p.Field("Product 1 == decoded copy", product1 == decodedProduct)

		rowID, err := store.CreateProduct(product1)
		if err != nil {
			return err
		}
		if _, err := store.CreateProduct(product3); err != nil {
			return err
		}
		reloaded, err := store.GetProductByID(rowID)
		if err != nil {
			return err
		}
		p.Field("Product 1 == stored copy", product1.Equal(reloaded))

		catalogue, err := store.GetProducts()
		if err != nil {
			return err
		}
		p.Field("Stored products", len(catalogue))
		for _, prod := range catalogue {
			p.Linef("  %s", format.Debug(prod))
		}
		p.Line("")

		// ── 6. Unit enum ──────────────────────────────────────────────
		// A payload-free enum encodes as its variant index in one byte.
		p.Section(6, "Unit enum variant index")
		for _, status := range []types.Status{
			types.StatusActive,
			types.StatusInactive,
			types.StatusPending,
		} {
			b, err := status.MarshalBinary()
			if err != nil {
				return err
			}
			var back types.Status
			if err := back.UnmarshalBinary(b); err != nil {
				return err
			}
			p.Linef("%s: %v (decodes to %s)", status, b, back)
		}
		p.Line("")

		// ── Copy vs clone ─────────────────────────────────────────────
		p.Title("Copy vs Clone Demonstration")
		copyVsClone(p)

		return p.Err()
	}
}

// copyVsClone shows where a plain assignment is enough and where an
// explicit Clone is needed.
func copyVsClone(p *report.Printer) {
	num1 := int32(42)
	num2 := num1
	p.Linef("num1: %d, num2: %d", num1, num2)

	point1 := types.Point{X: 10, Y: 20}
	point2 := point1
	p.Linef("point1: %s, point2: %s", format.Debug(point1), format.Debug(point2))

	person1 := types.Person{Name: "Dave", Age: 35}
	person2 := person1.Clone()
	p.Linef("person1: %s, person2: %s", format.Debug(person1), format.Debug(person2))

	// Slices are the case where assignment is NOT a full copy: both
	// values would share one backing array. Clone copies it.
	account1 := types.Account{Name: "Eve", Age: 28, PubKey: []byte{9, 9, 9}}
	shared := account1
	cloned := account1.Clone()
	shared.PubKey[0] = 0
	cloned.PubKey[1] = 0
	p.Linef("account1 key: %v, shared key: %v, cloned key: %v",
		account1.PubKey, shared.PubKey, cloned.PubKey)
}
