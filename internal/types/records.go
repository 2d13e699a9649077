package types

// Point is a plain value type. Assigning a Point copies both fields, so
// the original stays usable and independent after the assignment:
//
//	p1 := Point{X: 1, Y: 2}
//	p2 := p1   // full copy
//	p2.X = 99  // p1.X is still 1
type Point struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

// Person pairs a name with an age. Assignment already copies a Person
// (Go strings are immutable), but Clone spells the duplication out.
type Person struct {
	Name string `json:"name" validate:"required"`
	Age  uint32 `json:"age"`
}

// Clone returns an independent copy of p.
func (p Person) Clone() Person {
	return Person{Name: p.Name, Age: p.Age}
}

// Product is comparable: every field type supports ==, so two products
// can be compared directly with product1 == product2.
type Product struct {
	ID    uint32  `json:"id"    validate:"required"`
	Name  string  `json:"name"  validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
}

func (p Product) Clone() Product {
	return p
}

// Equal reports whether p and other hold the same field values.
func (p Product) Equal(other Product) bool {
	return p == other
}
