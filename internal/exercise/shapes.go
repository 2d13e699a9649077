package exercise

import (
	"io"

	"github.com/aanand-mishra/lang-basics/internal/types"
	"github.com/aanand-mishra/lang-basics/internal/utils/report"
)

// Shapes prints the introduction, area, and perimeter of a 10×20
// rectangle and a 10×10 square.
func Shapes() Func {
	return func(w io.Writer) error {
		shapes := []types.Shape{
			types.Rectangle{Width: 10, Height: 20},
			types.Square{Side: 10},
		}

		p := report.NewPrinter(w)
		for _, s := range shapes {
			for _, line := range types.Describe(s) {
				p.Line(line)
			}
		}
		return p.Err()
	}
}
