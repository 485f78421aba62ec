package poly

import (
	"fmt"
	"strconv"
	"strings"
)

// String lists the stored terms from the constant upwards, e.g.
// "1x^0 + 0x^1 + -3x^2 + 4x^3". The zero polynomial prints as "0".
func (p *Polynomial[T]) String() string {
	if len(p.inner) == 0 {
		return "0"
	}

	bldr := strings.Builder{}

	for i, ci := range p.inner {
		if i != 0 {
			bldr.WriteString(" + ")
		}

		fmt.Fprint(&bldr, ci)
		bldr.WriteString("x^")
		bldr.WriteString(strconv.Itoa(i))
	}

	return bldr.String()
}
