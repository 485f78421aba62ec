package poly

import (
	"bufio"
	"fmt"
	"io"
	"log"

	"github.com/jonathanmweiss/go-poly/field"
)

// DefaultSentinel ends interactive coefficient entry.
const DefaultSentinel = "q"

/*
Reader fills a polynomial from whitespace separated tokens, one coefficient
per token starting at x^0. Reading stops at the sentinel token or at the end
of the input. Tokens that do not parse are reported to Log and skipped.
*/
type Reader[T any] struct {
	Ring  field.Ring[T]
	Parse func(string) (T, error)

	// Prompt, when set, receives "Coeff for x^k: " before every token.
	Prompt   io.Writer
	Log      *log.Logger
	Sentinel string
}

func NewReader[T any](r field.Ring[T], parse func(string) (T, error)) *Reader[T] {
	return &Reader[T]{
		Ring:     r,
		Parse:    parse,
		Sentinel: DefaultSentinel,
	}
}

func (rd *Reader[T]) Read(in io.Reader) (*Polynomial[T], error) {
	p, _, err := rd.ReadN(in)
	return p, err
}

// ReadN is Read that also reports how many tokens were accepted as
// coefficients, zeros included. Skipped tokens and the sentinel do not count.
func (rd *Reader[T]) ReadN(in io.Reader) (*Polynomial[T], int, error) {
	sentinel := rd.Sentinel
	if sentinel == "" {
		sentinel = DefaultSentinel
	}

	logger := rd.Log
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	p := Zero(rd.Ring)

	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)

	degree := 0
	for {
		if rd.Prompt != nil {
			fmt.Fprintf(rd.Prompt, "Coeff for x^%d: ", degree)
		}

		if !sc.Scan() {
			break
		}

		tok := sc.Text()
		if tok == sentinel {
			break
		}

		v, err := rd.Parse(tok)
		if err != nil {
			logger.Printf("skipping x^%d: %v", degree, err)
			continue
		}

		p.Set(degree, v)
		degree++
	}

	if err := sc.Err(); err != nil {
		return nil, degree, fmt.Errorf("reading coefficients: %w", err)
	}

	return p, degree, nil
}
