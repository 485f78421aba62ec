// Command polycalc prints a polynomial, its derivative and its value at a point.
//
// Usage:
//
//	polycalc -coeffs 1,0,-3,4 -x 2
//	polycalc -ring prime -prime 157 -coeffs 1,2,3 -x 5
//	polycalc -interactive -ring complex
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	poly "github.com/jonathanmweiss/go-poly"
	"github.com/jonathanmweiss/go-poly/field"
)

type config struct {
	ring        string
	prime       uint64
	coeffs      string
	x           string
	interactive bool
	sentinel    string
}

var (
	errNoCoefficients = errors.New("no coefficients given")
	errUnknownRing    = errors.New("unknown ring")
)

func main() {
	cfg := config{}

	flag.StringVar(&cfg.ring, "ring", "float", "coefficient ring: float, int, complex, prime")
	flag.Uint64Var(&cfg.prime, "prime", 65537, "modulus for -ring prime")
	flag.StringVar(&cfg.coeffs, "coeffs", "1,0,-3,4", "comma-separated coefficients, lowest degree first")
	flag.StringVar(&cfg.x, "x", "2", "evaluation point")
	flag.BoolVar(&cfg.interactive, "interactive", false, "read coefficients from stdin")
	flag.StringVar(&cfg.sentinel, "sentinel", poly.DefaultSentinel, "token ending interactive input")
	flag.Parse()

	logger := log.New(os.Stderr, "polycalc: ", 0)

	if err := run(cfg, os.Stdin, os.Stdout, logger); err != nil {
		logger.Fatal(err)
	}
}

func run(cfg config, in io.Reader, out io.Writer, logger *log.Logger) error {
	switch cfg.ring {
	case "float":
		r := field.Numbers[float64]{}
		return calc[float64](cfg, r, r.Parse, in, out, logger)
	case "int":
		r := field.Numbers[int64]{}
		return calc[int64](cfg, r, r.Parse, in, out, logger)
	case "complex":
		r := field.Complexes[complex128]{}
		return calc[complex128](cfg, r, r.Parse, in, out, logger)
	case "prime":
		f, err := field.NewPrimeField(cfg.prime)
		if err != nil {
			return err
		}

		return calc[uint64](cfg, f, f.Parse, in, out, logger)
	default:
		return fmt.Errorf("%w: %q", errUnknownRing, cfg.ring)
	}
}

func calc[T any](cfg config, r field.Ring[T], parse func(string) (T, error), in io.Reader, out io.Writer, logger *log.Logger) error {
	x, err := parse(cfg.x)
	if err != nil {
		return fmt.Errorf("evaluation point: %w", err)
	}

	rd := poly.NewReader(r, parse)
	rd.Log = logger
	rd.Sentinel = cfg.sentinel

	var p *poly.Polynomial[T]
	if cfg.interactive {
		fmt.Fprintf(out, "Input coeffs (tap [%s] to finish):\n", rd.Sentinel)
		rd.Prompt = out

		p, err = rd.Read(in)
		fmt.Fprintln(out)
	} else {
		var n int

		p, n, err = rd.ReadN(strings.NewReader(strings.ReplaceAll(cfg.coeffs, ",", " ")))
		if err == nil && n == 0 {
			err = fmt.Errorf("%w: %q", errNoCoefficients, cfg.coeffs)
		}
	}

	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Polynomial p(x): %v\n", p)
	fmt.Fprintf(out, "Derivative of polynomial p(x): %v\n", p.Derivative())
	fmt.Fprintf(out, "Result p(%v) = %v\n", x, p.Eval(x))

	return nil
}
