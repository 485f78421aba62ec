package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/jonathanmweiss/go-poly/field"
	"github.com/stretchr/testify/assert"
)

func defaultConfig() config {
	return config{
		ring:     "float",
		prime:    65537,
		coeffs:   "1,0,-3,4",
		x:        "2",
		sentinel: "q",
	}
}

func TestRunDefault(t *testing.T) {
	a := assert.New(t)

	out := &bytes.Buffer{}
	err := run(defaultConfig(), strings.NewReader(""), out, log.New(io.Discard, "", 0))
	a.NoError(err)

	a.Equal(
		"Polynomial p(x): 1x^0 + 0x^1 + -3x^2 + 4x^3\n"+
			"Derivative of polynomial p(x): 0x^0 + -6x^1 + 12x^2\n"+
			"Result p(2) = 21\n",
		out.String(),
	)
}

func TestRunRings(t *testing.T) {
	a := assert.New(t)

	t.Run("prime", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.ring = "prime"
		cfg.prime = 5
		cfg.coeffs = "1,2,3"
		cfg.x = "3"

		out := &bytes.Buffer{}
		a.NoError(run(cfg, nil, out, log.New(io.Discard, "", 0)))
		a.Contains(out.String(), "Derivative of polynomial p(x): 2x^0 + 1x^1\n")
		a.Contains(out.String(), "Result p(3) = 4\n")
	})

	t.Run("int", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.ring = "int"

		out := &bytes.Buffer{}
		a.NoError(run(cfg, nil, out, log.New(io.Discard, "", 0)))
		a.Contains(out.String(), "Result p(2) = 21\n")
	})

	t.Run("complex", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.ring = "complex"
		cfg.coeffs = "1,0,1"
		cfg.x = "(0+1i)"

		out := &bytes.Buffer{}
		a.NoError(run(cfg, nil, out, log.New(io.Discard, "", 0)))
		a.Contains(out.String(), "Result p((0+1i)) = (0+0i)\n")
	})
}

func TestRunInteractive(t *testing.T) {
	a := assert.New(t)

	cfg := defaultConfig()
	cfg.interactive = true

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}
	err := run(cfg, strings.NewReader("1\nfoo\n1\nq\n"), out, log.New(logs, "", 0))
	a.NoError(err)

	a.True(strings.HasPrefix(out.String(), "Input coeffs (tap [q] to finish):\nCoeff for x^0: "))
	a.Contains(out.String(), "Polynomial p(x): 1x^0 + 1x^1\n")
	a.Contains(out.String(), "Result p(2) = 3\n")
	a.Contains(logs.String(), "skipping x^1")
}

func TestRunErrors(t *testing.T) {
	a := assert.New(t)
	discard := log.New(io.Discard, "", 0)

	cfg := defaultConfig()
	cfg.ring = "quaternion"
	a.ErrorIs(run(cfg, nil, io.Discard, discard), errUnknownRing)

	cfg = defaultConfig()
	cfg.ring = "prime"
	cfg.prime = 100
	a.ErrorIs(run(cfg, nil, io.Discard, discard), field.ErrNotPrime)

	cfg = defaultConfig()
	cfg.x = "two"
	a.ErrorIs(run(cfg, nil, io.Discard, discard), field.ErrParse)

	for _, coeffs := range []string{" ", ",", ",,", "abc", "abc,def"} {
		cfg = defaultConfig()
		cfg.coeffs = coeffs
		a.ErrorIs(run(cfg, nil, io.Discard, discard), errNoCoefficients, "coeffs=%q", coeffs)
	}

	cfg = defaultConfig()
	cfg.x = "2 junk"
	a.ErrorIs(run(cfg, nil, io.Discard, discard), field.ErrParse)
}

func TestRunZeroCoefficient(t *testing.T) {
	a := assert.New(t)

	cfg := defaultConfig()
	cfg.coeffs = "0,"

	out := &bytes.Buffer{}
	a.NoError(run(cfg, nil, out, log.New(io.Discard, "", 0)))
	a.Contains(out.String(), "Polynomial p(x): 0\n")
	a.Contains(out.String(), "Result p(2) = 0\n")
}

func TestRunSmallPrimes(t *testing.T) {
	a := assert.New(t)

	for _, p := range []uint64{2, 3} {
		cfg := defaultConfig()
		cfg.ring = "prime"
		cfg.prime = p
		cfg.coeffs = "1,1"
		cfg.x = "1"

		out := &bytes.Buffer{}
		a.NoError(run(cfg, nil, out, log.New(io.Discard, "", 0)), "p=%d", p)
		a.Contains(out.String(), fmt.Sprintf("Result p(1) = %d\n", 2%p))
	}
}
