package poly

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/shlex"
)

// DefaultVariable is the variable marker recognized unless overridden.
const DefaultVariable = "X"

// MaxPower bounds the exponent accepted in X^n tokens. Reduction allocates
// a dense vector of MaxPower+1 entries at most.
const MaxPower = 1024

// Operator tokens.
const (
	opPlus   = "+"
	opMinus  = "-"
	opEquals = "="
	opTimes  = "*"
)

type options struct {
	variable string
}

// Option configures Parse.
type Option func(*options)

// WithVariable sets the variable marker. An empty marker keeps the default.
func WithVariable(marker string) Option {
	return func(o *options) {
		if marker != "" {
			o.variable = marker
		}
	}
}

// parserState is the running term the fold accumulates between operators.
type parserState struct {
	sign    int
	value   float64
	power   uint
	side    Side
	pending bool // a number or variable token was seen since the last operator
}

func newParserState() parserState {
	return parserState{sign: 1, value: 1}
}

// flush appends the running term if it carries anything.
func (s *parserState) flush(terms []Term) []Term {
	if !s.pending {
		return terms
	}
	return append(terms, Term{
		Sign:        s.sign,
		Coefficient: s.value,
		Power:       s.power,
		Side:        s.side,
	})
}

// begin starts a new term with the given sign on the current side.
func (s *parserState) begin(sign int) {
	s.sign = sign
	s.value = 1
	s.power = 0
	s.pending = false
}

// shellChars have meaning to the shell lexer. None belongs to the equation
// grammar, so a field containing one is rejected instead of being rewritten.
const shellChars = `#\'"`

// Tokenize splits an equation into whitespace separated tokens. Comment,
// escape and quote characters are malformed tokens.
func Tokenize(equation string) ([]string, error) {
	for i, field := range strings.Fields(equation) {
		if strings.ContainsAny(field, shellChars) {
			return nil, &TokenError{Token: field, Index: i, Err: ErrNumber}
		}
	}
	tokens, err := shlex.Split(equation)
	if err != nil {
		return nil, &TokenError{Token: err.Error(), Index: -1, Err: ErrSyntax}
	}
	return tokens, nil
}

// Parse folds an equation such as "5 * X^0 + 4 * X^1 = 1 * X^0" into its
// signed terms. Terms after "=" are tagged Right.
//
// Each term starts as 1 * X^0. A number sets the coefficient and resets the
// power to 0; a following X or X^n token sets the power. Operators may
// appear before any term; they only flush a term that has content.
func Parse(equation string, opts ...Option) ([]Term, error) {
	o := options{variable: DefaultVariable}
	for _, opt := range opts {
		opt(&o)
	}

	tokens, err := Tokenize(strings.TrimSpace(equation))
	if err != nil {
		return nil, err
	}

	var terms []Term
	state := newParserState()
	seenEquals := false

	for i, tok := range tokens {
		switch {
		case tok == opPlus:
			terms = state.flush(terms)
			state.begin(1)
		case tok == opMinus:
			terms = state.flush(terms)
			state.begin(-1)
		case tok == opEquals:
			if seenEquals {
				return nil, &TokenError{Token: tok, Index: i, Err: ErrSyntax}
			}
			seenEquals = true
			terms = state.flush(terms)
			state.side = Right
			state.begin(1)
		case tok == opTimes:
		case strings.HasPrefix(tok, o.variable):
			power, err := parsePower(tok, o.variable)
			if err != nil {
				return nil, &TokenError{Token: tok, Index: i, Err: err}
			}
			state.power = power
			state.pending = true
		default:
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, &TokenError{Token: tok, Index: i, Err: ErrNumber}
			}
			state.value = v
			state.power = 0
			state.pending = true
		}
	}
	terms = state.flush(terms)

	if len(terms) == 0 {
		return nil, &TokenError{Token: "empty equation", Index: -1, Err: ErrSyntax}
	}
	return terms, nil
}

// parsePower reads the exponent of a variable token: "X" is X^1.
func parsePower(tok, variable string) (uint, error) {
	rest := tok[len(variable):]
	if rest == "" {
		return 1, nil
	}
	digits, ok := strings.CutPrefix(rest, "^")
	if !ok {
		return 0, ErrVariableFormat
	}
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil || n > MaxPower {
		return 0, ErrPowerFormat
	}
	return uint(n), nil
}
