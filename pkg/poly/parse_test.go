package poly

import (
	"errors"
	"testing"
)

func assertTerms(t *testing.T, got, want []Term) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d terms %v, want %d terms %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("term %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func assertParseError(t *testing.T, equation string, sentinel error, token string) {
	t.Helper()
	_, err := Parse(equation)
	if !errors.Is(err, sentinel) {
		t.Fatalf("Parse(%q) error = %v, want %v", equation, err, sentinel)
	}
	var te *TokenError
	if !errors.As(err, &te) {
		t.Fatalf("Parse(%q) error %T is not a *TokenError", equation, err)
	}
	if token != "" && te.Token != token {
		t.Errorf("Parse(%q) blamed token %q, want %q", equation, te.Token, token)
	}
}

func TestParse_FullEquation(t *testing.T) {
	terms, err := Parse("5 * X^0 + 4 * X^1 - 9.3 * X^2 = 1 * X^0")
	if err != nil {
		t.Fatal(err)
	}
	assertTerms(t, terms, []Term{
		{Sign: 1, Coefficient: 5, Power: 0, Side: Left},
		{Sign: 1, Coefficient: 4, Power: 1, Side: Left},
		{Sign: -1, Coefficient: 9.3, Power: 2, Side: Left},
		{Sign: 1, Coefficient: 1, Power: 0, Side: Right},
	})
}

func TestParse_ImplicitCoefficientAndPower(t *testing.T) {
	// "X^2" has coefficient 1, "1" has power 0, "X" is X^1.
	terms, err := Parse("X^2 - 1 = X")
	if err != nil {
		t.Fatal(err)
	}
	assertTerms(t, terms, []Term{
		{Sign: 1, Coefficient: 1, Power: 2, Side: Left},
		{Sign: -1, Coefficient: 1, Power: 0, Side: Left},
		{Sign: 1, Coefficient: 1, Power: 1, Side: Right},
	})
}

func TestParse_LeadingSign(t *testing.T) {
	// A leading operator must not flush an empty 1 * X^0 term.
	terms, err := Parse("- 5 * X^0 = - 2")
	if err != nil {
		t.Fatal(err)
	}
	assertTerms(t, terms, []Term{
		{Sign: -1, Coefficient: 5, Power: 0, Side: Left},
		{Sign: -1, Coefficient: 2, Power: 0, Side: Right},
	})
}

func TestParse_NegativeLiteral(t *testing.T) {
	terms, err := Parse("-5 * X^1 = 0")
	if err != nil {
		t.Fatal(err)
	}
	assertTerms(t, terms, []Term{
		{Sign: 1, Coefficient: -5, Power: 1, Side: Left},
		{Sign: 1, Coefficient: 0, Power: 0, Side: Right},
	})
}

func TestParse_LastValueWins(t *testing.T) {
	terms, err := Parse("2 3 * X^1 X^2 = 0")
	if err != nil {
		t.Fatal(err)
	}
	if terms[0].Coefficient != 3 || terms[0].Power != 2 {
		t.Errorf("first term = %v, want 3 * X^2", terms[0])
	}
}

func TestParse_NumberResetsPower(t *testing.T) {
	// Variable and coefficient may come in any order, but a number resets
	// the power it follows.
	terms, err := Parse("X^2 * 4 = 0")
	if err != nil {
		t.Fatal(err)
	}
	if terms[0].Coefficient != 4 || terms[0].Power != 0 {
		t.Errorf("first term = %v, want 4 * X^0", terms[0])
	}
}

func TestParse_NoEquals(t *testing.T) {
	terms, err := Parse("7 * X^2")
	if err != nil {
		t.Fatal(err)
	}
	assertTerms(t, terms, []Term{{Sign: 1, Coefficient: 7, Power: 2, Side: Left}})
}

func TestParse_SurroundingWhitespace(t *testing.T) {
	terms, err := Parse("  \t1 * X^0   =\t0 \n")
	if err != nil {
		t.Fatal(err)
	}
	if len(terms) != 2 {
		t.Fatalf("got %d terms, want 2", len(terms))
	}
}

func TestParse_WithVariable(t *testing.T) {
	terms, err := Parse("2 * x^2 = 8 * x", WithVariable("x"))
	if err != nil {
		t.Fatal(err)
	}
	assertTerms(t, terms, []Term{
		{Sign: 1, Coefficient: 2, Power: 2, Side: Left},
		{Sign: 1, Coefficient: 8, Power: 1, Side: Right},
	})

	// The default marker is no longer special.
	assertParseErrorWith(t, "2 * X^2 = 0", WithVariable("x"))
}

func assertParseErrorWith(t *testing.T, equation string, opts ...Option) {
	t.Helper()
	if _, err := Parse(equation, opts...); !errors.Is(err, ErrNumber) {
		t.Errorf("Parse(%q) error = %v, want ErrNumber", equation, err)
	}
}

func TestParse_PowerFormatErrors(t *testing.T) {
	assertParseError(t, "5 * X^a = 0", ErrPowerFormat, "X^a")
	assertParseError(t, "5 * X^ = 0", ErrPowerFormat, "X^")
	assertParseError(t, "5 * X^-1 = 0", ErrPowerFormat, "X^-1")
	assertParseError(t, "5 * X^+2 = 0", ErrPowerFormat, "X^+2")
	assertParseError(t, "5 * X^1.5 = 0", ErrPowerFormat, "X^1.5")
	assertParseError(t, "5 * X^1025 = 0", ErrPowerFormat, "X^1025")
}

func TestParse_MaxPowerAccepted(t *testing.T) {
	terms, err := Parse("X^1024 = 0")
	if err != nil {
		t.Fatal(err)
	}
	if terms[0].Power != MaxPower {
		t.Errorf("power = %d, want %d", terms[0].Power, MaxPower)
	}
}

func TestParse_VariableFormatErrors(t *testing.T) {
	assertParseError(t, "5 * Xy = 0", ErrVariableFormat, "Xy")
	assertParseError(t, "5 * X2 = 0", ErrVariableFormat, "X2")
	assertParseError(t, "5 * X*2 = 0", ErrVariableFormat, "X*2")
}

func TestParse_NumberErrors(t *testing.T) {
	assertParseError(t, "5 * Y^2 = 0", ErrNumber, "Y^2")
	assertParseError(t, "abc = 0", ErrNumber, "abc")
	assertParseError(t, "5x = 0", ErrNumber, "5x")
	assertParseError(t, "NaN = 0", ErrNumber, "NaN")
	assertParseError(t, "Inf * X^1 = 0", ErrNumber, "Inf")
	assertParseError(t, "1e400 = 0", ErrNumber, "1e400")
}

func TestParse_SyntaxErrors(t *testing.T) {
	assertParseError(t, "", ErrSyntax, "")
	assertParseError(t, "   ", ErrSyntax, "")
	assertParseError(t, "+ = -", ErrSyntax, "")
	assertParseError(t, "1 = 2 = 3", ErrSyntax, "=")
}

func TestParse_ShellCharactersRejected(t *testing.T) {
	// A comment marker must not silently drop the rest of the equation.
	assertParseError(t, "1 * X^0 = 1 #* X^0", ErrNumber, "#*")
	assertParseError(t, "1 * X^0 = 1 # X^0", ErrNumber, "#")
	assertParseError(t, `2 * X^1 = 4 \* X^0`, ErrNumber, `\*`)
	assertParseError(t, `"1 = 2`, ErrNumber, `"1`)
	assertParseError(t, `'5' * X^1 = 0`, ErrNumber, `'5'`)
	assertParseError(t, `5 * "X^1" = 0`, ErrNumber, `"X^1"`)

	_, err := Parse("1 * X^0 = 1 #* X^0")
	var te *TokenError
	if errors.As(err, &te) && te.Index != 4 {
		t.Errorf("Index = %d, want 4", te.Index)
	}
}

func TestParse_ErrorIndex(t *testing.T) {
	_, err := Parse("1 * X^0 + 2 * X^q = 0")
	var te *TokenError
	if !errors.As(err, &te) {
		t.Fatalf("error %v is not a *TokenError", err)
	}
	if te.Index != 6 {
		t.Errorf("Index = %d, want 6", te.Index)
	}
	if got, want := te.Error(), `malformed power: "X^q" (token 7)`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
