// Package calc evaluates arithmetic expressions written in Polish (prefix)
// notation, such as "* 10 + 1.23 4.56".
package calc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/decimalnumbers/decimal"
)

// ErrSyntax is returned for expressions with missing or extra operands.
var ErrSyntax = errors.New("syntax error")

// Evaluator evaluates expressions within the bounds of a decimal context.
//
// Supported operators are the binary "+", "-", "*", "/" and "^",
// and the comparisons "<", "<=", "=", ">=" and ">", which evaluate to 1 or 0.
// The exponent of "^" must be a non-negative integer.
type Evaluator struct {
	Context decimal.Context
	Scale   int                  // scale of quotients
	Mode    decimal.RoundingMode // rounding of quotients
}

// Evaluate computes the value of the expression.
func (ev Evaluator) Evaluate(input string) (decimal.Decimal, error) {
	tokens, err := parseTokens(input)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing tokens: %w", err)
	}
	stack, err := ev.processTokens(tokens)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("processing tokens: %w", err)
	}
	if len(stack) != 1 {
		return decimal.Decimal{}, fmt.Errorf("post-processed stack contains %v, expected exactly one item: %w", stack, ErrSyntax)
	}
	return stack[0], nil
}

// parseTokens splits the input at spaces and tabs.
// Other white space, such as a trailing carriage return, stays in the tokens
// and is accepted only if the context trims it.
func parseTokens(input string) ([]string, error) {
	tokens := strings.FieldsFunc(input, func(r rune) bool {
		return r == ' ' || r == '\t'
	})
	if len(tokens) == 0 {
		return nil, fmt.Errorf("no tokens: %w", ErrSyntax)
	}
	return tokens, nil
}

func isOperator(token string) bool {
	switch token {
	case "+", "-", "*", "/", "^", "<", "<=", "=", ">=", ">":
		return true
	}
	return false
}

func (ev Evaluator) processTokens(tokens []string) ([]decimal.Decimal, error) {
	stack := make([]decimal.Decimal, 0, len(tokens))
	var err error
	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]
		if isOperator(token) {
			stack, err = ev.processOperator(stack, token)
		} else {
			stack, err = ev.processOperand(stack, token)
		}
		if err != nil {
			return nil, fmt.Errorf("processing token %q: %w", token, err)
		}
	}
	return stack, nil
}

func (ev Evaluator) processOperator(stack []decimal.Decimal, token string) ([]decimal.Decimal, error) {
	if len(stack) < 2 {
		return nil, fmt.Errorf("not enough operands: %w", ErrSyntax)
	}
	left := stack[len(stack)-1]
	right := stack[len(stack)-2]
	stack = stack[:len(stack)-2]
	result, err := ev.apply(token, left, right)
	if err != nil {
		return nil, fmt.Errorf("evaluating \"%s %s %s\": %w", token, left, right, err)
	}
	return append(stack, result), nil
}

func (ev Evaluator) apply(token string, left, right decimal.Decimal) (decimal.Decimal, error) {
	c := ev.Context
	switch token {
	case "+":
		return c.Add(left, right)
	case "-":
		return c.Sub(left, right)
	case "*":
		return c.Mul(left, right)
	case "/":
		return c.Quo(left, right, ev.Scale, ev.Mode)
	case "^":
		exp, err := exponent(right)
		if err != nil {
			return decimal.Decimal{}, err
		}
		return c.Pow(left, exp)
	}
	return compare(token, left.Cmp(right)), nil
}

// exponent converts an integral decimal to a power.
// Negative powers are passed through so that Pow can reject them.
func exponent(d decimal.Decimal) (int, error) {
	if !d.IsInt() {
		return 0, fmt.Errorf("exponent %v is not an integer", d)
	}
	i, ok := d.Int64()
	if !ok || int64(int(i)) != i {
		return 0, fmt.Errorf("exponent %v is out of range", d)
	}
	return int(i), nil
}

func compare(token string, cmp int) decimal.Decimal {
	var ok bool
	switch token {
	case "<":
		ok = cmp < 0
	case "<=":
		ok = cmp <= 0
	case "=":
		ok = cmp == 0
	case ">=":
		ok = cmp >= 0
	case ">":
		ok = cmp > 0
	}
	if ok {
		return decimal.One
	}
	return decimal.Zero
}

func (ev Evaluator) processOperand(stack []decimal.Decimal, token string) ([]decimal.Decimal, error) {
	d, err := ev.Context.Parse(token)
	if err != nil {
		return nil, err
	}
	return append(stack, d), nil
}
