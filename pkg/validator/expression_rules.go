package validator

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/google/cel-go/cel"
)

// expressionCostLimit bounds a single evaluation so expression rules stay
// within the same time budget as the built-in predicates.
const expressionCostLimit = 1_000_000

var (
	exprEnvOnce sync.Once
	exprEnv     *cel.Env
	exprEnvErr  error
)

func expressionEnv() (*cel.Env, error) {
	exprEnvOnce.Do(func() {
		exprEnv, exprEnvErr = cel.NewEnv(
			cel.Variable("text", cel.StringType),
		)
	})
	return exprEnv, exprEnvErr
}

// Expression builds a rule from a CEL expression over the string variable
// "text", for example `text.startsWith("SKU-") && size(text) == 10`.
// The expression is compiled once; it must type-check to bool.
// An evaluation error counts as a failing predicate.
func Expression(expr, message string, opts ...RuleOption) (Rule, error) {
	env, err := expressionEnv()
	if err != nil {
		return Rule{}, fmt.Errorf("failed to create expression environment: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return Rule{}, errors.Join(fmt.Errorf("%w: %q", ErrInvalidExpression, expr), issues.Err())
	}
	if !reflect.DeepEqual(ast.OutputType(), cel.BoolType) {
		return Rule{}, fmt.Errorf("%w: %q evaluates to %s, want bool", ErrInvalidExpression, expr, ast.OutputType())
	}

	prg, err := env.Program(ast, cel.CostLimit(expressionCostLimit))
	if err != nil {
		return Rule{}, errors.Join(fmt.Errorf("%w: %q", ErrInvalidExpression, expr), err)
	}

	return NewRule(func(text string) bool {
		out, _, err := prg.Eval(map[string]any{"text": text})
		if err != nil {
			return false
		}
		ok, _ := out.Value().(bool)
		return ok
	}, message, opts...), nil
}

// MustExpression is like Expression but panics if the expression is invalid.
func MustExpression(expr, message string, opts ...RuleOption) Rule {
	r, err := Expression(expr, message, opts...)
	if err != nil {
		panic(err)
	}
	return r
}
