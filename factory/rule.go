/*
Package factory provides construction of allocation rules from untyped input.

PURPOSE:
  Converts a method name plus an untyped value into a generic.Rule. Input
  that matches no known method, or whose value has the wrong type, produces
  no rule. The caller must handle that absence; nothing panics.

METHODS:
  hours, Hours, hourly, Hourly    number            -> ProportionalShare
  percentage, Percentage          number            -> Percentage
  amount, Amount                  number            -> FixedAmount
  function, Function              func() float64    -> Computed
  expression, Expression          CEL source string -> Computed

EXPRESSION RULES:
  A RuleFactory carries named bindings (functions returning float64). An
  expression is compiled once with CEL; each evaluation reads the bindings
  and runs the program. All bindings are doubles, so literals mixed with
  them must be doubles too ("total * 0.1", not "total * 1"). Evaluation
  errors produce NaN, which the engine replaces with zero.

USAGE:
  rule, ok := factory.NewRule("hourly", 6.5)

  f, err := factory.NewRuleFactory(
      factory.Bind("total", factory.TotalOf(engine)),
      factory.Bind("kitchen", factory.AmountOf(engine, "kitchen")),
  )
  rule, err := f.Parse("expression", "(total - kitchen) * 0.05")

SEE ALSO:
  - registry.go: Method names and builders
  - generic/rule.go: Rule type definition
*/
package factory

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	"github.com/warp/tipout-engine/generic"
)

// =============================================================================
// FAILABLE CONSTRUCTOR
// =============================================================================

var (
	defaultFactory     *RuleFactory
	defaultFactoryErr  error
	defaultFactoryOnce sync.Once
)

// NewRule builds a rule from a method name and an untyped value.
// ok is false when no rule could be created.
func NewRule(method string, value any) (generic.Rule, bool) {
	defaultFactoryOnce.Do(func() {
		defaultFactory, defaultFactoryErr = NewRuleFactory()
	})
	if defaultFactoryErr != nil {
		return generic.Rule{}, false
	}
	return defaultFactory.New(method, value)
}

// =============================================================================
// RULE FACTORY
// =============================================================================

// Binding is a named value an expression can read.
type Binding struct {
	Name  string
	Value func() float64
}

// Bind declares an expression variable.
func Bind(name string, fn func() float64) Binding {
	return Binding{Name: name, Value: fn}
}

// RuleFactory converts untyped input into rules, including CEL expressions.
type RuleFactory struct {
	bindings []Binding
	env      *cel.Env
}

// NewRuleFactory creates a factory whose expressions may reference the given
// bindings.
func NewRuleFactory(bindings ...Binding) (*RuleFactory, error) {
	vars := make([]cel.EnvOption, 0, len(bindings))
	for _, b := range bindings {
		if b.Value == nil {
			return nil, fmt.Errorf("binding %q has no value function", b.Name)
		}
		vars = append(vars, cel.Variable(b.Name, cel.DoubleType))
	}

	env, err := cel.NewEnv(vars...)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}

	return &RuleFactory{
		bindings: append([]Binding(nil), bindings...),
		env:      env,
	}, nil
}

// New is the failable form of Parse.
func (f *RuleFactory) New(method string, value any) (generic.Rule, bool) {
	rule, err := f.Parse(method, value)
	return rule, err == nil
}

// Parse builds a rule, reporting why it could not.
func (f *RuleFactory) Parse(method string, value any) (generic.Rule, error) {
	if isExpressionMethod(method) {
		src, ok := value.(string)
		if !ok {
			return generic.Rule{}, fmt.Errorf("%w: expression wants a string, got %T", generic.ErrInvalidRuleValue, value)
		}
		return f.Expression(src)
	}

	build := LookupMethod(method)
	if build == nil {
		return generic.Rule{}, fmt.Errorf("%w: %q", generic.ErrUnknownRuleKind, method)
	}
	return build(value)
}

// Expression compiles src into a Computed rule.
func (f *RuleFactory) Expression(src string) (generic.Rule, error) {
	ast, issues := f.env.Compile(src)
	if issues != nil && issues.Err() != nil {
		return generic.Rule{}, &ExpressionError{Source: src, Err: issues.Err()}
	}

	outputType := ast.OutputType()
	if outputType != cel.DoubleType && outputType != cel.IntType {
		return generic.Rule{}, &ExpressionError{
			Source: src,
			Err:    fmt.Errorf("expression must return int or double, got %s", outputType),
		}
	}

	program, err := f.env.Program(ast)
	if err != nil {
		return generic.Rule{}, &ExpressionError{Source: src, Err: err}
	}

	return generic.Computed(func() float64 {
		out, _, err := program.Eval(f.activation())
		if err != nil {
			return math.NaN()
		}
		return toAmount(out)
	}), nil
}

func (f *RuleFactory) activation() map[string]any {
	activation := make(map[string]any, len(f.bindings))
	for _, b := range f.bindings {
		activation[b.Name] = b.Value()
	}
	return activation
}

func isExpressionMethod(method string) bool {
	return method == "expression" || method == "Expression"
}

// toAmount converts a CEL value to a float amount.
func toAmount(val ref.Val) float64 {
	switch v := val.(type) {
	case types.Double:
		return float64(v)
	case types.Int:
		return float64(v)
	default:
		return math.NaN()
	}
}

// =============================================================================
// BINDING HELPERS
// =============================================================================

// TotalOf reads an engine's current total.
func TotalOf(e *generic.Engine) func() float64 {
	return func() float64 { return e.Total() }
}

// AmountOf reads the current amount of the first participant matching id,
// or 0 when there is none.
func AmountOf(e *generic.Engine, id string) func() float64 {
	return func() float64 {
		amount, _ := e.AmountFor(id)
		return amount
	}
}

// =============================================================================
// ERRORS
// =============================================================================

// ExpressionError reports an expression that failed to compile.
type ExpressionError struct {
	Source string
	Err    error
}

func (e *ExpressionError) Error() string {
	return fmt.Sprintf("invalid expression %q: %v", e.Source, e.Err)
}

func (e *ExpressionError) Unwrap() []error {
	return []error{generic.ErrInvalidRuleValue, e.Err}
}

// IsExpressionError reports whether err is an ExpressionError.
func IsExpressionError(err error) bool {
	var exprErr *ExpressionError
	return errors.As(err, &exprErr)
}
