// Package symexpr evaluates and symbolically differentiates scalar
// mathematical expressions.
//
// Expressions are built from constants, named variables, the binary
// operators + - * / ^ and the functions sin, cos, ln, exp, over either a
// real (float64) or a complex (complex128) numeric domain.
//
// # Quick Start
//
//	// Parse once, evaluate and differentiate
//	e, err := symexpr.Parse("x^2 + sin(x)")
//	v, _ := e.Eval(map[string]float64{"x": 2})
//	d := e.Diff("x")
//	fmt.Println(d) // ((x^2)*(2/x))+... fully parenthesized text
//
//	// One-shot evaluation
//	v, err := symexpr.Eval("2*x/4", map[string]float64{"x": 8})
//
//	// Sessions add parse caching and debug logging
//	s := symexpr.NewSession(domain.Real{}, symexpr.WithCaching(true))
//	v1, _ := s.Eval("x^2", map[string]float64{"x": 2})
//	v2, _ := s.Eval("x^2", map[string]float64{"x": 3}) // parse served from cache
//
// # Semantics
//
// Trees simplify locally while they are built (identity folding and
// constant folding only; sin(0) is left alone). Rendering is fully
// parenthesized and round-trips through Parse. Division by zero and 0^0
// are not guarded; they defer to the domain's native arithmetic.
package symexpr

import (
	"fmt"
	"log/slog"

	"github.com/asevik/symexpr/pkg/cache"
	"github.com/asevik/symexpr/pkg/domain"
	"github.com/asevik/symexpr/pkg/expr"
	"github.com/asevik/symexpr/pkg/parser"
)

// Version returns the current version of symexpr.
func Version() string {
	return "v0.1.0-dev"
}

// Parse parses an expression over the real domain.
func Parse(input string) (expr.Expression[float64], error) {
	return parser.Parse(input, domain.Real{})
}

// ParseComplex parses an expression over the complex domain. Numeric
// literals may carry a trailing 'i' ("2i", "0.5i").
func ParseComplex(input string) (expr.Expression[complex128], error) {
	return parser.Parse(input, domain.Complex{})
}

// Eval is a convenience function that parses and evaluates a real-domain
// expression in a single call. For repeated evaluations of the same
// expression, parse once or use a caching Session instead.
func Eval(input string, vars map[string]float64) (float64, error) {
	e, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return e.Eval(vars)
}

// EvalComplex parses and evaluates a complex-domain expression in a
// single call.
func EvalComplex(input string, vars map[string]complex128) (complex128, error) {
	e, err := ParseComplex(input)
	if err != nil {
		return 0, err
	}
	return e.Eval(vars)
}

// MustParse is like Parse but panics if the expression cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(input string) expr.Expression[float64] {
	e, err := Parse(input)
	if err != nil {
		panic(fmt.Sprintf("symexpr: Parse(%q): %v", input, err))
	}
	return e
}

// SessionOptions configures Session behavior.
type SessionOptions struct {
	// Caching enables LRU caching of parse results keyed by source text.
	Caching bool
	// CacheSize sets the maximum number of cached expressions.
	// Only used when Caching is true. Defaults to 256.
	CacheSize int
	// Debug enables debug logging of parse results.
	Debug bool
	// Logger for structured logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// SessionOption configures a Session.
type SessionOption func(*SessionOptions)

// WithCaching enables or disables expression parse caching.
func WithCaching(enable bool) SessionOption {
	return func(o *SessionOptions) { o.Caching = enable }
}

// WithCacheSize sets the parse cache capacity.
func WithCacheSize(size int) SessionOption {
	return func(o *SessionOptions) { o.CacheSize = size }
}

// WithDebug enables debug logging.
func WithDebug(enable bool) SessionOption {
	return func(o *SessionOptions) { o.Debug = enable }
}

// WithLogger sets the structured logger used for debug output.
func WithLogger(l *slog.Logger) SessionOption {
	return func(o *SessionOptions) { o.Logger = l }
}

// Session parses, evaluates and differentiates expressions over one
// numeric domain, with optional parse caching and debug logging.
//
// A Session is safe for concurrent use: the underlying cache is
// thread-safe and expressions themselves are immutable.
type Session[T any] struct {
	dom    domain.Domain[T]
	opts   SessionOptions
	logger *slog.Logger
	cache  *cache.Cache[expr.Expression[T]] // non-nil when Caching is enabled
}

// NewSession creates a Session over the given domain.
func NewSession[T any](d domain.Domain[T], opts ...SessionOption) *Session[T] {
	options := SessionOptions{
		CacheSize: 256,
	}
	for _, opt := range opts {
		opt(&options)
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	s := &Session[T]{
		dom:    d,
		opts:   options,
		logger: options.Logger,
	}
	if options.Caching {
		s.cache = cache.New[expr.Expression[T]](options.CacheSize)
	}
	return s
}

// Parse parses input, serving repeated inputs from the cache when
// caching is enabled.
func (s *Session[T]) Parse(input string) (expr.Expression[T], error) {
	if s.cache != nil {
		return s.cache.GetOrCompile(input, func() (expr.Expression[T], error) {
			return s.parse(input)
		})
	}
	return s.parse(input)
}

func (s *Session[T]) parse(input string) (expr.Expression[T], error) {
	e, err := parser.Parse(input, s.dom)
	if err != nil {
		if s.opts.Debug {
			s.logger.Debug("parse failed", "domain", s.dom.Name(), "input", input, "error", err)
		}
		return e, err
	}
	if s.opts.Debug {
		s.logger.Debug("parsed expression", "domain", s.dom.Name(), "input", input, "rendered", e.String())
	}
	return e, nil
}

// Eval parses input (cache-aware) and evaluates it with the given
// variable bindings.
func (s *Session[T]) Eval(input string, vars map[string]T) (T, error) {
	e, err := s.Parse(input)
	if err != nil {
		var zero T
		return zero, err
	}
	return e.Eval(vars)
}

// Diff parses input (cache-aware) and returns its partial derivative
// with respect to the named variable.
func (s *Session[T]) Diff(input, variable string) (expr.Expression[T], error) {
	e, err := s.Parse(input)
	if err != nil {
		return e, err
	}
	return e.Diff(variable), nil
}
