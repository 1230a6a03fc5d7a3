// Package filter narrows movie lists with expr-lang expressions such as
// `VoteAverage >= 7 and year() >= 2020`.
package filter

import (
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/JusticeSenyo/movieproject/cache"
	"github.com/JusticeSenyo/movieproject/tmdb"
)

const defaultCacheSize = 64

// Filter is a compiled expression. It is safe for concurrent use.
type Filter struct {
	expression string
	program    *vm.Program
	now        func() time.Time
}

// CompilerOption configures a Compiler
type CompilerOption func(*Compiler)

// WithCacheSize sets how many compiled filters are kept
func WithCacheSize(size int) CompilerOption {
	return func(c *Compiler) {
		c.cacheSize = size
	}
}

// WithClock sets the time source used by daysSince() and released()
func WithClock(now func() time.Time) CompilerOption {
	return func(c *Compiler) {
		c.now = now
	}
}

// Compiler compiles expressions and caches the resulting filters
type Compiler struct {
	cacheSize int
	now       func() time.Time
	cache     *cache.LRU[string, *Filter]
}

// NewCompiler creates a compiler
func NewCompiler(opts ...CompilerOption) *Compiler {
	c := &Compiler{
		cacheSize: defaultCacheSize,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.cache = cache.New[string, *Filter](c.cacheSize)
	return c
}

// Compile compiles expression into a filter. Errors are *CompilationError.
func (c *Compiler) Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
			Err:        ErrEmptyExpression,
		}
	}

	if cached, ok := c.cache.Get(expression); ok {
		return cached, nil
	}

	program, err := expr.Compile(expression,
		expr.Env(movieEnv(tmdb.MovieSummary{}, c.now)),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	f := &Filter{
		expression: expression,
		program:    program,
		now:        c.now,
	}
	c.cache.Put(expression, f)
	return f, nil
}

// Size returns the number of cached filters
func (c *Compiler) Size() int {
	return c.cache.Size()
}

// Clear drops every cached filter
func (c *Compiler) Clear() {
	c.cache.Clear()
}

// Expression returns the normalized source expression
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against one movie
func (f *Filter) Match(movie tmdb.MovieSummary) (bool, error) {
	result, err := expr.Run(f.program, movieEnv(movie, f.now))
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			MovieTitle: movie.Title,
			Err:        err,
		}
	}
	// AsBool guarantees the result type
	return result.(bool), nil
}

// Apply returns the movies matching the filter, in their original order.
// Movies that fail evaluation are excluded.
func (f *Filter) Apply(movies []tmdb.MovieSummary) []tmdb.MovieSummary {
	matches := make([]tmdb.MovieSummary, 0, len(movies))
	for _, m := range movies {
		if ok, err := f.Match(m); err == nil && ok {
			matches = append(matches, m)
		}
	}
	return matches
}
