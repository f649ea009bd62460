package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/omdbctl/omdbctl/omdb"
)

// Filter is a compiled expression evaluated against OMDb records.
type Filter struct {
	program *vm.Program
	expr    string
}

// Compile compiles a filter expression. Expressions see the record under
// "Result" (search hits) or "Movie" (full records) plus the helpers below.
func Compile(expression string) (*Filter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, ErrEmptyExpression
	}

	program, err := expr.Compile(expression,
		expr.Env(staticEnv()),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter expression: %w", err)
	}

	return &Filter{program: program, expr: expression}, nil
}

// Expression returns the original expression text.
func (f *Filter) Expression() string {
	return f.expr
}

// MatchResult evaluates the filter against one search result.
func (f *Filter) MatchResult(result omdb.SearchResult) (bool, error) {
	env := staticEnv()
	env["Result"] = result
	env["Title"] = result.Title
	env["Year"] = result.Year
	env["Type"] = string(result.Type)
	return f.run(env)
}

// MatchMovie evaluates the filter against a full movie record.
func (f *Filter) MatchMovie(movie *omdb.Movie) (bool, error) {
	env := staticEnv()
	env["Movie"] = movie
	env["Title"] = movie.Title
	env["Year"] = movie.Year
	env["Rating"] = movie.Rating
	env["hasGenre"] = func(genre string) bool {
		for _, g := range movie.Genres {
			if strings.EqualFold(g, genre) {
				return true
			}
		}
		return false
	}
	return f.run(env)
}

func (f *Filter) run(env map[string]interface{}) (bool, error) {
	output, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate filter: %w", err)
	}

	match, ok := output.(bool)
	if !ok {
		return false, fmt.Errorf("%w: got %T", ErrNotBoolean, output)
	}
	return match, nil
}

// staticEnv returns the helper functions available to every expression.
func staticEnv() map[string]interface{} {
	return map[string]interface{}{
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"endsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
		"now":   time.Now,
		"yearsAgo": func(years int) int {
			return time.Now().AddDate(-years, 0, 0).Year()
		},
	}
}
