package filter

import (
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/holowatch/holodex"
)

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache(size)
		}
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) Compiler {
	c := &exprCompiler{
		helperFuncs: createHelperFunctions(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// exprCompiler implements Compiler for expr-based filters
type exprCompiler struct {
	helperFuncs map[string]any
	cache       *lruCache
}

// Compile compiles an expression into an executable filter
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(c.helperFuncs),
		expr.AllowUndefinedVariables(), // Allow video properties
		expr.AsBool(),                  // Ensure boolean result
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	f := &exprFilter{
		expression: expression,
		program:    program,
	}
	if c.cache != nil {
		c.cache.Put(expression, f)
	}
	return f, nil
}

// Evaluate evaluates the filter against a video. Videos that make the
// expression fail at runtime are treated as non-matching.
func (f *exprFilter) Evaluate(video holodex.Video) bool {
	env := createRuntimeEnvironment(video)

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false
	}

	// Result is guaranteed to be bool due to AsBool() option during compilation
	return result.(bool)
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// createHelperFunctions creates the static helper functions used during compilation
func createHelperFunctions() map[string]any {
	funcs := make(map[string]any, 16)
	addHelperFunctions(funcs)
	return funcs
}

// addHelperFunctions adds all helper functions to the provided map
func addHelperFunctions(env map[string]any) {
	// Time helpers
	env["now"] = time.Now
	env["hoursSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours())
	}
	env["hoursAgo"] = func(hours int) time.Time {
		return time.Now().Add(-time.Duration(hours) * time.Hour)
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	// String helpers
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["endsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
}

// createRuntimeEnvironment creates the runtime environment for filter evaluation
func createRuntimeEnvironment(video holodex.Video) map[string]any {
	env := make(map[string]any, 32)

	addHelperFunctions(env)

	env["Video"] = video

	// Status helpers
	env["isLive"] = func() bool { return video.Status == holodex.VideoStatusLive }
	env["isUpcoming"] = func() bool { return video.Status == holodex.VideoStatusUpcoming }
	env["isClip"] = func() bool { return video.Type == holodex.VideoTypeClip }
	env["hasTopic"] = func(topic string) bool {
		return strings.EqualFold(video.Topic, topic)
	}
	env["fromOrg"] = func(org string) bool {
		return video.Channel != nil && strings.EqualFold(video.Channel.Org, org)
	}
	env["fromGroup"] = func(group string) bool {
		return video.Channel != nil && strings.EqualFold(video.Channel.Group, group)
	}

	// Direct video properties for convenience
	env["Title"] = video.Title
	env["Topic"] = video.Topic
	env["Type"] = string(video.Type)
	env["Status"] = string(video.Status)
	env["Duration"] = video.Duration
	env["LiveViewers"] = video.LiveViewers
	env["AvailableAt"] = time.Unix(video.AvailableAt, 0)
	env["StartScheduled"] = time.Unix(video.StartScheduled, 0)
	env["StartActual"] = time.Unix(video.StartActual, 0)

	// Channel properties flattened for convenience
	if video.Channel != nil {
		env["ChannelID"] = video.Channel.ID
		env["ChannelName"] = video.Channel.Name
		env["Org"] = video.Channel.Org
		env["Group"] = video.Channel.Group
	} else {
		env["ChannelID"] = ""
		env["ChannelName"] = ""
		env["Org"] = ""
		env["Group"] = ""
	}

	return env
}
