package objprint

import (
	"fmt"
	"io"
	"reflect"

	"go.uber.org/zap"
	"golang.org/x/text/language"
)

const (
	// DefaultMaxDepth is the number of nested levels rendered before the
	// depth sentinel replaces further members.
	DefaultMaxDepth = 10
	// DefaultIndent is the indentation unit, repeated once per nesting level.
	DefaultIndent = "\t"
)

// Formatter renders one value in place of the default rendering. A line
// terminator is appended to the result when it lacks one.
type Formatter func(v any) string

// FormatterFor adapts a function of a concrete type to a [Formatter]. Values
// of any other type are rendered with fmt.Sprint.
func FormatterFor[V any](fn func(V) string) Formatter {
	return func(v any) string {
		if v == nil {
			var zero V
			return fn(zero)
		}
		if typed, ok := v.(V); ok {
			return fn(typed)
		}
		return fmt.Sprint(v)
	}
}

// rules is the read-only rule set consulted while rendering.
type rules struct {
	excludedTypes  map[reflect.Type]struct{}
	excludedPaths  map[string]struct{}
	typeFormatters map[reflect.Type]Formatter
	pathFormatters map[string]Formatter
	typeLocales    map[reflect.Type]language.Tag
	pathMaxLength  map[string]int

	maxDepth int
	indent   string
	unit     TruncateUnit
	logger   *zap.Logger
}

func (r *rules) isExcluded(t reflect.Type, path string) bool {
	if _, ok := r.excludedTypes[t]; ok {
		return true
	}
	_, ok := r.excludedPaths[path]
	return ok
}

// Config holds the rendering rules for values of the root type T.
//
// A Config is immutable: every method returns a new Config and leaves the
// receiver untouched, so one Config can be shared by concurrent renders.
// The first configuration error ([*SelectorError] or [*DuplicateRuleError])
// sticks: later mutators return the Config unchanged and the render methods
// report the error. Check [Config.Err] once the Config is built so that a
// bad selector or duplicate rule surfaces where it was written rather than
// at the first render.
type Config[T any] struct {
	root  reflect.Type
	rules rules
	err   error
}

// For returns the default configuration for root type T.
func For[T any]() Config[T] {
	return Config[T]{
		root: reflect.TypeFor[T](),
		rules: rules{
			maxDepth: DefaultMaxDepth,
			indent:   DefaultIndent,
			logger:   zap.NewNop(),
		},
	}
}

// Root returns the root type the configuration was created for.
func (c Config[T]) Root() reflect.Type { return c.root }

// Err returns the first configuration error, if any.
func (c Config[T]) Err() error { return c.err }

func (c Config[T]) fail(err error) Config[T] {
	c.err = err
	return c
}

func (c Config[T]) emptyPath() Config[T] {
	return c.fail(&SelectorError{Root: typeName(c.root), Reason: "path is empty"})
}

// ExcludeType skips every member whose declared type is exactly t.
func (c Config[T]) ExcludeType(t reflect.Type) Config[T] {
	if c.err != nil || t == nil {
		return c
	}
	if _, ok := c.rules.excludedTypes[t]; ok {
		return c.fail(&DuplicateRuleError{Rule: "type exclusion", Key: t.String()})
	}
	c.rules.excludedTypes = withMember(c.rules.excludedTypes, t)
	return c
}

// ExcludePath skips the member at path.
func (c Config[T]) ExcludePath(path PropertyPath) Config[T] {
	if c.err != nil {
		return c
	}
	if len(path) == 0 {
		return c.emptyPath()
	}
	key := path.String()
	if _, ok := c.rules.excludedPaths[key]; ok {
		return c.fail(&DuplicateRuleError{Rule: "path exclusion", Key: key})
	}
	c.rules.excludedPaths = withMember(c.rules.excludedPaths, key)
	return c
}

// SetTypeFormatter renders members and elements of type t with f.
func (c Config[T]) SetTypeFormatter(t reflect.Type, f Formatter) Config[T] {
	if c.err != nil || t == nil || f == nil {
		return c
	}
	if _, ok := c.rules.typeFormatters[t]; ok {
		return c.fail(&DuplicateRuleError{Rule: "type formatter", Key: t.String()})
	}
	c.rules.typeFormatters = withEntry(c.rules.typeFormatters, t, f)
	return c
}

// SetPathFormatter renders the member at path with f. It takes precedence
// over every other rule for that member.
func (c Config[T]) SetPathFormatter(path PropertyPath, f Formatter) Config[T] {
	if c.err != nil || f == nil {
		return c
	}
	if len(path) == 0 {
		return c.emptyPath()
	}
	key := path.String()
	if _, ok := c.rules.pathFormatters[key]; ok {
		return c.fail(&DuplicateRuleError{Rule: "path formatter", Key: key})
	}
	c.rules.pathFormatters = withEntry(c.rules.pathFormatters, key, f)
	return c
}

// SetTypeLocale renders values of type t in the given locale. It only
// affects numeric kinds and types implementing [LocaleFormatter]; for other
// types it has no effect.
func (c Config[T]) SetTypeLocale(t reflect.Type, tag language.Tag) Config[T] {
	if c.err != nil || t == nil {
		return c
	}
	if _, ok := c.rules.typeLocales[t]; ok {
		return c.fail(&DuplicateRuleError{Rule: "type locale", Key: t.String()})
	}
	c.rules.typeLocales = withEntry(c.rules.typeLocales, t, tag)
	return c
}

// SetPathMaxLength limits the rendered value of the member at path to n
// characters, or display cells under [Cells]. Negative lengths are treated
// as zero.
func (c Config[T]) SetPathMaxLength(path PropertyPath, n int) Config[T] {
	if c.err != nil {
		return c
	}
	if len(path) == 0 {
		return c.emptyPath()
	}
	key := path.String()
	if _, ok := c.rules.pathMaxLength[key]; ok {
		return c.fail(&DuplicateRuleError{Rule: "max length", Key: key})
	}
	c.rules.pathMaxLength = withEntry(c.rules.pathMaxLength, key, max(n, 0))
	return c
}

// SelectMember resolves selector against T and returns a [MemberConfig]
// for attaching one path rule. See [ResolvePath] for the selector syntax.
func (c Config[T]) SelectMember(selector string) MemberConfig[T] {
	path, err := ResolvePath(c.root, selector)
	return MemberConfig[T]{config: c, path: path, selector: selector, err: err}
}

// WithMaxDepth sets the depth limit. Values below one restore
// [DefaultMaxDepth].
func (c Config[T]) WithMaxDepth(n int) Config[T] {
	if n < 1 {
		n = DefaultMaxDepth
	}
	c.rules.maxDepth = n
	return c
}

// WithIndent sets the indentation unit.
func (c Config[T]) WithIndent(indent string) Config[T] {
	c.rules.indent = indent
	return c
}

// WithTruncateUnit sets what path max lengths count. The default is
// [Runes].
func (c Config[T]) WithTruncateUnit(u TruncateUnit) Config[T] {
	c.rules.unit = u
	return c
}

// WithLogger sets the logger that receives debug events while rendering.
// A nil logger disables logging.
func (c Config[T]) WithLogger(logger *zap.Logger) Config[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	c.rules.logger = logger
	return c
}

// PrintToString renders v. It fails only when the configuration holds an
// error; rendering itself always completes.
func (c Config[T]) PrintToString(v T) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	r := c.rules
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	if r.maxDepth < 1 {
		r.maxDepth = DefaultMaxDepth
	}
	return newPrinter(&r).print(reflect.ValueOf(&v).Elem(), 0, 0, nil), nil
}

// Write renders v to w.
func (c Config[T]) Write(w io.Writer, v T) error {
	s, err := c.PrintToString(v)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}
