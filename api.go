package ajisai

import (
	"context"
	"io"

	"github.com/jcorbin/goajisai/internal/panicerr"
)

// New creates an Engine with a fresh dictionary, empty stacks, and no
// buffered output, customized by any given options.
func New(opts ...Option) *Engine {
	var eng Engine
	eng.reset()
	defaultOptions.apply(&eng)
	if opt := Options(opts...); opt != nil {
		opt.apply(&eng)
	}
	return &eng
}

// Execute runs a piece of source text against the engine, leaving its
// effects on the stack, dictionary, and output buffer. Execution stops at
// the first error; prior effects remain.
func (eng *Engine) Execute(src string) error {
	return eng.ExecuteContext(context.Background(), src)
}

// ExecuteContext is Execute bounded by a context, checked between tokens
// and between loop iterations.
func (eng *Engine) ExecuteContext(ctx context.Context, src string) error {
	err := panicerr.Recover("engine", func() error {
		toks, err := tokenize(src)
		if err != nil {
			return err
		}
		return eng.run(ctx, toks)
	})
	if ferr := eng.out.flush(); err == nil {
		err = ferr
	}
	return err
}

// Stack returns a copy of the operand stack, bottom first.
func (eng *Engine) Stack() []Value {
	if len(eng.stack) == 0 {
		return nil
	}
	return append([]Value(nil), eng.stack...)
}

// Register returns the top of the return stack, false when empty.
func (eng *Engine) Register() (Value, bool) {
	if i := len(eng.rstack) - 1; i >= 0 {
		return eng.rstack[i], true
	}
	return Value{}, false
}

// DrainOutput returns everything printed since the last drain, emptying
// the buffer.
func (eng *Engine) DrainOutput() string {
	return eng.out.drain()
}

// Words lists every dictionary entry, builtins included, sorted by name.
func (eng *Engine) Words() []WordInfo {
	return eng.dict.allWords()
}

// CustomWords lists the names of user-defined words, sorted.
func (eng *Engine) CustomWords() []string {
	return eng.dict.customWords()
}

// LookupWord reports one dictionary entry by name, false when undefined.
// Lookup is case-insensitive.
func (eng *Engine) LookupWord(name string) (WordInfo, bool) {
	return eng.dict.info(name)
}

// DeleteWord removes a user-defined word, failing for builtins, unknown
// names, and words that other definitions still reference.
func (eng *Engine) DeleteWord(name string) error {
	return eng.dict.delete(name)
}

// Dependents returns the sorted names of words whose definitions reference
// name, empty when it is safe to delete or redefine.
func (eng *Engine) Dependents(name string) []string {
	return eng.dict.dependentsOf(name)
}

// Reset restores the engine to its freshly constructed state: builtin-only
// dictionary, empty stacks, empty output. Options stay in effect.
func (eng *Engine) Reset() {
	eng.reset()
}

// WithLogf provides a trace logging function, receiving one message per
// evaluated token.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

// WithTee mirrors all program output into w as it is written, in addition
// to the drainable buffer.
func WithTee(w io.Writer) Option { return withTee(w) }

// WithLoopLimit caps the iterations of any single BEGIN or LOOP form.
func WithLoopLimit(limit int) Option { return withLoopLimit(limit) }

// WithMaxDepth caps nested user word calls.
func WithMaxDepth(depth int) Option { return withMaxDepth(depth) }
