package ajisai

// Engine is one self-contained runtime instance: a dictionary preloaded
// with every builtin, an operand stack, a return/loop stack, and an output
// sink drained by the host. Instances share nothing, so two Engines can
// never corrupt each other's dictionaries.
//
// An Engine is not safe for concurrent use; execution is synchronous and
// single-threaded.
type Engine struct {
	logging

	dict   *dictionary
	stack  []Value
	rstack []Value
	out    outputBuffer

	// pending holds a description waiting to attach to a word definition.
	// Dispatching any token other than DEF clears it, so a description
	// only sticks to an immediately following DEF.
	pending    string
	hasPending bool
	defDesc    string
	hasDefDesc bool

	loopLimit int
	maxDepth  int
	depth     int
}

// reset returns the engine to its freshly constructed state, keeping
// configured options.
func (eng *Engine) reset() {
	eng.dict = newDictionary()
	eng.stack = nil
	eng.rstack = nil
	eng.out.reset()
	eng.pending, eng.hasPending = "", false
	eng.defDesc, eng.hasDefDesc = "", false
	eng.depth = 0
}

func (eng *Engine) push(v Value) {
	eng.stack = append(eng.stack, v)
}

func (eng *Engine) pop(op string) (Value, error) {
	i := len(eng.stack) - 1
	if i < 0 {
		return Value{}, wrapOp(op, ErrStackUnderflow)
	}
	v := eng.stack[i]
	eng.stack = eng.stack[:i]
	return v, nil
}

func (eng *Engine) peek(op string) (Value, error) {
	i := len(eng.stack) - 1
	if i < 0 {
		return Value{}, wrapOp(op, ErrStackUnderflow)
	}
	return eng.stack[i], nil
}

func (eng *Engine) need(op string, n int) error {
	if len(eng.stack) < n {
		return wrapOp(op, ErrStackUnderflow)
	}
	return nil
}

func (eng *Engine) popNumber(op string) (Fraction, error) {
	v, err := eng.pop(op)
	if err != nil {
		return Fraction{}, err
	}
	f, ok := v.Number()
	if !ok {
		return Fraction{}, TypeError{Op: op, Expected: "a number"}
	}
	return f, nil
}

func (eng *Engine) popInt(op string) (int64, error) {
	f, err := eng.popNumber(op)
	if err != nil {
		return 0, err
	}
	n, ok := f.Int()
	if !ok {
		return 0, TypeError{Op: op, Expected: "a whole number"}
	}
	return n, nil
}

func (eng *Engine) popBool(op string) (bool, error) {
	v, err := eng.pop(op)
	if err != nil {
		return false, err
	}
	b, ok := v.Bool()
	if !ok {
		return false, TypeError{Op: op, Expected: "a boolean"}
	}
	return b, nil
}

func (eng *Engine) popString(op string) (string, error) {
	v, err := eng.pop(op)
	if err != nil {
		return "", err
	}
	s, ok := v.Text()
	if !ok {
		return "", TypeError{Op: op, Expected: "a string"}
	}
	return s, nil
}

// popVector returns the popped vector's backing slice. Callers must treat
// it as read-only and copy before building derived vectors.
func (eng *Engine) popVector(op string) ([]Value, error) {
	v, err := eng.pop(op)
	if err != nil {
		return nil, err
	}
	if v.kind != KindVector {
		return nil, TypeError{Op: op, Expected: "a vector"}
	}
	return v.vec, nil
}

func (eng *Engine) rpush(v Value) {
	eng.rstack = append(eng.rstack, v)
}

func (eng *Engine) rpop() (Value, bool) {
	i := len(eng.rstack) - 1
	if i < 0 {
		return Value{}, false
	}
	v := eng.rstack[i]
	eng.rstack = eng.rstack[:i]
	return v, true
}

type logging struct {
	logfn func(mess string, args ...interface{})
}

func (log *logging) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.logfn = logfn
	}
}

func (log logging) logf(mess string, args ...interface{}) {
	if log.logfn != nil {
		log.logfn(mess, args...)
	}
}
