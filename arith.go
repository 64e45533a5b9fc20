package ajisai

import "context"

// operators is the fixed dispatch table for the nine arithmetic and
// comparison symbols, consulted before any dictionary lookup.
var operators = map[string]func(*Engine) error{
	"+":  func(eng *Engine) error { return eng.arith("+", fracAdd) },
	"-":  func(eng *Engine) error { return eng.arith("-", fracSub) },
	"*":  func(eng *Engine) error { return eng.arith("*", fracMul) },
	"/":  func(eng *Engine) error { return eng.arith("/", fracDiv) },
	">":  func(eng *Engine) error { return eng.compare(">", func(c int) bool { return c > 0 }) },
	">=": func(eng *Engine) error { return eng.compare(">=", func(c int) bool { return c >= 0 }) },
	"<":  func(eng *Engine) error { return eng.compare("<", func(c int) bool { return c < 0 }) },
	"<=": func(eng *Engine) error { return eng.compare("<=", func(c int) bool { return c <= 0 }) },
	"=":  (*Engine).opEquals,
}

type fracOp func(a, b Fraction) (Fraction, error)

func fracAdd(a, b Fraction) (Fraction, error) { return a.Add(b), nil }
func fracSub(a, b Fraction) (Fraction, error) { return a.Sub(b), nil }
func fracMul(a, b Fraction) (Fraction, error) { return a.Mul(b), nil }
func fracDiv(a, b Fraction) (Fraction, error) { return a.Div(b) }

// arith pops two operands and applies fn with implicit broadcasting:
// scalar pairs apply directly, a vector against a scalar maps fn over the
// vector's numeric elements and passes everything else through unchanged,
// and two vectors of equal length combine element-wise.
func (eng *Engine) arith(op string, fn fracOp) error {
	b, err := eng.pop(op)
	if err != nil {
		return err
	}
	a, err := eng.pop(op)
	if err != nil {
		return err
	}
	switch {
	case a.kind == KindNumber && b.kind == KindNumber:
		f, err := fn(a.num, b.num)
		if err != nil {
			return wrapOp(op, err)
		}
		eng.push(Num(f))

	case a.kind == KindVector && b.kind == KindNumber:
		out, err := broadcastNum(a.vec, func(f Fraction) (Fraction, error) { return fn(f, b.num) })
		if err != nil {
			return wrapOp(op, err)
		}
		eng.push(Value{kind: KindVector, vec: out})

	case a.kind == KindNumber && b.kind == KindVector:
		out, err := broadcastNum(b.vec, func(f Fraction) (Fraction, error) { return fn(a.num, f) })
		if err != nil {
			return wrapOp(op, err)
		}
		eng.push(Value{kind: KindVector, vec: out})

	case a.kind == KindVector && b.kind == KindVector:
		if len(a.vec) != len(b.vec) {
			return wrapOp(op, ErrLengthMismatch)
		}
		out := make([]Value, len(a.vec))
		for i := range a.vec {
			x, y := a.vec[i], b.vec[i]
			if x.kind == KindNumber && y.kind == KindNumber {
				f, err := fn(x.num, y.num)
				if err != nil {
					return wrapOp(op, err)
				}
				out[i] = Num(f)
			} else {
				out[i] = x
			}
		}
		eng.push(Value{kind: KindVector, vec: out})

	default:
		return TypeError{Op: op, Expected: "numbers or vectors"}
	}
	return nil
}

// compare mirrors arith's broadcasting for the ordering operators, except
// that non-numeric elements compare false instead of passing through.
func (eng *Engine) compare(op string, keep func(int) bool) error {
	b, err := eng.pop(op)
	if err != nil {
		return err
	}
	a, err := eng.pop(op)
	if err != nil {
		return err
	}
	switch {
	case a.kind == KindNumber && b.kind == KindNumber:
		eng.push(Bool(keep(a.num.Cmp(b.num))))

	case a.kind == KindVector && b.kind == KindNumber:
		eng.push(broadcastCmp(a.vec, func(f Fraction) bool { return keep(f.Cmp(b.num)) }))

	case a.kind == KindNumber && b.kind == KindVector:
		eng.push(broadcastCmp(b.vec, func(f Fraction) bool { return keep(a.num.Cmp(f)) }))

	case a.kind == KindVector && b.kind == KindVector:
		if len(a.vec) != len(b.vec) {
			return wrapOp(op, ErrLengthMismatch)
		}
		out := make([]Value, len(a.vec))
		for i := range a.vec {
			x, y := a.vec[i], b.vec[i]
			if x.kind == KindNumber && y.kind == KindNumber {
				out[i] = Bool(keep(x.num.Cmp(y.num)))
			} else {
				out[i] = Bool(false)
			}
		}
		eng.push(Value{kind: KindVector, vec: out})

	default:
		return TypeError{Op: op, Expected: "numbers or vectors"}
	}
	return nil
}

// opEquals is structural equality: cross-type compares false rather than
// erroring, vectors compare deep, and unlike the ordering operators it
// never broadcasts.
func (eng *Engine) opEquals() error {
	b, err := eng.pop("=")
	if err != nil {
		return err
	}
	a, err := eng.pop("=")
	if err != nil {
		return err
	}
	eng.push(Bool(a.Equal(b)))
	return nil
}

// opMinus negates the top number, broadcasting over vectors like the
// arithmetic operators.
func (eng *Engine) opMinus(ctx context.Context) error {
	v, err := eng.pop("MINUS")
	if err != nil {
		return err
	}
	switch v.kind {
	case KindNumber:
		eng.push(Num(v.num.Neg()))
	case KindVector:
		out, _ := broadcastNum(v.vec, func(f Fraction) (Fraction, error) { return f.Neg(), nil })
		eng.push(Value{kind: KindVector, vec: out})
	default:
		return TypeError{Op: "MINUS", Expected: "a number or vector"}
	}
	return nil
}

func broadcastNum(vec []Value, fn func(Fraction) (Fraction, error)) ([]Value, error) {
	out := make([]Value, len(vec))
	for i, item := range vec {
		if item.kind == KindNumber {
			f, err := fn(item.num)
			if err != nil {
				return nil, err
			}
			out[i] = Num(f)
		} else {
			out[i] = item
		}
	}
	return out, nil
}

func broadcastCmp(vec []Value, keep func(Fraction) bool) Value {
	out := make([]Value, len(vec))
	for i, item := range vec {
		if item.kind == KindNumber {
			out[i] = Bool(keep(item.num))
		} else {
			out[i] = Bool(false)
		}
	}
	return Value{kind: KindVector, vec: out}
}
