package ajisai

import "context"

func (eng *Engine) opLength(ctx context.Context) error {
	vec, err := eng.popVector("LENGTH")
	if err != nil {
		return err
	}
	eng.push(Int(int64(len(vec))))
	return nil
}

func (eng *Engine) opHead(ctx context.Context) error {
	vec, err := eng.popVector("HEAD")
	if err != nil {
		return err
	}
	if len(vec) == 0 {
		return TypeError{Op: "HEAD", Expected: "a non-empty vector"}
	}
	eng.push(vec[0])
	return nil
}

func (eng *Engine) opTail(ctx context.Context) error {
	vec, err := eng.popVector("TAIL")
	if err != nil {
		return err
	}
	if len(vec) == 0 {
		return TypeError{Op: "TAIL", Expected: "a non-empty vector"}
	}
	eng.push(Vec(vec[1:]...))
	return nil
}

// opUncons splits a vector into its head and tail, tail on top, which is
// the order the usual HEAD/TAIL recursion wants.
func (eng *Engine) opUncons(ctx context.Context) error {
	vec, err := eng.popVector("UNCONS")
	if err != nil {
		return err
	}
	if len(vec) == 0 {
		return TypeError{Op: "UNCONS", Expected: "a non-empty vector"}
	}
	eng.push(vec[0])
	eng.push(Vec(vec[1:]...))
	return nil
}

func (eng *Engine) opCons(ctx context.Context) error {
	rest, err := eng.popVector("CONS")
	if err != nil {
		return err
	}
	elem, err := eng.pop("CONS")
	if err != nil {
		return err
	}
	out := make([]Value, 0, len(rest)+1)
	out = append(append(out, elem), rest...)
	eng.push(Value{kind: KindVector, vec: out})
	return nil
}

func (eng *Engine) opAppend(ctx context.Context) error {
	b, err := eng.popVector("APPEND")
	if err != nil {
		return err
	}
	a, err := eng.popVector("APPEND")
	if err != nil {
		return err
	}
	out := make([]Value, 0, len(a)+len(b))
	out = append(append(out, a...), b...)
	eng.push(Value{kind: KindVector, vec: out})
	return nil
}

func (eng *Engine) opReverse(ctx context.Context) error {
	vec, err := eng.popVector("REVERSE")
	if err != nil {
		return err
	}
	out := make([]Value, len(vec))
	for i, v := range vec {
		out[len(vec)-1-i] = v
	}
	eng.push(Value{kind: KindVector, vec: out})
	return nil
}

func (eng *Engine) opEmpty(ctx context.Context) error {
	vec, err := eng.popVector("EMPTY?")
	if err != nil {
		return err
	}
	eng.push(Bool(len(vec) == 0))
	return nil
}

// opNth indexes a vector, counting negative indices from the end. The
// reported index is the one the program gave, not the normalized one.
func (eng *Engine) opNth(ctx context.Context) error {
	iv, err := eng.pop("NTH")
	if err != nil {
		return err
	}
	f, ok := iv.Number()
	if !ok {
		return TypeError{Op: "NTH", Expected: "a number index"}
	}
	vec, err := eng.popVector("NTH")
	if err != nil {
		return err
	}
	n, whole := f.Int()
	if !whole {
		return IndexOutOfBoundsError{Index: f, Length: len(vec)}
	}
	if n < 0 {
		n += int64(len(vec))
	}
	if n < 0 || n >= int64(len(vec)) {
		return IndexOutOfBoundsError{Index: f, Length: len(vec)}
	}
	eng.push(vec[n])
	return nil
}
