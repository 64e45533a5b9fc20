package ajisai

import (
	"context"
	"fmt"
)

type loopKind int

const (
	loopCounted loopKind = iota // DO ... LOOP
	loopAgain                   // BEGIN ... AGAIN
	loopUntil                   // BEGIN ... UNTIL
	loopWhile                   // BEGIN ... WHILE ... REPEAT
)

// loopSpan is a bracketed run of upcoming tokens collected by the
// evaluator when it meets DO or BEGIN; cond is only set for the
// WHILE form.
type loopSpan struct {
	kind loopKind
	cond []token
	body []token
}

// scanSpan finds the terminator closing the loop opened at toks[open],
// skipping bracketed vector runs and nested DO/BEGIN forms. It returns
// the terminator index and, for BEGIN, the index of a depth-0 WHILE
// (-1 when absent).
func scanSpan(toks []token, open int) (int, int, error) {
	opener := toks[open]
	vecDepth, loopDepth, whileAt := 0, 0, -1
	for i := open + 1; i < len(toks); i++ {
		tok := toks[i]
		switch tok.kind {
		case tokVecOpen:
			vecDepth++
		case tokVecClose:
			if vecDepth == 0 {
				return 0, 0, ParseError{Reason: "unmatched ]", Line: tok.line, Col: tok.col}
			}
			vecDepth--
		case tokSymbol:
			if vecDepth > 0 {
				continue
			}
			switch tok.str {
			case "DO", "BEGIN":
				loopDepth++
			case "LOOP":
				if loopDepth > 0 {
					loopDepth--
				} else if opener.str == "DO" {
					return i, whileAt, nil
				}
				// a depth-0 LOOP inside a BEGIN body is the quotation
				// form, dispatched when the body runs
			case "AGAIN", "UNTIL", "REPEAT":
				if loopDepth > 0 {
					loopDepth--
					continue
				}
				if opener.str != "BEGIN" {
					continue
				}
				if tok.str == "REPEAT" && whileAt < 0 {
					return 0, 0, ParseError{Reason: "REPEAT without WHILE", Line: tok.line, Col: tok.col}
				}
				if tok.str != "REPEAT" && whileAt >= 0 {
					return 0, 0, ParseError{
						Reason: fmt.Sprintf("%v after WHILE, expected REPEAT", tok.str),
						Line:   tok.line, Col: tok.col,
					}
				}
				return i, whileAt, nil
			case "WHILE":
				if loopDepth == 0 && opener.str == "BEGIN" {
					if whileAt >= 0 {
						return 0, 0, ParseError{Reason: "duplicate WHILE", Line: tok.line, Col: tok.col}
					}
					whileAt = i
				}
			}
		}
	}
	return 0, 0, ParseError{
		Reason: fmt.Sprintf("unterminated %v", opener.str),
		Line:   opener.line, Col: opener.col,
	}
}

func collectCountedSpan(toks []token, open int) (loopSpan, int, error) {
	term, _, err := scanSpan(toks, open)
	if err != nil {
		return loopSpan{}, 0, err
	}
	return loopSpan{kind: loopCounted, body: toks[open+1 : term]}, term, nil
}

func collectBeginSpan(toks []token, open int) (loopSpan, int, error) {
	term, whileAt, err := scanSpan(toks, open)
	if err != nil {
		return loopSpan{}, 0, err
	}
	switch toks[term].str {
	case "AGAIN":
		return loopSpan{kind: loopAgain, body: toks[open+1 : term]}, term, nil
	case "UNTIL":
		return loopSpan{kind: loopUntil, body: toks[open+1 : term]}, term, nil
	}
	return loopSpan{
		kind: loopWhile,
		cond: toks[open+1 : whileAt],
		body: toks[whileAt+1 : term],
	}, term, nil
}

// runCountedLoop drives DO ... LOOP: it pops limit then start, seeds the
// return stack with limit and the running index, and runs the body once
// per index in [start, limit). The body reads the index as I ( J for an
// enclosing loop ) and must leave the loop's two return stack slots in
// place; whatever else it parks there is discarded on exit.
func (eng *Engine) runCountedLoop(ctx context.Context, span loopSpan) error {
	limit, err := eng.popInt("DO")
	if err != nil {
		return err
	}
	start, err := eng.popInt("DO")
	if err != nil {
		return err
	}
	base := len(eng.rstack)
	eng.rpush(Int(limit))
	eng.rpush(Int(start))
	for idx := start; idx < limit; idx++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if len(eng.rstack) < base+2 {
			return wrapOp("LOOP", ErrStackUnderflow)
		}
		eng.rstack[base+1] = Int(idx)
		if err := eng.run(ctx, span.body); err != nil {
			return err
		}
	}
	eng.rstack = eng.rstack[:base]
	return nil
}

func (eng *Engine) runBeginLoop(ctx context.Context, span loopSpan) error {
	op := "AGAIN"
	switch span.kind {
	case loopUntil:
		op = "UNTIL"
	case loopWhile:
		op = "WHILE"
	}
	for n := 0; ; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if n >= eng.loopLimit {
			return wrapOp(op, ErrLoopLimit)
		}
		switch span.kind {
		case loopAgain:
			if err := eng.run(ctx, span.body); err != nil {
				return err
			}
		case loopUntil:
			if err := eng.run(ctx, span.body); err != nil {
				return err
			}
			done, err := eng.popBool(op)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		case loopWhile:
			if err := eng.run(ctx, span.cond); err != nil {
				return err
			}
			keep, err := eng.popBool(op)
			if err != nil {
				return err
			}
			if !keep {
				return nil
			}
			if err := eng.run(ctx, span.body); err != nil {
				return err
			}
		}
	}
}

// opLoop is the quotation form: [cond] [body] LOOP re-evaluates cond
// before every iteration and runs body while it yields true, subject to
// the engine's iteration cap.
func (eng *Engine) opLoop(ctx context.Context) error {
	body, err := eng.pop("LOOP")
	if err != nil {
		return err
	}
	cond, err := eng.pop("LOOP")
	if err != nil {
		return err
	}
	for n := 0; ; n++ {
		if n >= eng.loopLimit {
			return wrapOp("LOOP", ErrLoopLimit)
		}
		if err := eng.runQuotation(ctx, "LOOP", cond); err != nil {
			return err
		}
		keep, err := eng.popBool("LOOP")
		if err != nil {
			return err
		}
		if !keep {
			return nil
		}
		if err := eng.runQuotation(ctx, "LOOP", body); err != nil {
			return err
		}
	}
}

// opIf pops [then] [else] and the condition beneath them, expanding only
// the selected branch; the other is never evaluated, so it may reference
// words that do not exist yet.
func (eng *Engine) opIf(ctx context.Context) error {
	alt, err := eng.pop("IF")
	if err != nil {
		return err
	}
	then, err := eng.pop("IF")
	if err != nil {
		return err
	}
	cond, err := eng.popBool("IF")
	if err != nil {
		return err
	}
	if cond {
		return eng.runQuotation(ctx, "IF", then)
	}
	return eng.runQuotation(ctx, "IF", alt)
}

func (eng *Engine) opWhen(ctx context.Context) error {
	then, err := eng.pop("WHEN")
	if err != nil {
		return err
	}
	cond, err := eng.popBool("WHEN")
	if err != nil {
		return err
	}
	if cond {
		return eng.runQuotation(ctx, "WHEN", then)
	}
	return nil
}

func (eng *Engine) opUnless(ctx context.Context) error {
	then, err := eng.pop("UNLESS")
	if err != nil {
		return err
	}
	cond, err := eng.popBool("UNLESS")
	if err != nil {
		return err
	}
	if !cond {
		return eng.runQuotation(ctx, "UNLESS", then)
	}
	return nil
}

// opCase pops a vector of [cond action] pairs and a probe value. For each
// pair in order it pushes the probe, runs cond, and pops the boolean it
// must yield, clearing anything the condition left behind; the first true
// pushes the probe again and runs the action. When nothing matches the
// probe is pushed back for the caller to deal with.
func (eng *Engine) opCase(ctx context.Context) error {
	pairs, err := eng.popVector("CASE")
	if err != nil {
		return err
	}
	probe, err := eng.pop("CASE")
	if err != nil {
		return err
	}
	base := len(eng.stack)
	for _, pair := range pairs {
		if pair.kind != KindVector || len(pair.vec) != 2 {
			return TypeError{Op: "CASE", Expected: "[condition action] pairs"}
		}
		eng.push(probe)
		if err := eng.runQuotation(ctx, "CASE", pair.vec[0]); err != nil {
			return err
		}
		matched, err := eng.popBool("CASE")
		if err != nil {
			return err
		}
		if len(eng.stack) > base {
			eng.stack = eng.stack[:base]
		}
		if matched {
			eng.push(probe)
			return eng.runQuotation(ctx, "CASE", pair.vec[1])
		}
	}
	eng.push(probe)
	return nil
}

func (eng *Engine) opToR(ctx context.Context) error {
	v, err := eng.pop(">R")
	if err != nil {
		return err
	}
	eng.rpush(v)
	return nil
}

func (eng *Engine) opFromR(ctx context.Context) error {
	v, ok := eng.rpop()
	if !ok {
		return wrapOp("R>", ErrRegisterEmpty)
	}
	eng.push(v)
	return nil
}

func (eng *Engine) opRFetch(ctx context.Context) error {
	if len(eng.rstack) == 0 {
		return wrapOp("R@", ErrRegisterEmpty)
	}
	eng.push(eng.rstack[len(eng.rstack)-1])
	return nil
}

// opIndex reads the innermost loop index off the return stack; opIndexJ
// reads the next-enclosing one by position.
func (eng *Engine) opIndex(ctx context.Context) error {
	if len(eng.rstack) < 1 {
		return wrapOp("I", ErrStackUnderflow)
	}
	eng.push(eng.rstack[len(eng.rstack)-1])
	return nil
}

func (eng *Engine) opIndexJ(ctx context.Context) error {
	if len(eng.rstack) < 3 {
		return wrapOp("J", ErrStackUnderflow)
	}
	eng.push(eng.rstack[len(eng.rstack)-3])
	return nil
}

// strayTerminator makes the builtin for a loop terminator reached outside
// any span that could close; hitting one means the matching opener never
// ran.
func strayTerminator(name, opener string) builtinFunc {
	return func(eng *Engine, ctx context.Context) error {
		return ParseError{Reason: fmt.Sprintf("%v without %v", name, opener)}
	}
}
