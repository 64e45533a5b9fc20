package ajisai

import "context"

// run evaluates a token sequence left to right against the engine's
// stacks and dictionary. Control-flow builtins re-enter run on expanded
// quotation or span token streams; this is a tree-walking interpreter, so
// nested evaluation is an ordinary recursive call.
func (eng *Engine) run(ctx context.Context, toks []token) error {
	if eng.logfn != nil {
		defer eng.withLogPrefix("\t")()
	}

	for i := 0; i < len(toks); i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		tok := toks[i]
		if eng.logfn != nil {
			eng.logf("eval %v -- r:%v s:%v", tok, eng.rstack, eng.stack)
		}

		if tok.kind == tokDescription {
			eng.pending, eng.hasPending = tok.str, true
			continue
		}
		eng.defDesc, eng.hasDefDesc = eng.pending, eng.hasPending
		eng.pending, eng.hasPending = "", false

		switch tok.kind {
		case tokNumber:
			eng.push(Num(tok.num))
		case tokString:
			eng.push(Str(tok.str))
		case tokBoolean:
			eng.push(Bool(tok.ok))
		case tokNil:
			eng.push(Nil())
		case tokVecOpen:
			v, close, err := collectVector(toks, i)
			if err != nil {
				return err
			}
			eng.push(v)
			i = close
		case tokVecClose:
			return ParseError{Reason: "unmatched ]", Line: tok.line, Col: tok.col}
		case tokSymbol:
			next, err := eng.evalSymbol(ctx, toks, i)
			if err != nil {
				return err
			}
			i = next
		}
	}
	return nil
}

// evalSymbol resolves one symbol token in fixed priority order: the loop
// openers that consume a span of upcoming tokens, then the nine operators,
// then the dictionary. It returns the index of the last token consumed.
func (eng *Engine) evalSymbol(ctx context.Context, toks []token, i int) (int, error) {
	name := toks[i].str

	switch name {
	case "DO":
		span, close, err := collectCountedSpan(toks, i)
		if err != nil {
			return 0, err
		}
		return close, eng.runCountedLoop(ctx, span)
	case "BEGIN":
		span, close, err := collectBeginSpan(toks, i)
		if err != nil {
			return 0, err
		}
		return close, eng.runBeginLoop(ctx, span)
	}

	if op, ok := operators[name]; ok {
		return i, op(eng)
	}

	def, ok := eng.dict.lookup(name)
	if !ok {
		return i, UnknownWordError{Name: name}
	}
	if def.builtin {
		fn := builtinFuncs[name]
		if fn == nil {
			return i, UnknownBuiltinError{Name: name}
		}
		return i, fn(eng, ctx)
	}
	return i, eng.call(ctx, name, def)
}

// call runs a user word's stored body. The depth counter converts runaway
// recursion into a typed error, since Go offers no way to recover from
// actual stack exhaustion.
func (eng *Engine) call(ctx context.Context, name string, def *wordDef) error {
	if eng.depth >= eng.maxDepth {
		return wrapWord(name, ErrRecursionLimit)
	}
	eng.depth++
	err := eng.run(ctx, def.tokens)
	eng.depth--
	return err
}

// runQuotation expands a vector value back into tokens and evaluates them
// in place, which is what makes a vector a quotation.
func (eng *Engine) runQuotation(ctx context.Context, op string, v Value) error {
	if v.kind != KindVector {
		return TypeError{Op: op, Expected: "a quotation"}
	}
	return eng.run(ctx, flatten(v.vec, nil))
}

// collectVector parses the bracketed run opening at toks[open] as data,
// returning the vector value and the index of the matching close bracket.
func collectVector(toks []token, open int) (Value, int, error) {
	items, close, err := vectorItems(toks, open+1, toks[open])
	if err != nil {
		return Value{}, 0, err
	}
	return Value{kind: KindVector, vec: items}, close, nil
}

// vectorItems reads item values up to the close bracket matching the
// given opener: literals become their value, symbols stay inert symbol
// values, nested brackets recurse, and descriptions are dropped like
// comments.
func vectorItems(toks []token, i int, open token) ([]Value, int, error) {
	items := []Value{}
	for ; i < len(toks); i++ {
		tok := toks[i]
		switch tok.kind {
		case tokVecClose:
			return items, i, nil
		case tokNumber:
			items = append(items, Num(tok.num))
		case tokString:
			items = append(items, Str(tok.str))
		case tokBoolean:
			items = append(items, Bool(tok.ok))
		case tokNil:
			items = append(items, Nil())
		case tokSymbol:
			items = append(items, Value{kind: KindSymbol, str: tok.str})
		case tokDescription:
		case tokVecOpen:
			sub, close, err := vectorItems(toks, i+1, tok)
			if err != nil {
				return nil, 0, err
			}
			items = append(items, Value{kind: KindVector, vec: sub})
			i = close
		}
	}
	return nil, 0, ParseError{Reason: "unterminated vector", Line: open.line, Col: open.col}
}

// flatten converts quotation items back into the token stream they came
// from: literals become literal tokens, symbols stay symbols, and nested
// vectors become bracketed runs.
func flatten(items []Value, toks []token) []token {
	for _, item := range items {
		switch item.kind {
		case KindNil:
			toks = append(toks, token{kind: tokNil})
		case KindNumber:
			toks = append(toks, token{kind: tokNumber, num: item.num})
		case KindString:
			toks = append(toks, token{kind: tokString, str: item.str})
		case KindBoolean:
			toks = append(toks, token{kind: tokBoolean, ok: item.ok})
		case KindSymbol:
			toks = append(toks, token{kind: tokSymbol, str: item.str})
		case KindVector:
			toks = append(toks, token{kind: tokVecOpen})
			toks = flatten(item.vec, toks)
			toks = append(toks, token{kind: tokVecClose})
		}
	}
	return toks
}
