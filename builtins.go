package ajisai

import "context"

type builtinFunc func(*Engine, context.Context) error

type builtinWord struct {
	name string
	doc  string
	fn   builtinFunc
}

// builtinWords seeds every new dictionary. DO and BEGIN carry no handler:
// the evaluator intercepts them to collect their token span before
// dispatch ever happens, so reaching a nil handler means the tables are
// out of sync.
var builtinWords []builtinWord
var builtinFuncs map[string]builtinFunc

func init() {
	builtinWords = []builtinWord{
		{"DUP", "( a -- a a ) duplicate the top value", (*Engine).opDup},
		{"DROP", "( a -- ) discard the top value", (*Engine).opDrop},
		{"SWAP", "( a b -- b a ) exchange the top two values", (*Engine).opSwap},
		{"OVER", "( a b -- a b a ) copy the second value to the top", (*Engine).opOver},
		{"ROT", "( a b c -- b c a ) rotate the third value to the top", (*Engine).opRot},
		{"NIP", "( a b -- b ) discard the second value", (*Engine).opNip},

		{">R", "( a -- ) move the top value to the return stack", (*Engine).opToR},
		{"R>", "( -- a ) move the top of the return stack back", (*Engine).opFromR},
		{"R@", "( -- a ) copy the top of the return stack", (*Engine).opRFetch},
		{"I", "( -- n ) innermost loop index", (*Engine).opIndex},
		{"J", "( -- n ) next-enclosing loop index", (*Engine).opIndexJ},

		{"+", "( a b -- a+b ) add, broadcasting over vectors", operatorWord("+")},
		{"-", "( a b -- a-b ) subtract, broadcasting over vectors", operatorWord("-")},
		{"*", "( a b -- a*b ) multiply, broadcasting over vectors", operatorWord("*")},
		{"/", "( a b -- a/b ) divide exactly, broadcasting over vectors", operatorWord("/")},
		{">", "( a b -- flag ) greater-than, broadcasting over vectors", operatorWord(">")},
		{">=", "( a b -- flag ) greater-or-equal, broadcasting over vectors", operatorWord(">=")},
		{"=", "( a b -- flag ) structural equality, never broadcast", operatorWord("=")},
		{"<", "( a b -- flag ) less-than, broadcasting over vectors", operatorWord("<")},
		{"<=", "( a b -- flag ) less-or-equal, broadcasting over vectors", operatorWord("<=")},
		{"MINUS", "( a -- -a ) negate, broadcasting over vectors", (*Engine).opMinus},

		{"LENGTH", "( vec -- n ) vector length", (*Engine).opLength},
		{"HEAD", "( vec -- a ) first element of a non-empty vector", (*Engine).opHead},
		{"TAIL", "( vec -- vec' ) all but the first element", (*Engine).opTail},
		{"UNCONS", "( vec -- a vec' ) split into head and tail", (*Engine).opUncons},
		{"CONS", "( a vec -- vec' ) prepend an element", (*Engine).opCons},
		{"APPEND", "( vec1 vec2 -- vec ) concatenate two vectors", (*Engine).opAppend},
		{"REVERSE", "( vec -- vec' ) reverse a vector", (*Engine).opReverse},
		{"EMPTY?", "( vec -- flag ) whether a vector has no elements", (*Engine).opEmpty},
		{"NTH", "( vec n -- a ) index a vector, negative counts from the end", (*Engine).opNth},

		{"DEF", "( body name -- ) define a word from a quotation", (*Engine).opDef},
		{"DEL", "( name -- ) delete an unreferenced custom word", (*Engine).opDel},
		{"WORDS", "( -- ) print every word name", (*Engine).opWords},
		{"WORDS?", "( prefix -- ) print word names starting with prefix", (*Engine).opWordsWith},

		{"IF", "( flag then else -- ) run one of two quotations", (*Engine).opIf},
		{"WHEN", "( flag q -- ) run a quotation when flag is true", (*Engine).opWhen},
		{"UNLESS", "( flag q -- ) run a quotation when flag is false", (*Engine).opUnless},
		{"CASE", "( a pairs -- ) run the first action whose condition matches", (*Engine).opCase},
		{"LOOP", "( cond body -- ) run body while cond yields true", (*Engine).opLoop},
		{"DO", "( start limit -- ) begin a counted loop ending at LOOP", nil},
		{"BEGIN", "( -- ) begin a loop ending at AGAIN, UNTIL, or REPEAT", nil},
		{"AGAIN", "( -- ) close a BEGIN loop unconditionally", strayTerminator("AGAIN", "BEGIN")},
		{"UNTIL", "( flag -- ) close a BEGIN loop, stopping on true", strayTerminator("UNTIL", "BEGIN")},
		{"REPEAT", "( -- ) close a BEGIN ... WHILE loop", strayTerminator("REPEAT", "BEGIN")},
		{"WHILE", "( flag -- ) test mid BEGIN loop, stopping on false", strayTerminator("WHILE", "BEGIN")},

		{".", "( a -- ) pop and print the top value", (*Engine).opPrintPop},
		{"PRINT", "( a -- a ) print the top value without popping", (*Engine).opPrint},
		{"CR", "( -- ) print a newline", (*Engine).opCR},
		{"SPACE", "( -- ) print a space", (*Engine).opSpace},
		{"SPACES", "( n -- ) print n spaces", (*Engine).opSpaces},
		{"EMIT", "( n -- ) print the character with ASCII code n", (*Engine).opEmit},
	}

	builtinFuncs = make(map[string]builtinFunc, len(builtinWords))
	for _, bw := range builtinWords {
		if bw.fn != nil {
			builtinFuncs[bw.name] = bw.fn
		}
	}
}

// operatorWord adapts one of the fixed operator handlers into a builtin
// entry so the dictionary lists and protects the operator names.
func operatorWord(name string) builtinFunc {
	return func(eng *Engine, ctx context.Context) error {
		return operators[name](eng)
	}
}

func (eng *Engine) opDup(ctx context.Context) error {
	v, err := eng.peek("DUP")
	if err != nil {
		return err
	}
	eng.push(v)
	return nil
}

func (eng *Engine) opDrop(ctx context.Context) error {
	_, err := eng.pop("DROP")
	return err
}

func (eng *Engine) opSwap(ctx context.Context) error {
	if err := eng.need("SWAP", 2); err != nil {
		return err
	}
	i := len(eng.stack)
	eng.stack[i-1], eng.stack[i-2] = eng.stack[i-2], eng.stack[i-1]
	return nil
}

func (eng *Engine) opOver(ctx context.Context) error {
	if err := eng.need("OVER", 2); err != nil {
		return err
	}
	eng.push(eng.stack[len(eng.stack)-2])
	return nil
}

func (eng *Engine) opRot(ctx context.Context) error {
	if err := eng.need("ROT", 3); err != nil {
		return err
	}
	i := len(eng.stack)
	v := eng.stack[i-3]
	copy(eng.stack[i-3:], eng.stack[i-2:])
	eng.stack[i-1] = v
	return nil
}

func (eng *Engine) opNip(ctx context.Context) error {
	if err := eng.need("NIP", 2); err != nil {
		return err
	}
	i := len(eng.stack)
	eng.stack[i-2] = eng.stack[i-1]
	eng.stack = eng.stack[:i-1]
	return nil
}

// opDef pops a name and the quotation beneath it and hands both to the
// dictionary, attaching a description only when one immediately preceded
// this DEF.
func (eng *Engine) opDef(ctx context.Context) error {
	name, err := eng.popString("DEF")
	if err != nil {
		return err
	}
	body, err := eng.popVector("DEF")
	if err != nil {
		return err
	}
	desc := ""
	if eng.hasDefDesc {
		desc = eng.defDesc
	}
	return eng.dict.define(name, body, desc)
}

func (eng *Engine) opDel(ctx context.Context) error {
	name, err := eng.popString("DEL")
	if err != nil {
		return err
	}
	return eng.dict.delete(name)
}
