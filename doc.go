/* Package ajisai implements a small postfix stack language.

Programs are whitespace-separated words, evaluated left to right against an
operand stack. Literals push themselves; anything else is looked up in a
dictionary and executed. The dictionary starts out holding only builtins,
and grows as programs define their own words:

	[ DUP * ] "SQUARE" ( n -- n*n ) DEF
	7 SQUARE .

prints "49". The bracketed quotation is the body, the string is the name,
and the parenthesized text is an optional description that WORDS? and the
host API can report back later. Word names are case-insensitive and stored
uppercased.

Numbers are exact fractions of 64-bit integers. "0.1" is one tenth, not a
float approximation; "1/3" stays a third through any amount of arithmetic,
and results reduce to lowest terms so 2/4 and 1/2 are the same value.
Division by zero is an error, never infinity.

Vectors hold any mix of values, written [ 1 2 3 ] outside of a definition
body. Arithmetic and comparison broadcast over them: a scalar against a
vector applies elementwise, as do two vectors of equal length. Structural
equality via = is the exception, comparing whole values and never
broadcasting.

Control flow takes quotations: cond [ then ] [ else ] IF evaluates exactly
one branch, and CASE walks condition/action pairs until one condition
yields true. Counted loops run as start limit DO ... LOOP with I (and J
when nested) reading the current index off the return stack, which is also
open for explicit use through >R, R>, and R@. Unbounded BEGIN forms are
capped by a configurable iteration limit so a runaway loop fails instead
of hanging.

Defined words protect their dependencies: a word referenced by another
definition can be neither deleted nor redefined until its dependents go
away first. This keeps the dictionary's edges exact, at the cost of
forcing teardown in reverse definition order.

Hosting programs construct an Engine, feed it source through Execute or
ExecuteContext, and read results back via Stack, DrainOutput, and the word
inspection methods. Engines share nothing with each other. Evaluation is
strictly sequential within one engine, checks its context between tokens,
and never panics across the API boundary.

The pieces: lexer.go turns source into tokens, eval.go is the evaluation
loop, arith.go the broadcasting operators, vector.go and output.go the
vector and printing words, control.go the loop and branch forms, dict.go
the dictionary and its dependency graph, and builtins.go the table tying
names to behavior.
*/
package ajisai
