package ajisai

import (
	"context"
	"io"
	"strings"

	"github.com/jcorbin/goajisai/internal/flushio"
)

// outputBuffer is the append-only sink written by the print-family words
// and drained by the host between execute calls. An optional tee mirrors
// every write; the first tee error is kept and surfaced when the engine
// flushes at the end of an execute call, since sink writes themselves
// never fail evaluation.
type outputBuffer struct {
	buf strings.Builder
	tee flushio.WriteFlusher
	err error
}

func (out *outputBuffer) write(s string) {
	out.buf.WriteString(s)
	if out.tee != nil && out.err == nil {
		_, out.err = io.WriteString(out.tee, s)
	}
}

func (out *outputBuffer) flush() error {
	err := out.err
	if out.tee != nil {
		if ferr := out.tee.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}

func (out *outputBuffer) drain() string {
	s := out.buf.String()
	out.buf.Reset()
	return s
}

func (out *outputBuffer) reset() {
	out.buf.Reset()
	out.err = nil
}

// opPrintPop pops the top value and appends its source form and a space,
// Forth's `.`; opPrint is the peeking variant.
func (eng *Engine) opPrintPop(ctx context.Context) error {
	v, err := eng.pop(".")
	if err != nil {
		return err
	}
	eng.out.write(v.String())
	eng.out.write(" ")
	return nil
}

func (eng *Engine) opPrint(ctx context.Context) error {
	v, err := eng.peek("PRINT")
	if err != nil {
		return err
	}
	eng.out.write(v.String())
	eng.out.write(" ")
	return nil
}

func (eng *Engine) opCR(ctx context.Context) error {
	eng.out.write("\n")
	return nil
}

func (eng *Engine) opSpace(ctx context.Context) error {
	eng.out.write(" ")
	return nil
}

func (eng *Engine) opSpaces(ctx context.Context) error {
	n, err := eng.popInt("SPACES")
	if err != nil {
		return err
	}
	if n > 0 {
		eng.out.write(strings.Repeat(" ", int(n)))
	}
	return nil
}

func (eng *Engine) opEmit(ctx context.Context) error {
	n, err := eng.popInt("EMIT")
	if err != nil {
		return err
	}
	if n < 0 || n > 127 {
		return TypeError{Op: "EMIT", Expected: "an ASCII code in [0,127]"}
	}
	eng.out.write(string(rune(n)))
	return nil
}

// opWords writes every word name, sorted and space-separated; opWordsWith
// narrows to names starting with a popped prefix.
func (eng *Engine) opWords(ctx context.Context) error {
	names := make([]string, 0, len(eng.dict.words))
	for _, info := range eng.dict.allWords() {
		names = append(names, info.Name)
	}
	eng.out.write(strings.Join(names, " "))
	eng.out.write("\n")
	return nil
}

func (eng *Engine) opWordsWith(ctx context.Context) error {
	prefix, err := eng.popString("WORDS?")
	if err != nil {
		return err
	}
	prefix = strings.ToUpper(prefix)
	var names []string
	for _, info := range eng.dict.allWords() {
		if strings.HasPrefix(info.Name, prefix) {
			names = append(names, info.Name)
		}
	}
	eng.out.write(strings.Join(names, " "))
	eng.out.write("\n")
	return nil
}
