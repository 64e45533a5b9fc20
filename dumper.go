package ajisai

import (
	"fmt"
	"io"
	"strings"
)

// engineDumper writes a sectioned, human-readable snapshot of engine
// state. Used on test failure and by the REPL's :dump command.
type engineDumper struct {
	eng *Engine
	out io.Writer
}

// Dump writes a snapshot of the engine to w: both stacks, every custom
// word definition with its dependency edges, and any undrained output.
func (eng *Engine) Dump(w io.Writer) {
	engineDumper{eng: eng, out: w}.dump()
}

func (dump engineDumper) dump() {
	fmt.Fprintf(dump.out, "# Engine Dump\n")
	fmt.Fprintf(dump.out, "  stack: %v\n", dump.eng.stack)
	fmt.Fprintf(dump.out, "  rstack: %v\n", dump.eng.rstack)
	dump.dumpWords()
	dump.dumpOutput()
}

func (dump engineDumper) dumpWords() {
	names := dump.eng.dict.customWords()
	if len(names) == 0 {
		return
	}
	fmt.Fprintf(dump.out, "# Words\n")
	for _, name := range names {
		def, ok := dump.eng.dict.lookup(name)
		if !ok {
			continue
		}
		fmt.Fprintf(dump.out, "  [ %v ] %q DEF\n", formatTokens(def.tokens), name)
		if def.desc != "" {
			fmt.Fprintf(dump.out, "    ( %v )\n", def.desc)
		}
		if deps := dump.eng.dict.dependentsOf(name); len(deps) > 0 {
			fmt.Fprintf(dump.out, "    used by: %v\n", strings.Join(deps, " "))
		}
	}
}

func (dump engineDumper) dumpOutput() {
	out := dump.eng.out.buf.String()
	if out == "" {
		return
	}
	fmt.Fprintf(dump.out, "# Output (undrained)\n")
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		fmt.Fprintf(dump.out, "  %v\n", line)
	}
}

// formatTokens renders a stored word body back into source form.
func formatTokens(toks []token) string {
	parts := make([]string, len(toks))
	for i, tok := range toks {
		parts[i] = tok.String()
	}
	return strings.Join(parts, " ")
}
