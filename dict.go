package ajisai

import (
	"sort"
	"strings"
)

// wordDef is the dictionary record for one word. Builtin definitions carry
// no tokens; their behavior lives in the dispatch tables. An empty
// description means none was given.
type wordDef struct {
	tokens  []token
	builtin bool
	desc    string
}

// WordInfo is the host-facing view of one dictionary entry. Protected
// means other words still reference this one, so deleting or redefining it
// would fail.
type WordInfo struct {
	Name        string
	Description string
	Builtin     bool
	Protected   bool
}

// dictionary maps normalized word names to definitions and tracks the
// reverse-reference graph that blocks unsafe mutation: dependents[D] is
// the set of custom words whose bodies reference D. Every define and
// delete recomputes the affected edges exactly; a stale edge is a
// correctness bug.
type dictionary struct {
	words      map[string]*wordDef
	dependents map[string]map[string]struct{}
}

func newDictionary() *dictionary {
	d := &dictionary{
		words:      make(map[string]*wordDef, len(builtinWords)),
		dependents: make(map[string]map[string]struct{}),
	}
	for _, bw := range builtinWords {
		d.words[bw.name] = &wordDef{builtin: true, desc: bw.doc}
	}
	return d
}

func (d *dictionary) lookup(name string) (*wordDef, bool) {
	def, ok := d.words[strings.ToUpper(name)]
	return def, ok
}

// info builds the host-facing view of one entry.
func (d *dictionary) info(name string) (WordInfo, bool) {
	name = strings.ToUpper(name)
	def, ok := d.words[name]
	if !ok {
		return WordInfo{}, false
	}
	return WordInfo{
		Name:        name,
		Description: def.desc,
		Builtin:     def.builtin,
		Protected:   len(d.dependents[name]) > 0,
	}, true
}

// define stores a custom word compiled from a quotation body, wiring its
// dependency edges. Redefinition drops the old body's outgoing edges first
// so that edges from a body no longer referencing a word do not linger.
func (d *dictionary) define(name string, body []Value, desc string) error {
	name = strings.ToUpper(name)
	old, exists := d.words[name]
	if exists && old.builtin {
		return RedefineBuiltinError{Word: name}
	}
	if deps := d.dependentsOf(name); len(deps) > 0 {
		return DependencyError{Word: name, Dependents: deps}
	}
	toks, refs := d.compile(name, body)
	if exists {
		d.removeEdges(name, old.tokens)
	}
	for _, ref := range refs {
		set := d.dependents[ref]
		if set == nil {
			set = make(map[string]struct{})
			d.dependents[ref] = set
		}
		set[name] = struct{}{}
	}
	d.words[name] = &wordDef{tokens: toks, desc: desc}
	return nil
}

// delete removes a custom word, failing while anything still references
// it, and clears the word out of every remaining dependents set.
func (d *dictionary) delete(name string) error {
	name = strings.ToUpper(name)
	def, ok := d.words[name]
	if !ok {
		return WordNotFoundError{Word: name}
	}
	if def.builtin {
		return RedefineBuiltinError{Word: name}
	}
	if deps := d.dependentsOf(name); len(deps) > 0 {
		return DependencyError{Word: name, Dependents: deps}
	}
	d.removeEdges(name, def.tokens)
	delete(d.words, name)
	delete(d.dependents, name)
	return nil
}

// compile converts a quotation body into the stored token sequence,
// collecting the custom words it references. A word referencing itself
// gets no edge, else recursive words could never be deleted.
func (d *dictionary) compile(name string, body []Value) ([]token, []string) {
	toks := flatten(body, nil)
	refs := make(map[string]struct{})
	for _, tok := range toks {
		if tok.kind != tokSymbol || tok.str == name {
			continue
		}
		if def, ok := d.words[tok.str]; ok && !def.builtin {
			refs[tok.str] = struct{}{}
		}
	}
	return toks, sortedKeys(refs)
}

// removeEdges drops name from the dependents set of every word the given
// body references.
func (d *dictionary) removeEdges(name string, toks []token) {
	for _, tok := range toks {
		if tok.kind != tokSymbol {
			continue
		}
		if set, ok := d.dependents[tok.str]; ok {
			delete(set, name)
			if len(set) == 0 {
				delete(d.dependents, tok.str)
			}
		}
	}
}

// dependentsOf returns the sorted names of words referencing name, empty
// when it is safe to delete or redefine.
func (d *dictionary) dependentsOf(name string) []string {
	set, ok := d.dependents[strings.ToUpper(name)]
	if !ok || len(set) == 0 {
		return nil
	}
	return sortedKeys(set)
}

// customWords returns the sorted names of all user-defined words.
func (d *dictionary) customWords() []string {
	var names []string
	for name, def := range d.words {
		if !def.builtin {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// allWords returns every entry, builtins included, sorted by name.
func (d *dictionary) allWords() []WordInfo {
	infos := make([]WordInfo, 0, len(d.words))
	for name, def := range d.words {
		infos = append(infos, WordInfo{
			Name:        name,
			Description: def.desc,
			Builtin:     def.builtin,
			Protected:   len(d.dependents[name]) > 0,
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
