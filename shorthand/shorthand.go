// Package shorthand textually expands named substitutions such as `\d`,
// `\w`, `\s` into their literal-alternation expansions before a pattern
// reaches tokex.Automaton.Compile. It is a convenience external to the core
// engine: tokex and graph never import it, and it never inspects anything
// beyond the raw pattern string. Grounded on
// _examples/original_source/regex_manager.hpp's RegexManager.
package shorthand

import (
	"sort"
	"strings"
)

// Registry holds named substitutions and expands patterns against them.
// The zero value is not ready to use; call New.
type Registry struct {
	substitutions map[string]string
}

// New returns a Registry pre-loaded with the three shorthands
// regex_manager.hpp registers by default.
func New() *Registry {
	r := &Registry{substitutions: map[string]string{}}
	r.Register(`\d`, `(0|1|2|3|4|5|6|7|8|9)`)
	r.Register(`\w`, `(a|b|c|d|e|f|g|h|i|j|k|l|m|n|o|p|q|r|s|t|u|v|w|x|y|z|`+
		`A|B|C|D|E|F|G|H|I|J|K|L|M|N|O|P|Q|R|S|T|U|V|W|X|Y|Z)`)
	r.Register(`\s`, "( |\t|\n)")
	return r
}

// Register names value so that any pattern (or later-registered value)
// containing name has it textually expanded. Registering under a name that
// already exists overwrites it.
func (r *Registry) Register(name, value string) {
	r.substitutions[name] = r.Expand(value)
}

// Expand repeatedly substitutes every registered name in pattern until a
// pass makes no further change, mirroring perform_substitutions's
// fixed-point loop. Names are applied in a fixed, sorted order each pass so
// expansion is deterministic regardless of map iteration order.
func (r *Registry) Expand(pattern string) string {
	names := make([]string, 0, len(r.substitutions))
	for name := range r.substitutions {
		names = append(names, name)
	}
	sort.Strings(names)

	out := pattern
	for {
		changed := false
		for _, name := range names {
			if strings.Contains(out, name) {
				out = strings.ReplaceAll(out, name, r.substitutions[name])
				changed = true
			}
		}
		if !changed {
			return out
		}
	}
}

// Substitutions returns a snapshot of the currently registered names and
// their expansions.
func (r *Registry) Substitutions() map[string]string {
	out := make(map[string]string, len(r.substitutions))
	for k, v := range r.substitutions {
		out[k] = v
	}
	return out
}
