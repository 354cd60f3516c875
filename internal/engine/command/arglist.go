// Package command builds Leiningen argument vectors.
package command

import (
	"slices"
	"strings"
	"unicode"

	"go.trai.ch/lein/internal/core/domain"
	"go.trai.ch/zerr"
)

// ArgumentList is an ordered argument vector. Every element is passed to the
// process as one argv entry, so values are never quoted by hand.
type ArgumentList struct {
	args []string
}

// Add appends args.
func (a *ArgumentList) Add(args ...string) *ArgumentList {
	a.args = append(a.args, args...)
	return a
}

// Prepend inserts args before the current arguments.
func (a *ArgumentList) Prepend(args ...string) *ArgumentList {
	a.args = append(slices.Clone(args), a.args...)
	return a
}

// AddKeyValuePairs appends one "<prefix><key>=<value>" token per entry, in key order.
func (a *ArgumentList) AddKeyValuePairs(prefix string, props map[string]string) *ArgumentList {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		a.args = append(a.args, prefix+k+"="+props[k])
	}
	return a
}

// AddTokenized splits s on whitespace and appends the words.
// Single or double quotes group a word and may contain whitespace. Inside
// quotes a backslash escapes the next character; elsewhere it is literal.
func (a *ArgumentList) AddTokenized(s string) error {
	words, err := tokenize(s)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrInvalidTasks, err.Error()), "tasks", s)
	}
	a.args = append(a.args, words...)
	return nil
}

func tokenize(s string) ([]string, error) {
	var (
		words   []string
		word    strings.Builder
		inWord  bool
		quote   rune
		escaped bool
	)
	for _, r := range s {
		switch {
		case escaped:
			word.WriteRune(r)
			escaped = false
		case quote != 0:
			switch r {
			case '\\':
				escaped = true
			case quote:
				quote = 0
			default:
				word.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inWord = true
		case unicode.IsSpace(r):
			if inWord {
				words = append(words, word.String())
				word.Reset()
				inWord = false
			}
		default:
			word.WriteRune(r)
			inWord = true
		}
	}
	if quote != 0 {
		return nil, zerr.With(zerr.New("unterminated quote"), "quote", string(quote))
	}
	if inWord {
		words = append(words, word.String())
	}
	return words, nil
}

// Strings returns a copy of the arguments.
func (a *ArgumentList) Strings() []string {
	return slices.Clone(a.args)
}

// String renders the arguments for the build log, quoting those with blanks.
func (a *ArgumentList) String() string {
	parts := make([]string, len(a.args))
	for i, arg := range a.args {
		if arg == "" || strings.ContainsAny(arg, " \t\"'") {
			parts[i] = `"` + strings.ReplaceAll(arg, `"`, `\"`) + `"`
			continue
		}
		parts[i] = arg
	}
	return strings.Join(parts, " ")
}
