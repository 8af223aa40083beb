// Package imperative decides whether the first word of a docstring summary
// is a verb in the imperative mood ("Return" vs "Returns").
package imperative

import (
	_ "embed"
	"strings"
	"unicode"

	"github.com/kljensen/snowball/english"
)

//go:embed verbs.txt
var verbsFile string

// Слова, с которых docstring в повелительном наклонении начинаться не может.
var blacklist = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`a an the action always api base basic business calculation
		callback collection common constructor convenience convenient current currently custom data
		default deprecated description dict dictionary does dummy example factory false final formula
		function generic handler helper here hook implementation importantly internal it main method
		module new number optional package placeholder reference route simple some special sql standard
		static string subclasses that these this true unique unit utility what wrapper`) {
		blacklist[w] = struct{}{}
	}
	forms = loadForms(verbsFile)
}

// forms maps a stem to the imperative spellings that produce it.
var forms map[string]map[string]struct{}

func loadForms(file string) map[string]map[string]struct{} {
	out := make(map[string]map[string]struct{})
	for _, line := range strings.Split(file, "\n") {
		verb := strings.TrimSpace(line)
		if verb == "" || strings.HasPrefix(verb, "#") {
			continue
		}
		stem := english.Stem(verb, true)
		if out[stem] == nil {
			out[stem] = make(map[string]struct{})
		}
		out[stem][verb] = struct{}{}
	}
	return out
}

// Verdict is the outcome of a mood check.
type Verdict uint8

const (
	// Unknown words are neither accepted nor rejected.
	Unknown Verdict = iota
	Imperative
	NotImperative
)

// Mood classifies a normalized (lowercase) word.
func Mood(word string) Verdict {
	if word == "" {
		return Unknown
	}
	if _, bad := blacklist[word]; bad {
		return NotImperative
	}
	correct, ok := forms[english.Stem(word, true)]
	if !ok {
		return Unknown
	}
	if _, ok := correct[word]; ok {
		return Imperative
	}
	return NotImperative
}

// Normalize lowercases word and keeps only letters, digits and apostrophes.
func Normalize(word string) string {
	return strings.Map(func(r rune) rune {
		if r == '\'' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, strings.ToLower(word))
}
