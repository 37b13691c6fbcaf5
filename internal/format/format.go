// Package format applies a fixed, ordered list of regular-expression rewrites
// that normalise spacing in JavaScript source.
//
// The rewrites are purely lexical. String literals, comments and regular
// expression literals are not recognised and may be altered.
package format

import (
	"fmt"
	"regexp"

	"github.com/watchfire-io/scratchpad/internal/log"
)

// Rule is one pattern/replacement pair.
type Rule struct {
	Name        string
	Pattern     *regexp.Regexp
	Replacement string
}

// jsSpace matches what `\s` matches in a JavaScript regular expression.
const jsSpace = `\s\v\x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}`

// Rules is applied in order by Format. It must not be modified.
var Rules = []Rule{
	{
		Name:        "operators",
		Pattern:     regexp.MustCompile(`([^` + jsSpace + `])([=+\-*/%<>!&|]+)([^` + jsSpace + `])`),
		Replacement: "${1} ${2} ${3}",
	},
	{
		Name:        "commas",
		Pattern:     regexp.MustCompile(`,([^` + jsSpace + `])`),
		Replacement: ", ${1}",
	},
	{
		Name:        "semicolons",
		Pattern:     regexp.MustCompile(`;([^` + jsSpace + `\n])`),
		Replacement: "; ${1}",
	},
	{
		Name:        "keywords",
		Pattern:     regexp.MustCompile(`\b(if|for|while|function|const|let|var|return|else|try|catch|finally)\(`),
		Replacement: "${1} (",
	},
}

// Format returns source with every rule applied. If a rule fails, the
// original source is returned unchanged.
func Format(source string) (formatted string) {
	defer func() {
		if r := recover(); r != nil {
			log.GetLogger().Errorf("Failed to format code: %v", r)
			formatted = source
		}
	}()
	return apply(Rules, source)
}

func apply(rules []Rule, source string) string {
	out := source
	for _, rule := range rules {
		if rule.Pattern == nil {
			panic(fmt.Sprintf("format rule %q has no pattern", rule.Name))
		}
		out = rule.Pattern.ReplaceAllString(out, rule.Replacement)
	}
	return out
}
