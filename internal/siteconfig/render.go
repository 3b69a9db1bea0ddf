package siteconfig

import (
	"regexp"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z][a-zA-Z0-9]*)\}`)

// Render substitutes {placeholder} tokens in a configuration template with
// the supplied values plus an implicit siteName key. Each token is resolved
// in a single regex pass, so placeholder names that are substrings of one
// another cannot corrupt each other's expansions. Tokens without a supplied
// value pass through untouched. A literal `\n` becomes a real newline after
// substitution so single-line config strings can produce multi-line copy.
func (c *Config) Render(template string, vars map[string]string) string {
	out := placeholderPattern.ReplaceAllStringFunc(template, func(token string) string {
		name := token[1 : len(token)-1]
		if name == "siteName" {
			if v, ok := vars[name]; ok {
				return v
			}
			return c.Name
		}
		if v, ok := vars[name]; ok {
			return v
		}
		return token
	})
	return strings.ReplaceAll(out, `\n`, "\n")
}
