package life

import (
	"fmt"
	"sort"
	"strings"
)

var rules = map[string]Rule{}

// Register adds a named rule.
func Register(name string, r Rule) {
	if name == "" {
		return
	}
	rules[strings.ToLower(name)] = r
}

// Rules exposes the registry of named rules.
func Rules() map[string]Rule {
	return rules
}

// RuleNames returns the registered rule names in sorted order.
func RuleNames() []string {
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup resolves a registered rule name or a B/S rule string.
func Lookup(s string) (Rule, error) {
	if r, ok := rules[strings.ToLower(strings.TrimSpace(s))]; ok {
		return r, nil
	}
	r, err := ParseRule(s)
	if err != nil {
		return Rule{}, fmt.Errorf("unknown rule %q (known: %s): %w", s, strings.Join(RuleNames(), ", "), err)
	}
	return r, nil
}

func mustParse(s string) Rule {
	r, err := ParseRule(s)
	if err != nil {
		panic(err)
	}
	return r
}

func init() {
	Register("conway", Conway)
	Register("highlife", mustParse("B36/S23"))
	Register("seeds", mustParse("B2/S"))
	Register("daynight", mustParse("B3678/S34678"))
	Register("lifewithoutdeath", mustParse("B3/S012345678"))
}
