package form

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// EmailPattern matches the loose email shape used by the signup and
// contact forms: something@something.something, no whitespace.
var EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Rule is the declarative validation for one field. Rules are pure data;
// checks run in a fixed order (Required, MinLength, MaxLength, Pattern,
// Custom) and stop at the first failure. When Message is set it replaces
// the generated default for whichever check fails.
type Rule struct {
	Custom    func(Value) bool
	Pattern   *regexp.Regexp
	Message   string
	MinLength int
	MaxLength int
	Required  bool
}

// Rules maps field names to their validation rules.
type Rules map[string]Rule

// validate returns the first failing check's message, or "" when the
// rule is satisfied. An empty value on a non-required field passes
// without running the remaining checks.
func (r Rule) validate(name string, v Value) string {
	if r.Required && v.IsEmpty() {
		return r.message(name + " is required")
	}
	if v.IsEmpty() {
		return ""
	}

	n := utf8.RuneCountInString(v.String())
	if r.MinLength > 0 && n < r.MinLength {
		return r.message(fmt.Sprintf("%s must be at least %d characters", name, r.MinLength))
	}
	if r.MaxLength > 0 && n > r.MaxLength {
		return r.message(fmt.Sprintf("%s must be at most %d characters", name, r.MaxLength))
	}
	if r.Pattern != nil && !r.Pattern.MatchString(v.String()) {
		return r.message(name + " has an invalid format")
	}
	if r.Custom != nil && !r.Custom(v) {
		return r.message(name + " is invalid")
	}
	return ""
}

func (r Rule) message(generated string) string {
	if r.Message != "" {
		return r.Message
	}
	return generated
}
