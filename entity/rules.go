package entity

import (
	"fmt"
	"strings"
)

// Rule is the normalisation applied to a column while projecting a record.
type Rule int

const (
	RuleNone          Rule = iota // pass the value through
	RuleStripNewlines             // replace or remove CR/LF in free text
	RuleListJoin                  // join a list into one value using ';'
	RuleListFlatten               // emit one row per list element
)

var ruleNames = map[Rule]string{
	RuleNone:          "none",
	RuleStripNewlines: "strip-newlines",
	RuleListJoin:      "list-join",
	RuleListFlatten:   "list-flatten",
}

func (r Rule) String() string {
	if s, ok := ruleNames[r]; ok {
		return s
	}
	return fmt.Sprintf("Rule(%d)", int(r))
}

func (r Rule) MarshalText() ([]byte, error) {
	if _, ok := ruleNames[r]; !ok {
		return nil, fmt.Errorf("unknown column rule %d", int(r))
	}
	return []byte(r.String()), nil
}

func (r *Rule) UnmarshalText(b []byte) error {
	for k, v := range ruleNames {
		if v == strings.ToLower(string(b)) {
			*r = k
			return nil
		}
	}
	return fmt.Errorf("unknown column rule %q", string(b))
}

// NewlinePolicy says what happens to CR and LF characters in a strip-newlines column.
type NewlinePolicy int

const (
	NewlinesDefault NewlinePolicy = iota // use the job wide policy
	NewlinesSpace                        // each CRLF, LF or CR becomes a single space
	NewlinesRemove                       // CR and LF are deleted
)

var newlinePolicyNames = map[NewlinePolicy]string{
	NewlinesDefault: "default",
	NewlinesSpace:   "space",
	NewlinesRemove:  "remove",
}

func (p NewlinePolicy) String() string {
	if s, ok := newlinePolicyNames[p]; ok {
		return s
	}
	return fmt.Sprintf("NewlinePolicy(%d)", int(p))
}

func (p NewlinePolicy) MarshalText() ([]byte, error) {
	if _, ok := newlinePolicyNames[p]; !ok {
		return nil, fmt.Errorf("unknown newline policy %d", int(p))
	}
	return []byte(p.String()), nil
}

func (p *NewlinePolicy) UnmarshalText(b []byte) error {
	v, err := ParseNewlinePolicy(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ParseNewlinePolicy converts "space", "remove" or "default" (case insensitive) to a NewlinePolicy.
// The empty string is the default policy.
func ParseNewlinePolicy(s string) (NewlinePolicy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return NewlinesDefault, nil
	}
	for k, v := range newlinePolicyNames {
		if v == s {
			return k, nil
		}
	}
	return NewlinesDefault, fmt.Errorf("unknown newline policy %q (expected space or remove)", s)
}
