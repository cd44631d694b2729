package htmlward

import (
	"bytes"
	"encoding/json"
	"errors"
	"regexp"
)

// Matcher is a declarative predicate over a single string value. Exactly
// one field is populated; Matches resolves it in a fixed priority order:
// wildcard, then function, then regex, then exact string, then list
// membership, then boolean emptiness.
type Matcher struct {
	Any   bool
	Func  func(string) bool
	Regex *regexp.Regexp
	Exact *string
	OneOf []string
	Bool  *bool
}

// AnyValue is a Matcher that accepts every string ("*" in the wire
// format).
var AnyValue = Matcher{Any: true}

// Exactly returns a Matcher that accepts only s.
func Exactly(s string) Matcher {
	return Matcher{Exact: &s}
}

// OneOfValues returns a Matcher that accepts any of values.
func OneOfValues(values ...string) Matcher {
	return Matcher{OneOf: values}
}

// MatchFunc returns a Matcher backed by a user predicate.
func MatchFunc(f func(string) bool) Matcher {
	return Matcher{Func: f}
}

// MatchRegex returns a Matcher backed by a compiled regular expression.
func MatchRegex(re *regexp.Regexp) Matcher {
	return Matcher{Regex: re}
}

// RequireEmpty is a Matcher that accepts only the empty string, the
// shape used for boolean HTML attributes like "checked" and "disabled".
var RequireEmpty = Matcher{Bool: boolPtr(true)}

// RequireNonEmpty is a Matcher that accepts any non-empty string.
var RequireNonEmpty = Matcher{Bool: boolPtr(false)}

func boolPtr(b bool) *bool { return &b }

// Matches is total and order-sensitive. Any value outside the declared
// Matcher universe (a zero-value Matcher) returns false.
func Matches(m Matcher, value string) bool {
	switch {
	case m.Any:
		return true
	case m.Func != nil:
		return m.Func(value)
	case m.Regex != nil:
		return m.Regex.MatchString(value)
	case m.Exact != nil:
		return value == *m.Exact
	case m.OneOf != nil:
		for _, v := range m.OneOf {
			if v == value {
				return true
			}
		}
		return false
	case m.Bool != nil:
		if *m.Bool {
			return value == ""
		}
		return value != ""
	default:
		return false
	}
}

// MarshalJSON renders the Matcher in its wire shape: "*", a string, a
// list of strings, {"regex": "..."}, or a bare boolean.
func (m Matcher) MarshalJSON() ([]byte, error) {
	switch {
	case m.Any:
		return json.Marshal("*")
	case m.Regex != nil:
		return json.Marshal(struct {
			Regex string `json:"regex"`
		}{m.Regex.String()})
	case m.Exact != nil:
		return json.Marshal(*m.Exact)
	case m.OneOf != nil:
		return json.Marshal(m.OneOf)
	case m.Bool != nil:
		return json.Marshal(*m.Bool)
	case m.Func != nil:
		return nil, errors.New("htmlward: user-function matchers are not JSON-serializable")
	default:
		return json.Marshal("*")
	}
}

// UnmarshalJSON resolves the wire shape back into a Matcher.
func (m *Matcher) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0:
		return nil
	case bytes.Equal(trimmed, []byte("true")):
		*m = Matcher{Bool: boolPtr(true)}
		return nil
	case bytes.Equal(trimmed, []byte("false")):
		*m = Matcher{Bool: boolPtr(false)}
		return nil
	case trimmed[0] == '{':
		var obj struct {
			Regex string `json:"regex"`
		}
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return err
		}
		re, err := regexp.Compile(obj.Regex)
		if err != nil {
			return err
		}
		*m = Matcher{Regex: re}
		return nil
	case trimmed[0] == '[':
		var list []string
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return err
		}
		*m = Matcher{OneOf: list}
		return nil
	case trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		if s == "*" {
			*m = Matcher{Any: true}
			return nil
		}
		*m = Matcher{Exact: &s}
		return nil
	default:
		return errors.New("htmlward: unrecognized matcher shape")
	}
}
