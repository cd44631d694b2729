package htmlward

import "fmt"

// SanitizationError is raised when a throwError-class strategy fires. It
// names the tag and, where applicable, the attribute, key, and offending
// value that triggered the violation. A raised SanitizationError aborts
// the entire run; the caller must discard the tree.
type SanitizationError struct {
	Code      ViolationCode
	Tag       string
	Attribute string
	Key       string
	Value     string
}

func (e *SanitizationError) Error() string {
	switch {
	case e.Key != "":
		return fmt.Sprintf("htmlward: %s on <%s> attribute %q key %q value %q", e.Code, e.Tag, e.Attribute, e.Key, e.Value)
	case e.Attribute != "":
		return fmt.Sprintf("htmlward: %s on <%s> attribute %q value %q", e.Code, e.Tag, e.Attribute, e.Value)
	default:
		return fmt.Sprintf("htmlward: %s on <%s>", e.Code, e.Tag)
	}
}

func newSanitizationError(code ViolationCode, d violationDetail) *SanitizationError {
	return &SanitizationError{
		Code:      code,
		Tag:       d.Tag,
		Attribute: d.Attribute,
		Key:       d.Key,
		Value:     d.Value,
	}
}
