// Package htmlward provides a rule-driven HTML sanitizer for Go
// applications.
//
// # Overview
//
// htmlward parses an HTML fragment (or io.Reader) using the standard
// golang.org/x/net/html parser, walks the resulting node tree, and
// rewrites it in place so that every surviving tag, attribute, and
// attribute value conforms to a declarative [Policy].
//
// # Policies
//
// A [Policy] declares, per tag, which attributes are permitted
// ([TagRule.Attributes]) and what shape their values must take
// ([AttrRule]): a scalar matched against a [Matcher], an ordered set of
// tokens each matched individually, or an ordered sequence of key/value
// pairs matched per key. Structural limits cap child count and per-tag
// nesting depth per element ([TagRule.Limits]), and the number of
// top-level nodes and the element depth from the fragment root
// ([Policy.TopLevelLimits]).
//
// # Error handling
//
// For every violation class — an unrecognized tag, a disallowed
// attribute, an oversized or malformed value, too many children, too
// much nesting — [Policy.ErrorHandling] selects a recovery strategy.
// Strategies range from silently dropping the offending piece to
// discarding or unwrapping the whole element to aborting the run with a
// [*SanitizationError]. An unset or unrecognized strategy at one class
// falls back to the next-broader class: collectionTooMany,
// recordDuplicate, recordValue, setValue and valueTooLong fall back to
// attributeValue, which falls back to attribute, which falls back to
// tag. The tag, tagChildren and tagNesting classes default to
// throwError.
//
// # Thread safety
//
// Sanitize is safe for concurrent use across distinct inputs; each call
// owns its own parsed tree and traversal state. A Policy should not be
// mutated after it starts being used.
//
// # Example
//
//	clean, err := htmlward.Sanitize(userInput, policy)
package htmlward
