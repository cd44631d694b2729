package htmlward

import (
	"strings"

	"golang.org/x/net/html"
)

// sanitizeAttributes is the §4.5 driver over one element's attributes.
// rules is the element's TagRule.Attributes map (possibly nil). It
// returns false when the element itself is gone or the run is aborting.
func (s *session) sanitizeAttributes(el *html.Node, rules map[string]AttrRule) bool {
	if len(el.Attr) > 0 {
		// Snapshot: handlers mutate el.Attr in place (removeAttr, setAttr)
		// while this loop is iterating over the original attribute list.
		present := make([]html.Attribute, len(el.Attr))
		copy(present, el.Attr)

		for _, a := range present {
			rule, ok := rules[a.Key]
			if !ok {
				rule, ok = rules["*"]
			}
			if !ok {
				global, _ := s.handleUnknownAttribute(el, violationDetail{Tag: el.Data, Attribute: a.Key})
				if !global {
					return false
				}
				continue
			}
			if !s.sanitizeValue(a.Key, el, rule) {
				return false
			}
		}
	}

	for name, rule := range rules {
		if name == "*" || !rule.Required {
			continue
		}
		if _, present := getAttr(el, name); present {
			continue
		}
		d := violationDetail{Tag: el.Data, Attribute: name}
		if !s.escalateAttributeValue(el, d, rule.DefaultValue) {
			return false
		}
	}

	return true
}

// sanitizeValue is §4.6: dispatch on rule.Mode after enforcing
// maxLength.
func (s *session) sanitizeValue(attrName string, el *html.Node, rule AttrRule) bool {
	value, present := getAttr(el, attrName)
	if !present {
		return true
	}

	if rule.MaxLength != nil && len(value) > *rule.MaxLength {
		if !s.enforceMaxLength(el, attrName, rule) {
			return false
		}
		value, present = getAttr(el, attrName)
		if !present || value == "" {
			return true
		}
	}

	switch rule.Mode {
	case ModeSet:
		return s.sanitizeSet(attrName, el, rule, value)
	case ModeRecord:
		return s.sanitizeRecord(attrName, el, rule, value)
	default: // ModeSimple
		if Matches(rule.Value, value) {
			return true
		}
		d := violationDetail{Tag: el.Data, Attribute: attrName, Value: value}
		return s.escalateAttributeValue(el, d, rule.DefaultValue)
	}
}

// enforceMaxLength is the §4.6 step 1 valueTooLong handler. trimExcess
// truncates to rule.MaxLength code units and lets the caller continue
// with the remaining dispatch; anything else escalates past valueTooLong
// via fallbackOf.
func (s *session) enforceMaxLength(el *html.Node, attrName string, rule AttrRule) bool {
	value, _ := getAttr(el, attrName)
	if s.eh().get(ValueTooLong) == StrategyTrimExcess {
		setAttr(el, attrName, value[:*rule.MaxLength])
		return true
	}
	d := violationDetail{Tag: el.Data, Attribute: attrName, Value: value}
	global, _ := s.escalatePast(ValueTooLong, el, d, rule.DefaultValue)
	return global
}

// sanitizeSet is §4.6.1.
func (s *session) sanitizeSet(attrName string, el *html.Node, rule AttrRule, value string) bool {
	tokens := parseSet(value, rule.Delimiter)

	if rule.MaxEntries != nil && len(tokens) > *rule.MaxEntries {
		adjusted, proceed, handled := s.handleCollectionTooMany(el, attrName, rule, tokens, *rule.MaxEntries)
		if handled {
			return proceed
		}
		if !proceed {
			return false
		}
		tokens = adjusted
	}

	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if Matches(rule.SetValues, tok) {
			out = append(out, tok)
			continue
		}
		d := violationDetail{Tag: el.Data, Attribute: attrName, Value: tok}
		proceed := s.handleSetValue(el, d, rule.DefaultValue)
		if !proceed {
			return false
		}
		// dropValue (or an escalation that didn't destroy the element):
		// the token is simply omitted from out.
	}

	setAttr(el, attrName, strings.Join(out, rule.Delimiter))
	return true
}

// handleSetValue is the §4.4 "setValue" handler. Native: dropValue
// (drop the token, caller moves on). Anything else escalates past
// setValue via fallbackOf.
func (s *session) handleSetValue(el *html.Node, d violationDetail, defaultValue *string) bool {
	if s.eh().get(SetValue) == StrategyDropValue {
		return true
	}
	global, _ := s.escalatePast(SetValue, el, d, defaultValue)
	return global
}

// sanitizeRecord is §4.6.2.
func (s *session) sanitizeRecord(attrName string, el *html.Node, rule AttrRule, value string) bool {
	pairs := parseRecord(value, rule.EntrySeparator, rule.KeyValueSeparator)

	if rule.MaxEntries != nil && len(pairs) > *rule.MaxEntries {
		adjusted, proceed, handled := s.handleCollectionTooManyPairs(el, attrName, rule, pairs, *rule.MaxEntries)
		if handled {
			return proceed
		}
		if !proceed {
			return false
		}
		pairs = adjusted
	}

	seen := make(map[string]struct{}, len(pairs))
	out := make([]kvPair, 0, len(pairs))

	for _, pair := range pairs {
		if _, dup := seen[pair.Key]; dup {
			adjusted, global, local, handled := s.handleRecordDuplicate(el, attrName, rule, out, pair.Key)
			if handled {
				return global
			}
			if !global {
				return false
			}
			out = adjusted
			if !local {
				continue
			}
			// keepDuplicates/keepLast fall through to append below.
		}

		pairRule, ok := rule.RecordValues[pair.Key]
		if !ok || !Matches(pairRule, pair.Val) {
			d := violationDetail{Tag: el.Data, Attribute: attrName, Key: pair.Key, Value: pair.Val}
			proceed := s.handleRecordValue(el, d, rule.DefaultValue)
			if !proceed {
				return false
			}
			continue
		}

		out = append(out, pair)
		seen[pair.Key] = struct{}{}
	}

	setAttr(el, attrName, joinPairs(out, rule.EntrySeparator, rule.KeyValueSeparator))
	return true
}

// handleRecordValue is the §4.4 "recordValue" handler. Native: dropPair.
// Anything else escalates past recordValue via fallbackOf.
func (s *session) handleRecordValue(el *html.Node, d violationDetail, defaultValue *string) bool {
	if s.eh().get(RecordValue) == StrategyDropPair {
		return true
	}
	global, _ := s.escalatePast(RecordValue, el, d, defaultValue)
	return global
}

// handleCollectionTooMany is the §4.4 "collectionTooMany" handler for
// set-mode tokens. handled=true means the violation escalated past this
// class entirely (to attributeValue/attribute/tag); the caller must
// return proceed immediately without further set processing.
func (s *session) handleCollectionTooMany(el *html.Node, attrName string, rule AttrRule, tokens []string, max int) (adjusted []string, proceed bool, handled bool) {
	if s.eh().get(CollectionTooMany) == StrategyDropExtra {
		return tokens[:max], true, false
	}
	d := violationDetail{Tag: el.Data, Attribute: attrName}
	global, _ := s.escalatePast(CollectionTooMany, el, d, rule.DefaultValue)
	return nil, global, true
}

// handleCollectionTooManyPairs is handleCollectionTooMany's record-mode
// counterpart.
func (s *session) handleCollectionTooManyPairs(el *html.Node, attrName string, rule AttrRule, pairs []kvPair, max int) (adjusted []kvPair, proceed bool, handled bool) {
	if s.eh().get(CollectionTooMany) == StrategyDropExtra {
		return pairs[:max], true, false
	}
	d := violationDetail{Tag: el.Data, Attribute: attrName}
	global, _ := s.escalatePast(CollectionTooMany, el, d, rule.DefaultValue)
	return nil, global, true
}

// handleRecordDuplicate is the §4.4 two-flag "recordDuplicate" handler.
// current is the output accumulated so far; dupKey is the key of the
// pair currently being considered. handled=true means the violation
// escalated past this class; the caller must return global immediately.
func (s *session) handleRecordDuplicate(el *html.Node, attrName string, rule AttrRule, current []kvPair, dupKey string) (adjusted []kvPair, global, local bool, handled bool) {
	switch s.eh().get(RecordDuplicate) {
	case StrategyDropDuplicates:
		filtered := make([]kvPair, 0, len(current))
		for _, p := range current {
			if p.Key != dupKey {
				filtered = append(filtered, p)
			}
		}
		return filtered, true, false, false
	case StrategyKeepDuplicates:
		return current, true, true, false
	case StrategyKeepFirst:
		return current, true, false, false
	case StrategyKeepLast:
		filtered := make([]kvPair, 0, len(current))
		for _, p := range current {
			if p.Key != dupKey {
				filtered = append(filtered, p)
			}
		}
		return filtered, true, true, false
	default:
		d := violationDetail{Tag: el.Data, Attribute: attrName, Key: dupKey}
		proceed, _ := s.escalatePast(RecordDuplicate, el, d, rule.DefaultValue)
		return nil, proceed, false, true
	}
}

func joinPairs(pairs []kvPair, entrySep, kvSep string) string {
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = p.Key + kvSep + p.Val
	}
	return strings.Join(parts, entrySep)
}
