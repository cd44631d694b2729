package htmlward

import "golang.org/x/net/html"

// session carries the state of a single Sanitize invocation: the policy
// being enforced and the first throwError-class failure encountered, if
// any. A session is never shared across invocations.
type session struct {
	policy *Policy
	err    error
}

func (s *session) eh() ErrorHandling { return s.policy.ErrorHandling }

// fail records the first raised SanitizationError. Later failures within
// the same run are ignored; the run already aborts on the first one.
func (s *session) fail(code ViolationCode, d violationDetail) {
	if s.err == nil {
		s.err = newSanitizationError(code, d)
	}
}

// applyElementStrategy applies one of the element-destroying terminal
// strategies (discardElement, unwrapElement, throwError) and always
// returns false: the element is gone, or the run is aborting.
func (s *session) applyElementStrategy(code ViolationCode, strat Strategy, el *html.Node, d violationDetail) bool {
	switch strat {
	case StrategyDiscardElement:
		detach(el)
	case StrategyUnwrapElement:
		unwrap(el)
	default: // StrategyThrowError, or unset/unrecognized at a terminal level
		s.fail(code, d)
	}
	return false
}

// handleTag is the §4.4 "tag" handler: no admission rule matched this
// element's tag name. Native strategies: discardElement, unwrapElement,
// throwError (default).
func (s *session) handleTag(el *html.Node, d violationDetail) bool {
	strat := s.eh().get(Tag)
	if !isNative(Tag, strat) {
		strat = StrategyThrowError
	}
	return s.applyElementStrategy(Tag, strat, el, d)
}

// handleTagChildren is the §4.4 "tagChildren" handler. excess is the
// number of children over the limit; discardFirsts/discardLasts remove
// that many from the corresponding end and let the element survive.
func (s *session) handleTagChildren(el *html.Node, d violationDetail, excess int) bool {
	switch strat := s.eh().get(TagChildren); strat {
	case StrategyDiscardFirsts:
		discardN(el, excess, true)
		return true
	case StrategyDiscardLasts:
		discardN(el, excess, false)
		return true
	case StrategyDiscardElement:
		detach(el)
		return false
	default:
		s.fail(TagChildren, d)
		return false
	}
}

// handleTagNesting is the §4.4 "tagNesting" handler. Native strategies:
// discardElement, throwError (default).
func (s *session) handleTagNesting(el *html.Node, d violationDetail) bool {
	strat := s.eh().get(TagNesting)
	if strat != StrategyDiscardElement {
		strat = StrategyThrowError
	}
	return s.applyElementStrategy(TagNesting, strat, el, d)
}

// escalate walks the fallback chain of §4.4 starting at code, using
// fallbackOf as the single source of truth for which class to consult
// next: it checks code's own configured strategy via ErrorHandling.get,
// applies it if native to code, and otherwise moves to fallbackOf[code]
// and repeats. A code with no fallbackOf entry is terminal: an unset or
// unrecognized strategy there defaults to throwError. Only reached for
// attributeValue, attribute, and tag — the classes whose native
// strategies act on a single attribute or element rather than a
// structured collection.
func (s *session) escalate(code ViolationCode, el *html.Node, d violationDetail, defaultValue *string) (global, local bool) {
	for {
		strat := s.eh().get(code)
		if isNative(code, strat) {
			return s.applyNative(code, strat, el, d, defaultValue)
		}
		next, ok := fallbackOf[code]
		if !ok {
			return s.applyElementStrategy(code, StrategyThrowError, el, d), false
		}
		code = next
	}
}

// escalatePast is escalate, entered one level broader than code: it
// looks up fallbackOf[code] and escalates from there. Used by the
// structured-collection classes (collectionTooMany, recordDuplicate,
// recordValue, setValue, valueTooLong) once their own native strategy
// has already been checked and did not apply.
func (s *session) escalatePast(code ViolationCode, el *html.Node, d violationDetail, defaultValue *string) (global, local bool) {
	next, ok := fallbackOf[code]
	if !ok {
		return s.applyElementStrategy(code, StrategyThrowError, el, d), false
	}
	return s.escalate(next, el, d, defaultValue)
}

// applyNative applies strat, already known native to code, for the
// three classes escalate/escalatePast ever resolve to.
func (s *session) applyNative(code ViolationCode, strat Strategy, el *html.Node, d violationDetail, defaultValue *string) (global, local bool) {
	switch code {
	case AttributeValue:
		applyDefault(el, d.Attribute, defaultValue)
		return true, false
	case Attribute:
		removeAttr(el, d.Attribute)
		return true, false
	default: // Tag
		return s.applyElementStrategy(code, strat, el, d), false
	}
}

// handleUnknownAttribute is the two-flag §4.5 step 2a handler, invoked
// when an attribute has neither a specific rule nor a "*" fallback rule.
// globalProceed=false means the element is gone, stop the attribute
// loop entirely. localProceed=false means this one attribute is done,
// move on to the next.
func (s *session) handleUnknownAttribute(el *html.Node, d violationDetail) (global, local bool) {
	return s.escalate(Attribute, el, d, nil)
}

// escalateAttributeValue is called when a violation is itself an
// attributeValue-class mismatch (a simple-mode value, or a required
// attribute's absence); the narrower classes (valueTooLong, setValue,
// recordValue, recordDuplicate, collectionTooMany) reach attributeValue
// through escalatePast instead. It resolves
// attributeValue's native applyDefaultValue using the default carried
// by the originating AttrRule, or escalates further through attribute
// to tag. The return is a single proceed flag: false means the element
// is gone or the run aborted.
func (s *session) escalateAttributeValue(el *html.Node, d violationDetail, defaultValue *string) bool {
	global, _ := s.escalate(AttributeValue, el, d, defaultValue)
	return global
}

// applyDefault sets attrName on el to *defaultValue if non-nil,
// otherwise deletes the attribute, per the applyDefaultValue strategy.
func applyDefault(el *html.Node, attrName string, defaultValue *string) {
	if defaultValue != nil {
		setAttr(el, attrName, *defaultValue)
		return
	}
	removeAttr(el, attrName)
}
