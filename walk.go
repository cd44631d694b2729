package htmlward

import "golang.org/x/net/html"

// tagFrame is one ancestor record in a walkState's per-tag nesting
// stack: the ancestor's tag name and how many elements sharing that tag
// have been found nested below it on the current path.
type tagFrame struct {
	Tag   string
	Count int
}

// walkState is the mutable traversal state threaded through walkNode
// and walkElement: depth from the fragment root, and the ordered
// (outermost to innermost) stack of ancestor tag frames.
type walkState struct {
	rootNesting int
	tagNesting  []tagFrame
}

// walkNode is §4.7's entry point for one node, dispatching by node
// type. Text is kept as-is.
func (s *session) walkNode(n *html.Node, st walkState) {
	switch n.Type {
	case html.ElementNode:
		if limit := s.policy.TopLevelLimits; limit != nil && limit.Nesting != nil &&
			st.rootNesting > int(*limit.Nesting) {
			s.handleTagNesting(n, violationDetail{Tag: n.Data})
			return
		}
		st.rootNesting++
		s.walkElement(n, st)

	case html.CommentNode:
		if !s.policy.PreserveComments {
			detach(n)
		}

	default:
		// text and anything else: no-op.
	}
}

// walkElement is §4.7's per-element driver: tag admission, attribute
// sanitization, children-count enforcement, per-tag nesting
// enforcement, then recursion into surviving children, in that fixed
// order. It returns false when the element is gone or the run is
// aborting.
func (s *session) walkElement(el *html.Node, st walkState) bool {
	tagRule, ok := s.policy.Tags[el.Data]
	if !ok {
		return s.handleTag(el, violationDetail{Tag: el.Data})
	}

	if !s.sanitizeAttributes(el, tagRule.Attributes) {
		return false
	}

	if limit := tagRule.Limits; limit != nil && limit.Children != nil {
		if n, max := countChildren(el), int(*limit.Children); n > max {
			if !s.handleTagChildren(el, violationDetail{Tag: el.Data}, n-max) {
				return false
			}
		}
	}

	frames := append([]tagFrame(nil), st.tagNesting...)
	for i := len(frames) - 1; i >= 0; i-- {
		f := &frames[i]
		if f.Tag != el.Data {
			continue
		}
		f.Count++
		ancestorRule, ok := s.policy.Tags[f.Tag]
		if ok && ancestorRule.Limits != nil && ancestorRule.Limits.Nesting != nil &&
			f.Count > int(*ancestorRule.Limits.Nesting) {
			return s.handleTagNesting(el, violationDetail{Tag: el.Data})
		}
	}

	childState := walkState{
		rootNesting: st.rootNesting,
		tagNesting:  append(frames, tagFrame{Tag: el.Data, Count: 0}),
	}
	for c := el.FirstChild; c != nil; {
		next := c.NextSibling
		s.walkNode(c, childState)
		if s.err != nil {
			return true
		}
		c = next
	}

	return true
}
