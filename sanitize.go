package htmlward

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Sanitize parses htmlStr as an HTML fragment and returns the result of
// applying p. An empty input returns an empty output without invoking
// the parser. If p has any throwError-class strategy configured and a
// violation reaches it, Sanitize returns a non-nil *SanitizationError
// and the caller must discard any partial result.
func Sanitize(htmlStr string, p *Policy) (string, error) {
	if htmlStr == "" {
		return "", nil
	}
	return SanitizeReader(strings.NewReader(htmlStr), p)
}

// SanitizeReader is Sanitize over an io.Reader.
func SanitizeReader(r io.Reader, p *Policy) (string, error) {
	if p == nil {
		p = &Policy{}
	}

	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}

	body := findBody(doc)
	if body == nil {
		return "", nil
	}
	if body.FirstChild == nil {
		return "", nil
	}

	s := &session{policy: p}
	if !s.sanitizeRoots(body) {
		return "", s.err
	}

	var buf bytes.Buffer
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// SanitizeNode applies p in place to every top-level child of fragment,
// for callers that already own a parsed tree (e.g. from
// html.ParseFragment). It does not serialize; use html.Render on
// fragment's children to obtain output.
func SanitizeNode(fragment *html.Node, p *Policy) error {
	if p == nil {
		p = &Policy{}
	}
	s := &session{policy: p}
	s.sanitizeRoots(fragment)
	return s.err
}

// sanitizeRoots is §4.8: enforce the top-level children limit, then walk
// each surviving top-level child with fresh traversal state. It returns
// false both when a throwError-class terminal set s.err and when the
// top-level children limit itself discarded the fragment with no error
// (e.g. errorHandling.tagChildren="discardElement") — §4.8 requires
// "on false return empty string" regardless of which of those two it
// was, so false always means root's children must be treated as gone
// rather than rendered or further walked.
func (s *session) sanitizeRoots(root *html.Node) bool {
	if limit := s.policy.TopLevelLimits; limit != nil && limit.Children != nil {
		if n, max := countChildren(root), int(*limit.Children); n > max {
			if !s.handleTagChildren(root, violationDetail{Tag: "#fragment"}, n-max) {
				discardAllChildren(root)
				return false
			}
		}
	}

	for c := root.FirstChild; c != nil; {
		next := c.NextSibling
		s.walkNode(c, walkState{rootNesting: 0, tagNesting: nil})
		if s.err != nil {
			return false
		}
		c = next
	}
	return true
}

// findBody locates the body element html.Parse wraps fragment content
// in.
func findBody(doc *html.Node) *html.Node {
	var find func(*html.Node) *html.Node
	find = func(n *html.Node) *html.Node {
		if n.Type == html.ElementNode && n.Data == "body" {
			return n
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if r := find(c); r != nil {
				return r
			}
		}
		return nil
	}
	return find(doc)
}
