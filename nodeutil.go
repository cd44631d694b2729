package htmlward

import "golang.org/x/net/html"

// getAttr returns the value of the named attribute on n, and whether it
// was present.
func getAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// setAttr sets (or adds) key=val on n, preserving the insertion position
// of an existing attribute.
func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// removeAttr removes the named attribute from n if present.
func removeAttr(n *html.Node, key string) {
	attrs := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Key != key {
			attrs = append(attrs, a)
		}
	}
	n.Attr = attrs
}

// countChildren returns the number of direct children of n.
func countChildren(n *html.Node) int {
	count := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count++
	}
	return count
}

// discardAllChildren detaches every direct child of n, left to right.
func discardAllChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
}

// discardN detaches n children from el: from the front if fromFront,
// otherwise from the back. Used by the discardFirsts/discardLasts
// strategies.
func discardN(el *html.Node, n int, fromFront bool) {
	if n <= 0 {
		return
	}
	if fromFront {
		for i := 0; i < n; i++ {
			c := el.FirstChild
			if c == nil {
				return
			}
			el.RemoveChild(c)
		}
		return
	}
	for i := 0; i < n; i++ {
		c := el.LastChild
		if c == nil {
			return
		}
		el.RemoveChild(c)
	}
}
