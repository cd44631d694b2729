package htmlward

import "golang.org/x/net/html"

// unwrap removes n from the tree, splicing its children into its former
// position among its siblings. If n has no parent it is simply detached.
// If n has no children it is also simply detached. Children retain their
// own descendants and relative order.
func unwrap(n *html.Node) {
	parent := n.Parent
	if parent == nil {
		detach(n)
		return
	}
	if n.FirstChild == nil {
		detach(n)
		return
	}

	next := n.NextSibling
	for c := n.FirstChild; c != nil; {
		moved := c
		c = c.NextSibling
		n.RemoveChild(moved)
		if next != nil {
			parent.InsertBefore(moved, next)
		} else {
			parent.AppendChild(moved)
		}
	}
	detach(n)
}

// detach removes n from its parent, if any. A no-op on siblings when n
// has no parent, matching the degraded behavior unwrap falls back to
// when the tree-model primitive encounters a missing parent.
func detach(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}
