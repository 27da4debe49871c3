// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package view renders shell state into a declarative node tree.
//
// The tree plays the role of a document: the front-end replaces its whole
// content with a freshly rendered tree on every transition and never patches
// it incrementally. Rendering is pure, so the tree can be inspected in tests
// without a terminal.
package view

// Kind is the element type of a [Node].
type Kind int

const (
	KindRoot Kind = iota
	KindText
	KindHeader
	KindButton
	KindForm
	KindInput
	KindList
	KindRow
	KindLink
)

// Action names the user action triggered by a button, row or form submit.
type Action string

const (
	ActionNone          Action = ""
	ActionLogin         Action = "login"
	ActionSignUp        Action = "sign.up"
	ActionLogout        Action = "logout"
	ActionAddResource   Action = "resource.add"
	ActionListResources Action = "resource.list"
	ActionSubmitAdd     Action = "resource.submit"
	ActionOpenResource  Action = "resource.open"
	ActionUnlock        Action = "resource.unlock"
	ActionFollowLink    Action = "link.follow"
)

// Node is one element of the rendered tree.
type Node struct {
	Kind Kind
	ID   string
	// Text is the label of buttons and rows, the placeholder of inputs and
	// the content of text nodes.
	Text string
	// Title is the hover text of buttons.
	Title  string
	Href   string
	Action Action
	// Secret marks password inputs.
	Secret   bool
	Focus    bool
	Children []Node
}

// Find returns the first node with the given id in depth-first order.
func (n *Node) Find(id string) (*Node, bool) {
	if n.ID == id && id != "" {
		return n, true
	}
	for i := range n.Children {
		if found, ok := n.Children[i].Find(id); ok {
			return found, true
		}
	}
	return nil, false
}

// Walk calls fn for n and all of its descendants in depth-first order.
func (n Node) Walk(fn func(Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Count returns the number of nodes of kind k in the tree.
func (n Node) Count(k Kind) int {
	count := 0
	n.Walk(func(c Node) {
		if c.Kind == k {
			count++
		}
	})
	return count
}

// Collect returns every node of kind k in depth-first order.
func (n Node) Collect(k Kind) []Node {
	var out []Node
	n.Walk(func(c Node) {
		if c.Kind == k {
			out = append(out, c)
		}
	})
	return out
}

// Focused returns the id of the focused node, or "" when nothing is focused.
func (n Node) Focused() string {
	id := ""
	n.Walk(func(c Node) {
		if id == "" && c.Focus {
			id = c.ID
		}
	})
	return id
}
