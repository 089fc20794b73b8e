// Package dom holds small helpers for building and querying an HTML node
// tree in memory. The widget renders into such a tree and resolves clicks
// against it the way a browser would resolve them against its document.
package dom

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element creates a detached element with the given classes.
func Element(tag string, classes ...string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	if len(classes) > 0 {
		SetAttr(n, "class", strings.Join(classes, " "))
	}
	return n
}

func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// ElementWithText is Element followed by a single text child.
func ElementWithText(tag, text string, classes ...string) *html.Node {
	n := Element(tag, classes...)
	n.AppendChild(Text(text))
	return n
}

func Append(parent *html.Node, children ...*html.Node) {
	for _, c := range children {
		parent.AppendChild(c)
	}
}

// ReplaceChildren detaches every child of n and appends the given ones.
func ReplaceChildren(n *html.Node, children ...*html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
	Append(n, children...)
}

func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func Classes(n *html.Node) []string {
	v, _ := Attr(n, "class")
	return strings.Fields(v)
}

func HasClass(n *html.Node, class string) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	return slices.Contains(Classes(n), class)
}

// ToggleClass adds class when missing and removes it otherwise.
// It reports whether the class is present afterwards.
func ToggleClass(n *html.Node, class string) bool {
	classes := Classes(n)
	present := slices.Contains(classes, class)
	if present {
		classes = slices.DeleteFunc(classes, func(c string) bool { return c == class })
	} else {
		classes = append(classes, class)
	}
	SetAttr(n, "class", strings.Join(classes, " "))
	return !present
}

// Closest returns n or its nearest ancestor carrying class, or nil.
func Closest(n *html.Node, class string) *html.Node {
	for ; n != nil; n = n.Parent {
		if HasClass(n, class) {
			return n
		}
	}
	return nil
}

func PreviousElementSibling(n *html.Node) *html.Node {
	for s := n.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}

func NextElementSibling(n *html.Node) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}

// Contains reports whether n is root or one of its descendants.
func Contains(root, n *html.Node) bool {
	for ; n != nil; n = n.Parent {
		if n == root {
			return true
		}
	}
	return false
}

// QueryAll walks root depth-first and returns every element matching pred.
func QueryAll(root *html.Node, pred func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && pred(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

// Find returns the first element under root carrying class, or nil.
func Find(root *html.Node, class string) *html.Node {
	found := QueryAll(root, func(n *html.Node) bool { return HasClass(n, class) })
	if len(found) == 0 {
		return nil
	}
	return found[0]
}

// TextContent concatenates all text nodes under n.
func TextContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func Render(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", fmt.Errorf("html.Render: %w", err)
	}
	return buf.String(), nil
}
