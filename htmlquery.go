package simplex2docx

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// findAll returns the descendants of n matching any of the given atoms,
// in document order. n itself is not included.
func findAll(n *html.Node, atoms ...atom.Atom) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(p *html.Node) {
		for c := p.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && hasAtom(c, atoms) {
				found = append(found, c)
			}
			walk(c)
		}
	}
	walk(n)
	return found
}

func hasAtom(n *html.Node, atoms []atom.Atom) bool {
	for _, a := range atoms {
		if n.DataAtom == a {
			return true
		}
	}
	return false
}

// textContent concatenates the text nodes below n, skipping script and
// style contents.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(p *html.Node) {
		if p.Type == html.TextNode {
			sb.WriteString(p.Data)
			return
		}
		if p.Type == html.ElementNode && (p.DataAtom == atom.Script || p.DataAtom == atom.Style) {
			return
		}
		for c := p.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// cellText returns the trimmed text of a table cell.
func cellText(n *html.Node) string {
	return strings.TrimSpace(textContent(n))
}

// attr returns the value of the named attribute, "" if absent.
// The html package lower-cases attribute keys.
func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// nextSiblingElement returns the first following sibling of n with atom a.
func nextSiblingElement(n *html.Node, a atom.Atom) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode && s.DataAtom == a {
			return s
		}
	}
	return nil
}

// nextElement returns the first element with atom a that follows n in
// document order, outside of n's own subtree.
func nextElement(n *html.Node, a atom.Atom) *html.Node {
	for p := n; p != nil; p = p.Parent {
		for s := p.NextSibling; s != nil; s = s.NextSibling {
			if s.Type == html.ElementNode && s.DataAtom == a {
				return s
			}
			if found := findAll(s, a); len(found) > 0 {
				return found[0]
			}
		}
	}
	return nil
}
