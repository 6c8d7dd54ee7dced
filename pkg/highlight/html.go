package highlight

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/waveform-computing/sqldoc/pkg/token"
)

// HTMLNodes converts a token stream into HTML nodes: styled tokens
// become span elements carrying their style as a class attribute,
// unstyled tokens become bare text nodes.
func HTMLNodes(tokens []token.Token, styles StyleMap) []*html.Node {
	return fragmentNodes(Highlight(tokens, styles))
}

// HTMLLines converts a token stream into one node list per line.
func HTMLLines(tokens []token.Token, styles StyleMap) [][]*html.Node {
	lines := Lines(tokens, styles)
	nodes := make([][]*html.Node, len(lines))
	for i, line := range lines {
		nodes[i] = fragmentNodes(line)
	}
	return nodes
}

// HTMLPrototype converts a routine prototype into a single node list.
func HTMLPrototype(tokens []token.Token, styles StyleMap) []*html.Node {
	return fragmentNodes(Prototype(tokens, styles))
}

// RenderHTML serializes nodes to markup.
func RenderHTML(nodes []*html.Node) (string, error) {
	var b strings.Builder
	for _, n := range nodes {
		if err := html.Render(&b, n); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

func fragmentNodes(frags []Fragment) []*html.Node {
	nodes := make([]*html.Node, 0, len(frags))
	for _, frag := range frags {
		nodes = append(nodes, fragmentNode(frag))
	}
	return nodes
}

func fragmentNode(frag Fragment) *html.Node {
	text := &html.Node{Type: html.TextNode, Data: frag.Text}
	if frag.Style == "" {
		return text
	}
	span := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Span,
		Data:     "span",
		Attr:     []html.Attribute{{Key: "class", Val: frag.Style}},
	}
	span.AppendChild(text)
	return span
}
