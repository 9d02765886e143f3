package content

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// extractParagraphs walks the HTML tree and joins the text of all <p>
// elements with newlines. Used as a last-resort fallback for pages where
// the main-content extractor comes up empty.
func extractParagraphs(r io.Reader) string {
	doc, err := html.Parse(r)
	if err != nil {
		return ""
	}

	var paragraphs []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "p" {
			if text := strings.TrimSpace(nodeText(n)); text != "" {
				paragraphs = append(paragraphs, text)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(paragraphs, "\n")
}

// nodeText collects the concatenated text content of a node subtree
func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(nodeText(c))
	}
	return sb.String()
}
