package academia

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/valyala/bytebufferpool"
	"golang.org/x/net/html"
)

// blockElements end the current output line, mirroring how a browser
// breaks text. Inline markup (a, span, b) contributes to the line it
// sits on.
var blockElements = map[string]struct{}{
	"address": {}, "article": {}, "aside": {}, "blockquote": {},
	"br": {}, "caption": {}, "div": {}, "dl": {}, "dt": {}, "dd": {},
	"fieldset": {}, "figure": {}, "footer": {}, "form": {},
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
	"header": {}, "hr": {}, "li": {}, "main": {}, "nav": {}, "ol": {},
	"p": {}, "section": {}, "table": {}, "tr": {}, "ul": {},
}

var skippedElements = map[string]struct{}{
	"script": {}, "style": {}, "noscript": {}, "iframe": {},
	"svg": {}, "head": {},
}

// ReduceHTML flattens a statistics page into the line-oriented plain
// text the report parser expects: one line per block element, table
// cells joined by single spaces.
func ReduceHTML(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	root := doc.Find("body")
	if len(root.Nodes) == 0 {
		return "", nil
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for _, node := range root.Nodes {
		flattenNode(buf, node)
	}

	return buf.String(), nil
}

func flattenNode(buf *bytebufferpool.ByteBuffer, node *html.Node) {
	if node.Type == html.TextNode {
		writeText(buf, node.Data)
		return
	}
	if node.Type != html.ElementNode && node.Type != html.DocumentNode {
		return
	}
	if _, skip := skippedElements[node.Data]; node.Type == html.ElementNode && skip {
		return
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		flattenNode(buf, child)
	}

	if node.Type == html.ElementNode {
		if _, block := blockElements[node.Data]; block {
			writeNewline(buf)
		}
	}
}

func writeText(buf *bytebufferpool.ByteBuffer, text string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return
	}
	if buf.Len() > 0 {
		last := buf.B[buf.Len()-1]
		if last != '\n' && last != ' ' {
			_ = buf.WriteByte(' ')
		}
	}
	_, _ = buf.WriteString(trimmed)
}

func writeNewline(buf *bytebufferpool.ByteBuffer) {
	if buf.Len() == 0 || buf.B[buf.Len()-1] == '\n' {
		return
	}
	_ = buf.WriteByte('\n')
}
