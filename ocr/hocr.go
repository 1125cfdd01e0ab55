package ocr

import (
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Block is one recognized line of text with its mean word confidence.
type Block struct {
	// Text is the line text, words joined with single spaces.
	Text string

	// Confidence is the mean x_wconf of the line's words, scaled to
	// [0, 1]. Zero when Tesseract reported no confidence.
	Confidence float64
}

// ParseHOCR extracts per-line text blocks from Tesseract hOCR output.
// Lines are elements with class "ocr_line"; their words carry an x_wconf
// confidence in the title attribute. Lines without any word text are
// dropped.
func ParseHOCR(r io.Reader) ([]Block, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var blocks []Block
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, "ocr_line") {
			if b, ok := lineBlock(n); ok {
				blocks = append(blocks, b)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return blocks, nil
}

// lineBlock collects the ocrx_word descendants of a line node.
func lineBlock(line *html.Node) (Block, bool) {
	var words []string
	var confidenceSum float64
	var confidenceCount int

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, "ocrx_word") {
			text := strings.TrimSpace(nodeText(n))
			if text != "" {
				words = append(words, text)
				if conf, ok := wordConfidence(n); ok {
					confidenceSum += conf
					confidenceCount++
				}
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(line)

	if len(words) == 0 {
		return Block{}, false
	}
	block := Block{Text: strings.Join(words, " ")}
	if confidenceCount > 0 {
		// x_wconf is 0-100; report 0-1.
		block.Confidence = confidenceSum / float64(confidenceCount) / 100
	}
	return block, true
}

// wordConfidence reads the x_wconf property from a word's title
// attribute, e.g. `title="bbox 36 92 96 116; x_wconf 96"`.
func wordConfidence(n *html.Node) (float64, bool) {
	for _, part := range strings.Split(attrValue(n, "title"), ";") {
		part = strings.TrimSpace(part)
		rest, ok := strings.CutPrefix(part, "x_wconf")
		if !ok {
			continue
		}
		conf, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
		if err != nil {
			return 0, false
		}
		return conf, true
	}
	return 0, false
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attrValue(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

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
