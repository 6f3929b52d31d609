package service

import (
	"strings"

	"golang.org/x/net/html"
)

// blockElements end a paragraph in the extracted text.
var blockElements = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "h1": true, "h2": true,
	"h3": true, "h4": true, "h5": true, "h6": true, "tr": true, "section": true,
	"article": true, "blockquote": true,
}

// ExtractHTML returns the title and the visible text of an HTML page,
// skipping scripts and styles. Block elements become paragraph breaks.
func ExtractHTML(content string) (string, string, error) {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return "", "", err
	}

	var title string
	var paras []string
	var cur strings.Builder
	flush := func() {
		if p := strings.Join(strings.Fields(cur.String()), " "); p != "" {
			paras = append(paras, p)
		}
		cur.Reset()
	}
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "head":
				if n.Data == "head" {
					findTitle(n, &title)
				}
				return
			}
			if blockElements[n.Data] {
				flush()
				defer flush()
			}
		}
		if n.Type == html.TextNode {
			cur.WriteString(n.Data)
			cur.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(doc)
	flush()
	return title, strings.Join(paras, "\n\n"), nil
}

func findTitle(n *html.Node, title *string) {
	if n.Type == html.ElementNode && n.Data == "title" && n.FirstChild != nil {
		*title = strings.TrimSpace(n.FirstChild.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		findTitle(c, title)
	}
}
