// ABOUTME: Markdown source for the rich-text bridge, parsed with goldmark
// ABOUTME: Handles inline emphasis, strong, strikethrough, code spans, links, and headings

package richtext

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.Strikethrough))

// Markdown parses src and returns its text as attributed runs. Block
// structure is reduced to line breaks; list items are prefixed with "- ".
func Markdown(src string) Runs {
	source := []byte(src)
	doc := markdown.Parser().Parse(text.NewReader(source))

	w := &runWriter{}
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Emphasis:
			if node.Level >= 2 {
				w.cur.Strong = nest(entering, &w.strong)
			} else {
				w.cur.Emphasis = nest(entering, &w.emphasis)
			}
		case *east.Strikethrough:
			w.cur.Strikethrough = nest(entering, &w.strike)
		case *ast.Link, *ast.AutoLink:
			w.cur.Underline = nest(entering, &w.link)
			if al, ok := node.(*ast.AutoLink); ok && entering {
				w.write(string(al.Label(source)))
			}
		case *ast.CodeSpan:
			w.cur.Code = entering
		case *ast.Heading:
			w.cur.Strong = nest(entering, &w.strong)
			if !entering {
				w.blockEnd(n, "\n\n")
			}
		case *ast.Text:
			if entering {
				w.write(string(node.Segment.Value(source)))
				if node.SoftLineBreak() || node.HardLineBreak() {
					w.write("\n")
				}
			}
		case *ast.String:
			if entering {
				w.write(string(node.Value))
			}
		case *ast.ListItem:
			if entering {
				w.write("- ")
			} else {
				w.blockEnd(n, "\n")
			}
		case *ast.Paragraph:
			if !entering {
				w.blockEnd(n, "\n\n")
			}
		case *ast.TextBlock:
			if !entering && n.NextSibling() != nil {
				w.write("\n")
			}
		case *ast.List:
			if !entering {
				w.blockEnd(n, "\n\n")
			}
		}
		return ast.WalkContinue, nil
	})
	return w.runs
}

// nest tracks nesting depth so overlapping spans of the same kind
// (a strong heading containing **bold**) end at the right place.
func nest(entering bool, depth *int) bool {
	if entering {
		*depth++
	} else if *depth > 0 {
		*depth--
	}
	return *depth > 0
}

type runWriter struct {
	runs Runs
	cur  Attributes

	strong, emphasis, strike, link int
}

// write appends s, merging with the previous run when attributes match.
func (w *runWriter) write(s string) {
	if s == "" {
		return
	}
	if n := len(w.runs); n > 0 && w.runs[n-1].Attrs == w.cur {
		w.runs[n-1].Text += s
		return
	}
	w.runs = append(w.runs, Run{Text: s, Attrs: w.cur})
}

// blockEnd separates a block from the next one. Nothing is emitted after
// the last block so output has no trailing blank lines.
func (w *runWriter) blockEnd(n ast.Node, sep string) {
	if n.NextSibling() == nil {
		return
	}
	if k := len(w.runs); k > 0 && strings.HasSuffix(w.runs[k-1].Text, "\n") {
		sep = strings.TrimPrefix(sep, "\n")
	}
	saved := w.cur
	w.cur = Attributes{}
	w.write(sep)
	w.cur = saved
}
