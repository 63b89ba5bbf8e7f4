// Package markdown renders backend-generated markdown (content,
// revision material, chat replies) as styled terminal text.
package markdown

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	gmtext "github.com/yuin/goldmark/text"

	"github.com/learnsphere/learnsphere-cli/internal/ui/theme"
)

var (
	headingStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	strongStyle  = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	emStyle      = lipgloss.NewStyle().Foreground(theme.Text).Italic(true)
	codeStyle    = lipgloss.NewStyle().Foreground(theme.Accent).Background(theme.BgCard)
	codeBlock    = lipgloss.NewStyle().Foreground(theme.Success).Background(theme.BgCard).Padding(0, 1)
	linkStyle    = lipgloss.NewStyle().Foreground(theme.Primary).Underline(true)
	quoteStyle   = lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
	bodyStyle    = lipgloss.NewStyle().Foreground(theme.Text)
)

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Render converts markdown to styled terminal text wrapped to width.
// If the parsed document cannot be walked, the inline fallback is used
// so the learner still sees readable text.
func Render(source string, width int) string {
	if source == "" {
		return ""
	}
	if width < 20 {
		width = 20
	}

	src := []byte(source)
	doc := md.Parser().Parse(gmtext.NewReader(src))

	r := &renderer{src: src, width: width}
	if err := ast.Walk(doc, r.walk); err != nil {
		return RenderInline(source)
	}
	return strings.TrimRight(r.b.String(), "\n")
}

// RenderInline styles bold, emphasis, and code spans in a single line
// of markdown without parsing block structure. It is the fallback
// renderer and is also used for one-line fragments such as flashcard
// faces.
func RenderInline(source string) string {
	out := source
	out = replaceSpans(out, "**", func(s string) string { return strongStyle.Render(s) })
	out = replaceSpans(out, "`", func(s string) string { return codeStyle.Render(s) })
	out = replaceSpans(out, "*", func(s string) string { return emStyle.Render(s) })
	return out
}

// replaceSpans styles text between balanced marker pairs, leaving
// unbalanced markers untouched.
func replaceSpans(s, marker string, style func(string) string) string {
	var b strings.Builder
	for {
		start := strings.Index(s, marker)
		if start < 0 {
			break
		}
		rest := s[start+len(marker):]
		end := strings.Index(rest, marker)
		if end < 0 {
			break
		}
		b.WriteString(s[:start])
		b.WriteString(style(rest[:end]))
		s = rest[end+len(marker):]
	}
	b.WriteString(s)
	return b.String()
}

type renderer struct {
	src   []byte
	b     strings.Builder
	width int
}

func (r *renderer) walk(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node := n.(type) {
	case *ast.Heading:
		if entering {
			marker := strings.Repeat("#", node.Level)
			r.b.WriteString(headingStyle.Render(marker+" "+r.inlineText(node)) + "\n\n")
		}
		return ast.WalkSkipChildren, nil

	case *ast.Paragraph:
		if entering {
			text := r.inlineText(node)
			// List item paragraphs are written by the ListItem case.
			if _, inItem := node.Parent().(*ast.ListItem); !inItem {
				r.b.WriteString(bodyStyle.Width(r.width).Render(text) + "\n\n")
			}
		}
		return ast.WalkSkipChildren, nil

	case *ast.List:
		if !entering {
			r.b.WriteString("\n")
		}
		return ast.WalkContinue, nil

	case *ast.ListItem:
		if entering {
			bullet := "•"
			if parent, ok := node.Parent().(*ast.List); ok && parent.IsOrdered() {
				bullet = fmt.Sprintf("%d.", listIndex(node)+parent.Start)
			}
			var parts []string
			for child := node.FirstChild(); child != nil; child = child.NextSibling() {
				if t := r.inlineText(child); t != "" {
					parts = append(parts, t)
				}
			}
			item := strings.Join(parts, " ")
			r.b.WriteString("  " + bullet + " " + bodyStyle.Width(r.width-4).Render(item) + "\n")
		}
		return ast.WalkSkipChildren, nil

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		if entering {
			r.b.WriteString(codeBlock.Width(r.width-2).Render(r.blockLines(n)) + "\n\n")
		}
		return ast.WalkSkipChildren, nil

	case *ast.Blockquote:
		if entering {
			var parts []string
			for child := node.FirstChild(); child != nil; child = child.NextSibling() {
				parts = append(parts, r.inlineText(child))
			}
			r.b.WriteString(quoteStyle.Render("┃ "+strings.Join(parts, " ")) + "\n\n")
		}
		return ast.WalkSkipChildren, nil

	case *ast.ThematicBreak:
		if entering {
			r.b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", r.width)) + "\n\n")
		}
		return ast.WalkSkipChildren, nil
	}

	return ast.WalkContinue, nil
}

// inlineText renders the inline children of a block node with styles
// applied.
func (r *renderer) inlineText(n ast.Node) string {
	var b strings.Builder
	r.writeInline(&b, n)
	return b.String()
}

func (r *renderer) writeInline(b *strings.Builder, n ast.Node) {
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch node := child.(type) {
		case *ast.Text:
			b.Write(node.Segment.Value(r.src))
			if node.SoftLineBreak() || node.HardLineBreak() {
				b.WriteString(" ")
			}
		case *ast.Emphasis:
			inner := r.inlineText(node)
			if node.Level >= 2 {
				b.WriteString(strongStyle.Render(inner))
			} else {
				b.WriteString(emStyle.Render(inner))
			}
		case *ast.CodeSpan:
			b.WriteString(codeStyle.Render(r.inlineText(node)))
		case *ast.Link:
			b.WriteString(linkStyle.Render(r.inlineText(node)))
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(" (" + string(node.Destination) + ")"))
		case *ast.AutoLink:
			b.WriteString(linkStyle.Render(string(node.URL(r.src))))
		case *ast.Image:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("[image: " + r.inlineText(node) + "]"))
		default:
			r.writeInline(b, child)
		}
	}
}

// blockLines returns the raw lines of a code block.
func (r *renderer) blockLines(n ast.Node) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(r.src))
	}
	return strings.TrimRight(b.String(), "\n")
}

// listIndex returns the position of an item within its list.
func listIndex(item *ast.ListItem) int {
	idx := 0
	for sib := item.PreviousSibling(); sib != nil; sib = sib.PreviousSibling() {
		idx++
	}
	return idx
}
