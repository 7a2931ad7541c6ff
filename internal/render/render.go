// Package render turns parsed-document content items into styled terminal
// output. Rendering is pure: the same item always produces the same string
// and input is never mutated.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/docparse/docparse/internal/document"
)

var (
	tagStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	pageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F59E0B"))

	contentStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981"))
)

// Item renders one content item. Dispatch is on the item's type tag,
// compared case-insensitively; table and image items get dedicated layouts,
// everything else (text, title, narrative text, page, section, unknown tags)
// falls into the generic branch.
func Item(item document.ContentItem) string {
	switch strings.ToLower(item.Type) {
	case "table":
		return renderTable(item)
	case "image":
		return renderImage(item)
	default:
		return renderGeneric(item)
	}
}

func renderTable(item document.ContentItem) string {
	var b strings.Builder

	header := tagStyle.Render("Table") + " " + pageStyle.Render(fmt.Sprintf("(page %d)", item.Page))
	if item.TableIndex > 0 {
		header += " " + pageStyle.Render(fmt.Sprintf("#%d", item.TableIndex))
	}
	b.WriteString(header)
	b.WriteString("\n")
	// Table content arrives as a Markdown table; keep it preformatted.
	b.WriteString(contentStyle.Render(item.Content))

	return b.String()
}

func renderImage(item document.ContentItem) string {
	var b strings.Builder

	header := tagStyle.Render("Image") + " " + pageStyle.Render(fmt.Sprintf("(page %d)", item.Page))
	if item.ImageIndex > 0 {
		header += " " + pageStyle.Render(fmt.Sprintf("#%d", item.ImageIndex))
	}
	b.WriteString(header)
	b.WriteString("\n")
	if item.ImageAlt != "" {
		b.WriteString(titleStyle.Render(item.ImageAlt))
		b.WriteString("\n")
	}
	// Image content is a textual description (OCR text); bytes are never
	// rendered.
	b.WriteString(contentStyle.Render(item.Content))

	return b.String()
}

func renderGeneric(item document.ContentItem) string {
	var b strings.Builder

	b.WriteString(tagStyle.Render(labelFor(item.Type)))
	b.WriteString(" ")
	b.WriteString(pageStyle.Render(fmt.Sprintf("(page %d)", item.Page)))
	b.WriteString("\n")
	if item.Title != "" {
		b.WriteString(titleStyle.Render(item.Title))
		b.WriteString("\n")
	}
	b.WriteString(contentStyle.Render(item.Content))

	return b.String()
}

// labelFor normalizes a type tag for display: first letter upper-cased,
// empty tags shown as Text.
func labelFor(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return "Text"
	}
	return strings.ToUpper(tag[:1]) + tag[1:]
}

// Document renders a full parsed document: a metadata summary followed by
// every content item in input order.
func Document(doc *document.ParsedDocument) string {
	return DocumentWidth(doc, 0)
}

// DocumentWidth renders like Document but, given a positive width, passes
// table blocks through the Markdown renderer so they come out as aligned
// terminal tables instead of raw pipe syntax.
func DocumentWidth(doc *document.ParsedDocument, width int) string {
	if doc == nil {
		return ""
	}

	var b strings.Builder

	meta := fmt.Sprintf("%s · %d pages · %s",
		doc.Metadata.Filename,
		doc.Metadata.TotalPages,
		doc.Metadata.ParsingMethod,
	)
	b.WriteString(metaStyle.Render(meta))
	b.WriteString("\n\n")

	for i, item := range doc.Content {
		if i > 0 {
			b.WriteString("\n\n")
		}
		if width > 0 && strings.EqualFold(item.Type, "table") {
			pretty := item
			pretty.Content = Markdown(item.Content, width)
			b.WriteString(Item(pretty))
			continue
		}
		b.WriteString(Item(item))
	}

	return b.String()
}

// Markdown renders Markdown content (table blocks, Markdown source files)
// through glamour for the result view. Falls back to the raw string when
// rendering fails.
func Markdown(s string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return s
	}
	out, err := r.Render(s)
	if err != nil {
		return s
	}
	return strings.TrimRight(out, "\n")
}
