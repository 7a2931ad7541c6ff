package render

import (
	"strings"
	"testing"

	"github.com/docparse/docparse/internal/document"
)

func TestItem_Table(t *testing.T) {
	item := document.ContentItem{
		Type:       "table",
		Content:    "| a | b |\n| --- | --- |",
		Page:       3,
		TableIndex: 2,
	}

	out := Item(item)
	for _, want := range []string{"Table", "page 3", "#2", "| a | b |"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestItem_Table_NoIndex(t *testing.T) {
	out := Item(document.ContentItem{Type: "Table", Content: "| x |", Page: 1})
	if strings.Contains(out, "#") {
		t.Errorf("table without index should omit the index marker:\n%s", out)
	}
}

func TestItem_Image(t *testing.T) {
	item := document.ContentItem{
		Type:       "image",
		Content:    "OCR text from a chart",
		Page:       2,
		ImageIndex: 1,
		ImageAlt:   "revenue chart",
	}

	out := Item(item)
	for _, want := range []string{"Image", "page 2", "#1", "revenue chart", "OCR text from a chart"} {
		if !strings.Contains(out, want) {
			t.Errorf("image output missing %q:\n%s", want, out)
		}
	}
}

func TestItem_Image_OptionalFieldsOmitted(t *testing.T) {
	out := Item(document.ContentItem{Type: "image", Content: "caption", Page: 1})
	if strings.Contains(out, "#") {
		t.Errorf("image without index should omit the index marker:\n%s", out)
	}
}

func TestItem_GenericWithTitle(t *testing.T) {
	item := document.ContentItem{
		Type:    "section",
		Title:   "INTRODUCTION",
		Content: "body text",
		Page:    1,
	}

	out := Item(item)
	for _, want := range []string{"Section", "page 1", "INTRODUCTION", "body text"} {
		if !strings.Contains(out, want) {
			t.Errorf("generic output missing %q:\n%s", want, out)
		}
	}
}

func TestItem_CaseInsensitiveDispatch(t *testing.T) {
	lower := Item(document.ContentItem{Type: "table", Content: "| x |", Page: 1})
	upper := Item(document.ContentItem{Type: "TABLE", Content: "| x |", Page: 1})
	if !strings.Contains(upper, "Table") {
		t.Errorf("upper-case tag did not hit the table branch:\n%s", upper)
	}
	// Branch bodies must agree apart from the displayed tag.
	if strings.Contains(lower, "TABLE") {
		t.Errorf("unexpected raw tag in table branch:\n%s", lower)
	}
}

func TestItem_UnknownTypeFallsThrough(t *testing.T) {
	out := Item(document.ContentItem{Type: "footnote", Content: "see page 9", Page: 4})
	for _, want := range []string{"Footnote", "page 4", "see page 9"} {
		if !strings.Contains(out, want) {
			t.Errorf("unknown-type output missing %q:\n%s", want, out)
		}
	}
}

func TestItem_Idempotent(t *testing.T) {
	items := []document.ContentItem{
		{Type: "table", Content: "| a |", Page: 1, TableIndex: 1},
		{Type: "image", Content: "cap", Page: 2, ImageAlt: "alt"},
		{Type: "text", Content: "body", Page: 3},
		{Type: "", Content: "untagged", Page: 4},
	}
	for _, item := range items {
		if Item(item) != Item(item) {
			t.Errorf("Item(%q) is not idempotent", item.Type)
		}
	}
}

func TestDocument_PreservesOrder(t *testing.T) {
	doc := &document.ParsedDocument{
		Metadata: document.Metadata{Filename: "report.pdf", TotalPages: 2, ParsingMethod: "full_parse"},
		Content: []document.ContentItem{
			{Type: "text", Content: "first-block", Page: 1},
			{Type: "table", Content: "second-block", Page: 1},
			{Type: "text", Content: "third-block", Page: 2},
		},
	}

	out := Document(doc)
	first := strings.Index(out, "first-block")
	second := strings.Index(out, "second-block")
	third := strings.Index(out, "third-block")

	if first < 0 || second < 0 || third < 0 {
		t.Fatalf("document output missing content blocks:\n%s", out)
	}
	if !(first < second && second < third) {
		t.Errorf("content rendered out of order: %d, %d, %d", first, second, third)
	}
	if !strings.Contains(out, "report.pdf") {
		t.Errorf("document output missing metadata summary:\n%s", out)
	}
}

func TestDocument_Nil(t *testing.T) {
	if Document(nil) != "" {
		t.Error("Document(nil) should render nothing")
	}
}

func TestMarkdown_FallsBackOnPlainText(t *testing.T) {
	out := Markdown("plain text", 80)
	if !strings.Contains(out, "plain text") {
		t.Errorf("markdown rendering lost the content:\n%s", out)
	}
}
