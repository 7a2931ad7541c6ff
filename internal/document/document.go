// Package document defines the parsed-document data model and the option
// tables that couple file types to their valid loading methods.
package document

import (
	"path/filepath"
	"strings"
)

// FileType identifies the kind of document being submitted.
type FileType string

const (
	FileTypePDF      FileType = "pdf"
	FileTypeMarkdown FileType = "markdown"
)

// Metadata describes a parsed document as reported by the parsing service.
type Metadata struct {
	Filename      string `json:"filename"`
	TotalPages    int    `json:"total_pages"`
	ParsingMethod string `json:"parsing_method"`
	FileType      string `json:"file_type"`
	LoadingMethod string `json:"loading_method,omitempty"`
	Timestamp     string `json:"timestamp"`
}

// ContentItem is one unit of extracted content. Type is a free-form tag
// ("text", "table", "image", "section", ...); the optional fields are only
// populated for the item kinds that use them.
type ContentItem struct {
	Type       string `json:"type"`
	Content    string `json:"content"`
	Page       int    `json:"page"`
	Title      string `json:"title,omitempty"`
	TableIndex int    `json:"table_index,omitempty"`
	ImageIndex int    `json:"image_index,omitempty"`
	ImageAlt   string `json:"image_alt,omitempty"`
	ImageSrc   string `json:"image_src,omitempty"`
}

// ParsedDocument is the structured result of one submission. Content order is
// document reading order and must be preserved.
type ParsedDocument struct {
	Metadata Metadata      `json:"metadata"`
	Content  []ContentItem `json:"content"`
}

// Option is a selectable (value, label) pair offered to the user.
type Option struct {
	Value string
	Label string
}

// Loading method identifiers understood by the parsing service.
const (
	MethodAuto         = "auto"
	MethodPlain        = "plain"
	MethodUnstructured = "unstructured"
	MethodPyMuPDF      = "pymupdf"
	MethodPyPDF        = "pypdf"
	MethodPDFPlumber   = "pdfplumber"
)

// Parsing option identifiers understood by the parsing service.
const (
	ParseAllText       = "all_text"
	ParseByPages       = "by_pages"
	ParseByTitles      = "by_titles"
	ParseTextAndTables = "text_and_tables"
	ParseFullParse     = "full_parse"
)

var markdownMethods = []Option{
	{Value: MethodAuto, Label: "Auto"},
	{Value: MethodPlain, Label: "Plain Text"},
	{Value: MethodUnstructured, Label: "Unstructured"},
}

var pdfMethods = []Option{
	{Value: MethodAuto, Label: "Auto"},
	{Value: MethodPyMuPDF, Label: "PyMuPDF"},
	{Value: MethodPyPDF, Label: "PyPDF"},
	{Value: MethodUnstructured, Label: "Unstructured"},
	{Value: MethodPDFPlumber, Label: "pdfplumber"},
}

var parsingOptions = []Option{
	{Value: ParseAllText, Label: "All Text"},
	{Value: ParseByPages, Label: "By Pages"},
	{Value: ParseByTitles, Label: "By Titles"},
	{Value: ParseTextAndTables, Label: "Text and Tables"},
	{Value: ParseFullParse, Label: "Full Parse"},
}

var optionDescriptions = map[string]string{
	ParseAllText:       "Extract all text content as a continuous stream",
	ParseByPages:       "Split content page by page, preserving page boundaries",
	ParseByTitles:      "Group content into sections by detected titles",
	ParseTextAndTables: "Separate tables from surrounding text",
	ParseFullParse:     "Extract text, tables and image descriptions",
}

// LoadingMethods returns the ordered loading methods valid for ft. The list
// always begins with "auto". Unknown file types get the PDF list.
func LoadingMethods(ft FileType) []Option {
	if ft == FileTypeMarkdown {
		return markdownMethods
	}
	return pdfMethods
}

// AutoDescription explains what the "auto" loading method resolves to for the
// given file type. Other methods carry their meaning in the label.
func AutoDescription(ft FileType) string {
	switch ft {
	case FileTypeMarkdown:
		return "Automatically selects the best loader for Markdown documents"
	case FileTypePDF:
		return "Automatically selects the best PDF parsing library"
	}
	return ""
}

// OptionDescription returns the one-line description for a parsing option
// value, or "" for unknown values.
func OptionDescription(value string) string {
	return optionDescriptions[value]
}

// ParsingOptions returns the ordered list of output-shape choices.
func ParsingOptions() []Option {
	return parsingOptions
}

// DetectFileType maps a filename extension to a FileType. Extensions other
// than .md and .pdf fall through to PDF, matching the parsing service's own
// detection.
func DetectFileType(filename string) FileType {
	if strings.EqualFold(filepath.Ext(filename), ".md") {
		return FileTypeMarkdown
	}
	return FileTypePDF
}

// DisplayName strips the extension from a filename for presentation.
func DisplayName(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}
