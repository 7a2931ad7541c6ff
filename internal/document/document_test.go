package document

import "testing"

func TestDetectFileType(t *testing.T) {
	tests := []struct {
		filename string
		want     FileType
	}{
		{"notes.md", FileTypeMarkdown},
		{"NOTES.MD", FileTypeMarkdown},
		{"report.pdf", FileTypePDF},
		{"report.PDF", FileTypePDF},
		{"archive.tar.gz", FileTypePDF},
		{"no-extension", FileTypePDF},
		{"", FileTypePDF},
	}

	for _, tt := range tests {
		if got := DetectFileType(tt.filename); got != tt.want {
			t.Errorf("DetectFileType(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"report.pdf", "report"},
		{"notes.md", "notes"},
		{"no-extension", "no-extension"},
		{"dotted.name.pdf", "dotted.name"},
	}

	for _, tt := range tests {
		if got := DisplayName(tt.filename); got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

func TestLoadingMethods_Markdown(t *testing.T) {
	got := LoadingMethods(FileTypeMarkdown)
	want := []string{MethodAuto, MethodPlain, MethodUnstructured}

	if len(got) != len(want) {
		t.Fatalf("LoadingMethods(markdown) returned %d options, want %d", len(got), len(want))
	}
	for i, opt := range got {
		if opt.Value != want[i] {
			t.Errorf("LoadingMethods(markdown)[%d] = %q, want %q", i, opt.Value, want[i])
		}
	}
}

func TestLoadingMethods_PDF(t *testing.T) {
	got := LoadingMethods(FileTypePDF)
	want := []string{MethodAuto, MethodPyMuPDF, MethodPyPDF, MethodUnstructured, MethodPDFPlumber}

	if len(got) != len(want) {
		t.Fatalf("LoadingMethods(pdf) returned %d options, want %d", len(got), len(want))
	}
	for i, opt := range got {
		if opt.Value != want[i] {
			t.Errorf("LoadingMethods(pdf)[%d] = %q, want %q", i, opt.Value, want[i])
		}
	}
}

func TestLoadingMethods_AlwaysStartWithAuto(t *testing.T) {
	for _, ft := range []FileType{FileTypePDF, FileTypeMarkdown, FileType("unknown")} {
		opts := LoadingMethods(ft)
		if len(opts) == 0 || opts[0].Value != MethodAuto {
			t.Errorf("LoadingMethods(%v) does not start with auto", ft)
		}
	}
}

func TestAutoDescription(t *testing.T) {
	if AutoDescription(FileTypePDF) == "" {
		t.Error("AutoDescription(pdf) is empty")
	}
	if AutoDescription(FileTypeMarkdown) == "" {
		t.Error("AutoDescription(markdown) is empty")
	}
	if AutoDescription(FileTypePDF) == AutoDescription(FileTypeMarkdown) {
		t.Error("auto descriptions should differ per file type")
	}
	if AutoDescription(FileType("docx")) != "" {
		t.Error("AutoDescription(unknown) should be empty")
	}
}

func TestOptionDescription(t *testing.T) {
	for _, opt := range ParsingOptions() {
		if OptionDescription(opt.Value) == "" {
			t.Errorf("OptionDescription(%q) is empty", opt.Value)
		}
	}
	if OptionDescription("bogus") != "" {
		t.Error(`OptionDescription("bogus") should be empty`)
	}
}

func TestParsingOptions_Order(t *testing.T) {
	want := []string{ParseAllText, ParseByPages, ParseByTitles, ParseTextAndTables, ParseFullParse}
	got := ParsingOptions()

	if len(got) != len(want) {
		t.Fatalf("ParsingOptions() returned %d options, want %d", len(got), len(want))
	}
	for i, opt := range got {
		if opt.Value != want[i] {
			t.Errorf("ParsingOptions()[%d] = %q, want %q", i, opt.Value, want[i])
		}
	}
}
