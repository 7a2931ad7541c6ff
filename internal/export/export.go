// Package export flattens a parsed document into an XLSX workbook.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/docparse/docparse/internal/document"
)

const sheet = "Content"

// XLSX returns workbook bytes with one row per content item plus a metadata
// header block. Content order follows the document's reading order.
func XLSX(doc *document.ParsedDocument) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("nil document")
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	// Drop the default sheet; excelize always creates "Sheet1".
	_ = f.DeleteSheet("Sheet1")

	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	write(1, 1, "Filename")
	write(2, 1, doc.Metadata.Filename)
	write(1, 2, "Total Pages")
	write(2, 2, doc.Metadata.TotalPages)
	write(1, 3, "Parsing Method")
	write(2, 3, doc.Metadata.ParsingMethod)
	write(1, 4, "File Type")
	write(2, 4, doc.Metadata.FileType)

	headers := []string{"Type", "Page", "Title", "Index", "Content"}
	const headerRow = 6
	for i, h := range headers {
		write(i+1, headerRow, h)
	}

	row := headerRow + 1
	for _, item := range doc.Content {
		write(1, row, item.Type)
		write(2, row, item.Page)
		write(3, row, itemTitle(item))
		if idx := itemIndex(item); idx > 0 {
			write(4, row, idx)
		}
		write(5, row, item.Content)
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// itemTitle picks the display title for an item: the section title where
// present, the image alt text for images.
func itemTitle(item document.ContentItem) string {
	if item.Title != "" {
		return item.Title
	}
	return item.ImageAlt
}

// itemIndex returns the per-page ordinal of a table or image item, 0 for
// everything else.
func itemIndex(item document.ContentItem) int {
	if item.TableIndex > 0 {
		return item.TableIndex
	}
	return item.ImageIndex
}
