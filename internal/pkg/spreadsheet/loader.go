// Package spreadsheet reads administrator-authored roster workbooks: locating
// the header row in arbitrary layouts, mapping columns to semantic roles and
// extracting per-row records with defensive cell coercion.
package spreadsheet

import (
	"fmt"
	"io"

	"github.com/minhvu/internhub/internal/pkg/apperrors"
	"github.com/minhvu/internhub/internal/pkg/logger"
	"github.com/xuri/excelize/v2"
)

// Workbook wraps an opened spreadsheet file, pinned to its first worksheet.
type Workbook struct {
	file  *excelize.File
	sheet string
}

// Open opens a workbook from a file path
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Failed to open workbook")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnreadableFile, err)
	}
	return newWorkbook(f)
}

// OpenReader opens a workbook from a reader
func OpenReader(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to open workbook from reader")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnreadableFile, err)
	}
	return newWorkbook(f)
}

func newWorkbook(f *excelize.File) (*Workbook, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		_ = f.Close()
		return nil, apperrors.ErrEmptyWorkbook
	}
	return &Workbook{file: f, sheet: sheets[0]}, nil
}

// SheetName returns the name of the worksheet being read
func (w *Workbook) SheetName() string {
	return w.sheet
}

// Rows returns all rows of the first worksheet as raw cell values
func (w *Workbook) Rows() ([][]string, error) {
	rows, err := w.file.GetRows(w.sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from sheet %q: %w", w.sheet, err)
	}
	return rows, nil
}

// Close releases the underlying file
func (w *Workbook) Close() error {
	return w.file.Close()
}
