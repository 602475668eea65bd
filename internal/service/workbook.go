package service

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/parisbureaux/bureaux-api/internal/domain"
)

const (
	importSheetName       = "Offices"
	instructionsSheetName = "Instructions"
)

var importHeaders = []string{
	"title", "description", "slug", "arr", "priceCents", "nbPosts", "lat", "lng", "isFake", "amenities",
}

// WorkbookError carries every cell-level problem found while parsing an
// uploaded workbook, so the admin can fix the file in one pass.
type WorkbookError struct {
	Details []string
}

func (e *WorkbookError) Error() string {
	return fmt.Sprintf("invalid workbook: %d problem(s)", len(e.Details))
}

// GenerateTemplate builds the XLSX workbook admins download, fill in and
// upload back through ParseWorkbook.
func (s *ImportService) GenerateTemplate() (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", instructionsSheetName)

	instructions := []string{
		"Bulk office import",
		"",
		"Fill in the Offices sheet, one listing per row, then upload the file.",
		"- title and slug are required; the slug must be unique across the site",
		"- arr is the arrondissement number (1-20)",
		"- priceCents is the monthly price in cents",
		"- nbPosts is the workstation count and defaults to 1 when empty",
		"- lat/lng are the listing coordinates",
		"- isFake marks placeholder listings (true/false)",
		"- amenities is a comma-separated list of service names, e.g. \"WiFi, Salle de réunion\"",
		fmt.Sprintf("- a single upload is limited to %d rows", domain.MaxImportBatch),
	}
	for i, line := range instructions {
		f.SetCellValue(instructionsSheetName, fmt.Sprintf("A%d", i+1), line)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return nil, fmt.Errorf("f.NewStyle -> %w", err)
	}
	f.SetCellStyle(instructionsSheetName, "A1", "A1", titleStyle)
	f.SetColWidth(instructionsSheetName, "A", "A", 90)

	if _, err = f.NewSheet(importSheetName); err != nil {
		return nil, fmt.Errorf("f.NewSheet -> %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("f.NewStyle -> %w", err)
	}
	for i, header := range importHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(importSheetName, cell, header)
		f.SetCellStyle(importSheetName, cell, cell, headerStyle)
	}
	f.SetColWidth(importSheetName, "A", "J", 18)

	// Example row below the header, to be replaced by real data.
	example := []interface{}{
		"Bureau Sentier", "Open space lumineux au coeur du Sentier", "bureau-sentier",
		2, 250000, 12, 48.8679, 2.3479, false, "WiFi, Fibre",
	}
	for i, value := range example {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue(importSheetName, cell, value)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("f.WriteToBuffer -> %w", err)
	}

	return buf, nil
}

// ParseWorkbook reads an uploaded workbook into import rows. Cell-level
// parse failures are accumulated into a single WorkbookError; schema
// validation (ranges, required fields) happens afterwards through the
// same batch validation as the JSON import path. Coordinates must be
// present in the sheet because the zero value is indistinguishable from
// an empty cell once parsed.
func (s *ImportService) ParseWorkbook(file io.Reader) ([]domain.OfficeImport, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("excelize.OpenReader -> %w", err)
	}
	defer f.Close()

	rawRows, err := f.GetRows(importSheetName)
	if err != nil {
		return nil, &WorkbookError{Details: []string{fmt.Sprintf("missing %q sheet", importSheetName)}}
	}

	var (
		rows    []domain.OfficeImport
		details []string
	)

	for i, raw := range rawRows {
		if i == 0 {
			continue // header
		}
		if isEmptyRow(raw) {
			continue
		}

		rowNum := i + 1
		row := domain.OfficeImport{
			Title:       cellAt(raw, 0),
			Description: cellAt(raw, 1),
			Slug:        cellAt(raw, 2),
		}

		row.Arr = parseIntCell(raw, 3, "arr", rowNum, &details)
		row.PriceCents = parseIntCell(raw, 4, "priceCents", rowNum, &details)
		row.NbPosts = parseIntCell(raw, 5, "nbPosts", rowNum, &details)
		row.Lat = parseRequiredFloatCell(raw, 6, "lat", rowNum, &details)
		row.Lng = parseRequiredFloatCell(raw, 7, "lng", rowNum, &details)

		if v := cellAt(raw, 8); v != "" {
			isFake, err := strconv.ParseBool(strings.ToLower(v))
			if err != nil {
				details = append(details, fmt.Sprintf("row %d: isFake must be true or false, got %q", rowNum, v))
			}
			row.IsFake = isFake
		}

		if v := cellAt(raw, 9); v != "" {
			for _, amenity := range strings.Split(v, ",") {
				if trimmed := strings.TrimSpace(amenity); trimmed != "" {
					row.Amenities = append(row.Amenities, trimmed)
				}
			}
		}

		rows = append(rows, row)
	}

	if len(details) > 0 {
		return nil, &WorkbookError{Details: details}
	}

	return rows, nil
}

func cellAt(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}

func parseIntCell(row []string, idx int, field string, rowNum int, details *[]string) int {
	v := cellAt(row, idx)
	if v == "" {
		return 0
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		*details = append(*details, fmt.Sprintf("row %d: %s must be an integer, got %q", rowNum, field, v))
		return 0
	}

	return n
}

func parseRequiredFloatCell(row []string, idx int, field string, rowNum int, details *[]string) float64 {
	v := cellAt(row, idx)
	if v == "" {
		*details = append(*details, fmt.Sprintf("row %d: %s is required", rowNum, field))
		return 0
	}

	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		*details = append(*details, fmt.Sprintf("row %d: %s must be a number, got %q", rowNum, field, v))
		return 0
	}

	return n
}
