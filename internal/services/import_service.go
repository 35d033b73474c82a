package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"homevest_backend/internal/logger"
	"homevest_backend/internal/models"
	"homevest_backend/internal/repositories"
	"homevest_backend/pkg/apperrors"
)

// ImportResult summarizes a bulk property import. Row numbers in Errors are
// 1-based and include the header row, matching what the user sees in their
// spreadsheet.
type ImportResult struct {
	Created int      `json:"created"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

// ImportService ingests property listings from uploaded .xlsx or .csv
// files. Columns are matched by header name, not position, so exports from
// different tools survive reordering.
type ImportService interface {
	ImportProperties(ctx context.Context, filename string, r io.Reader) (*ImportResult, error)
}

type importService struct {
	properties repositories.PropertyRepository
}

func NewImportService(properties repositories.PropertyRepository) ImportService {
	return &importService{properties: properties}
}

func (s *importService) ImportProperties(ctx context.Context, filename string, r io.Reader) (*ImportResult, error) {
	var rows [][]string
	var err error

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		rows, err = readXLSX(r)
	case ".csv":
		rows, err = readCSV(r)
	default:
		return nil, apperrors.ErrUnsupportedImportFormat
	}
	if err != nil {
		return nil, apperrors.NewBadRequestError("Could not parse the uploaded file: " + err.Error())
	}
	if len(rows) < 2 {
		return nil, apperrors.NewBadRequestError("File contains no data rows")
	}

	cols := headerIndex(rows[0])
	if _, ok := cols["title"]; !ok {
		return nil, apperrors.NewBadRequestError("Missing required column: title")
	}
	if _, ok := cols["address"]; !ok {
		return nil, apperrors.NewBadRequestError("Missing required column: address")
	}

	result := &ImportResult{}
	for i, row := range rows[1:] {
		rowNum := i + 2
		p, rowErr := buildProperty(cols, row)
		if rowErr != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", rowNum, rowErr))
			continue
		}
		if _, err := s.properties.Create(ctx, p); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}
		result.Created++
	}

	logger.CtxInfo(ctx, "property import finished",
		"file", filename, "created", result.Created, "skipped", result.Skipped)
	return result, nil
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	return f.GetRows(sheets[0])
}

func readCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return cr.ReadAll()
}

func headerIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		key = strings.ReplaceAll(key, " ", "_")
		cols[key] = i
	}
	return cols
}

func cell(cols map[string]int, row []string, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func buildProperty(cols map[string]int, row []string) (*models.Property, error) {
	title := cell(cols, row, "title")
	address := cell(cols, row, "address")
	if title == "" {
		return nil, fmt.Errorf("title is empty")
	}
	if address == "" {
		return nil, fmt.Errorf("address is empty")
	}

	p := &models.Property{
		Title:        title,
		Slug:         slugify(title),
		Description:  cell(cols, row, "description"),
		Address:      address,
		City:         cell(cols, row, "city"),
		State:        cell(cols, row, "state"),
		Zip:          cell(cols, row, "zip"),
		PropertyType: cell(cols, row, "property_type"),
		ImageURL:     cell(cols, row, "image_url"),
		IsActive:     true,
	}

	if v := cell(cols, row, "price"); v != "" {
		price, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64)
		if err != nil || price <= 0 {
			return nil, fmt.Errorf("invalid price %q", v)
		}
		p.Price = price
	} else {
		return nil, fmt.Errorf("price is empty")
	}

	if v := cell(cols, row, "beds"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid beds %q", v)
		}
		p.Beds = n
	}
	if v := cell(cols, row, "baths"); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid baths %q", v)
		}
		p.Baths = n
	}
	if v := cell(cols, row, "sqft"); v != "" {
		n, err := strconv.Atoi(strings.ReplaceAll(v, ",", ""))
		if err != nil {
			return nil, fmt.Errorf("invalid sqft %q", v)
		}
		p.Sqft = n
	}
	if v := strings.ToLower(cell(cols, row, "featured")); v == "true" || v == "yes" || v == "1" {
		p.IsFeatured = true
	}
	return p, nil
}
