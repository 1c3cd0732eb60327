package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"osgb/internal/domain/screening"
)

var exportHeader = []string{"ID", "Company", "Date", "Start", "End", "Participants", "Type", "Status", "Notes"}

func exportRow(record screening.Screening) []string {
	return []string{
		strconv.FormatInt(record.ID, 10),
		record.CompanyName,
		record.Date.Format("2006-01-02"),
		record.TimeStart,
		record.TimeEnd,
		strconv.Itoa(record.EmployeeCount),
		string(record.Type),
		string(record.Status),
		record.Notes,
	}
}

// ExportCSV renders the screening list as RFC 4180 CSV with a header row.
func ExportCSV(records []screening.Screening) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}
	for _, record := range records {
		if err := w.Write(exportRow(record)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportXLSX renders the screening list as a single-sheet workbook.
func ExportXLSX(records []screening.Screening) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Screenings"
	f.SetSheetName("Sheet1", sheet)

	for col, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
	}
	for i, record := range records {
		for col, value := range exportRow(record) {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportPDF renders the screening list with a summary banner on top.
func ExportPDF(records []screening.Screening, generatedAt time.Time) ([]byte, error) {
	summary := screening.AggregateScreenings(records)

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Screening Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Generated: %s", generatedAt.Format("2006-01-02 15:04")))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Total: %d  Participants: %d  Completion: %d%%  Cancellation: %d%%",
		summary.Total, summary.TotalParticipants, summary.CompletionRate, summary.CancellationRate))
	pdf.Ln(10)

	widths := []float64{15, 60, 25, 18, 18, 28, 25, 25, 60}
	pdf.SetFont("Helvetica", "B", 10)
	for i, title := range exportHeader {
		pdf.CellFormat(widths[i], 8, title, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, record := range records {
		for i, value := range exportRow(record) {
			pdf.CellFormat(widths[i], 7, value, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
