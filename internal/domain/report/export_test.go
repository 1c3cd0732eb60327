package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"osgb/internal/domain/screening"
)

func sampleScreenings() []screening.Screening {
	return []screening.Screening{
		{
			ID:            1,
			CompanyName:   "Acme Mining",
			Date:          time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
			TimeStart:     "09:00",
			TimeEnd:       "11:00",
			EmployeeCount: 20,
			Type:          screening.TypePeriodic,
			Status:        screening.StatusCompleted,
		},
		{
			ID:            2,
			CompanyName:   "Borealis Foods",
			Date:          time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			TimeStart:     "13:30",
			TimeEnd:       "15:00",
			EmployeeCount: 8,
			Type:          screening.TypeInitial,
			Status:        screening.StatusScheduled,
			Notes:         "new contract",
		},
	}
}

func TestExportCSV(t *testing.T) {
	out, err := ExportCSV(sampleScreenings())
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace(out), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Equal(t, "ID,Company,Date,Start,End,Participants,Type,Status,Notes", string(bytes.TrimSpace(lines[0])))
	assert.Contains(t, string(lines[1]), "Acme Mining")
	assert.Contains(t, string(lines[2]), "13:30")
	assert.Contains(t, string(lines[2]), "new contract")
}

func TestExportCSVEmpty(t *testing.T) {
	out, err := ExportCSV(nil)
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace(out), []byte("\n"))
	assert.Len(t, lines, 1, "header only")
}

func TestExportXLSX(t *testing.T) {
	out, err := ExportXLSX(sampleScreenings())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Screenings")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Company", rows[0][1])
	assert.Equal(t, "Acme Mining", rows[1][1])
	assert.Equal(t, "2024-03-15", rows[2][2])
	assert.Equal(t, "scheduled", rows[2][7])
}

func TestExportPDF(t *testing.T) {
	out, err := ExportPDF(sampleScreenings(), time.Date(2024, 3, 16, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.True(t, bytes.HasPrefix(out, []byte("%PDF")), "expected a PDF header")
	assert.Greater(t, len(out), 1000)
}
