package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sigue-client/internal/models"
	"github.com/noah-isme/sigue-client/pkg/storage"
)

func TestCSVRendersEntityColumns(t *testing.T) {
	data := Careers([]models.Career{{ID: 1, Name: "Law", Semesters: 8}, {ID: 2, Name: "Medicine, Surgery", Semesters: 12}})

	out, err := NewCSVExporter().Render(data)
	require.NoError(t, err)
	assert.Equal(t, "ID,Name,Semesters\n1,Law,8\n2,\"Medicine, Surgery\",12\n", string(out))
}

func TestCSVWithSemicolon(t *testing.T) {
	data := Schedules([]models.Schedule{{ID: 4, Time: "07:00", Shift: models.ShiftMorning}})

	out, err := NewCSVExporter().WithComma(';').Render(data)
	require.NoError(t, err)
	assert.Equal(t, "ID;Time;Shift\n4;07:00;MATUTINO\n", string(out))
}

func TestRecordsFollowHeaders(t *testing.T) {
	data := Dataset{
		Headers: []string{"B", "A"},
		Rows:    []map[string]string{{"A": "1", "B": "2", "C": "ignored"}, {"A": "3"}},
	}
	assert.Equal(t, [][]string{{"2", "1"}, {"", "3"}}, data.Records())
}

func TestColumnWidthsFillThePage(t *testing.T) {
	widths := columnWidths([]string{"ID", "Name"}, [][]string{{"1", "A very long career name"}}, 100)
	require.Len(t, widths, 2)
	assert.InDelta(t, 100, widths[0]+widths[1], 0.001)
	assert.Equal(t, pdfMinColumn, widths[0])
	assert.Greater(t, widths[1], widths[0])
}

func TestCSVRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFRendersUnicodeRows(t *testing.T) {
	data := Students([]models.Student{{ID: 3, Name: "José Núñez", Status: models.StudentActive, DateOfBirth: "1995-01-30", CareerID: 1}})

	out, err := NewPDFExporter().Render(data, "Students")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))

	_, err = NewPDFExporter().Render(Dataset{}, "")
	assert.Error(t, err)
}

func TestFormatOf(t *testing.T) {
	f, err := FormatOf("careers.CSV")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	f, err = FormatOf("/tmp/groups.pdf")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)

	_, err = FormatOf("careers.xlsx")
	assert.Error(t, err)
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	data := Groups([]models.Group{{ID: 5, Name: "LAW-101", CareerName: "Law", SubjectName: "Ethics", TeacherName: "Laura", ScheduleTime: "07:00"}})

	path, err := Save(storage.NewLocalStorage(dir), "groups.csv", data, "Groups")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "groups.csv"), path)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "5,LAW-101,Law,Ethics,Laura,07:00")
}
