package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alexanderramin/cps/internal/domain"
)

const (
	// Filename is the name offered for every schedule download.
	Filename = "CPS_schedule.csv"
	// ContentType is the MIME type of the CSV export.
	ContentType = "text/csv"
)

// Header is the first row of every CSV export.
var Header = []string{"Milestone", "Days After Base Date", "Start Date", "End Date"}

// Result is a rendered export ready to be written or served.
type Result struct {
	Filename    string
	ContentType string
	Data        []byte
}

// WriteCSV writes the schedule as CSV, one row per entry in schedule order.
func WriteCSV(w io.Writer, s domain.Schedule) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, e := range s.Entries {
		row := []string{
			e.Name,
			strconv.Itoa(e.OffsetDays),
			domain.FormatDate(e.StartDate),
			domain.FormatDate(e.EndDate),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row %q: %w", e.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Export renders the schedule into an in-memory CSV Result.
func Export(s domain.Schedule) (*Result, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, s); err != nil {
		return nil, err
	}
	return &Result{
		Filename:    Filename,
		ContentType: ContentType,
		Data:        buf.Bytes(),
	}, nil
}

// ExportToFile writes the CSV export into dir and returns the file path.
func ExportToFile(dir string, s domain.Schedule) (string, error) {
	res, err := Export(s)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}
	path := filepath.Join(dir, res.Filename)
	if err := os.WriteFile(path, res.Data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
