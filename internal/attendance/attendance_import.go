package attendance

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	attendanceerrors "go-hrms/internal/attendance/errors"

	"github.com/xuri/excelize/v2"
)

const importOverrideReason = "bulk import"

type column int

const (
	colEmployee column = iota
	colDate
	colStatus
	colCheckIn
	colCheckOut
)

// headerAliases are keyed by the normalized header: lower case letters and
// digits only.
var headerAliases = map[string]column{
	"employeecode":     colEmployee,
	"empcode":          colEmployee,
	"employeeid":       colEmployee,
	"empid":            colEmployee,
	"employeeno":       colEmployee,
	"employeenumber":   colEmployee,
	"code":             colEmployee,
	"employee":         colEmployee,
	"date":             colDate,
	"attendancedate":   colDate,
	"day":              colDate,
	"workdate":         colDate,
	"status":           colStatus,
	"attendancestatus": colStatus,
	"checkin":          colCheckIn,
	"checkintime":      colCheckIn,
	"in":               colCheckIn,
	"intime":           colCheckIn,
	"timein":           colCheckIn,
	"clockin":          colCheckIn,
	"punchin":          colCheckIn,
	"checkout":         colCheckOut,
	"checkouttime":     colCheckOut,
	"out":              colCheckOut,
	"outtime":          colCheckOut,
	"timeout":          colCheckOut,
	"clockout":         colCheckOut,
	"punchout":         colCheckOut,
}

// columns maps a canonical field to its index in the file.
type columns map[column]int

func normalizeHeader(h string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, h)
}

func mapColumns(header []string) (columns, error) {
	cols := make(columns)
	for i, h := range header {
		c, ok := headerAliases[normalizeHeader(h)]
		if !ok {
			continue
		}
		if _, seen := cols[c]; !seen {
			cols[c] = i
		}
	}
	_, hasEmployee := cols[colEmployee]
	_, hasDate := cols[colDate]
	if !hasEmployee || !hasDate {
		return nil, attendanceerrors.ErrMissingColumns
	}
	return cols, nil
}

func (c columns) cell(row []string, col column) string {
	i, ok := c[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func blankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// readRows returns the first sheet of an .xlsx workbook or every record
// of a .csv file, header included.
func readRows(filename string, r io.Reader) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		f, err := excelize.OpenReader(r)
		if err != nil {
			return nil, attendanceerrors.ErrUnsupportedFile.WithDetails(err.Error())
		}
		defer f.Close()
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, nil
		}
		return f.GetRows(sheets[0])
	case ".csv":
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		cr := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))))
		cr.FieldsPerRecord = -1
		cr.TrimLeadingSpace = true
		records, err := cr.ReadAll()
		if err != nil {
			return nil, attendanceerrors.ErrUnsupportedFile.WithDetails(err.Error())
		}
		return records, nil
	default:
		return nil, attendanceerrors.ErrUnsupportedFile
	}
}

// Day-first layouts win over month-first for slash dates.
var importDateLayouts = []string{
	time.DateOnly,
	"2006/01/02",
	"02-01-2006",
	"02/01/2006",
	"2/1/2006",
	"02.01.2006",
	"2-Jan-2006",
	"02-Jan-06",
	"02 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

func parseImportDate(v string, loc *time.Location) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range importDateLayouts {
		if t, err := time.ParseInLocation(layout, v, loc); err == nil {
			return t, nil
		}
	}
	// spreadsheet serial date
	if serial, err := strconv.ParseFloat(v, 64); err == nil && serial > 0 {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, err
		}
		return localMidnight(t, loc), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", v)
}

var importClockLayouts = []string{
	"15:04",
	"15:04:05",
	"3:04 PM",
	"3:04PM",
	"3:04:05 PM",
	"03:04 PM",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
}

// parseImportClock normalizes a cell to HH:MM; an empty cell stays empty.
func parseImportClock(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", nil
	}
	for _, layout := range importClockLayouts {
		if t, err := time.Parse(layout, strings.ToUpper(v)); err == nil {
			return t.Format("15:04"), nil
		}
	}
	// spreadsheet fraction of a day
	if frac, err := strconv.ParseFloat(v, 64); err == nil && frac >= 0 && frac < 1 {
		minutes := int(frac*24*60 + 0.5)
		return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60), nil
	}
	return "", fmt.Errorf("unrecognized time %q", v)
}
