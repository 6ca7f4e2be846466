package payroll

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

func payslipLines(run Run, p Payslip) []string {
	return []string{
		"Payslip " + run.Period,
		fmt.Sprintf("Period: %s to %s (%d days)", run.PeriodStart.Format(time.DateOnly), run.PeriodEnd.Format(time.DateOnly), run.PeriodDays),
		fmt.Sprintf("Employee: %s %s", p.EmployeeCode, p.EmployeeName),
		"Salary template: " + p.TemplateName,
		"",
		"Basic: " + p.Basic.StringFixed(2),
		"Allowance: " + p.Allowance.StringFixed(2),
		"Gross: " + p.Gross.StringFixed(2),
		"",
		"Unpaid leave days: " + p.UnpaidLeaveDays.String(),
		fmt.Sprintf("Absent days: %d", p.AbsentDays),
		"Loss of pay days: " + p.LOPDays.String(),
		"",
		"Net pay: " + p.Net.StringFixed(2),
	}
}

// renderPDF writes a single page Helvetica document, one line per entry.
func renderPDF(lines []string) []byte {
	if len(lines) == 0 {
		lines = []string{"Payslip"}
	}

	var content strings.Builder
	content.WriteString("BT\n/F1 12 Tf\n14 TL\n50 800 Td\n")
	for i, line := range lines {
		if i == 0 {
			fmt.Fprintf(&content, "(%s) Tj\n", pdfEscape(line))
			continue
		}
		fmt.Fprintf(&content, "T* (%s) Tj\n", pdfEscape(line))
	}
	content.WriteString("ET")

	stream := content.String()
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>\nendobj\n",
		"4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n",
		fmt.Sprintf("5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects))
	for _, obj := range objects {
		offsets = append(offsets, out.Len())
		out.WriteString(obj)
	}

	xref := out.Len()
	fmt.Fprintf(&out, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&out, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&out, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(objects)+1, xref)
	return out.Bytes()
}

var pdfReplacer = strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")

func pdfEscape(v string) string {
	return pdfReplacer.Replace(v)
}
