package report

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"go-ems/internal/domain"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

const (
	pdfMarginX     = 20.0
	pdfTableWidth  = 257.0
	pdfRowHeight   = 8.0
	pdfBottomSpace = 20.0
)

var (
	pdfPrimary  = [3]int{59, 130, 246}
	pdfText     = [3]int{31, 41, 55}
	pdfHeaderBg = [3]int{239, 246, 255}
	pdfStripe   = [3]int{249, 250, 251}

	pdfColumns = []struct {
		title string
		width float64
	}{
		{"Employee", 52},
		{"Total Days", 20},
		{"Present", 20},
		{"Absent", 20},
		{"Off-Day", 20},
		{"Daily Rate", 28},
		{"Regular Salary", 30},
		{"Off-Day Amount", 30},
		{"Total Salary", 37},
	}
)

// RenderPDF lays out a report on landscape A4 pages.
func RenderPDF(rep Report) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(pdfMarginX, 15, pdfMarginX)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Arial", "I", 8)
		setTextColor(pdf, pdfText)
		pdf.CellFormat(0, 6, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	// Core fonts are cp1252; characters outside it print as '.'.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	writeHeader(pdf, rep)
	writeSummary(pdf, rep.Totals)

	pdf.SetY(85)
	writeTableHeader(pdf)

	_, pageHeight := pdf.GetPageSize()
	for i, row := range rep.Rows {
		if pdf.GetY()+pdfRowHeight > pageHeight-pdfBottomSpace {
			pdf.AddPage()
			writeTableHeader(pdf)
		}

		pdf.SetFont("Arial", "", 8)
		setTextColor(pdf, pdfText)
		setFillColor(pdf, pdfStripe)
		fill := i%2 == 0

		values := []string{
			fitText(pdf, employeeLabel(tr, row), pdfColumns[0].width-2),
			strconv.Itoa(row.TotalDays),
			strconv.Itoa(row.PresentDays),
			strconv.Itoa(row.AbsentDays),
			strconv.Itoa(row.OffDayWorkDays),
			formatMoney(row.DailyRate),
			formatMoney(row.RegularSalary),
			formatMoney(row.OffDayAmount),
			formatMoney(row.TotalSalary),
		}
		for c, v := range values {
			align := "C"
			if c == 0 {
				align = "L"
			}
			if c == len(values)-1 {
				pdf.SetFont("Arial", "B", 8)
			}
			pdf.CellFormat(pdfColumns[c].width, pdfRowHeight, v, "", 0, align, fill, 0, "")
		}
		pdf.Ln(pdfRowHeight)
	}

	if pdf.GetY()+pdfRowHeight+15 > pageHeight-pdfBottomSpace {
		pdf.AddPage()
	}
	writeTotalRow(pdf, rep.Totals)

	pdf.Ln(10)
	pdf.SetFont("Arial", "", 8)
	setTextColor(pdf, pdfText)
	pdf.CellFormat(0, 5, "This is a computer-generated document. No signature required.", "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, "For any queries, please contact the HR Department.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeHeader(pdf *gofpdf.Fpdf, rep Report) {
	pageWidth, _ := pdf.GetPageSize()

	setFillColor(pdf, pdfPrimary)
	pdf.Rect(0, 0, pageWidth, 25, "F")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 18)
	pdf.SetXY(0, 4)
	pdf.CellFormat(pageWidth, 8, "Employee Management System", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 14)
	pdf.SetX(0)
	pdf.CellFormat(pageWidth, 8, "Salary Report", "", 1, "C", false, 0, "")

	setTextColor(pdf, pdfText)
	pdf.SetXY(pdfMarginX, 30)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 7, "Period: "+rep.Period, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 7, "Generated: "+rep.GeneratedAt.Format("Monday, 02 January 2006 15:04 MST"), "", 1, "L", false, 0, "")
}

func writeSummary(pdf *gofpdf.Fpdf, t Totals) {
	setFillColor(pdf, pdfHeaderBg)
	pdf.SetDrawColor(pdfPrimary[0], pdfPrimary[1], pdfPrimary[2])
	pdf.Rect(pdfMarginX, 50, pdfTableWidth, 25, "FD")

	setTextColor(pdf, pdfText)
	pdf.SetFont("Arial", "B", 10)
	pdf.Text(22, 57, "SUMMARY OVERVIEW")

	pdf.SetFont("Arial", "", 10)
	pdf.Text(22, 63, fmt.Sprintf("Total Employees: %d", t.Employees))
	pdf.Text(80, 63, fmt.Sprintf("Present Days: %d", t.PresentDays))
	pdf.Text(140, 63, fmt.Sprintf("Absent Days: %d", t.AbsentDays))
	pdf.Text(200, 63, fmt.Sprintf("Off-Day Work: %d", t.OffDayWorkDays))
	pdf.Text(22, 69, "Regular Salary: "+formatMoney(t.RegularSalary))
	pdf.Text(100, 69, "Off-Day Amount: "+formatMoney(t.OffDayAmount))
	pdf.Text(180, 69, "Grand Total: "+formatMoney(t.TotalSalary))
}

func writeTableHeader(pdf *gofpdf.Fpdf) {
	pdf.SetX(pdfMarginX)
	setFillColor(pdf, pdfPrimary)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 9)
	for _, col := range pdfColumns {
		pdf.CellFormat(col.width, pdfRowHeight, col.title, "", 0, "C", true, 0, "")
	}
	pdf.Ln(pdfRowHeight)
}

func writeTotalRow(pdf *gofpdf.Fpdf, t Totals) {
	pdf.SetX(pdfMarginX)
	setFillColor(pdf, pdfPrimary)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 9)

	values := []string{
		"TOTAL",
		strconv.Itoa(t.PresentDays + t.AbsentDays + t.OffDayWorkDays),
		strconv.Itoa(t.PresentDays),
		strconv.Itoa(t.AbsentDays),
		strconv.Itoa(t.OffDayWorkDays),
		"-",
		formatMoney(t.RegularSalary),
		formatMoney(t.OffDayAmount),
		formatMoney(t.TotalSalary),
	}
	for i, v := range values {
		align := "C"
		if i == 0 {
			align = "L"
		}
		pdf.CellFormat(pdfColumns[i].width, pdfRowHeight, v, "", 0, align, true, 0, "")
	}
	pdf.Ln(pdfRowHeight)
}

func setFillColor(pdf *gofpdf.Fpdf, c [3]int) { pdf.SetFillColor(c[0], c[1], c[2]) }
func setTextColor(pdf *gofpdf.Fpdf, c [3]int) { pdf.SetTextColor(c[0], c[1], c[2]) }

// employeeLabel renders "name (code)" in the single-byte encoding of the
// core fonts.
func employeeLabel(tr func(string) string, row domain.SalaryCalculation) string {
	return tr(fmt.Sprintf("%s (%s)", row.EmployeeName, row.EmployeeID))
}

// fitText shortens s with a trailing ellipsis until it fits width. s is
// already translated, one byte per glyph.
func fitText(pdf *gofpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	n := len(s)
	for n > 0 && pdf.GetStringWidth(s[:n]+"...") > width {
		n--
	}
	return s[:n] + "..."
}

// formatMoney renders an amount with Indian digit grouping, e.g.
// Rs. 12,34,567.50. The core PDF fonts have no rupee glyph.
func formatMoney(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	if len(intPart) > 3 {
		head, tail := intPart[:len(intPart)-3], intPart[len(intPart)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		intPart = strings.Join(groups, ",") + "," + tail
	}

	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	return "Rs. " + sign + intPart + frac
}
