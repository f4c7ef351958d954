package pdf

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/AbdelwaliNour/Hospital/internal/analytics"
	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"
)

// PDFGenerator renders analytics reports
type PDFGenerator struct {
	logger *zap.Logger
}

// NewPDFGenerator creates a new PDFGenerator
func NewPDFGenerator(logger *zap.Logger) *PDFGenerator {
	return &PDFGenerator{
		logger: logger,
	}
}

// ReportData contains all data needed for report generation
type ReportData struct {
	ClinicName string
	Report     analytics.Report
	Stats      analytics.DashboardStats
}

// Generate creates a PDF report from the provided data
func (g *PDFGenerator) Generate(data *ReportData) ([]byte, error) {
	if data == nil {
		return nil, fmt.Errorf("report data is required")
	}

	g.logger.Info("generating PDF report",
		zap.String("time_range", string(data.Report.TimeRange)),
		zap.Time("generated_at", data.Report.GeneratedAt),
	)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	g.addTitle(pdf, data)
	g.addDashboardSummary(pdf, data.Stats, data.Report.VisitChange)
	g.addMonthlyVisits(pdf, data.Report.VisitsSummary)
	g.addDepartmentVisits(pdf, data.Report.DepartmentSummary)
	g.addConditionSummary(pdf, data.Report.ConditionSummary)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		g.logger.Error("failed to generate PDF", zap.Error(err))
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	g.logger.Info("PDF report generated successfully",
		zap.Int("size_bytes", buf.Len()),
	)

	return buf.Bytes(), nil
}

// addTitle adds the report title and header information
func (g *PDFGenerator) addTitle(pdf *gofpdf.Fpdf, data *ReportData) {
	clinic := data.ClinicName
	if clinic == "" {
		clinic = "Clinic"
	}

	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 10, "Analytics Report", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Clinic: %s", clinic), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Time range: %s", data.Report.TimeRange), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Generated: %s", data.Report.GeneratedAt.Format("2006-01-02 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(10)
}

// addSectionHeader adds a section header
func (g *PDFGenerator) addSectionHeader(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 14)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(0, 10, title, "", 1, "L", true, 0, "")
	pdf.Ln(3)
	pdf.SetFont("Arial", "", 10)
}

func (g *PDFGenerator) addDashboardSummary(pdf *gofpdf.Fpdf, stats analytics.DashboardStats, change analytics.VisitComparison) {
	g.addSectionHeader(pdf, "Today")

	rows := [][2]string{
		{"Appointments today", strconv.Itoa(stats.TodayAppointments)},
		{"Completed", strconv.Itoa(stats.CompletedAppointments)},
		{"Remaining", strconv.Itoa(stats.RemainingAppointments)},
		{"Visits this month", strconv.Itoa(change.ThisMonth)},
		{"Visits last month", strconv.Itoa(change.LastMonth)},
		{"Change", fmt.Sprintf("%+d", change.Change)},
		{"Average treatment time", fmt.Sprintf("%d min", stats.AvgTreatmentTime)},
		{"Patient satisfaction", fmt.Sprintf("%.1f / 5", stats.PatientSatisfaction)},
	}
	for _, row := range rows {
		pdf.CellFormat(70, 6, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, row[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(5)
}

// addMonthlyVisits draws one bar per month scaled to the busiest month
func (g *PDFGenerator) addMonthlyVisits(pdf *gofpdf.Fpdf, months []analytics.MonthlyCount) {
	g.addSectionHeader(pdf, "Visits per Month")

	peak := 0
	for _, m := range months {
		peak = max(peak, m.Visits)
	}
	if peak == 0 {
		pdf.CellFormat(0, 8, "No visit data available.", "", 1, "L", false, 0, "")
		pdf.Ln(5)
		return
	}

	const barMaxWidth = 100.0
	pdf.SetFillColor(19, 102, 174)
	for _, m := range months {
		x, y := pdf.GetXY()
		pdf.CellFormat(15, 6, m.Name, "", 0, "L", false, 0, "")
		if m.Visits > 0 {
			width := barMaxWidth * float64(m.Visits) / float64(peak)
			pdf.Rect(x+15, y+1, width, 4, "F")
		}
		pdf.SetXY(x+15+barMaxWidth+5, y)
		pdf.CellFormat(0, 6, strconv.Itoa(m.Visits), "", 1, "L", false, 0, "")
	}
	pdf.Ln(5)
}

func (g *PDFGenerator) addDepartmentVisits(pdf *gofpdf.Fpdf, departments []analytics.DepartmentVisits) {
	g.addSectionHeader(pdf, "Visits by Department")

	if len(departments) == 0 {
		pdf.CellFormat(0, 8, "No departments recorded.", "", 1, "L", false, 0, "")
		pdf.Ln(5)
		return
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(90, 7, "Department", "B", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, "Visits", "B", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, d := range departments {
		r, gr, b := hexColor(d.Color)
		x, y := pdf.GetXY()
		pdf.SetFillColor(r, gr, b)
		pdf.Rect(x, y+1.5, 3, 3, "F")
		pdf.SetX(x + 5)
		pdf.CellFormat(85, 6, d.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, strconv.Itoa(d.Value), "", 1, "R", false, 0, "")
	}
	pdf.Ln(5)
}

func (g *PDFGenerator) addConditionSummary(pdf *gofpdf.Fpdf, conditions []analytics.ConditionCount) {
	g.addSectionHeader(pdf, "Conditions")

	if len(conditions) == 0 {
		pdf.CellFormat(0, 8, "No conditions recorded.", "", 1, "L", false, 0, "")
		pdf.Ln(5)
		return
	}

	for _, c := range conditions {
		pdf.CellFormat(90, 6, c.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, strconv.Itoa(c.Value), "", 1, "R", false, 0, "")
	}
	pdf.Ln(5)
}

// hexColor parses "#rrggbb"; anything else renders grey
func hexColor(s string) (int, int, int) {
	if len(s) != 7 || s[0] != '#' {
		return 204, 204, 204
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 204, 204, 204
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}
