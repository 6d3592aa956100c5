// Package report renders an SEO audit of stored tags as a PDF.
package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/akyairhashvil/seodesk/internal/formassist"
	"github.com/akyairhashvil/seodesk/internal/models"
	"github.com/akyairhashvil/seodesk/internal/seo"
)

// Row is the audit of one tag.
type Row struct {
	PageID            string
	PageName          string
	PagePath          string
	TitleLength       int
	TitleColor        string
	DescriptionLength int
	DescriptionColor  string
	Issues            []string
}

// Summary counts rows per indicator colour.
type Summary struct {
	Total       int
	Title       map[string]int
	Description map[string]int
	WithIssues  int
}

// Audit measures each tag with the same length rules the edit form uses, and
// lists any validation failures.
func Audit(tags []models.SEOTag) []Row {
	titleRule := formassist.PageTitleRule()
	descRule := formassist.MetaDescriptionRule()

	rows := make([]Row, 0, len(tags))
	for _, t := range tags {
		row := Row{
			PageID:            t.PageID,
			PageName:          t.PageName,
			PagePath:          t.PagePath,
			TitleLength:       formassist.CharacterCount(t.PageTitle),
			TitleColor:        titleRule.ColorFor(t.PageTitle),
			DescriptionLength: formassist.CharacterCount(t.MetaDescription),
			DescriptionColor:  descRule.ColorFor(t.MetaDescription),
		}
		var verrs seo.ValidationErrors
		if err := seo.Validate(t); errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for f := range verrs {
				fields = append(fields, f)
			}
			sort.Strings(fields)
			for _, f := range fields {
				row.Issues = append(row.Issues, f+": "+verrs[f])
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func Summarize(rows []Row) Summary {
	s := Summary{Total: len(rows), Title: map[string]int{}, Description: map[string]int{}}
	for _, r := range rows {
		s.Title[r.TitleColor]++
		s.Description[r.DescriptionColor]++
		if len(r.Issues) > 0 {
			s.WithIssues++
		}
	}
	return s
}

var rgb = map[string][3]int{
	formassist.Green:  {34, 139, 34},
	formassist.Orange: {230, 126, 0},
	formassist.Red:    {200, 30, 30},
}

func setColor(pdf *fpdf.Fpdf, color string) {
	c, ok := rgb[color]
	if !ok {
		pdf.SetTextColor(0, 0, 0)
		return
	}
	pdf.SetTextColor(c[0], c[1], c[2])
}

func build(rows []Row, generatedAt time.Time) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("SEO audit", true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "SEO Audit")
	pdf.Ln(9)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, "Generated "+generatedAt.Format("2006-01-02 15:04 MST"))
	pdf.Ln(10)

	sum := Summarize(rows)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Pages: %d   With issues: %d", sum.Total, sum.WithIssues))
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 10)
	for _, color := range []string{formassist.Green, formassist.Orange, formassist.Red} {
		setColor(pdf, color)
		pdf.Cell(0, 6, fmt.Sprintf("%-7s titles %d   descriptions %d", color, sum.Title[color], sum.Description[color]))
		pdf.Ln(5)
	}
	setColor(pdf, "")
	pdf.Ln(6)

	if len(rows) == 0 {
		pdf.Cell(0, 8, "No SEO tags stored.")
		return pdf
	}

	// Table header
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(40, 7, "Page ID", "B", 0, "", false, 0, "")
	pdf.CellFormat(70, 7, "Path", "B", 0, "", false, 0, "")
	pdf.CellFormat(35, 7, "Title", "B", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, "Description", "B", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, r := range rows {
		pdf.CellFormat(40, 6, tr(r.PageID), "", 0, "", false, 0, "")
		pdf.CellFormat(70, 6, tr(r.PagePath), "", 0, "", false, 0, "")
		setColor(pdf, r.TitleColor)
		pdf.CellFormat(35, 6, fmt.Sprintf("%d (%s)", r.TitleLength, r.TitleColor), "", 0, "R", false, 0, "")
		setColor(pdf, r.DescriptionColor)
		pdf.CellFormat(35, 6, fmt.Sprintf("%d (%s)", r.DescriptionLength, r.DescriptionColor), "", 1, "R", false, 0, "")
		setColor(pdf, "")
		if len(r.Issues) > 0 {
			pdf.SetFont("Arial", "I", 9)
			for _, issue := range r.Issues {
				pdf.MultiCell(0, 5, tr("    - "+issue), "", "", false)
			}
			pdf.SetFont("Arial", "", 10)
		}
	}
	return pdf
}

// WritePDF renders rows to w.
func WritePDF(w io.Writer, rows []Row, generatedAt time.Time) error {
	pdf := build(rows, generatedAt)
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render audit: %w", err)
	}
	return nil
}

// WriteFile renders rows to path, creating its directory.
func WriteFile(path string, rows []Row, generatedAt time.Time) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	pdf := build(rows, generatedAt)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write audit %s: %w", path, err)
	}
	return nil
}
