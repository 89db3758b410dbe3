package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/banking"
)

//go:embed *.md
var templates embed.FS

// reportData is a Report with the currency used to format its amounts.
type reportData struct {
	*banking.Report
	Currency string
}

// Report renders a bank report to markdown, amounts formatted in currency.
func Report(r *banking.Report, currency string) string {
	partials := map[string]string{
		"report_accounts": "report_accounts.md",
	}
	return renderTemplate("report", "report.md", partials, reportData{Report: r, Currency: currency})
}

type outcomeRow struct {
	Line      int
	Operation string
	Status    string
}

type outcomeData struct {
	Rows   []outcomeRow
	Failed int
	Total  int
}

// Outcome renders the step by step result of a replay to markdown.
func Outcome(o *banking.Outcome, currency string) string {
	data := outcomeData{Failed: o.Failed(), Total: len(o.Results())}
	for _, res := range o.Results() {
		data.Rows = append(data.Rows, outcomeRow{
			Line:      res.Line,
			Operation: Operation(res.Operation, currency),
			Status:    res.Status(),
		})
	}
	return renderTemplate("outcome", "outcome.md", nil, data)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
// The result ends with a single newline.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}
