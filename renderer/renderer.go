// Package renderer turns derived documents into markdown. It is the last
// boundary inside the module: everything past it (HTML, PDF, print) is
// someone else's job.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/ledgerdocs"
)

//go:embed templates/*.md
var templates embed.FS

// RenderDocument renders a purchase order, receiving report, or invoice to
// a markdown string.
func RenderDocument(d *ledgerdocs.Document) string {
	partials := map[string]string{
		"document_header":  "templates/document_header.md",
		"document_parties": "templates/document_parties.md",
		"document_items":   "templates/document_items.md",
		"document_totals":  "templates/document_totals.md",
	}
	return renderTemplate("document", "templates/document.md", partials, d)
}

// RenderCheck renders one payment check to a markdown string.
func RenderCheck(c *ledgerdocs.Check) string {
	return renderTemplate("check", "templates/check.md", nil, c)
}

// RenderWithdrawal renders the full withdrawal packet: the account
// statement followed by the withdrawal authorization form.
func RenderWithdrawal(d *ledgerdocs.WithdrawalDoc) string {
	partials := map[string]string{
		"withdrawal_participant": "templates/withdrawal_participant.md",
		"withdrawal_investments": "templates/withdrawal_investments.md",
		"withdrawal_sources":     "templates/withdrawal_sources.md",
		"withdrawal_activity":    "templates/withdrawal_activity.md",
		"withdrawal_form":        "templates/withdrawal_form.md",
	}
	return renderTemplate("withdrawal", "templates/withdrawal.md", partials, d)
}

// RenderForm1099R renders one 1099-R tax form to a markdown string.
func RenderForm1099R(f *ledgerdocs.Form1099R) string {
	return renderTemplate("form1099r", "templates/form1099r.md", nil, f)
}

// RenderLetter renders a separation letter. The body template is selected
// by the letter's reason; the address block and signature are shared.
func RenderLetter(l *ledgerdocs.Letter) string {
	partials := map[string]string{
		"letter_head": "templates/letter_head.md",
		"letter_sign": "templates/letter_sign.md",
	}
	switch l.Reason {
	case ledgerdocs.ReasonResignation:
		partials["letter_body"] = "templates/letter_body_resignation.md"
	case ledgerdocs.ReasonDeath:
		partials["letter_body"] = "templates/letter_body_death.md"
	default:
		partials["letter_body"] = "templates/letter_body_separation.md"
	}
	return renderTemplate("letter", "templates/letter.md", partials, l)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
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
	return b.String()
}
