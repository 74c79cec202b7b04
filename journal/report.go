package journal

import (
	"bytes"
	"fmt"
	"os"
	"text/template"
	"time"

	"github.com/shopspring/decimal"
)

// Report is the long-form org document written for a run.
type Report struct {
	Run       RunRecord
	MonthEnds []SnapshotRecord
	Notes     []string
}

var reportFuncs = template.FuncMap{
	"day":   func(t time.Time) string { return t.Format("2006-01-02") },
	"money": func(d decimal.Decimal) string { return d.StringFixed(2) },
	"orTime": func(t time.Time) time.Time {
		if t.IsZero() {
			return time.Now()
		}
		return t
	},
}

var reportTmpl = template.Must(template.New("report").Funcs(reportFuncs).Parse(ReportTemplate))

// Org renders the report.
func (r Report) Org() (string, error) {
	buf := new(bytes.Buffer)
	if err := reportTmpl.Execute(buf, r); err != nil {
		return "", fmt.Errorf("render report %s: %w", r.Run.RunID, err)
	}
	return buf.String(), nil
}

// WriteOrg renders the report to path.
func (r Report) WriteOrg(path string) error {
	s, err := r.Org()
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(s), 0o644)
}

const ReportTemplate = `* SIMULATION: {{if .Run.Name}}{{.Run.Name}}{{else}}(unnamed){{end}}
:PROPERTIES:
:RUN_ID:      {{if .Run.RunID}}{{.Run.RunID}}{{else}}(run-id?){{end}}
:START_DATE:  {{day .Run.Start}}
:END_DATE:    {{day .Run.End}}
:DAYS:        {{.Run.Days}}
:START_BAL:   {{money .Run.InitialBalance}}
:END_BAL:     {{money .Run.FinalBalance}}
:INTEREST:    {{money .Run.TotalInterest}}
:NET_PAY:     {{money .Run.NetPayments}}
:CREATED:     [{{(orTime .Run.Created).Format "2006-01-02 Mon 15:04"}}]
:END:

** Summary
- Final balance:    *{{money .Run.FinalBalance}}*
- Total interest:   *{{money .Run.TotalInterest}}*
- Net payments:     *{{money .Run.NetPayments}}*
{{if .MonthEnds}}
** Month Ends
| Date | Balance | Interest |
|------+---------+----------|
{{range .MonthEnds}}| {{day .Date}} | {{money .Balance}} | {{money .CumulativeInterest}} |
{{end}}{{end}}
** Notes
{{range .Notes}}- {{.}}
{{else}}- 
{{end}}`
