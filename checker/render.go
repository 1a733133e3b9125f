package checker

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MethodDisplay renders an HTTP method name the way findings report it,
// uppercased per English casing rules. A cases.Caser is not safe for
// concurrent use, so one is built per call.
func MethodDisplay(method string) string {
	return cases.Upper(language.English).String(method)
}

// String returns a formatted string representation of the finding.
func (f Finding) String() string {
	var symbol string
	switch f.Severity {
	case SeverityError:
		symbol = "✗"
	case SeverityWarning:
		symbol = "⚠"
	case SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "·"
	}

	subject := f.TypeName
	if subject == "" {
		subject = fmt.Sprintf("%s %s", MethodDisplay(f.Method), f.Path)
	}
	if f.Field != "" {
		subject += "." + f.Field
	}

	return fmt.Sprintf("%s [%s] %s: %s", symbol, f.Check, subject, f.Message)
}

// Summary returns a one-line compatibility verdict for the result.
func (r *Result) Summary() string {
	if r.Compatible {
		return fmt.Sprintf("compatible: %d routes and %d types checked, no mismatches",
			r.RoutesChecked, r.TypesChecked)
	}
	return fmt.Sprintf("incompatible: %d mismatches across %d routes and %d types checked",
		r.MismatchCount, r.RoutesChecked, r.TypesChecked)
}

// Render returns the full human-readable report: one line per finding
// followed by the summary line.
func (r *Result) Render() string {
	var b strings.Builder
	for _, f := range r.Findings {
		b.WriteString(f.String())
		b.WriteByte('\n')
	}
	b.WriteString(r.Summary())
	b.WriteByte('\n')
	return b.String()
}
