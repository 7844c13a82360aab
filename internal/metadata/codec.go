// Package metadata implements the bracket-tag grammar scheduled activities
// are stored in: "{title} [P{priority}] [{rule}] [criado:{date}]".
//
// The grammar exists only at the storage boundary. Grid entries are decoded
// into a typed Metadata record on read and re-encoded on write; nothing
// else in the system handles the raw tag syntax.
package metadata

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/semana-app/semana/internal/domain"
)

// Metadata is the decoded form of a schedule grid entry.
type Metadata struct {
	Title    string            `json:"title"`
	Priority domain.Priority   `json:"priority"`
	Rule     domain.Recurrence `json:"rule"`

	// CreationDate is zero when the entry carries no [criado:] tag,
	// which the recurrence evaluator treats as "always due".
	CreationDate domain.Date `json:"creation_date"`
}

var (
	priorityPattern = regexp.MustCompile(`\[[pP]([0-3])\]`)
	rulePattern     = regexp.MustCompile(`(?i)\[(unica|diaria|semanal|quinzenal|mensal)\]`)
	createdPattern  = regexp.MustCompile(`\[criado:(\d{4}-\d{2}-\d{2})\]`)
)

// Decode parses an encoded activity string. Absent tags fall back to the
// grammar defaults (priority 3, rule "semanal", no creation date); the text
// remaining after each found tag is stripped, trimmed of surrounding
// whitespace, is the title. Decode never fails: malformed tags simply stay
// in the title, and a well-formed criado tag holding an impossible date is
// dropped as if absent.
func Decode(text string) Metadata {
	meta := Metadata{
		Priority: domain.DefaultPriority,
		Rule:     domain.DefaultRecurrence,
	}

	rest := text

	if m := priorityPattern.FindStringSubmatch(rest); m != nil {
		meta.Priority = domain.Priority(m[1][0] - '0')
		rest = strings.Replace(rest, m[0], "", 1)
	}

	if m := rulePattern.FindStringSubmatch(rest); m != nil {
		meta.Rule = domain.Recurrence(strings.ToLower(m[1]))
		rest = strings.Replace(rest, m[0], "", 1)
	}

	if m := createdPattern.FindStringSubmatch(rest); m != nil {
		if d, err := domain.ParseDate(m[1]); err == nil {
			meta.CreationDate = d
		}
		rest = strings.Replace(rest, m[0], "", 1)
	}

	meta.Title = strings.TrimSpace(rest)
	return meta
}

// Encode renders a Metadata back into grid form.
//
// The criado clause is ALWAYS written: when the record has no creation date
// the caller-supplied today is used. That is deliberately asymmetric with
// Decode, which tolerates a missing clause; an entry round-trips through
// the grid at most one "undated" write before becoming dated.
//
// An out-of-range priority is written as the default 3 so the output always
// parses; priority 0 is a legitimate value (critical) and is kept as-is.
// An empty rule means "unset" and falls back to semanal.
func Encode(meta Metadata, today domain.Date) string {
	if meta.Priority < domain.PriorityCritical || meta.Priority > domain.PriorityLow {
		meta.Priority = domain.DefaultPriority
	}
	if meta.Rule == "" {
		meta.Rule = domain.DefaultRecurrence
	}

	date := meta.CreationDate
	if date.IsZero() {
		date = today
	}

	return fmt.Sprintf("%s [P%d] [%s] [criado:%s]", meta.Title, meta.Priority, meta.Rule, date)
}
