package output

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/confrec/pkg/disposition"
	"github.com/arthur-debert/confrec/pkg/transaction"
)

// Renderer formats reconciliation results for the terminal
type Renderer struct {
	// Plan mode renders future tense ("would write") instead of past.
	Plan bool
}

// NewRenderer creates a renderer; set plan for dry-run phrasing
func NewRenderer(plan bool) *Renderer {
	return &Renderer{Plan: plan}
}

// verbs maps each action to its past and future tense description
var verbs = map[disposition.Action]struct {
	Past   string
	Future string
}{
	disposition.Keep:             {Past: "kept", Future: "would keep"},
	disposition.Write:            {Past: "written", Future: "would write"},
	disposition.BackupThenWrite:  {Past: "backed up, then written", Future: "would back up, then write"},
	disposition.WriteAside:       {Past: "new content written aside", Future: "would write new content aside"},
	disposition.Remove:           {Past: "removed", Future: "would remove"},
	disposition.BackupThenRemove: {Past: "backed up, then removed", Future: "would back up, then remove"},
}

// RenderResults renders one line per path plus any warnings
func (r *Renderer) RenderResults(results []transaction.Result) string {
	if len(results) == 0 {
		return MutedStyle.Render("No config paths to reconcile")
	}

	var sb strings.Builder
	for _, res := range results {
		if res.Err != nil {
			sb.WriteString(fmt.Sprintf("%s: %s\n",
				PathStyle.Render(res.Path),
				ErrorStyle.Render(res.Err.Error())))
			continue
		}

		verb := verbs[res.Outcome.Action]
		desc := verb.Past
		if r.Plan {
			desc = verb.Future
		}
		sb.WriteString(fmt.Sprintf("%s: %s\n", PathStyle.Render(res.Path), desc))

		if res.Warning != nil {
			sb.WriteString(WarningStyle.Render(res.Warning.String()) + "\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// Summary returns a one-line count of what happened
func (r *Renderer) Summary(results []transaction.Result) string {
	var changed, kept, failed int
	for _, res := range results {
		switch {
		case res.Err != nil:
			failed++
		case res.Outcome.Action == disposition.Keep:
			kept++
		default:
			changed++
		}
	}

	parts := []string{fmt.Sprintf("%d changed", changed), fmt.Sprintf("%d kept", kept)}
	if failed > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", failed))
	}
	return strings.Join(parts, ", ")
}
