package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/confrec/pkg/disposition"
	"github.com/arthur-debert/confrec/pkg/executor"
	"github.com/arthur-debert/confrec/pkg/transaction"
)

func init() {
	// Deterministic output in tests
	ConfigureColor("never")
}

func TestRenderResultsEmpty(t *testing.T) {
	r := NewRenderer(false)
	assert.Contains(t, r.RenderResults(nil), "No config paths")
}

func TestRenderResults(t *testing.T) {
	r := NewRenderer(false)
	results := []transaction.Result{
		{
			Path:    "/etc/app.conf",
			Outcome: disposition.Outcome{Action: disposition.BackupThenWrite, Suffix: disposition.SuffixSave},
			Warning: &executor.Warning{Path: "/etc/app.conf", Backup: "/etc/app.conf.rpmsave", Verb: "saved"},
		},
		{
			Path:    "/etc/other.conf",
			Outcome: disposition.Outcome{Action: disposition.Keep},
		},
	}

	got := r.RenderResults(results)
	assert.Contains(t, got, "backed up, then written")
	assert.Contains(t, got, "warning: /etc/app.conf saved as /etc/app.conf.rpmsave")
	assert.Contains(t, got, "kept")
}

func TestRenderResultsPlanTense(t *testing.T) {
	r := NewRenderer(true)
	results := []transaction.Result{
		{Path: "/etc/app.conf", Outcome: disposition.Outcome{Action: disposition.Write}},
	}

	got := r.RenderResults(results)
	assert.Contains(t, got, "would write")
	assert.False(t, strings.Contains(got, "written\n"))
}

func TestSummary(t *testing.T) {
	r := NewRenderer(false)
	results := []transaction.Result{
		{Outcome: disposition.Outcome{Action: disposition.Write}},
		{Outcome: disposition.Outcome{Action: disposition.Keep}},
		{Outcome: disposition.Outcome{Action: disposition.Keep}},
		{Err: assert.AnError},
	}

	assert.Equal(t, "1 changed, 2 kept, 1 failed", r.Summary(results))
}
