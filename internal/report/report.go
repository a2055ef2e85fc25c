// Package report bundles every aggregation for one document and filter tuple
// and renders the bundle as terminal tables, JSON, or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/prlens/prlens/internal/aggregate"
	"github.com/prlens/prlens/internal/eventlog"
)

// Report is the full set of derived views for one document and filter tuple.
// It is plain data, freshly computed on every call and independently consumable.
type Report struct {
	Organization string                    `json:"organization" yaml:"organization"`
	Summary      aggregate.OrgSummary      `json:"summary" yaml:"summary"`
	Commenters   []aggregate.PersonTotal   `json:"commenters" yaml:"commenters"`
	Created      []aggregate.PersonCount   `json:"prsCreated" yaml:"prs_created"`
	Merged       []aggregate.PersonCount   `json:"prsMerged" yaml:"prs_merged"`
	Reviews      []aggregate.ReviewStats   `json:"reviews" yaml:"reviews"`
	Repos        []aggregate.RepoStatus    `json:"repos" yaml:"repos"`
	Timing       []aggregate.RepoTiming    `json:"timing" yaml:"timing"`
	Activity     []aggregate.ActivityPoint `json:"activity" yaml:"activity"`
}

// Compute runs every aggregation over the document with the same filter
// tuple. The calls are independent; order does not matter.
func Compute(doc *eventlog.Document, f aggregate.Filters) *Report {
	return &Report{
		Organization: doc.Organization,
		Summary:      aggregate.AverageStats(doc, f),
		Commenters:   aggregate.PersonTotals(doc, f),
		Created:      aggregate.PRsCreatedByPerson(doc, f),
		Merged:       aggregate.PRsMergedByPerson(doc, f),
		Reviews:      aggregate.ReviewStatsByPerson(doc, f),
		Repos:        aggregate.PRsByRepo(doc, f),
		Timing:       aggregate.RepoTimeStats(doc, f),
		Activity:     aggregate.ActivityOverTime(doc, f),
	}
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	err := enc.Encode(r)
	if err != nil {
		return fmt.Errorf("encode report json: %w", err)
	}

	return nil
}

// WriteYAML writes the report as YAML.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)

	err := enc.Encode(r)
	if err != nil {
		return fmt.Errorf("encode report yaml: %w", err)
	}

	return enc.Close()
}
