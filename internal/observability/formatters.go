// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/interview-coach/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintParsedResume outputs a human-readable summary of the parsed resume.
func (p *Printer) PrintParsedResume(resume *types.ParsedResume) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:   %s\n", resume.Headline.Name))
	sb.WriteString(fmt.Sprintf("Title:  %s\n", resume.Headline.Title))
	sb.WriteString("\n")

	if len(resume.WorkExperience) > 0 {
		sb.WriteString(fmt.Sprintf("Work Experience (%d roles):\n", len(resume.WorkExperience)))
		count := min(len(resume.WorkExperience), maxItemsToShow)
		for i := 0; i < count; i++ {
			role := resume.WorkExperience[i]
			sb.WriteString(fmt.Sprintf("  • %s @ %s", role.RoleTitle, role.Company))
			if role.DateRange != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", role.DateRange))
			}
			sb.WriteString("\n")
			sb.WriteString(fmt.Sprintf("    %d accomplishments, %d quantified\n",
				len(role.Accomplishments), len(role.QuantifiedOutcomes)))
		}
		if len(resume.WorkExperience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.WorkExperience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(resume.Skills.All) > 0 {
		skills := strings.Join(resume.Skills.All, ", ")
		if len(skills) > 45 {
			skills = skills[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Skills:  %s\n", skills))
	}

	if resume.Education.Degree != "" {
		sb.WriteString(fmt.Sprintf("Degree:  %s\n", resume.Education.Degree))
		if resume.Education.IsStandout {
			sb.WriteString(fmt.Sprintf("         ★ %s\n", strings.Join(resume.Education.StandoutReason, "; ")))
		}
	}

	if len(resume.Achievements) > 0 {
		sb.WriteString(fmt.Sprintf("Achievements: %d\n", len(resume.Achievements)))
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResults outputs ranked match results with similarity scores.
func (p *Printer) PrintMatchResults(title string, results []types.MatchResult) {
	if len(results) == 0 {
		p.printBox(title, "No matches above the similarity threshold.")
		return
	}

	var sb strings.Builder
	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		result := results[i]
		text := result.Accomplishment
		if len(text) > 50 {
			text = text[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  [%.2f] %s @ %s\n", i+1, result.Similarity, result.RoleTitle, result.Company))
		sb.WriteString(fmt.Sprintf("    %s\n", text))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more matches", len(results)-maxItemsToShow))
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintClusters outputs theme clusters with their members. Clusters are
// printed in label order so output is stable.
func (p *Printer) PrintClusters(clusters map[string][]types.ClusterMember) {
	if len(clusters) == 0 {
		p.printBox("THEME CLUSTERS", "No clusters (no embedded accomplishments).")
		return
	}

	labels := make([]string, 0, len(clusters))
	for label := range clusters {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	var sb strings.Builder
	for li, label := range labels {
		members := clusters[label]
		sb.WriteString(fmt.Sprintf("%s (%d):\n", label, len(members)))

		count := min(len(members), 3)
		for i := 0; i < count; i++ {
			text := members[i].Text
			if len(text) > 48 {
				text = text[:45] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", text))
		}
		if len(members) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(members)-3))
		}
		if li < len(labels)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("THEME CLUSTERS", strings.TrimSuffix(sb.String(), "\n"))
}
