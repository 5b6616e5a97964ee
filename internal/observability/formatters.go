// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jobsync/jobsync/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted CLI output
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

// PrintAnalysis outputs a human-readable summary of a resume analysis.
func (p *Printer) PrintAnalysis(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall:     %d/100  (%s)\n", result.OverallScore, types.InterpretOverallScore(result.OverallScore)))
	sb.WriteString(fmt.Sprintf("ATS:         %d/100\n", result.ATSScore))
	sb.WriteString(fmt.Sprintf("Keywords:    %d/100\n", result.KeywordScore))
	sb.WriteString(fmt.Sprintf("Experience:  %d/100\n", result.ExperienceScore))

	var missing []types.SkillGap
	for _, gap := range result.SkillGaps {
		if gap.Gap > 0 {
			missing = append(missing, gap)
		}
	}
	if len(missing) > 0 {
		sb.WriteString("\nSkill Gaps:\n")
		count := min(len(missing), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s (gap %d)\n", missing[i].Name, missing[i].Gap))
		}
		if len(missing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(missing)-maxItemsToShow))
		}
	}

	p.printBox("RESUME ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))

	if len(result.Recommendations) > 0 {
		var rb strings.Builder
		for i, rec := range result.Recommendations {
			if len(rec) > 50 {
				rec = rec[:47] + "..."
			}
			rb.WriteString(fmt.Sprintf("%d. %s", i+1, rec))
			if i < len(result.Recommendations)-1 {
				rb.WriteString("\n")
			}
		}
		p.printBox("RECOMMENDATIONS", rb.String())
	}
}

// PrintInterviewResult outputs the scored outcome of a practice interview.
func (p *Printer) PrintInterviewResult(result *types.InterviewResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Type:        %s\n", result.Type.Title()))
	sb.WriteString(fmt.Sprintf("Grade:       %s\n", result.Grade()))
	sb.WriteString(fmt.Sprintf("Overall:     %d/100\n", result.Scores.Overall))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Clarity:     %d/100\n", result.Scores.Clarity))
	sb.WriteString(fmt.Sprintf("Structure:   %d/100\n", result.Scores.Structure))
	sb.WriteString(fmt.Sprintf("Confidence:  %d/100\n", result.Scores.Confidence))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Answered:    %d/%d\n", result.AnsweredQuestions, result.TotalQuestions))
	sb.WriteString(fmt.Sprintf("Total time:  %s\n", types.FormatDuration(result.TotalTime)))
	sb.WriteString(fmt.Sprintf("Avg answer:  %s", types.FormatDuration(result.AverageResponseTime)))

	p.printBox("INTERVIEW RESULTS", sb.String())

	if len(result.Recommendations) > 0 {
		var rb strings.Builder
		for i, rec := range result.Recommendations {
			if len(rec) > 50 {
				rec = rec[:47] + "..."
			}
			rb.WriteString(fmt.Sprintf("%d. %s", i+1, rec))
			if i < len(result.Recommendations)-1 {
				rb.WriteString("\n")
			}
		}
		p.printBox("RECOMMENDATIONS", rb.String())
	}
}

// PrintTranscript outputs the question-by-question record of a session.
func (p *Printer) PrintTranscript(answers []types.Answer) {
	if len(answers) == 0 {
		return
	}

	var sb strings.Builder
	for i, answer := range answers {
		question := answer.Question
		if len(question) > 48 {
			question = question[:45] + "..."
		}
		sb.WriteString(fmt.Sprintf("Q%d: %s\n", answer.QuestionIndex+1, question))
		if answer.Status == types.AnswerSkipped {
			sb.WriteString("    (skipped)\n")
		} else {
			text := answer.Text
			if len(text) > 48 {
				text = text[:45] + "..."
			}
			sb.WriteString(fmt.Sprintf("    %s\n", text))
			sb.WriteString(fmt.Sprintf("    %d words in %s\n", answer.WordCount, types.FormatDuration(answer.ResponseTime)))
		}
		if i < len(answers)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("INTERVIEW TRANSCRIPT", strings.TrimSuffix(sb.String(), "\n"))
}
