package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pathvana/pathvana/internal/preview"
	"github.com/pathvana/pathvana/internal/scanner"
)

var (
	// Colors and styles
	dirStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	fileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)

	fenceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))
)

// RenderCandidates renders a merged candidate list to a string
func RenderCandidates(candidates []scanner.Candidate) string {
	var b strings.Builder

	if len(candidates) == 0 {
		b.WriteString(emptyStyle.Render("no candidates"))
		b.WriteString("\n")
		return b.String()
	}

	for _, c := range candidates {
		label := fileStyle.Render(c.Label)
		kind := "file"
		if c.Kind == scanner.KindDirectory {
			label = dirStyle.Render(c.Label)
			kind = "dir"
		}
		b.WriteString(fmt.Sprintf("%s  %s\n", label, kindStyle.Render(kind)))
	}

	b.WriteString(countStyle.Render(fmt.Sprintf("%d candidate(s)", len(candidates))))
	b.WriteString("\n")
	return b.String()
}

// RenderPreview renders a file preview to a string
func RenderPreview(p *preview.Preview) string {
	if p == nil {
		return emptyStyle.Render("no preview") + "\n"
	}
	if p.Kind == preview.Markdown {
		return fenceStyle.Render(p.Text) + "\n"
	}
	return p.Text + "\n"
}
