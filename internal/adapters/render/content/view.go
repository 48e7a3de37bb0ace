package content

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marketcrew/mc-cli/internal/domain"
)

type RenderOptions struct {
	BrandName string
	// Kind restricts output to a single artifact; zero renders every
	// artifact present in the set.
	Kind domain.ArtifactKind
}

func renderView(content domain.ContentSet, opts RenderOptions, s styles) string {
	title := "Generated Content"
	if strings.TrimSpace(opts.BrandName) != "" {
		title = fmt.Sprintf("Generated Content — %s", opts.BrandName)
	}

	lines := []string{
		s.title.Render(title),
		s.header.Render(fmt.Sprintf("artifacts: %d", len(content.Kinds()))),
	}

	if content.Empty() {
		lines = append(lines, s.empty.Render("No generated content available."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	kinds := content.Kinds()
	if opts.Kind != "" {
		kinds = []domain.ArtifactKind{opts.Kind}
	}

	for _, kind := range kinds {
		text, ok := content.Get(kind)
		if !ok {
			continue
		}
		lines = append(lines, s.section.Render(renderArtifact(kind, text, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderArtifact(kind domain.ArtifactKind, text string, s styles) string {
	parts := []string{
		s.artifact.Render(kind.Title()),
		formatText(text, s),
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// FormatBody styles an artifact body with the package's default styles. The
// studio view reuses it for its results pane.
func FormatBody(text string) string {
	return formatText(text, newStyles())
}

// formatText styles the backend's lightweight markup: "# " and "## "
// headings, "• "/"- " bullets and *emphasis* lines.
func formatText(text string, s styles) string {
	lines := strings.Split(text, "\n")
	rendered := make([]string, 0, len(lines))

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "# "):
			rendered = append(rendered, s.heading.Render(strings.TrimPrefix(line, "# ")))
		case strings.HasPrefix(line, "## "):
			rendered = append(rendered, s.subhead.Render(strings.TrimPrefix(line, "## ")))
		case strings.HasPrefix(line, "• "):
			rendered = append(rendered, s.bullet.Render("  • "+strings.TrimPrefix(line, "• ")))
		case strings.HasPrefix(line, "- "):
			rendered = append(rendered, s.bullet.Render("  • "+strings.TrimPrefix(line, "- ")))
		case len(line) > 1 && strings.HasPrefix(line, "*") && strings.HasSuffix(line, "*"):
			rendered = append(rendered, s.emphasis.Render(strings.Trim(line, "*")))
		default:
			rendered = append(rendered, s.body.Render(line))
		}
	}

	return strings.Join(rendered, "\n")
}
