// Package output renders snapshots and comparison reports for the CLI.
package output

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/svanherck/treesnap/pkg/models"
)

var (
	// AddedStyle marks paths present only in the current scan
	AddedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00"))

	// DeletedStyle marks paths present only in the baseline
	DeletedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))

	// ChangedStyle marks paths whose metadata differs
	ChangedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAA00"))

	// UnchangedStyle marks paths that match the baseline
	UnchangedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

	// HeaderStyle is the style for section headers
	HeaderStyle = lipgloss.NewStyle().Bold(true)

	// DimStyle is the style for secondary details
	DimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

// statusStyle returns the style for a change class
func statusStyle(status models.ChangeStatus) lipgloss.Style {
	switch status {
	case models.StatusAdded:
		return AddedStyle
	case models.StatusDeleted:
		return DeletedStyle
	case models.StatusChanged:
		return ChangedStyle
	default:
		return UnchangedStyle
	}
}
