package tui

import "github.com/charmbracelet/lipgloss"

// Color constants for the aula palette.
const (
	primaryColor   = "#2563EB" // Blue
	secondaryColor = "#10B981" // Green
	warningColor   = "#F59E0B" // Amber
	errorColor     = "#EF4444" // Red
	dimColor       = "#6B7280" // Gray
)

// Style variables for consistent TUI rendering.
var (
	// BoxStyle provides a rounded border box with primary color.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(primaryColor)).
			Padding(1, 2)

	// TitleStyle renders titles in primary color with bold.
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(primaryColor)).
			Bold(true)

	// SelectedStyle highlights the focused item.
	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(primaryColor)).
			Bold(true)

	// DimStyle renders dim/muted text.
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(dimColor))

	// SuccessStyle renders success messages in green.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(secondaryColor))

	// ErrorStyle renders error messages in red.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(errorColor))

	// WarningStyle renders warning messages in amber.
	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(warningColor))

	// SidebarStyle frames the dashboard side navigation.
	SidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(lipgloss.Color(dimColor)).
			Padding(1, 2).
			Width(22)

	// SidebarActiveStyle highlights the active sidebar entry.
	SidebarActiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(lipgloss.Color(primaryColor)).
				Padding(0, 1)

	// SidebarEntryStyle renders inactive sidebar entries.
	SidebarEntryStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(dimColor)).
				Padding(0, 1)

	// ContentStyle pads the dashboard content slot.
	ContentStyle = lipgloss.NewStyle().
			Padding(1, 2)
)

// Row status icons for listings.
var (
	// IconActive marks an active account or activity.
	IconActive = SuccessStyle.Render("●")

	// IconInactive marks an inactive or archived row.
	IconInactive = DimStyle.Render("○")

	// IconPicked marks a selected question in the picker.
	IconPicked = SuccessStyle.Render("✓")
)
