package render

import "github.com/charmbracelet/lipgloss"

// Theme 定义便笺界面的颜色和样式
// Theme defines scratchpad colors and styles
type Theme struct {
	// 基础色 / Base colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Danger    lipgloss.Color
	Success   lipgloss.Color
	Muted     lipgloss.Color
	Text      lipgloss.Color

	// 预构建样式 / Pre-built styles
	TitleStyle     lipgloss.Style
	BoxStyle       lipgloss.Style
	RuleStyle      lipgloss.Style
	RowOddStyle    lipgloss.Style
	RowEvenStyle   lipgloss.Style
	StatusStyle    lipgloss.Style
	HintStyle      lipgloss.Style
	SuccessStyle   lipgloss.Style
	ErrorStyle     lipgloss.Style
	MutedStyle     lipgloss.Style
	HighlightStyle lipgloss.Style
	PromptStyle    lipgloss.Style
}

// DarkTheme builds the default palette on r so styles follow that
// renderer's color profile.
func DarkTheme(r *lipgloss.Renderer) Theme {
	t := Theme{
		Primary:   lipgloss.Color("#3B82F6"),
		Secondary: lipgloss.Color("#06B6D4"),
		Accent:    lipgloss.Color("#F59E0B"),
		Danger:    lipgloss.Color("#EF4444"),
		Success:   lipgloss.Color("#10B981"),
		Muted:     lipgloss.Color("#6B7280"),
		Text:      lipgloss.Color("#E5E7EB"),
	}

	t.TitleStyle = r.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	t.BoxStyle = r.NewStyle().
		Foreground(t.Primary).
		Bold(true).
		Border(lipgloss.NormalBorder()).
		BorderForeground(t.Secondary).
		Align(lipgloss.Center).
		Width(ruleWidth - 2)

	t.RuleStyle = r.NewStyle().
		Foreground(t.Secondary)

	t.RowOddStyle = r.NewStyle().
		Foreground(t.Text)

	t.RowEvenStyle = r.NewStyle().
		Foreground(t.Secondary)

	t.StatusStyle = r.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	t.HintStyle = r.NewStyle().
		Foreground(t.Secondary).
		Faint(true)

	t.SuccessStyle = r.NewStyle().
		Foreground(t.Secondary)

	t.ErrorStyle = r.NewStyle().
		Foreground(t.Danger).
		Bold(true)

	t.MutedStyle = r.NewStyle().
		Foreground(t.Muted)

	t.HighlightStyle = r.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.PromptStyle = r.NewStyle().
		Foreground(t.Secondary).
		Bold(true)

	return t
}
