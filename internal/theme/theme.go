// Package theme renders WorkSafe data for the terminal with the app palette.
package theme

import (
	"fmt"
	"strings"

	"github.com/Kauesamartino/WorksafeApp/internal"
	"github.com/Kauesamartino/WorksafeApp/internal/aggregate"
	"github.com/charmbracelet/lipgloss"
)

var (
	Background    = lipgloss.Color("#F5F7FA")
	Surface       = lipgloss.Color("#FFFFFF")
	Primary       = lipgloss.Color("#2563EB")
	PrimaryDark   = lipgloss.Color("#1E3A8A")
	Accent        = lipgloss.Color("#10B981")
	Danger        = lipgloss.Color("#DC2626")
	Warning       = lipgloss.Color("#F59E0B")
	Text          = lipgloss.Color("#111827")
	TextSecondary = lipgloss.Color("#6B7280")
	Border        = lipgloss.Color("#E5E7EB")
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(PrimaryDark)
	Muted = lipgloss.NewStyle().Foreground(TextSecondary)
	Error = lipgloss.NewStyle().Bold(true).Foreground(Danger)

	badge = lipgloss.NewStyle().Bold(true).Foreground(Surface).Padding(0, 1)
	card  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Border).Padding(0, 1)
)

func SeverityColor(s internal.Severity) lipgloss.Color {
	switch s {
	case internal.SeverityHigh:
		return Danger
	case internal.SeverityMedium:
		return Warning
	}
	return Accent
}

func SeverityBadge(s internal.Severity) string {
	return badge.Background(SeverityColor(s)).Render(string(s))
}

func StressColor(l aggregate.StressLevel) lipgloss.Color {
	switch l {
	case aggregate.StressHigh:
		return Danger
	case aggregate.StressMedium:
		return Warning
	}
	return Accent
}

var stressLabels = map[aggregate.StressLevel]string{
	aggregate.StressHigh:   "Alto",
	aggregate.StressMedium: "Médio",
	aggregate.StressLow:    "Baixo",
}

func StressBadge(l aggregate.StressLevel) string {
	return badge.Background(StressColor(l)).Render("Estresse " + stressLabels[l])
}

var activityLabels = map[internal.ActivityType]string{
	internal.ActivityRest:      "Pausa",
	internal.ActivityExercise:  "Exercício",
	internal.ActivityPosture:   "Postura",
	internal.ActivityHydration: "Hidratação",
}

func ActivityLabel(a internal.ActivityType) string {
	if l, ok := activityLabels[a]; ok {
		return l
	}
	return string(a)
}

// MetricBadge is a bordered label/value pair.
func MetricBadge(label, value string, color lipgloss.Color) string {
	l := lipgloss.NewStyle().Bold(true).Foreground(color).Render(label)
	v := lipgloss.NewStyle().Bold(true).Foreground(Text).Render(value)
	return card.BorderForeground(color).Render(l + "\n" + v)
}

// EvolutionMark is ▲, ▼ or • for a score change.
func EvolutionMark(delta int) string {
	switch {
	case delta > 0:
		return lipgloss.NewStyle().Foreground(Accent).Render(fmt.Sprintf("▲ %+d", delta))
	case delta < 0:
		return lipgloss.NewStyle().Foreground(Danger).Render(fmt.Sprintf("▼ %d", delta))
	}
	return Muted.Render("•")
}

const barWidth = 20

// Bar draws avg on a 0 to 10 scale.
func Bar(avg aggregate.Average, color lipgloss.Color) string {
	filled := 0
	if avg.Valid {
		filled = int(avg.Value / 10 * barWidth)
		filled = max(0, min(barWidth, filled))
	}
	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(Border).Render(strings.Repeat("░", barWidth-filled))
}

var trendLabels = map[aggregate.Direction]string{
	aggregate.Up:     "Crescente",
	aggregate.Down:   "Decrescente",
	aggregate.Stable: "Estável",
}

func TrendLabel(d aggregate.Direction) string {
	return trendLabels[d]
}

func Card(body string) string {
	return card.Render(body)
}
