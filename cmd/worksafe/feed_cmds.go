package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Kauesamartino/WorksafeApp/internal"
	"github.com/Kauesamartino/WorksafeApp/internal/aggregate"
	"github.com/Kauesamartino/WorksafeApp/internal/screen"
	"github.com/Kauesamartino/WorksafeApp/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const timestampLayout = "02/01/2006 15:04"

func newAlertsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "alerts",
		Aliases: []string{"alertas"},
		Short:   "List alerts, most severe first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.requireSession(cmd.Context()); err != nil {
				return err
			}
			loader := screen.NewLoader[[]internal.Alert]("alertas", e.client.ListAlerts,
				func(alerts []internal.Alert, err error) {
					if err == nil {
						renderAlerts(e.out, alerts)
					}
				}, e.logger)
			_, err := loader.Load(cmd.Context())
			return err
		},
	}
}

func renderAlerts(w io.Writer, alerts []internal.Alert) {
	if len(alerts) == 0 {
		fmt.Fprintln(w, theme.Muted.Render("Nenhum alerta"))
		return
	}
	fmt.Fprintln(w, theme.Title.Render("Alertas"))
	for _, a := range aggregate.SortBySeverity(alerts) {
		state := "aberto"
		if a.Resolved {
			state = "resolvido"
		}
		fmt.Fprintf(w, "%s %s  %s\n    %s\n", theme.SeverityBadge(a.Severity), a.Type,
			theme.Muted.Render(a.Timestamp.Format(timestampLayout)+" · "+state), a.Description)
	}
}

func newWearablesCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "wearables",
		Short: "Show wearable readings and their averages",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.requireSession(cmd.Context()); err != nil {
				return err
			}
			loader := screen.NewLoader[[]internal.WearableReading]("wearable-data", e.client.ListWearableReadings,
				func(readings []internal.WearableReading, err error) {
					if err == nil {
						renderWearables(e.out, readings)
					}
				}, e.logger)
			_, err := loader.Load(cmd.Context())
			return err
		},
	}
}

func renderWearables(w io.Writer, readings []internal.WearableReading) {
	if len(readings) == 0 {
		fmt.Fprintln(w, theme.Muted.Render("Nenhum dado de wearable"))
		return
	}
	stats := aggregate.SummarizeWearables(readings)
	fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top,
		theme.MetricBadge("BPM médio", stats.AvgHeartRate.String(), theme.Danger),
		theme.MetricBadge("Passos médios", stats.AvgSteps.String(), theme.Primary),
		theme.MetricBadge("Sono médio (h)", stats.AvgSleepHours.String(), theme.Accent),
		theme.MetricBadge("Atividade", theme.TrendLabel(stats.ActivityTrend), theme.Warning),
	))
	sorted := aggregate.SortByDateDescending(readings,
		func(r internal.WearableReading) time.Time { return r.Timestamp.Time },
		func(r internal.WearableReading) int64 { return r.ID })
	for _, r := range sorted {
		fmt.Fprintf(w, "%s  %5.0f bpm  %6d passos  %4.1f h  %s\n",
			r.Timestamp.Format(timestampLayout), r.AvgHeartRate, r.Steps, r.TotalSleepHours,
			theme.StressBadge(aggregate.StressLevelOf(r)))
	}
}

func newDashboardCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the wellness summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := e.requireSession(ctx); err != nil {
				return err
			}
			name := e.tokens.GetUsername(ctx)
			if user, err := e.client.UserInfo(ctx); err == nil {
				name = user.Name
			} else {
				e.logger.Warnf("dashboard: profile unavailable: %v", err)
			}
			loader := screen.NewDashboardLoader(e.client, func(s aggregate.Summary, err error) {
				if err == nil {
					renderDashboard(e.out, name, s)
				}
			}, e.logger)
			_, err := loader.Load(ctx)
			return err
		},
	}
}

var scoreLabels = []struct {
	score aggregate.Score
	label string
	color lipgloss.Color
}{
	{aggregate.ScoreMood, "Humor", theme.Primary},
	{aggregate.ScoreStress, "Estresse", theme.Danger},
	{aggregate.ScoreEnergy, "Energia", theme.Warning},
	{aggregate.ScoreSleepQuality, "Sono", theme.Accent},
}

func renderDashboard(w io.Writer, name string, s aggregate.Summary) {
	fmt.Fprintln(w, theme.Title.Render("Olá, "+name))

	var b strings.Builder
	for _, sl := range scoreLabels {
		avg := s.Averages[sl.score]
		line := fmt.Sprintf("%-9s %s %4s", sl.label, theme.Bar(avg, sl.color), avg)
		if delta, ok := s.Evolution[sl.score]; ok {
			line += "  " + theme.EvolutionMark(delta)
		}
		b.WriteString(line + "\n")
	}
	fmt.Fprint(w, theme.Card(strings.TrimSuffix(b.String(), "\n"))+"\n")

	fmt.Fprintf(w, "%s %d\n", theme.Title.Render("Recomendações pendentes:"), s.PendingCount)
	for _, r := range s.Pending {
		fmt.Fprintf(w, "  • %s %s\n", r.Title, theme.Muted.Render(theme.ActivityLabel(r.ActivityType)))
	}

	if s.LatestReading != nil {
		r := s.LatestReading
		fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top,
			theme.MetricBadge("BPM", fmt.Sprintf("%.0f", r.AvgHeartRate), theme.Danger),
			theme.MetricBadge("Passos", fmt.Sprintf("%d", r.Steps), theme.Primary),
			theme.MetricBadge("Sono (h)", fmt.Sprintf("%.1f", r.TotalSleepHours), theme.Accent),
		))
		fmt.Fprintln(w, theme.StressBadge(aggregate.StressLevelOf(*r)))
	}
}
