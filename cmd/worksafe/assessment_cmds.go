package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/Kauesamartino/WorksafeApp/internal"
	"github.com/Kauesamartino/WorksafeApp/internal/aggregate"
	"github.com/Kauesamartino/WorksafeApp/internal/screen"
	"github.com/Kauesamartino/WorksafeApp/internal/service"
	"github.com/Kauesamartino/WorksafeApp/internal/theme"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newAssessmentsCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "assessments",
		Aliases: []string{"autoavaliacoes"},
		Short:   "List and manage self-assessments",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.requireSession(cmd.Context()); err != nil {
				return err
			}
			_, err := assessmentLoader(e).Load(cmd.Context())
			return err
		},
	}
	cmd.AddCommand(
		newAssessmentCreateCmd(e),
		newAssessmentUpdateCmd(e),
		newAssessmentDeleteCmd(e),
	)
	return cmd
}

func assessmentLoader(e *env) *screen.Loader[[]internal.SelfAssessment] {
	return screen.NewLoader[[]internal.SelfAssessment]("autoavaliacoes", e.client.ListSelfAssessments,
		func(list []internal.SelfAssessment, err error) {
			if err == nil {
				renderAssessments(e.out, list)
			}
		}, e.logger)
}

func renderAssessments(w io.Writer, list []internal.SelfAssessment) {
	if len(list) == 0 {
		fmt.Fprintln(w, theme.Muted.Render("Nenhuma autoavaliação registrada"))
		return
	}
	fmt.Fprintln(w, theme.Title.Render("Autoavaliações"))
	for _, a := range aggregate.SortAssessments(list) {
		fmt.Fprintf(w, "#%-4d %s  humor %2d  estresse %2d  energia %2d  sono %2d  %s\n",
			a.ID, a.Date, a.Mood, a.StressLevel, a.Energy, a.SleepQuality, theme.Muted.Render(a.Comments))
	}
}

// scoreFlags binds the raw score inputs; they are parsed only when set so an
// edit keeps the values it did not touch.
type scoreFlags struct {
	stress, mood, energy, sleep string
	date, comments              string
}

func (s *scoreFlags) bind(fl *pflag.FlagSet) {
	fl.StringVar(&s.stress, "estresse", "5", "Stress level, 0 to 10")
	fl.StringVar(&s.mood, "humor", "5", "Mood, 0 to 10")
	fl.StringVar(&s.energy, "energia", "5", "Energy, 0 to 10")
	fl.StringVar(&s.sleep, "sono", "5", "Sleep quality, 0 to 10")
	fl.StringVar(&s.date, "data", internal.Today().String(), "Date, YYYY-MM-DD")
	fl.StringVar(&s.comments, "comentarios", "", "Comments")
}

func (s *scoreFlags) apply(fl *pflag.FlagSet, f *service.SelfAssessmentForm) error {
	scores := []struct {
		flag, field string
		raw         string
		dst         *float64
	}{
		{"estresse", "estresse", s.stress, &f.StressLevel},
		{"humor", "humor", s.mood, &f.Mood},
		{"energia", "energia", s.energy, &f.Energy},
		{"sono", "qualidadeSono", s.sleep, &f.SleepQuality},
	}
	for _, sc := range scores {
		if !fl.Changed(sc.flag) {
			continue
		}
		v, err := service.ParseScore(sc.field, sc.raw)
		if err != nil {
			return err
		}
		*sc.dst = v
	}
	if fl.Changed("data") {
		f.Date = s.date
	}
	if fl.Changed("comentarios") {
		f.Comments = s.comments
	}
	return nil
}

func newAssessmentCreateCmd(e *env) *cobra.Command {
	var flags scoreFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Record a self-assessment",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := e.requireSession(ctx); err != nil {
				return err
			}
			form := service.NewSelfAssessmentForm()
			if err := flags.apply(cmd.Flags(), &form); err != nil {
				return err
			}
			return assessmentLoader(e).Mutate(ctx, func(ctx context.Context) error {
				_, err := service.SubmitSelfAssessment(ctx, e.client, 0, form)
				return err
			})
		},
	}
	flags.bind(cmd.Flags())
	return cmd
}

func newAssessmentUpdateCmd(e *env) *cobra.Command {
	var flags scoreFlags
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a self-assessment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := e.requireSession(ctx); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			list, err := e.client.ListSelfAssessments(ctx)
			if err != nil {
				return err
			}
			current, ok := findByID(list, id, func(a internal.SelfAssessment) int64 { return a.ID })
			if !ok {
				return fmt.Errorf("self-assessment %d: %w", id, internal.ErrNotFound)
			}
			form := service.FormFromSelfAssessment(current)
			if err := flags.apply(cmd.Flags(), &form); err != nil {
				return err
			}
			return assessmentLoader(e).Mutate(ctx, func(ctx context.Context) error {
				_, err := service.SubmitSelfAssessment(ctx, e.client, id, form)
				return err
			})
		},
	}
	flags.bind(cmd.Flags())
	return cmd
}

func newAssessmentDeleteCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a self-assessment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := e.requireSession(ctx); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return assessmentLoader(e).Mutate(ctx, func(ctx context.Context) error {
				return e.client.DeleteSelfAssessment(ctx, id)
			})
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func findByID[T any](list []T, id int64, idOf func(T) int64) (T, bool) {
	for _, v := range list {
		if idOf(v) == id {
			return v, true
		}
	}
	var zero T
	return zero, false
}
