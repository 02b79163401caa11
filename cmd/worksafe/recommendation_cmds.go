package main

import (
	"context"
	"fmt"
	"io"

	"github.com/Kauesamartino/WorksafeApp/internal"
	"github.com/Kauesamartino/WorksafeApp/internal/aggregate"
	"github.com/Kauesamartino/WorksafeApp/internal/screen"
	"github.com/Kauesamartino/WorksafeApp/internal/service"
	"github.com/Kauesamartino/WorksafeApp/internal/theme"
	"github.com/spf13/cobra"
)

// recommendationView is the filter applied when the list is rendered.
type recommendationView struct {
	status   string
	category string
}

func (v recommendationView) filter() (aggregate.RecommendationStatus, internal.ActivityType, error) {
	status := aggregate.RecommendationStatus(v.status)
	switch status {
	case aggregate.StatusAll, aggregate.StatusPending, aggregate.StatusConsumed:
	default:
		return "", "", fmt.Errorf("invalid status %q: use todos, pendentes or consumidos", v.status)
	}
	if v.category == "" {
		return status, "", nil
	}
	category, err := internal.ParseActivityType(v.category)
	if err != nil {
		return "", "", err
	}
	return status, category, nil
}

func newRecommendationsCmd(e *env) *cobra.Command {
	var view recommendationView
	cmd := &cobra.Command{
		Use:     "recommendations",
		Aliases: []string{"recomendacoes"},
		Short:   "List and manage recommendations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.requireSession(cmd.Context()); err != nil {
				return err
			}
			loader, err := recommendationLoader(e, view)
			if err != nil {
				return err
			}
			_, err = loader.Load(cmd.Context())
			return err
		},
	}
	cmd.Flags().StringVar(&view.status, "status", string(aggregate.StatusAll), "todos, pendentes or consumidos")
	cmd.Flags().StringVar(&view.category, "category", "", "Only this activity type")
	cmd.AddCommand(
		newRecommendationCreateCmd(e),
		newRecommendationConsumeCmd(e),
		newRecommendationDeleteCmd(e),
	)
	return cmd
}

func recommendationLoader(e *env, view recommendationView) (*screen.Loader[[]internal.Recommendation], error) {
	status, category, err := view.filter()
	if err != nil {
		return nil, err
	}
	return screen.NewLoader[[]internal.Recommendation]("recomendacoes", e.client.ListRecommendations,
		func(recs []internal.Recommendation, err error) {
			if err == nil {
				renderRecommendations(e.out, recs, status, category)
			}
		}, e.logger), nil
}

func renderRecommendations(w io.Writer, recs []internal.Recommendation, status aggregate.RecommendationStatus, category internal.ActivityType) {
	shown := aggregate.FilterRecommendations(recs, status, category)
	fmt.Fprintf(w, "%s  %s\n", theme.Title.Render("Recomendações"),
		theme.Muted.Render(fmt.Sprintf("%d pendentes de %d", len(aggregate.Pending(recs)), len(recs))))
	if len(shown) == 0 {
		fmt.Fprintln(w, theme.Muted.Render("Nenhuma recomendação encontrada"))
		return
	}
	for _, r := range shown {
		mark := "[ ]"
		if r.Consumed {
			mark = "[x]"
		}
		fmt.Fprintf(w, "%s #%-4d %-10s %s  %s\n", mark, r.ID, theme.ActivityLabel(r.ActivityType), r.Title, theme.Muted.Render(r.CreatedAt.String()))
		fmt.Fprintf(w, "          %s\n", theme.Muted.Render(r.Description))
	}
}

func newRecommendationCreateCmd(e *env) *cobra.Command {
	form := service.NewRecommendationForm()
	var activity string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a recommendation",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := e.requireSession(ctx); err != nil {
				return err
			}
			if cmd.Flags().Changed("tipo") {
				t, err := internal.ParseActivityType(activity)
				if err != nil {
					return internal.NewValidationError("tipoAtividade", err)
				}
				form.ActivityType = t
			}
			loader, err := recommendationLoader(e, recommendationView{status: string(aggregate.StatusAll)})
			if err != nil {
				return err
			}
			return loader.Mutate(ctx, func(ctx context.Context) error {
				_, err := service.SubmitRecommendation(ctx, e.client, 0, form)
				return err
			})
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&form.Title, "titulo", "", "Title")
	fl.StringVar(&form.Description, "descricao", "", "Description")
	fl.StringVar(&activity, "tipo", string(internal.ActivityRest), "PAUSA, EXERCICIO, POSTURA or HIDRATACAO")
	fl.StringVar(&form.CreatedAt, "data", form.CreatedAt, "Date, YYYY-MM-DD")
	return cmd
}

func newRecommendationConsumeCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "consume <id>",
		Short: "Toggle whether a recommendation was consumed",
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
			recs, err := e.client.ListRecommendations(ctx)
			if err != nil {
				return err
			}
			current, ok := findByID(recs, id, func(r internal.Recommendation) int64 { return r.ID })
			if !ok {
				return fmt.Errorf("recommendation %d: %w", id, internal.ErrNotFound)
			}
			loader, err := recommendationLoader(e, recommendationView{status: string(aggregate.StatusAll)})
			if err != nil {
				return err
			}
			return loader.Mutate(ctx, func(ctx context.Context) error {
				_, err := e.client.ToggleConsumed(ctx, current)
				return err
			})
		},
	}
}

func newRecommendationDeleteCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a recommendation",
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
			loader, err := recommendationLoader(e, recommendationView{status: string(aggregate.StatusAll)})
			if err != nil {
				return err
			}
			return loader.Mutate(ctx, func(ctx context.Context) error {
				return e.client.DeleteRecommendation(ctx, id)
			})
		},
	}
}
