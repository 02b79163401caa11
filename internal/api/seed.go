package api

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Kauesamartino/WorksafeApp/internal"
	"github.com/Kauesamartino/WorksafeApp/internal/auth"
	"github.com/Kauesamartino/WorksafeApp/internal/storage"
)

const (
	DemoUsername = "demo"
	DemoPassword = "demo123"
)

// SeedDemo registers the demo account and gives it six days of history ending
// at now.
func SeedDemo(ctx context.Context, repo *storage.MemoryRepository, now time.Time) (*storage.Account, error) {
	hash, err := auth.HashPassword(DemoPassword)
	if err != nil {
		return nil, err
	}
	acc := &storage.Account{
		User: internal.User{
			Name:       "Usuário Demo",
			Email:      "demo@worksafe.app",
			Role:       "Analista",
			Department: "Tecnologia",
			CreatedAt:  internal.NewTimestamp(now.AddDate(0, -1, 0).UTC()),
		},
		Username:     DemoUsername,
		PasswordHash: hash,
	}
	if err := repo.CreateAccount(ctx, acc); err != nil {
		return nil, fmt.Errorf("seed account: %w", err)
	}

	day := func(back int) internal.Timestamp { return internal.NewTimestamp(now.AddDate(0, 0, -back)) }
	date := func(back int) internal.Date {
		t := day(back)
		return internal.NewDate(t.Year(), t.Month(), t.Day())
	}

	scores := [][4]int{{6, 5, 4, 6}, {5, 6, 5, 7}, {7, 4, 3, 5}, {4, 7, 6, 8}, {3, 8, 7, 8}, {4, 7, 6, 7}}
	comments := []string{
		"Semana corrida, muito trabalho acumulado.",
		"Consegui fazer uma pausa para alongamento.",
		"Reunião muito tensa, preciso de mais descanso.",
		"Dormi melhor, me sinto mais disposto.",
		"Ótimo dia! Consegui manter o foco e relaxar.",
		"Mantendo o equilíbrio, aplicando as dicas.",
	}
	for i, s := range scores {
		a := internal.SelfAssessment{
			UserID:       acc.ID,
			Date:         date(5 - i),
			StressLevel:  s[0],
			Mood:         s[1],
			Energy:       s[2],
			SleepQuality: s[3],
			Comments:     comments[i],
		}
		if err := repo.CreateSelfAssessment(ctx, &a); err != nil {
			return nil, err
		}
	}

	recs := []internal.Recommendation{
		{ActivityType: internal.ActivityRest, Title: "Micro pausa de 5 minutos", Description: "Levante-se e alongue braços e pescoço a cada hora.", CreatedAt: date(4), Consumed: true},
		{ActivityType: internal.ActivityExercise, Title: "Caminhada de 10 minutos", Description: "Faça uma caminhada leve para ativar a circulação.", CreatedAt: date(3), Consumed: true},
		{ActivityType: internal.ActivityPosture, Title: "Ajuste a postura", Description: "Verifique se suas costas estão apoiadas na cadeira.", CreatedAt: date(2)},
		{ActivityType: internal.ActivityHydration, Title: "Beba um copo de água", Description: "Mantenha-se hidratado para melhor concentração.", CreatedAt: date(1)},
		{ActivityType: internal.ActivityRest, Title: "Respiração profunda", Description: "Pratique 5 respirações profundas para reduzir o estresse.", CreatedAt: date(0)},
		{ActivityType: internal.ActivityExercise, Title: "Alongamento de ombros", Description: "Faça movimentos circulares com os ombros por 30 segundos.", CreatedAt: date(0)},
	}
	for i := range recs {
		recs[i].UserID = acc.ID
		if err := repo.CreateRecommendation(ctx, &recs[i]); err != nil {
			return nil, err
		}
	}

	alerts := []internal.Alert{
		{Type: internal.AlertSleep, Description: "Qualidade de sono abaixo da média semanal.", Severity: internal.SeverityMedium, Timestamp: day(4), Resolved: true},
		{Type: internal.AlertActivity, Description: "Número de passos muito baixo nos últimos 2 dias.", Severity: internal.SeverityLow, Timestamp: day(3)},
		{Type: internal.AlertHealth, Description: "Batimentos cardíacos elevados durante trabalho.", Severity: internal.SeverityHigh, Timestamp: day(2)},
		{Type: internal.AlertRisk, Description: "Mais de 6 horas sem pausa registrada.", Severity: internal.SeverityMedium, Timestamp: day(1)},
		{Type: internal.AlertSleep, Description: "Menos de 6 horas de sono na última noite.", Severity: internal.SeverityHigh, Timestamp: day(0)},
	}
	for _, a := range alerts {
		a.UserID = acc.ID
		repo.AddAlert(a)
	}

	readings := []struct {
		heart  float64
		steps  int
		sleep  float64
		stress float64
	}{
		{78, 2150, 6.1, 65}, {75, 3200, 6.8, 58}, {82, 1890, 5.5, 72},
		{71, 4100, 7.8, 45}, {68, 5200, 8.1, 38}, {72, 3450, 7.2, 42},
	}
	for i, r := range readings {
		raw, err := json.Marshal(map[string]any{"fonte": "Apple Watch", "stress_score": r.stress})
		if err != nil {
			return nil, err
		}
		stress := r.stress
		repo.AddWearableReading(internal.WearableReading{
			UserID:          acc.ID,
			Timestamp:       day(5 - i),
			AvgHeartRate:    r.heart,
			Steps:           r.steps,
			TotalSleepHours: r.sleep,
			DeviceData:      internal.DeviceData{StressScore: &stress, Raw: raw},
		})
	}
	return acc, nil
}
