package api

import (
	"github.com/Kauesamartino/WorksafeApp/internal/auth"
	"github.com/gin-gonic/gin"
)

// NewRouter mounts the WorkSafe endpoints under /api. Login and user
// registration are public; everything else needs a bearer token.
func NewRouter(app App) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestIDMiddleware(), RequestLogger(app.Logger()))

	v := r.Group("/api")
	v.POST("/auth/login", PostLogin(app))
	v.POST("/usuarios", PostUser(app))

	protected := v.Group("")
	protected.Use(auth.AuthMiddleware(app.Auth()))
	protected.GET("/usuarios/username/:username", GetUserByUsername(app))

	protected.GET("/autoavaliacoes", GetSelfAssessments(app))
	protected.POST("/autoavaliacoes", PostSelfAssessment(app))
	protected.PUT("/autoavaliacoes/:id", PutSelfAssessment(app))
	protected.DELETE("/autoavaliacoes/:id", DeleteSelfAssessment(app))

	protected.GET("/recomendacoes", GetRecommendations(app))
	protected.POST("/recomendacoes", PostRecommendation(app))
	protected.PUT("/recomendacoes/:id", PutRecommendation(app))
	protected.DELETE("/recomendacoes/:id", DeleteRecommendation(app))

	protected.GET("/alertas", GetAlerts(app))
	protected.GET("/wearable-data", GetWearableData(app))
	return r
}
