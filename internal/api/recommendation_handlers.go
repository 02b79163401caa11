package api

import (
	"errors"
	"net/http"

	"github.com/Kauesamartino/WorksafeApp/internal"
	"github.com/Kauesamartino/WorksafeApp/internal/auth"
	"github.com/Kauesamartino/WorksafeApp/internal/storage"
	"github.com/gin-gonic/gin"
)

func GetRecommendations(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		acc := auth.CurrentAccount(c)
		list, err := app.RecommendationRepo().ListRecommendations(c.Request.Context(), acc.ID)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to fetch recommendations")
			return
		}
		HandleSuccess(c, app.Logger(), http.StatusOK, list)
	}
}

func PostRecommendation(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		acc := auth.CurrentAccount(c)

		var body internal.Recommendation
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid JSON")
			return
		}
		if err := validateRecommendation(&body); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Validation failed")
			return
		}

		body.ID = 0
		body.UserID = acc.ID
		if body.CreatedAt.IsZero() {
			body.CreatedAt = internal.Today()
		}
		if err := app.RecommendationRepo().CreateRecommendation(c.Request.Context(), &body); err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to save recommendation")
			return
		}
		HandleSuccess(c, app.Logger(), http.StatusCreated, body)
	}
}

func PutRecommendation(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		acc := auth.CurrentAccount(c)
		id, err := pathID(c)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid id")
			return
		}

		var patch internal.RecommendationPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid JSON")
			return
		}
		if err := validateRecommendationPatch(&patch); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Validation failed")
			return
		}

		updated, err := app.RecommendationRepo().UpdateRecommendation(c.Request.Context(), acc.ID, id, patch)
		if errors.Is(err, storage.ErrNotFound) {
			HandleError(c, app.Logger(), err, http.StatusNotFound, "Recommendation not found")
			return
		}
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to update recommendation")
			return
		}
		HandleSuccess(c, app.Logger(), http.StatusOK, updated)
	}
}

func DeleteRecommendation(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		acc := auth.CurrentAccount(c)
		id, err := pathID(c)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid id")
			return
		}
		err = app.RecommendationRepo().DeleteRecommendation(c.Request.Context(), acc.ID, id)
		if errors.Is(err, storage.ErrNotFound) {
			HandleError(c, app.Logger(), err, http.StatusNotFound, "Recommendation not found")
			return
		}
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to delete recommendation")
			return
		}
		HandleSuccess(c, app.Logger(), http.StatusNoContent, nil)
	}
}
