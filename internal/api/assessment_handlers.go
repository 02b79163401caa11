package api

import (
	"errors"
	"net/http"

	"github.com/Kauesamartino/WorksafeApp/internal"
	"github.com/Kauesamartino/WorksafeApp/internal/auth"
	"github.com/Kauesamartino/WorksafeApp/internal/storage"
	"github.com/gin-gonic/gin"
)

func GetSelfAssessments(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		acc := auth.CurrentAccount(c)
		list, err := app.AssessmentRepo().ListSelfAssessments(c.Request.Context(), acc.ID)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to fetch self-assessments")
			return
		}
		HandleSuccess(c, app.Logger(), http.StatusOK, list)
	}
}

func PostSelfAssessment(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		acc := auth.CurrentAccount(c)

		var body internal.SelfAssessment
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid JSON")
			return
		}
		if err := validateSelfAssessment(&body); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Validation failed")
			return
		}

		body.ID = 0
		body.UserID = acc.ID
		if err := app.AssessmentRepo().CreateSelfAssessment(c.Request.Context(), &body); err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to save self-assessment")
			return
		}
		HandleSuccess(c, app.Logger(), http.StatusCreated, body)
	}
}

func PutSelfAssessment(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		acc := auth.CurrentAccount(c)
		id, err := pathID(c)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid id")
			return
		}

		var patch internal.SelfAssessmentPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid JSON")
			return
		}
		if err := validate.Struct(&patch); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Validation failed")
			return
		}

		updated, err := app.AssessmentRepo().UpdateSelfAssessment(c.Request.Context(), acc.ID, id, patch)
		if errors.Is(err, storage.ErrNotFound) {
			HandleError(c, app.Logger(), err, http.StatusNotFound, "Self-assessment not found")
			return
		}
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to update self-assessment")
			return
		}
		HandleSuccess(c, app.Logger(), http.StatusOK, updated)
	}
}

func DeleteSelfAssessment(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		acc := auth.CurrentAccount(c)
		id, err := pathID(c)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid id")
			return
		}
		err = app.AssessmentRepo().DeleteSelfAssessment(c.Request.Context(), acc.ID, id)
		if errors.Is(err, storage.ErrNotFound) {
			HandleError(c, app.Logger(), err, http.StatusNotFound, "Self-assessment not found")
			return
		}
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to delete self-assessment")
			return
		}
		HandleSuccess(c, app.Logger(), http.StatusNoContent, nil)
	}
}
