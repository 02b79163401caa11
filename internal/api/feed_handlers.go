package api

import (
	"net/http"

	"github.com/Kauesamartino/WorksafeApp/internal/auth"
	"github.com/gin-gonic/gin"
)

// Alerts and wearable readings are produced server side; clients only list them.

func GetAlerts(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		acc := auth.CurrentAccount(c)
		list, err := app.AlertRepo().ListAlerts(c.Request.Context(), acc.ID)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to fetch alerts")
			return
		}
		HandleSuccess(c, app.Logger(), http.StatusOK, list)
	}
}

func GetWearableData(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		acc := auth.CurrentAccount(c)
		list, err := app.WearableRepo().ListWearableReadings(c.Request.Context(), acc.ID)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to fetch wearable data")
			return
		}
		HandleSuccess(c, app.Logger(), http.StatusOK, list)
	}
}
