package api

import (
	"net/http"
	"strconv"

	"github.com/Kauesamartino/WorksafeApp/internal"
	"github.com/Kauesamartino/WorksafeApp/internal/response"
	"github.com/gin-gonic/gin"
)

func HandleError(c *gin.Context, logger internal.Logger, err error, status int, msg string) {
	requestID := c.GetString("request_id")
	logger.Errorf("[request_id=%s] %s: %v", requestID, msg, err)
	var body *internal.AppError
	switch status {
	case http.StatusBadRequest:
		body = response.BadRequest(msg + ": " + err.Error())
	case http.StatusUnauthorized:
		body = response.Unauthorized(msg)
	case http.StatusNotFound:
		body = response.NotFound(msg)
	case http.StatusConflict:
		body = response.Conflict(msg)
	case http.StatusInternalServerError:
		body = response.InternalError(msg + ": " + err.Error())
	default:
		body = response.NewAppError(status, msg+": "+err.Error())
	}
	c.JSON(status, body)
}

func HandleSuccess(c *gin.Context, logger internal.Logger, status int, data interface{}) {
	requestID := c.GetString("request_id")
	logger.Infof("[request_id=%s] Success", requestID)
	if data == nil {
		c.Status(status)
		return
	}
	c.JSON(status, data)
}

func pathID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
