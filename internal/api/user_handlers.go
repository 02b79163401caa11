package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Kauesamartino/WorksafeApp/internal"
	"github.com/Kauesamartino/WorksafeApp/internal/auth"
	"github.com/Kauesamartino/WorksafeApp/internal/storage"
	"github.com/gin-gonic/gin"
)

func PostLogin(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body internal.LoginRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid JSON")
			return
		}
		if err := validate.Struct(&body); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Validation failed")
			return
		}

		resp, err := app.Auth().Login(c.Request.Context(), body.Username, body.Password)
		if errors.Is(err, auth.ErrInvalidCredentials) {
			HandleError(c, app.Logger(), err, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Login failed")
			return
		}
		HandleSuccess(c, app.Logger(), http.StatusOK, resp)
	}
}

func PostUser(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body internal.CreateUserRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid JSON")
			return
		}
		if err := validate.Struct(&body); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Validation failed")
			return
		}

		hash, err := auth.HashPassword(body.Credentials.Password)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to hash password")
			return
		}
		acc := &storage.Account{
			User: internal.User{
				Name:       strings.TrimSpace(body.FirstName + " " + body.LastName),
				Email:      body.Email,
				Role:       body.Role,
				Department: body.Department,
				CreatedAt:  internal.NewTimestamp(time.Now().UTC()),
			},
			Username:     body.Credentials.Username,
			PasswordHash: hash,
		}
		err = app.UserRepo().CreateAccount(c.Request.Context(), acc)
		if errors.Is(err, storage.ErrConflict) {
			HandleError(c, app.Logger(), err, http.StatusConflict, "Username already taken")
			return
		}
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to create user")
			return
		}
		HandleSuccess(c, app.Logger(), http.StatusCreated, acc.User)
	}
}

func GetUserByUsername(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		acc, err := app.UserRepo().GetAccountByUsername(c.Request.Context(), c.Param("username"))
		if errors.Is(err, storage.ErrNotFound) {
			HandleError(c, app.Logger(), err, http.StatusNotFound, "User not found")
			return
		}
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to fetch user")
			return
		}
		HandleSuccess(c, app.Logger(), http.StatusOK, acc.User)
	}
}
