/**
* Name: 			auth_handler.go
* Description: 		Login with the shared reviewer password.
* Workflow: 		password check -> JWT issue
 */
package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/jorge-ea-campos/aplicativo-requerimentosII/internal/auth"
)

// LoginRequest is the /login body. The tool has one shared password for the
// whole section office; there are no user accounts.
type LoginRequest struct {
	Password string `json:"password" example:"senha_mestra"`
}

type LoginSuccessResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}
type ErrorResponse struct {
	Error string `json:"error" example:"error cause and description"`
}

// Login godoc
// @Summary      Reviewer login
// @Description  Validates the shared master password and issues a JWT for the /api group.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body handler.LoginRequest true "Login request"
// @Success      200 {object} handler.LoginSuccessResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      401 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse "Master password not configured"
// @Router       /login [post]
func Login(c *gin.Context) {
	var credentials LoginRequest

	rawData, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if err := json.Unmarshal(rawData, &credentials); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if !checkMasterPassword(c, credentials.Password) {
		return
	}

	tokenString, err := auth.GenerateToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": tokenString})
}

// checkMasterPassword compares against MASTER_PASSWORD_HASH (bcrypt) when
// set, otherwise against MASTER_PASSWORD as plain equality. Writes the error
// response itself and reports whether the check passed.
func checkMasterPassword(c *gin.Context, password string) bool {
	if hash := os.Getenv("MASTER_PASSWORD_HASH"); hash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Senha incorreta."})
			return false
		}
		return true
	}

	master := os.Getenv("MASTER_PASSWORD")
	if master == "" {
		log.Println("[ERROR] Login: neither MASTER_PASSWORD nor MASTER_PASSWORD_HASH is configured")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Aplicação não configurada. Contate o administrador."})
		return false
	}
	if password != master {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Senha incorreta."})
		return false
	}
	return true
}
