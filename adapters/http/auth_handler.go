package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careerpilot/careerpilot/adapters/identity"
	signupUC "github.com/careerpilot/careerpilot/internal/application/usecase/signup"
	"github.com/careerpilot/careerpilot/pkg/apperror"
	"github.com/careerpilot/careerpilot/pkg/logger"
)

type AuthHandler struct {
	signupUseCase *signupUC.SignupUseCase
	logger        logger.Logger
}

func NewAuthHandler(uc *signupUC.SignupUseCase, log logger.Logger) *AuthHandler {
	return &AuthHandler{
		signupUseCase: uc,
		logger:        log,
	}
}

// Signup is the one endpoint where a provider-supplied error message is
// returned verbatim (duplicate email, weak password, ...).
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for signup", err))
		return
	}

	input := signupUC.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	}
	output, err := h.signupUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		var provErr *identity.ProviderError
		if errors.As(err, &provErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": provErr.Message})
			return
		}
		c.Error(apperror.NewUpstream("Failed to create user", "identity provider signup failed", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": output.User})
}
