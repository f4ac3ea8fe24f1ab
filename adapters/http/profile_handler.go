package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	profileUC "github.com/careerpilot/careerpilot/internal/application/usecase/profile"
	"github.com/careerpilot/careerpilot/pkg/apperror"
	"github.com/careerpilot/careerpilot/pkg/logger"
)

type ProfileHandler struct {
	profileUseCase *profileUC.ProfileUseCase
	logger         logger.Logger
}

func NewProfileHandler(uc *profileUC.ProfileUseCase, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: uc,
		logger:         log,
	}
}

func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("Invalid authorization", "userID not found in context"))
		return
	}

	var req SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for profile save", err))
		return
	}

	input := profileUC.SaveProfileInput{
		UserID:      userID,
		Name:        req.Name,
		CurrentRole: req.CurrentRole,
		Experience:  req.Experience,
		Education:   req.Education,
		Skills:      req.Skills,
		Goals:       req.Goals,
		Industries:  req.Industries,
		Timeline:    req.Timeline,
	}
	output, err := h.profileUseCase.ExecuteSaveProfile(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "userId": output.UserID.String()})
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("Invalid authorization", "userID not found in context"))
		return
	}

	input := profileUC.GetProfileInput{UserID: userID}
	output, err := h.profileUseCase.ExecuteGetProfile(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": ToProfileDTO(output.Profile)})
}
