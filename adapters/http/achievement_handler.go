package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	achievementUC "github.com/careerpilot/careerpilot/internal/application/usecase/achievement"
	"github.com/careerpilot/careerpilot/pkg/apperror"
	"github.com/careerpilot/careerpilot/pkg/logger"
)

type AchievementHandler struct {
	achievementUseCase *achievementUC.AchievementUseCase
	logger             logger.Logger
}

func NewAchievementHandler(uc *achievementUC.AchievementUseCase, log logger.Logger) *AchievementHandler {
	return &AchievementHandler{
		achievementUseCase: uc,
		logger:             log,
	}
}

func (h *AchievementHandler) RecordAchievement(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("Invalid authorization", "userID not found in context"))
		return
	}

	var req RecordAchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for achievement", err))
		return
	}

	input := achievementUC.RecordAchievementInput{
		UserID:        userID,
		AchievementID: req.AchievementID,
		Title:         req.Title,
		Description:   req.Description,
	}
	if err := h.achievementUseCase.ExecuteRecord(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AchievementHandler) ListAchievements(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("Invalid authorization", "userID not found in context"))
		return
	}

	input := achievementUC.ListAchievementsInput{UserID: userID}
	output, err := h.achievementUseCase.ExecuteList(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"achievements": ToAchievementDTOs(output.Achievements)})
}
