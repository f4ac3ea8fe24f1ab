package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	goalUC "github.com/careerpilot/careerpilot/internal/application/usecase/goal"
	"github.com/careerpilot/careerpilot/pkg/apperror"
	"github.com/careerpilot/careerpilot/pkg/logger"
)

type GoalHandler struct {
	goalUseCase *goalUC.GoalUseCase
	logger      logger.Logger
}

func NewGoalHandler(uc *goalUC.GoalUseCase, log logger.Logger) *GoalHandler {
	return &GoalHandler{
		goalUseCase: uc,
		logger:      log,
	}
}

func (h *GoalHandler) SaveGoals(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("Invalid authorization", "userID not found in context"))
		return
	}

	// The goal document is client-shaped; only reject bodies that are
	// not JSON objects at all.
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for goals", err))
		return
	}
	if len(fields) == 0 {
		c.Error(apperror.NewInvalidInput("goal body must not be empty", nil))
		return
	}

	input := goalUC.SaveGoalsInput{UserID: userID, Fields: fields}
	if err := h.goalUseCase.ExecuteSaveGoals(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *GoalHandler) GetGoals(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("Invalid authorization", "userID not found in context"))
		return
	}

	input := goalUC.GetGoalsInput{UserID: userID}
	output, err := h.goalUseCase.ExecuteGetGoals(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goals": output.Goals})
}
