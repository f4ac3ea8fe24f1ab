package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	skillUC "github.com/careerpilot/careerpilot/internal/application/usecase/skill"
	"github.com/careerpilot/careerpilot/pkg/apperror"
	"github.com/careerpilot/careerpilot/pkg/logger"
)

type SkillHandler struct {
	skillUseCase *skillUC.SkillUseCase
	logger       logger.Logger
}

func NewSkillHandler(uc *skillUC.SkillUseCase, log logger.Logger) *SkillHandler {
	return &SkillHandler{
		skillUseCase: uc,
		logger:       log,
	}
}

func (h *SkillHandler) UpsertSkill(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("Invalid authorization", "userID not found in context"))
		return
	}

	var req UpsertSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for skill update", err))
		return
	}

	input := skillUC.UpsertSkillInput{
		UserID:       userID,
		Name:         req.Skill,
		CurrentLevel: req.CurrentLevel,
		TargetLevel:  req.TargetLevel,
		Category:     req.Category,
	}
	if err := h.skillUseCase.ExecuteUpsertSkill(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *SkillHandler) ListSkills(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("Invalid authorization", "userID not found in context"))
		return
	}

	input := skillUC.ListSkillsInput{UserID: userID}
	output, err := h.skillUseCase.ExecuteListSkills(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"skills": ToSkillDTOs(output.Skills)})
}
