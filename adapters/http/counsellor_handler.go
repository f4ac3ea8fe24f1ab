package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	counsellorUC "github.com/careerpilot/careerpilot/internal/application/usecase/counsellor"
	"github.com/careerpilot/careerpilot/pkg/apperror"
	"github.com/careerpilot/careerpilot/pkg/logger"
)

type CounsellorHandler struct {
	counsellorUseCase *counsellorUC.CounsellorUseCase
	logger            logger.Logger
}

func NewCounsellorHandler(uc *counsellorUC.CounsellorUseCase, log logger.Logger) *CounsellorHandler {
	return &CounsellorHandler{
		counsellorUseCase: uc,
		logger:            log,
	}
}

func (h *CounsellorHandler) AIChat(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("Invalid authorization", "userID not found in context"))
		return
	}

	var req AIChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("message is required", err))
		return
	}

	input := counsellorUC.ChatInput{
		UserID:  userID,
		Message: req.Message,
		Profile: req.UserData.ToDomainProfile(),
	}
	output, err := h.counsellorUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, AIChatResponse{
		Response:      output.Response,
		UserMessageID: output.UserMessageID,
		AIMessageID:   output.AIMessageID,
	})
}
