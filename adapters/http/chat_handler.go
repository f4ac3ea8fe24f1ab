package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	chatUC "github.com/careerpilot/careerpilot/internal/application/usecase/chat"
	"github.com/careerpilot/careerpilot/internal/domain/chat"
	"github.com/careerpilot/careerpilot/pkg/apperror"
	"github.com/careerpilot/careerpilot/pkg/logger"
)

type ChatHandler struct {
	chatUseCase *chatUC.ChatUseCase
	logger      logger.Logger
}

func NewChatHandler(uc *chatUC.ChatUseCase, log logger.Logger) *ChatHandler {
	return &ChatHandler{
		chatUseCase: uc,
		logger:      log,
	}
}

func (h *ChatHandler) SaveMessage(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("Invalid authorization", "userID not found in context"))
		return
	}

	var req SaveChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for chat message", err))
		return
	}

	input := chatUC.SaveMessageInput{
		UserID:  userID,
		Type:    chat.MessageType(req.Type),
		Content: req.Message,
	}
	output, err := h.chatUseCase.ExecuteSaveMessage(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "messageId": output.MessageID})
}

// GetHistory keeps the /chat/:userId route shape for client
// compatibility, but the path param is ignored: history is always the
// authenticated user's.
func (h *ChatHandler) GetHistory(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("Invalid authorization", "userID not found in context"))
		return
	}

	input := chatUC.ListHistoryInput{UserID: userID}
	output, err := h.chatUseCase.ExecuteListHistory(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": ToChatMessageDTOs(output.Messages)})
}
