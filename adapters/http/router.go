package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/careerpilot/careerpilot/internal/application/service"
	"github.com/careerpilot/careerpilot/pkg/logger"
)

type Handlers struct {
	Profile     *ProfileHandler
	Chat        *ChatHandler
	Skill       *SkillHandler
	Goal        *GoalHandler
	Achievement *AchievementHandler
	Auth        *AuthHandler
	Counsellor  *CounsellorHandler
}

// NewRouter builds the full route table. Signup and health are public;
// everything else sits behind the auth gate.
func NewRouter(log logger.Logger, provider service.IdentityProvider, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(CORSMiddleware())
	router.Use(ErrorMiddleware(log))

	authMiddleware := AuthMiddleware(provider, log)

	api := router.Group("/api/v1")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC().Format(time.RFC3339)})
		})
		api.POST("/signup", h.Auth.Signup)

		private := api.Group("/")
		private.Use(authMiddleware)
		{
			private.POST("/profile", h.Profile.SaveProfile)
			private.GET("/profile", h.Profile.GetProfile)

			private.POST("/chat", h.Chat.SaveMessage)
			private.GET("/chat/:userId", h.Chat.GetHistory)

			private.POST("/skills", h.Skill.UpsertSkill)
			private.GET("/skills", h.Skill.ListSkills)

			private.POST("/goals", h.Goal.SaveGoals)
			private.GET("/goals", h.Goal.GetGoals)

			private.POST("/achievements", h.Achievement.RecordAchievement)
			private.GET("/achievements", h.Achievement.ListAchievements)

			private.POST("/ai-chat", h.Counsellor.AIChat)
		}
	}

	return router
}
