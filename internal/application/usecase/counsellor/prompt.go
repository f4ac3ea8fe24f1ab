package counsellor

import (
	"fmt"
	"strings"

	"github.com/careerpilot/careerpilot/internal/domain/chat"
	"github.com/careerpilot/careerpilot/internal/domain/profile"
)

const placeholder = "Not specified"

// BuildPrompt composes the full prompt sent upstream: instruction
// template, profile block, recent-conversation block, then the new user
// message. Pure function; absent profile fields render as a placeholder.
func BuildPrompt(p *profile.Profile, recent []*chat.Message, message string) string {
	name := placeholder
	currentRole := placeholder
	experience := placeholder
	skills := placeholder
	industries := placeholder
	timeline := placeholder

	if p != nil {
		if p.Name != "" {
			name = p.Name
		}
		if p.CurrentRole != "" {
			currentRole = p.CurrentRole
		}
		if p.Experience != "" {
			experience = p.Experience
		}
		if len(p.Skills) > 0 {
			skills = strings.Join(p.Skills, ", ")
		}
		if len(p.Industries) > 0 {
			industries = strings.Join(p.Industries, ", ")
		}
		if p.Timeline != "" {
			timeline = p.Timeline
		}
	}

	var contextBuilder strings.Builder
	for _, msg := range recent {
		contextBuilder.WriteString(fmt.Sprintf("%s: %s\n", msg.Type, msg.Content))
	}

	var promptBuilder strings.Builder
	promptBuilder.WriteString(fmt.Sprintf("You are an AI Career Counsellor helping %s with their career development.\n\n", name))
	promptBuilder.WriteString("User Profile:\n")
	promptBuilder.WriteString(fmt.Sprintf("- Current Role: %s\n", currentRole))
	promptBuilder.WriteString(fmt.Sprintf("- Experience Level: %s\n", experience))
	promptBuilder.WriteString(fmt.Sprintf("- Skills: %s\n", skills))
	promptBuilder.WriteString(fmt.Sprintf("- Industries of Interest: %s\n", industries))
	promptBuilder.WriteString(fmt.Sprintf("- Career Timeline: %s\n", timeline))
	promptBuilder.WriteString("\nRecent conversation context:\n")
	promptBuilder.WriteString(contextBuilder.String())
	promptBuilder.WriteString("\nProvide personalized, actionable career advice. Be supportive, specific, and professional. Focus on practical next steps and skill development opportunities.")
	promptBuilder.WriteString("\n\nUser: ")
	promptBuilder.WriteString(message)

	return promptBuilder.String()
}
