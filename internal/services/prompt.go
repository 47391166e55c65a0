package services

import (
	"fmt"
	"strings"
)

const (
	// SystemInstruction is sent as the system message of every critique request.
	SystemInstruction = "You are a helpful assistant that provides resume critiques."

	// DefaultJobRole stands in for the job role when the user leaves it blank.
	DefaultJobRole = "general job applications"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildPrompt creates the critique prompt. The resume text is embedded as is;
// callers that need a size limit apply it before calling.
func (pb *PromptBuilder) BuildPrompt(resumeText, jobRole string) string {
	role := strings.TrimSpace(jobRole)
	if role == "" {
		role = DefaultJobRole
	}

	return fmt.Sprintf(`Please analyze this resume and provide constructive feedback.
Focus on the following aspects:
1. Content clarity and impact
2. Skills presentation
3. Experience descriptions
4. Specific improvements for %s

Resume content:
%s

Please provide your analysis in a clear, structured format with specific recommendations.`,
		role, resumeText)
}
