package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt_FallsBackToGeneralApplications(t *testing.T) {
	pb := NewPromptBuilder()

	for _, role := range []string{"", "   "} {
		prompt := pb.BuildPrompt("My resume text", role)
		assert.Contains(t, prompt, "general job applications")
		assert.Contains(t, prompt, "My resume text")
	}
}

func TestBuildPrompt_UsesJobRole(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildPrompt("My resume text", "Data Scientist")

	assert.Contains(t, prompt, "Data Scientist")
	assert.NotContains(t, prompt, "general job applications")
}

func TestBuildPrompt_CoversAllDimensions(t *testing.T) {
	prompt := NewPromptBuilder().BuildPrompt("text", "Backend Engineer")

	for _, dimension := range []string{
		"Content clarity and impact",
		"Skills presentation",
		"Experience descriptions",
		"Specific improvements for Backend Engineer",
	} {
		assert.Contains(t, prompt, dimension)
	}
}

func TestBuildPrompt_IsDeterministicAndKeepsLongText(t *testing.T) {
	pb := NewPromptBuilder()
	long := strings.Repeat("Built distributed systems. ", 10000)

	first := pb.BuildPrompt(long, "SRE")
	second := pb.BuildPrompt(long, "SRE")

	assert.Equal(t, first, second)
	assert.Contains(t, first, long)
}
