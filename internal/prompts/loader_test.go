package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	prompt, err := Get("generation.json", "interview_questions")
	require.NoError(t, err)
	assert.NotEmpty(t, prompt)
}

func TestGetUnknownKey(t *testing.T) {
	_, err := Get("generation.json", "nonexistent_key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetUnknownFile(t *testing.T) {
	_, err := Get("missing.json", "resume")
	assert.Error(t, err)
}

func TestMustGetPanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("generation.json", "nonexistent_key")
	})
}

func TestFormat(t *testing.T) {
	template := "Hello {{.Name}}, you are targeting {{.TargetRole}}."
	result := Format(template, map[string]string{
		"Name":       "Priya",
		"TargetRole": "Backend Engineer",
	})
	assert.Equal(t, "Hello Priya, you are targeting Backend Engineer.", result)
}

func TestFormatMissingKeyLeavesPlaceholder(t *testing.T) {
	template := "Hello {{.Name}}"
	result := Format(template, map[string]string{})
	assert.Equal(t, "Hello {{.Name}}", result)
}

func TestAllGenerationPromptsPresent(t *testing.T) {
	for _, key := range []string{"resume", "career_insights", "interview_questions", "weekly_insights"} {
		prompt, err := Get("generation.json", key)
		require.NoError(t, err, "prompt %s", key)
		assert.NotEmpty(t, prompt)
	}
}
