package prompt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gistmaker/internal/domain"
	"gistmaker/internal/prompt"
)

const sampleText = "  Scientists have discovered that regular exercise can improve brain function.  "

const wantSystemMessage = "You are an expert at creating detailed, well-structured summaries. " +
	"Always organize your summaries into multiple paragraphs with clear, comprehensive content."

func TestBuildMessagesUsesExactTemplates(t *testing.T) {
	cases := []struct {
		style       domain.Style
		instruction string
	}{
		{
			style: domain.StyleDetailed,
			instruction: "Please create a comprehensive summary of the following text organized into at least three paragraphs. " +
				"The first paragraph should introduce the main topic and key findings. " +
				"The second paragraph should explain the important details and supporting evidence. " +
				"The third paragraph should discuss the implications, conclusions, or significance of the information.",
		},
		{
			style: domain.StyleStructured,
			instruction: "Please summarize the following text in exactly three well-developed paragraphs: " +
				"1) Main points and key findings, 2) Supporting details and evidence, 3) Implications and conclusions.",
		},
		{
			style: domain.StyleComprehensive,
			instruction: "Create a thorough summary of the following text. " +
				"Organize your response into multiple paragraphs that cover: the main topic and central themes, " +
				"key details and supporting information, and the broader significance or implications. " +
				"Each paragraph should be substantive and informative.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.style.String(), func(t *testing.T) {
			assert.Equal(t, tc.instruction, prompt.Instruction(tc.style))

			msgs := prompt.BuildMessages(sampleText, tc.style, "")
			assert.Equal(t, wantSystemMessage, msgs.System)
			assert.Equal(t, tc.instruction+"\n\nText to summarize:\n"+sampleText, msgs.User)
		})
	}
}

func TestSystemMessageWithSourceIsExact(t *testing.T) {
	assert.Equal(t, wantSystemMessage, prompt.SystemMessage(""))
	assert.Equal(t, wantSystemMessage+
		" When referring to the content, acknowledge that it comes from Nature Journal, 2024.",
		prompt.SystemMessage("Nature Journal, 2024"))
}

func TestBuildMessagesStyleTemplatesAreDistinct(t *testing.T) {
	seen := make(map[string]domain.Style)
	for _, style := range prompt.Styles() {
		instruction := prompt.Instruction(style)
		require.NotEmpty(t, instruction)

		other, dup := seen[instruction]
		require.Falsef(t, dup, "styles %s and %s share a template", style, other)
		seen[instruction] = style
	}

	assert.Contains(t, prompt.Instruction(domain.StyleStructured), "exactly three well-developed paragraphs")
	assert.Contains(t, prompt.Instruction(domain.StyleDetailed), "at least three paragraphs")
	assert.Contains(t, prompt.Instruction(domain.StyleComprehensive), "Create a thorough summary")
}

func TestBuildMessagesUnknownStyleFallsBackToDetailed(t *testing.T) {
	detailed := prompt.BuildMessages(sampleText, domain.StyleDetailed, "")

	for _, raw := range []string{"", "bullet", "DETAILED!", "4"} {
		msgs := prompt.BuildMessages(sampleText, domain.Style(raw), "")
		assert.Equalf(t, detailed.User, msgs.User, "style %q", raw)
	}
}

func TestBuildMessagesSourceAcknowledgement(t *testing.T) {
	plain := prompt.BuildMessages(sampleText, domain.StyleDetailed, "")
	assert.NotContains(t, plain.System, "acknowledge")
	assert.True(t, strings.HasPrefix(plain.System, "You are an expert"))

	blank := prompt.BuildMessages(sampleText, domain.StyleDetailed, "   ")
	assert.Equal(t, plain.System, blank.System)

	sourced := prompt.BuildMessages(sampleText, domain.StyleDetailed, "Nature Journal, 2024")
	assert.True(t, strings.HasPrefix(sourced.System, plain.System))
	assert.Contains(t, sourced.System, "acknowledge that it comes from Nature Journal, 2024.")
	assert.Equal(t, plain.User, sourced.User)
}

func TestBuildMessagesIsDeterministic(t *testing.T) {
	a := prompt.BuildMessages(sampleText, domain.StyleComprehensive, "MIT")
	b := prompt.BuildMessages(sampleText, domain.StyleComprehensive, "MIT")
	assert.Equal(t, a, b)
}
