package prompt

import (
	"strings"

	"gistmaker/internal/domain"
)

const (
	systemPrompt = "You are an expert at creating detailed, well-structured summaries. " +
		"Always organize your summaries into multiple paragraphs with clear, comprehensive content."

	textSeparator = "\n\nText to summarize:\n"
)

var styleInstructions = map[domain.Style]string{
	domain.StyleDetailed: "Please create a comprehensive summary of the following text organized into at least three paragraphs. " +
		"The first paragraph should introduce the main topic and key findings. " +
		"The second paragraph should explain the important details and supporting evidence. " +
		"The third paragraph should discuss the implications, conclusions, or significance of the information.",
	domain.StyleStructured: "Please summarize the following text in exactly three well-developed paragraphs: " +
		"1) Main points and key findings, 2) Supporting details and evidence, 3) Implications and conclusions.",
	domain.StyleComprehensive: "Create a thorough summary of the following text. " +
		"Organize your response into multiple paragraphs that cover: the main topic and central themes, " +
		"key details and supporting information, and the broader significance or implications. " +
		"Each paragraph should be substantive and informative.",
}

// Messages is a system/user pair ready for a chat completion call.
type Messages struct {
	System string
	User   string
}

// Styles returns the known styles in menu order.
func Styles() []domain.Style {
	return []domain.Style{
		domain.StyleDetailed,
		domain.StyleStructured,
		domain.StyleComprehensive,
	}
}

// Instruction returns the template for style, falling back to the detailed
// template for unknown styles.
func Instruction(style domain.Style) string {
	if instruction, ok := styleInstructions[style]; ok {
		return instruction
	}

	return styleInstructions[domain.StyleDetailed]
}

// SystemMessage returns the summarizer instruction, with an acknowledgement
// clause when source is not blank.
func SystemMessage(source string) string {
	source = strings.TrimSpace(source)
	if source == "" {
		return systemPrompt
	}

	return systemPrompt + " When referring to the content, acknowledge that it comes from " + source + "."
}

// BuildMessages never alters text.
func BuildMessages(text string, style domain.Style, source string) Messages {
	userPromptBuilder := strings.Builder{}
	instruction := Instruction(style)
	userPromptBuilder.Grow(len(instruction) + len(textSeparator) + len(text))
	userPromptBuilder.WriteString(instruction)
	userPromptBuilder.WriteString(textSeparator)
	userPromptBuilder.WriteString(text)

	return Messages{
		System: SystemMessage(source),
		User:   userPromptBuilder.String(),
	}
}
