package cli

import (
	"context"
	"errors"
	"io/fs"
	"strings"

	"gistmaker/internal/domain"
	"gistmaker/internal/markdown"
)

const (
	testMaxTokens = 250
	fileMaxTokens = 300
)

const exerciseText = `Scientists have discovered that regular exercise can improve brain function in multiple ways. ` +
	`Exercise increases blood flow to the brain, promotes the growth of new brain cells, and enhances connections between neurons. ` +
	`Studies show that people who exercise regularly have better memory, improved focus, and reduced risk of cognitive decline. ` +
	`The research suggests that even moderate exercise like walking for 30 minutes daily can provide significant benefits for brain health. ` +
	`Additionally, exercise releases chemicals called endorphins that can improve mood and reduce stress levels. ` +
	`Recent longitudinal studies followed participants over 10 years and found that those who maintained regular physical activity ` +
	`showed 40% less cognitive decline compared to sedentary individuals. ` +
	`The mechanisms behind these benefits include increased production of brain-derived neurotrophic factor (BDNF), ` +
	`which supports neuron survival and growth. ` +
	`Furthermore, exercise appears to reduce inflammation in the brain and improve the efficiency of neural networks ` +
	`responsible for executive function and memory formation.`

const aiText = `Artificial intelligence has evolved dramatically over the past decade, ` +
	`transforming from experimental algorithms into practical tools that impact daily life. ` +
	`Machine learning models now power everything from recommendation systems to autonomous vehicles. ` +
	`The development of transformer architectures, particularly models like GPT and BERT, has revolutionized natural language processing. ` +
	`These models can understand context, generate human-like text, and perform complex reasoning tasks. ` +
	`However, challenges remain in areas such as bias mitigation, energy efficiency, and ensuring AI systems remain aligned with human values. ` +
	`The rapid advancement has led to both excitement and concern among researchers and policymakers. ` +
	`Companies are investing billions of dollars in AI research and development, while governments are working to establish regulatory frameworks. ` +
	`The potential applications span healthcare, education, transportation, and scientific research, ` +
	`but ethical considerations around privacy, job displacement, and algorithmic fairness continue to be debated. ` +
	`Looking forward, the integration of AI into society will require careful balance between innovation and responsible deployment.`

type testCase struct {
	title string
	text  string
	style domain.Style
}

var testCases = []testCase{
	{title: "Exercise and Brain Function", text: exerciseText, style: domain.StyleDetailed},
	{title: "AI Development", text: aiText, style: domain.StyleStructured},
}

func (a *App) runTests(ctx context.Context) {
	a.out.printf("=== %s Multi-Paragraph Summarization Tests ===\n\n", a.modelName)

	for i, tc := range testCases {
		styleTitle := markdown.TitleCase(tc.style.String())

		a.out.printf("TEST %d - %s (%s Summary):\n", i+1, tc.title, styleTitle)
		a.out.println("Original text:")
		a.out.println(tc.text)
		a.out.printf("\n%s Summary:\n", styleTitle)

		summary, err := a.summarizer.Summarize(ctx, domain.SummaryRequest{
			Text:      tc.text,
			Style:     tc.style,
			MaxTokens: testMaxTokens,
		})
		if err != nil {
			a.log.WarnContext(ctx, "Failed to summarize test case",
				"error", err,
				"test", i+1,
				"style", tc.style)
			a.out.printf("Error: %v\n", err)
		} else {
			a.out.println(summary)
		}

		if i < len(testCases)-1 {
			a.out.printf("\n%s\n\n", testRule)
		}
	}
}

func (a *App) runFile(ctx context.Context, inv Invocation) {
	content, err := a.readFile(inv.FilePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			a.out.printf("File not found: %s\n", inv.FilePath)

			return
		}

		a.log.WarnContext(ctx, "Failed to read input file",
			"error", err,
			"filePath", inv.FilePath)
		a.out.printf("Error: %v\n", err)

		return
	}

	style := domain.ParseStyle(inv.Style)
	source := strings.TrimSpace(inv.Source)

	a.out.printf("Summarizing file: %s\n", inv.FilePath)
	a.out.printf("Style: %s\n", style)
	if source != "" {
		a.out.printf("Source: %s\n", source)
	}
	if inv.Output != "" {
		a.out.printf("Output: %s\n", inv.Output)
	}
	a.out.println(fileRule)

	summary, err := a.summarizer.Summarize(ctx, domain.SummaryRequest{
		Text:      string(content),
		Style:     style,
		MaxTokens: fileMaxTokens,
		Source:    source,
	})
	if err != nil {
		a.log.WarnContext(ctx, "Failed to summarize file",
			"error", err,
			"filePath", inv.FilePath,
			"style", style,
			"contentLen", len(content))
		a.out.printf("Error: %v\n", err)

		return
	}

	a.out.println(summary)
	a.out.println(fileRule)

	if inv.Output == "" {
		return
	}

	meta := domain.DocumentMeta{
		OriginalFile: inv.FilePath,
		Source:       source,
		Style:        style.String(),
	}

	if err = a.documents.Save(inv.Output, summary, meta); err != nil {
		a.log.WarnContext(ctx, "Failed to save summary document",
			"error", err,
			"output", inv.Output)
		a.out.printf("Error saving to markdown: %v\n", err)
		a.out.printf("\n❌ Failed to save summary to: %s\n", inv.Output)

		return
	}

	a.out.printf("\n✅ Summary saved to: %s\n", inv.Output)
}
