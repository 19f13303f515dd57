package openai

import (
	"context"
	"fmt"
	"strings"

	webrag "github.com/GH05TCREW/WebRAG"
	openai "github.com/sashabaranov/go-openai"
)

const systemPrompt = "You are a helpful assistant answering questions about web content the user has indexed. Answer based only on the context provided. If the answer is not in the context, say so."

// Ensure Answerer implements webrag.Answerer at compile time.
var _ webrag.Answerer = (*Answerer)(nil)

// Answerer generates answers with the OpenAI chat completions API,
// grounded in retrieved passages.
type Answerer struct {
	client      *openai.Client
	model       string
	temperature float64
}

// NewAnswerer creates an Answerer using the given client, chat model,
// and sampling temperature.
func NewAnswerer(client *openai.Client, model string, temperature float64) *Answerer {
	return &Answerer{client: client, model: model, temperature: temperature}
}

// Answer generates prose answering the question from the retrieved
// context.
func (a *Answerer) Answer(ctx context.Context, question string, results []webrag.RetrievalResult) (string, error) {
	if question == "" {
		return "", webrag.Errorf(webrag.EINVALID, "question required")
	}
	if len(results) == 0 {
		return "", webrag.Errorf(webrag.ENOTFOUND, "no relevant content found")
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Temperature: float32(a.temperature),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: BuildPrompt(results, question)},
		},
	})
	if err != nil {
		return "", mapError(err)
	}
	if len(resp.Choices) == 0 {
		return "", webrag.Errorf(webrag.EINTERNAL, "openai returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// BuildPrompt builds the user prompt containing the retrieved passages
// and the question.
func BuildPrompt(results []webrag.RetrievalResult, question string) string {
	var sb strings.Builder
	sb.WriteString("<context>\n")
	for i, res := range results {
		title := res.Title
		if title == "" {
			title = res.URL
		}
		sb.WriteString("<passage>\n")
		fmt.Fprintf(&sb, "<index>%d</index>\n", i+1)
		fmt.Fprintf(&sb, "<title>%s</title>\n", title)
		fmt.Fprintf(&sb, "<source>%s</source>\n", res.URL)
		fmt.Fprintf(&sb, "<content>%s</content>\n", res.Content)
		sb.WriteString("</passage>\n")
	}
	sb.WriteString("</context>\n\n")
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}
