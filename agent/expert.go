package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Expert represent a chat with a business expert.
type Expert struct {
	Name        string                       `json:"name"`
	Description string                       `json:"description"`
	ModelName   string                       `json:"model_name"`
	Config      *genai.GenerateContentConfig `json:"config"`
	chat        *genai.Chat
}

// Start creates the underlying chat session.
func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return err
	}
	e.chat = chat
	return nil
}

// Ask is a simple wrapper on top of Chat.Send to make it simpler for callers.
func (e *Expert) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	resp, err := e.chat.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from expert %s", e.Name)
	}
	return resp.Candidates[0].Content, nil
}

// NewAnalyst creates the gambling analyst expert, seeded with the user's
// win/loss report so it can answer questions about the figures.
func NewAnalyst(report string) *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is the gambling analyst. It knows the user's
		win/loss report and can explain every figure in it.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a financial analyst specialized in gambling activity.
			The user reconciled their crypto deposits and withdrawals against
			historical USD exchange rates; their full report is below.

			Answer questions about the report: where a figure comes from, what
			the averages mean, how the net result relates to the totals.
			Be factual and concise; when a question cannot be answered from
			the report, say so rather than guessing.

			The report:

			` + report}}},
		},
	}
}
