package phonetic

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// Fetcher fetches IPA transcriptions for looked-up words.
type Fetcher struct {
	apiKey string
	client *openai.Client
}

// NewFetcher creates a new phonetic information fetcher.
func NewFetcher(apiKey string) *Fetcher {
	return &Fetcher{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
	}
}

// Fetch returns the IPA transcription of word in the named language.
func (f *Fetcher) Fetch(ctx context.Context, word, languageName string) (string, error) {
	if f.apiKey == "" {
		return "", fmt.Errorf("OpenAI API key not configured")
	}
	if languageName == "" {
		languageName = "English"
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: openai.GPT4o,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: "You are a pronunciation expert helping language learners. " +
					"Answer with International Phonetic Alphabet (IPA) transcriptions only, " +
					"including stress marks, without commentary.",
			},
			{
				Role: openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Provide the IPA transcription for the %s word '%s', "+
					"enclosed in slashes, e.g. /trænˈskrɪpʃən/.", languageName, word),
			},
		},
		Temperature: 0.3,
		MaxTokens:   100,
	}

	resp, err := f.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
