package groq

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const defaultBaseURL = "https://api.groq.com/openai/v1"

// Extraction prompt for the vision model. "no text" is the model's defined
// answer for an image without any readable text and is a valid result.
const extractionPrompt = "Analyze the image and extract all text. " +
	"I don't need a description of the image, only extract the text from the image. " +
	"If no text is detected, print 'no text'. " +
	"If it contains dates, numbers, or addresses, extract them with proper context."

type IGroq interface {
	ExtractText(ctx context.Context, imageData []byte) (string, error)
}

type groqClient struct {
	client *openai.Client
	model  string
}

func NewGroqClient() (IGroq, error) {
	apiKey := os.Getenv("GROQ_API_KEY")
	if apiKey == "" || strings.HasPrefix(apiKey, "Enter ") {
		return nil, errors.New("groq API key is not configured")
	}

	model := os.Getenv("GROQ_MODEL_NAME")
	if model == "" {
		model = "llama-3.2-11b-vision-preview"
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = defaultBaseURL

	return &groqClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}, nil
}

func (g *groqClient) ExtractText(ctx context.Context, imageData []byte) (string, error) {
	if len(imageData) == 0 {
		return "", errors.New("empty image data")
	}

	encoded := base64.StdEncoding.EncodeToString(imageData)

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: extractionPrompt,
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL: "data:image/jpeg;base64," + encoded,
						},
					},
				},
			},
		},
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no choices in Groq response")
	}

	return resp.Choices[0].Message.Content, nil
}
