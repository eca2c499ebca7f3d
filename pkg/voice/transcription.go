package voice

import (
	"context"
	"errors"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// ITranscriber turns a recorded audio file into text via a remote
// speech-recognition service.
type ITranscriber interface {
	TranscribeAudio(ctx context.Context, filePath string) (string, error)
}

type transcriptionService struct {
	client   *openai.Client
	language string
}

func NewTranscriptionService() (ITranscriber, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" || strings.HasPrefix(apiKey, "Enter ") {
		return nil, errors.New("openai API key is not configured")
	}

	language := os.Getenv("SPEECH_LANGUAGE")
	if language == "" {
		language = "en"
	}

	return &transcriptionService{
		client:   openai.NewClient(apiKey),
		language: language,
	}, nil
}

func (t *transcriptionService) TranscribeAudio(ctx context.Context, filePath string) (string, error) {
	req := openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: filePath,
		Language: t.language,
	}

	resp, err := t.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", err
	}

	return resp.Text, nil
}
