package gemini

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
)

type IGemini interface {
	AnalyzeImage(ctx context.Context, imageData []byte, prompt string) (string, error)
	GenerateText(ctx context.Context, prompt string) (string, error)
	EmbedText(ctx context.Context, text string) ([]float32, error)
	Close() error
}

type geminiClient struct {
	modelName      string
	embeddingModel string
	client         *genai.Client
	limiter        *rate.Limiter
}

func NewGeminiClient() (IGemini, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" || strings.HasPrefix(apiKey, "Enter ") {
		return nil, errors.New("gemini API key is not configured")
	}

	modelName := os.Getenv("GEMINI_MODEL_NAME")
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	embeddingModel := os.Getenv("GEMINI_EMBEDDING_MODEL")
	if embeddingModel == "" {
		embeddingModel = "embedding-001"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &geminiClient{
		modelName:      modelName,
		embeddingModel: embeddingModel,
		client:         client,
		// free-tier quota headroom
		limiter: rate.NewLimiter(rate.Limit(1), 2),
	}, nil
}

func (g *geminiClient) AnalyzeImage(ctx context.Context, imageData []byte, prompt string) (string, error) {
	if len(imageData) == 0 {
		return "", errors.New("empty image data")
	}
	if prompt == "" {
		return "", errors.New("empty prompt")
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return "", err
	}

	model := g.client.GenerativeModel(g.modelName)

	img := genai.ImageData("image/jpeg", imageData)
	res, err := model.GenerateContent(ctx, img, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	return firstCandidateText(res)
}

func (g *geminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", errors.New("empty prompt")
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return "", err
	}

	model := g.client.GenerativeModel(g.modelName)

	res, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	return firstCandidateText(res)
}

func (g *geminiClient) EmbedText(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, errors.New("empty text")
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	model := g.client.EmbeddingModel(g.embeddingModel)

	res, err := model.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, err
	}

	if res.Embedding == nil || len(res.Embedding.Values) == 0 {
		return nil, errors.New("no embedding in Gemini response")
	}

	return res.Embedding.Values, nil
}

func firstCandidateText(res *genai.GenerateContentResponse) (string, error) {
	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil || len(res.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no response from Gemini API")
	}

	text, ok := res.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", errors.New("unexpected response format from Gemini API")
	}

	return string(text), nil
}

func (g *geminiClient) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}
