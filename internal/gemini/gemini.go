package gemini

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/household-archive/cataloger/internal/vision"
	"google.golang.org/api/option"
)

const defaultModel = "gemini-2.0-flash"

// Extractor analyzes photos with Google Gemini vision models.
type Extractor struct {
	apiKey string
	model  string
}

// New returns a Gemini extractor. An empty apiKey falls back to the
// GEMINI_API_KEY environment variable; an empty model uses the default.
func New(apiKey, model string) *Extractor {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if model == "" {
		model = os.Getenv("GEMINI_MODEL")
	}
	if model == "" {
		model = defaultModel
	}
	return &Extractor{apiKey: apiKey, model: model}
}

// Extract sends the photo and the analysis prompt to Gemini and parses the
// JSON object out of the response text.
func (g *Extractor) Extract(ctx context.Context, imagePath string, familyNames []string) (*vision.Result, error) {
	if g.apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	imageData, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create new gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(g.model)
	model.SetTemperature(0.1)

	resp, err := model.GenerateContent(ctx,
		genai.ImageData(imageFormat(imagePath), imageData),
		genai.Text(vision.BuildPrompt(familyNames)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("no candidates returned from Gemini")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return nil, fmt.Errorf("empty content returned from Gemini")
	}

	txt, ok := candidate.Content.Parts[0].(genai.Text)
	if !ok {
		return nil, fmt.Errorf("unexpected response format from Gemini")
	}

	return vision.ParseResult(string(txt))
}

// imageFormat maps a filename to the genai image format label.
func imageFormat(imagePath string) string {
	switch strings.ToLower(filepath.Ext(imagePath)) {
	case ".jpg", ".jpeg":
		return "jpeg"
	default:
		return "png"
	}
}
