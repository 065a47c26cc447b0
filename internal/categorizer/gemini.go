package categorizer

import (
	"context"
	"fmt"
	"strings"

	"fjacquet/receipt-csv/internal/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient asks a Gemini model to pick a spending category for store
// names the keyword tables could not place. Responses are validated against
// the closed label set; anything else degrades to the catch-all category.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiClient creates a Gemini-backed categorization client.
func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is not set")
	}
	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  client.GenerativeModel(modelName),
	}, nil
}

// Close releases the underlying API client.
func (g *GeminiClient) Close() error {
	return g.client.Close()
}

// CategorizeStore asks the model for a category label for the store name.
func (g *GeminiClient) CategorizeStore(ctx context.Context, storeName string) (string, error) {
	prompt := fmt.Sprintf(
		"次の店舗名の支出カテゴリを、以下の選択肢から1つだけ選んで、そのまま答えてください。\n"+
			"選択肢: %s\n店舗名: %s",
		strings.Join(KnownCategories(), " / "), storeName)

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	answer := extractText(resp)
	for _, label := range KnownCategories() {
		if strings.Contains(answer, label) {
			log.WithField("store", storeName).WithField("category", label).
				Debug("Store categorized by Gemini")
			return label, nil
		}
	}

	log.WithField("store", storeName).WithField("answer", answer).
		Debug("Gemini answer did not name a known category")
	return models.CategoryOther, nil
}

// extractText flattens the first candidate's text parts.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return strings.TrimSpace(sb.String())
}
