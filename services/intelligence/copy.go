// Package intelligence generates multilingual copy suggestions for block
// text content. Editor convenience only: failures never block persistence.
package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"pagecraft/models"
	"pagecraft/services/content"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// CopyService suggests copy variants for block text content.
type CopyService interface {
	SuggestCopy(ctx context.Context, req CopyRequest) (*CopySuggestion, error)
}

// CopyRequest asks for copy in the target languages, seeded by the block's
// existing text.
type CopyRequest struct {
	Block     models.Block `json:"block"`
	Languages []string     `json:"languages"`
	Tone      string       `json:"tone,omitempty"`
}

// CopySuggestion carries one suggested language map per text item, keyed by
// the item's position in the block's ordered content.
type CopySuggestion struct {
	Items map[int]models.MultiLanguageContent `json:"items"`
}

type geminiCopyService struct {
	model *genai.GenerativeModel
}

// NewGeminiCopyService creates a CopyService backed by Gemini.
func NewGeminiCopyService(apiKey string) (CopyService, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiCopyService{
		model: client.GenerativeModel("models/gemini-1.5-pro"),
	}, nil
}

func (g *geminiCopyService) SuggestCopy(ctx context.Context, req CopyRequest) (*CopySuggestion, error) {
	prompt := buildPrompt(req)
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return parseSuggestion(sb.String())
}

func buildPrompt(req CopyRequest) string {
	var sb strings.Builder
	sb.WriteString("You are a marketing copywriter. For each numbered text item below, ")
	sb.WriteString("write copy in these languages: ")
	sb.WriteString(strings.Join(req.Languages, ", "))
	sb.WriteString(".\n")
	if req.Tone != "" {
		sb.WriteString("Tone: " + req.Tone + ".\n")
	}
	sb.WriteString("Answer with a JSON object mapping the item number to an object of language tag to text. No prose.\n\n")

	ordered := content.OrderedContent(req.Block)
	for i, item := range ordered {
		if item.Type != models.ContentText {
			continue
		}
		seed := content.ResolveDefault(item.Value, "")
		sb.WriteString(fmt.Sprintf("%d (%s): %s\n", i, item.Variant, seed))
	}
	return sb.String()
}

func parseSuggestion(raw string) (*CopySuggestion, error) {
	// Models wrap JSON in fences more often than not.
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var items map[int]models.MultiLanguageContent
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &items); err != nil {
		return nil, fmt.Errorf("could not parse copy suggestion: %w", err)
	}
	return &CopySuggestion{Items: items}, nil
}
