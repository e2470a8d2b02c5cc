// Package intelligence generates a prose rationale for a quiz
// recommendation. The scoring itself stays in services/recommend and is
// fully deterministic; narration is presentation-side garnish and the flow
// works without it.
package intelligence

import (
	"context"
	"fmt"
	"sort"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"apexdrive/models"
)

// Narrator produces a short explanation of why a vehicle was recommended.
type Narrator interface {
	Narrate(ctx context.Context, vehicle models.Vehicle, answers []models.QuizOption, scores map[string]int) (string, error)
}

type GeminiNarrator struct {
	model *genai.GenerativeModel
}

func NewGeminiNarrator(ctx context.Context, apiKey string) (*GeminiNarrator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiNarrator{model: client.GenerativeModel("models/gemini-1.5-pro")}, nil
}

func (n *GeminiNarrator) Narrate(ctx context.Context, vehicle models.Vehicle, answers []models.QuizOption, scores map[string]int) (string, error) {
	resp, err := n.model.GenerateContent(ctx, genai.Text(buildPrompt(vehicle, answers, scores)))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no content")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}

func buildPrompt(vehicle models.Vehicle, answers []models.QuizOption, scores map[string]int) string {
	var sb strings.Builder
	sb.WriteString("You are a vehicle concierge. In two or three sentences, explain why the ")
	sb.WriteString(vehicle.Name)
	sb.WriteString(" suits a customer who answered a preference quiz as follows:\n")
	for _, a := range answers {
		sb.WriteString("- ")
		sb.WriteString(a.Label)
		sb.WriteString("\n")
	}
	sb.WriteString("Aggregate preference scores: ")

	ids := make([]string, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for i, id := range ids {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%d", id, scores[id])
	}
	sb.WriteString(".\nDo not mention the scores directly.")
	return sb.String()
}
