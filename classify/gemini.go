package classify

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultGeminiModel is the generation model used when none is configured.
const DefaultGeminiModel = "gemini-2.5-pro"

// Gemini classifies cells with Google's Gemini API. Each Classify call sends
// one prompt asking whether the cell belongs to the configured marker and,
// if so, what the subject name is. The adapter adds no retry or timeout
// policy; bound the call through ctx.
type Gemini struct {
	client *genai.Client
	model  string
	marker string
}

// NewGemini creates a Gemini classifier for the given marker.
func NewGemini(ctx context.Context, apiKey, model, marker string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &Gemini{client: client, model: model, marker: marker}, nil
}

// Classify asks the model whether the cell text is a class assigned to the
// marker and returns the extracted subject name as the tag.
func (g *Gemini) Classify(ctx context.Context, cellText string) (string, bool, error) {
	if strings.TrimSpace(cellText) == "" {
		return "", false, nil
	}

	contents := []*genai.Content{
		genai.NewContentFromText(geminiPrompt(g.marker, cellText), genai.RoleUser),
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", false, fmt.Errorf("gemini classify failed: %w", err)
	}

	return parseGeminiReply(resp.Text())
}

// geminiPrompt builds the per-cell classification prompt.
func geminiPrompt(marker, cellText string) string {
	var sb strings.Builder
	sb.WriteString("You are classifying one cell of an academic timetable.\n")
	fmt.Fprintf(&sb, "The target marker is %q (a teacher's initials).\n\n", marker)
	fmt.Fprintf(&sb, "Cell text:\n---\n%s\n---\n\n", cellText)
	fmt.Fprintf(&sb, "If this cell is a class assigned to %q, reply with ONLY the subject name, ", marker)
	sb.WriteString("with the marker and any room or timing noise removed. ")
	sb.WriteString("If it is not, reply with exactly NONE.")
	return sb.String()
}

// parseGeminiReply interprets the model's reply: NONE (or an empty reply)
// means no match, anything else is the tag.
func parseGeminiReply(reply string) (string, bool, error) {
	tag := Normalize(reply)
	if tag == "" || strings.EqualFold(tag, "NONE") {
		return "", false, nil
	}
	return tag, true, nil
}
