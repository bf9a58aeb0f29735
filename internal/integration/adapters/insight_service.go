// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/salon-pos/backend/internal/application/adapter"
)

// GeminiInsightService implements the adapter.InsightService using Google
// Gemini to write a short narrative for a period report.
type GeminiInsightService struct {
	apiKey    string
	modelName string
}

// NewGeminiInsightService creates a new Gemini insight service instance.
func NewGeminiInsightService(apiKey string) *GeminiInsightService {
	return &GeminiInsightService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is properly configured.
func (s *GeminiInsightService) IsAvailable() bool {
	return s.apiKey != ""
}

// Summarize produces a short narrative for the given report figures.
func (s *GeminiInsightService) Summarize(ctx context.Context, input adapter.ReportNarrativeInput) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.4)

	resp, err := model.GenerateContent(ctx, genai.Text(s.buildPrompt(input)))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	narrative, err := s.parseResponse(resp)
	if err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	return narrative, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiInsightService) buildPrompt(input adapter.ReportNarrativeInput) string {
	var sb strings.Builder

	sb.WriteString(`You are a business assistant for a small salon. Write a short, plain-language summary (2-3 sentences) of the period report below for the owner. Mention whether the business ran a surplus or a deficit and call out the strongest service line if one exists. Do not use bullet points or headings.

REPORT FIGURES:
`)

	sb.WriteString(fmt.Sprintf("- Period: %s\n", input.PeriodLabel))
	sb.WriteString(fmt.Sprintf("- Total income: %s\n", input.TotalIncome.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("- Total expenses: %s\n", input.TotalExpenses.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("- Net balance: %s\n", input.NetBalance.StringFixed(2)))
	if input.TopService != "" {
		sb.WriteString(fmt.Sprintf("- Top service by revenue: %s\n", input.TopService))
	}
	sb.WriteString(fmt.Sprintf("- New customers: %d\n", input.NewCustomers))
	sb.WriteString(fmt.Sprintf("- Booking completion rate: %.0f%%\n", input.CompletionRate*100))
	sb.WriteString(fmt.Sprintf("- Advance payments received: %s\n", input.AdvanceReceived.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("- Outstanding balance due: %s\n", input.BalanceDue.StringFixed(2)))

	sb.WriteString("\nRespond with the summary text only, no additional formatting.\n")

	return sb.String()
}

// parseResponse extracts the narrative text from the Gemini response.
func (s *GeminiInsightService) parseResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	textContent = strings.TrimSpace(textContent)
	if textContent == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return textContent, nil
}
