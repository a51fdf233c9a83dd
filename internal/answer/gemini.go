// Package answer wraps the single round trip to the hosted generative model:
// document context plus question in, raw answer text out.
package answer

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Apology is the fixed degraded answer returned on any service failure.
const Apology = "Failed to generate answer. Please try again."

const promptTemplate = `Analyze the document and answer the question professionally.
**Document Content:** %s
**Question:** %s

Formatting Rules:
- Use short paragraphs and bullet lists where they help scanning.
- Number procedural steps 1., 2., 3.
- Keep any tables pipe-delimited.
- Base the answer only on the document content provided.`

// Service holds the model client. One instance serves all sessions.
type Service struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewService creates the model client. The model name is fixed for the
// lifetime of the service.
func NewService(ctx context.Context, apiKey, modelName string, temperature float32) (*Service, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is empty")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(temperature)

	return &Service{client: client, model: model}, nil
}

// Close releases the underlying client.
func (s *Service) Close() {
	if s.client != nil {
		s.client.Close()
	}
}

// Answer runs one synchronous generation round trip. There is no retry,
// truncation or chunking: oversized contexts fail as an opaque service
// error. Failures degrade to the fixed apology string plus a diagnostic and
// never propagate as errors.
func (s *Service) Answer(ctx context.Context, question, docContext string) (string, string) {
	prompt := fmt.Sprintf(promptTemplate, docContext, question)

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("[answer] generate content failed: %v", err)
		return Apology, fmt.Sprintf("API error: %v", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		log.Printf("[answer] model returned no candidates")
		return Apology, "API error: empty response"
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	if sb.Len() == 0 {
		return Apology, "API error: response had no text parts"
	}
	return sb.String(), ""
}
