package ai

import (
	"context"
	"fmt"

	"autopneu-api/internal/pkg/config"
	"autopneu-api/internal/pkg/errs"

	"google.golang.org/genai"
)

// Generator wraps the Gemini API for the admin panel's text helpers. It is
// disabled (not an error) when no API key is configured.
type Generator struct {
	client *genai.Client
	model  string
}

func NewGenerator(cfg config.AIConfig) (*Generator, error) {
	if cfg.GeminiAPIKey == "" {
		return &Generator{}, nil
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to create gemini client")
	}

	return &Generator{client: client, model: cfg.GeminiModel}, nil
}

func (g *Generator) Enabled() bool {
	return g.client != nil
}

// ServiceDescription produces a short Czech marketing description for a
// catalog service.
func (g *Generator) ServiceDescription(ctx context.Context, serviceName string) (string, error) {
	prompt := fmt.Sprintf(
		"Napiš krátký, profesionální a lákavý popis pro službu autoservisu s názvem: %s. Popis by měl mít cca 20 slov a být v češtině.",
		serviceName,
	)
	return g.generate(ctx, prompt)
}

// SeoText produces one paragraph of Czech SEO copy on the given topic.
func (g *Generator) SeoText(ctx context.Context, topic string) (string, error) {
	prompt := fmt.Sprintf(
		"Napiš jeden odstavec SEO textu pro web autoservisu na téma: %s. Zaměř se na důvěryhodnost a profesionalitu. Česky.",
		topic,
	)
	return g.generate(ctx, prompt)
}

func (g *Generator) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", errs.Wrap(err, "gemini generation failed")
	}
	text := resp.Text()
	if text == "" {
		return "", errs.New("gemini returned empty response")
	}
	return text, nil
}
