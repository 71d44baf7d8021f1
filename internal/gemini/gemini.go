// Package gemini encapsula a chamada ao modelo de linguagem por trás de uma
// capacidade mínima (prompt -> texto), substituível por um fake nos testes.
package gemini

import (
	"context"
	"fmt"
	"strings"

	adkmodel "google.golang.org/adk/model"
	adkgemini "google.golang.org/adk/model/gemini"
	"google.golang.org/genai"
)

// Generator é a capacidade consumida pelos handlers.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// systemInstruction posiciona o modelo como planejador de viagens.
const systemInstruction = "Actúa como planificador experto en viajes."

// Client implementa Generator sobre o modelo Gemini do ADK.
type Client struct {
	llm       adkmodel.LLM
	modelName string
}

// NewClient cria o cliente do modelo a partir da credencial configurada.
func NewClient(ctx context.Context, apiKey, modelName string) (*Client, error) {
	llm, err := adkgemini.NewModel(ctx, modelName, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create model: %w", err)
	}
	return &Client{llm: llm, modelName: modelName}, nil
}

// Generate envia o prompt e drena o iterador de resposta em uma única string.
// Uma única tentativa; o erro do modelo sobe para o chamador decidir o status.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	request := adkmodel.LLMRequest{
		Model: c.modelName,
		Contents: []*genai.Content{
			{
				Role:  "user",
				Parts: []*genai.Part{{Text: prompt}},
			},
		},
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Role:  "user",
				Parts: []*genai.Part{{Text: systemInstruction}},
			},
		},
	}

	var out strings.Builder
	for response, err := range c.llm.GenerateContent(ctx, &request, false) {
		if err != nil {
			return "", err
		}
		if response == nil || response.Content == nil {
			continue
		}
		for _, part := range response.Content.Parts {
			if part.Text != "" {
				out.WriteString(part.Text)
			}
		}
	}
	return strings.TrimSpace(out.String()), nil
}
