package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Generator defines the interface for text generation
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// ImageGenerator defines the interface for single-image generation. It
// returns the raw image bytes and their MIME type; no bytes with a nil error
// means the service answered without an image payload.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt, aspectRatio string) ([]byte, string, error)
}

const (
	geminiDefaultTextModel  = "gemini-3-flash-preview"
	geminiDefaultImageModel = "gemini-2.5-flash-image"
	geminiDefaultTemp       = 0.7
)

// Client wraps the Gemini API client
type Client struct {
	genaiClient *genai.Client
	textModel   string
	imageModel  string
	system      string
	temperature float32
}

// Ensure Client implements both generator interfaces.
var (
	_ Generator      = (*Client)(nil)
	_ ImageGenerator = (*Client)(nil)
)

// Option customizes a Client.
type Option func(*Client)

// WithTextModel overrides the text-generation model.
func WithTextModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.textModel = model
		}
	}
}

// WithImageModel overrides the image-generation model.
func WithImageModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.imageModel = model
		}
	}
}

// WithTemperature overrides the sampling temperature for text generation.
func WithTemperature(temp float32) Option {
	return func(c *Client) { c.temperature = temp }
}

// NewClient creates a new Gemini client
func NewClient(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	c := &Client{
		genaiClient: client,
		textModel:   geminiDefaultTextModel,
		imageModel:  geminiDefaultImageModel,
		system:      BriefingSystemInstruction,
		temperature: geminiDefaultTemp,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// GenerateText sends a prompt together with the fixed system instruction and
// sampling temperature and returns the model's text response.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(c.system, genai.RoleUser),
		Temperature:       genai.Ptr(c.temperature),
	}

	resp, err := c.genaiClient.Models.GenerateContent(ctx, c.textModel, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text returned")
	}
	return text, nil
}

// GenerateImage requests a single image at the given aspect ratio and returns
// the bytes of the first inline-image part of the response. A response with
// no image part yields nil bytes and a nil error.
func (c *Client) GenerateImage(ctx context.Context, prompt, aspectRatio string) ([]byte, string, error) {
	config := &genai.GenerateContentConfig{
		ImageConfig: &genai.ImageConfig{AspectRatio: aspectRatio},
	}

	resp, err := c.genaiClient.Models.GenerateContent(ctx, c.imageModel, genai.Text(prompt), config)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate image: %w", err)
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data, part.InlineData.MIMEType, nil
			}
		}
	}
	return nil, "", nil
}
