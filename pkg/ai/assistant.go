package ai

import (
	"context"
	"encoding/base64"
	"log"
)

// FallbackMessage is shown in the chat transcript whenever the briefing
// request fails. Service failures never crash the chat panel.
const FallbackMessage = "Error: Unable to connect to command center. Please try again later."

// Briefing is the assistant's answer to one prompt. Fallback marks the
// failed-with-fallback variant so the presentation layer can render it
// differently from a real reply.
type Briefing struct {
	Text     string
	Fallback bool
}

// GetBriefing asks the generator for a reply to the user prompt. Any
// transport or service failure is converted into the fallback variant; no
// error crosses this boundary.
func GetBriefing(ctx context.Context, gen Generator, prompt string) Briefing {
	text, err := gen.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("briefing request failed: %v", err)
		return Briefing{Text: FallbackMessage, Fallback: true}
	}
	return Briefing{Text: text}
}

// HeroVisual requests the fixed hero image and returns it as a base64 data
// URI. Failure, or a response without an inline-image part, reports ok=false
// and nothing else; callers keep showing their loading state and may try
// again later.
func HeroVisual(ctx context.Context, gen ImageGenerator) (string, bool) {
	data, mimeType, err := gen.GenerateImage(ctx, HeroPrompt, HeroAspectRatio)
	if err != nil {
		log.Printf("hero image generation failed: %v", err)
		return "", false
	}
	if len(data) == 0 {
		return "", false
	}
	if mimeType == "" {
		mimeType = "image/png"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), true
}
