package ai

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// mockGenerator implements Generator and ImageGenerator for testing.
type mockGenerator struct {
	text      string
	textErr   error
	imageData []byte
	imageMIME string
	imageErr  error
}

func (m *mockGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	return m.text, m.textErr
}

func (m *mockGenerator) GenerateImage(ctx context.Context, prompt, aspectRatio string) ([]byte, string, error) {
	return m.imageData, m.imageMIME, m.imageErr
}

func TestGetBriefing(t *testing.T) {
	gen := &mockGenerator{text: "Pack avalanche beacons."}

	b := GetBriefing(context.Background(), gen, "what should we pack?")
	if b.Fallback {
		t.Error("successful reply flagged as fallback")
	}
	if b.Text != "Pack avalanche beacons." {
		t.Errorf("text = %q", b.Text)
	}
}

func TestGetBriefingFallback(t *testing.T) {
	gen := &mockGenerator{textErr: errors.New("connection refused")}

	b := GetBriefing(context.Background(), gen, "anything")
	if !b.Fallback {
		t.Error("transport failure should yield the fallback variant")
	}
	if b.Text != FallbackMessage {
		t.Errorf("text = %q, want fixed fallback message", b.Text)
	}
}

func TestHeroVisual(t *testing.T) {
	gen := &mockGenerator{imageData: []byte{0x89, 0x50, 0x4e, 0x47}, imageMIME: "image/png"}

	uri, ok := HeroVisual(context.Background(), gen)
	if !ok {
		t.Fatal("expected image")
	}
	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Errorf("uri = %q, want data URI", uri)
	}
}

func TestHeroVisualDefaultMIME(t *testing.T) {
	gen := &mockGenerator{imageData: []byte{1, 2, 3}}

	uri, ok := HeroVisual(context.Background(), gen)
	if !ok {
		t.Fatal("expected image")
	}
	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Errorf("uri = %q, want png data URI when MIME is missing", uri)
	}
}

func TestHeroVisualNoImagePart(t *testing.T) {
	// The service answered, but without an inline-image payload.
	gen := &mockGenerator{}

	uri, ok := HeroVisual(context.Background(), gen)
	if ok {
		t.Error("empty response parts should not produce an image")
	}
	if uri != "" {
		t.Errorf("uri = %q, want empty", uri)
	}
}

func TestHeroVisualServiceFailure(t *testing.T) {
	gen := &mockGenerator{imageErr: errors.New("quota exceeded")}

	if _, ok := HeroVisual(context.Background(), gen); ok {
		t.Error("service failure should not produce an image")
	}
}
