package ports

import "context"

// GenerativeClient abstracts the generative-AI backend (Gemini).
type GenerativeClient interface {
	// GenerateText sends a plain text prompt and returns the model's text reply.
	GenerateText(ctx context.Context, model, prompt string) (string, error)
	// GenerateJSON sends a prompt (with an optional inline base64 JPEG) in JSON
	// response mode and decodes the reply into out.
	GenerateJSON(ctx context.Context, model, prompt, imageData string, out any) error
}
