// Package openai implements ports.Describer over OpenAI-compatible
// APIs. A custom base URL points it at local inference servers that
// speak the same protocol, so the organizer works fully offline.
package openai

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"ordino/internal/ports"
)

const (
	imagePrompt = "Please provide a detailed description of this image, " +
		"focusing on the main subject and any important details."

	summaryPrompt = "Provide a concise and accurate summary of the following text, " +
		"focusing on the main ideas and key details. " +
		"Limit your summary to a maximum of 150 words.\n\nText:\n%s\n\nSummary:"
)

// Config holds the connection and model settings for the describer.
type Config struct {
	APIKey            string
	BaseURL           string // empty for api.openai.com
	VisionModel       string
	TextModel         string
	TranscribeModel   string
	RequestsPerMinute int // 0 disables client-side pacing
}

// Describer calls a vision/text model for image and document
// descriptions and a speech model for audio transcription.
type Describer struct {
	api     *openai.Client
	cfg     Config
	limiter *rate.Limiter
}

// Ensure Describer implements the port
var _ ports.Describer = (*Describer)(nil)

// NewDescriber creates a describer from config. Missing model names
// get OpenAI defaults.
func NewDescriber(cfg Config) *Describer {
	if cfg.VisionModel == "" {
		cfg.VisionModel = openai.GPT4oMini
	}
	if cfg.TextModel == "" {
		cfg.TextModel = openai.GPT4oMini
	}
	if cfg.TranscribeModel == "" {
		cfg.TranscribeModel = openai.Whisper1
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMinute)/60.0), 1)
	}

	return &Describer{
		api:     openai.NewClientWithConfig(clientCfg),
		cfg:     cfg,
		limiter: limiter,
	}
}

// Available reports whether the describer has somewhere to send
// requests: an API key, or a custom endpoint that needs none.
func (d *Describer) Available() bool {
	return d.cfg.APIKey != "" || d.cfg.BaseURL != ""
}

// DescribeImage sends a downscaled JPEG rendition of the image to the
// vision model and returns its prose description.
func (d *Describer) DescribeImage(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	jpegData, err := prepareImage(data, maxVisionWidth, jpegQuality)
	if err != nil {
		return "", fmt.Errorf("failed to prepare image %s: %w", path, err)
	}

	if err := d.limiter.Wait(ctx); err != nil {
		return "", err
	}

	dataURL := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(jpegData)
	resp, err := d.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: d.cfg.VisionModel,
		Messages: []openai.ChatCompletionMessage{{
			Role: openai.ChatMessageRoleUser,
			MultiContent: []openai.ChatMessagePart{
				{Type: openai.ChatMessagePartTypeText, Text: imagePrompt},
				{
					Type:     openai.ChatMessagePartTypeImageURL,
					ImageURL: &openai.ChatMessageImageURL{URL: dataURL},
				},
			},
		}},
	})
	if err != nil {
		return "", fmt.Errorf("vision request failed: %w", err)
	}
	return firstChoice(resp)
}

// Summarize condenses already-extracted document text with the text
// model.
func (d *Describer) Summarize(ctx context.Context, text string) (string, error) {
	if err := d.limiter.Wait(ctx); err != nil {
		return "", err
	}

	resp, err := d.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: d.cfg.TextModel,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: fmt.Sprintf(summaryPrompt, text),
		}},
	})
	if err != nil {
		return "", fmt.Errorf("summary request failed: %w", err)
	}
	return firstChoice(resp)
}

// Transcribe converts speech in an audio file to text via the
// transcription endpoint.
func (d *Describer) Transcribe(ctx context.Context, path string) (string, error) {
	if err := d.limiter.Wait(ctx); err != nil {
		return "", err
	}

	resp, err := d.api.CreateTranscription(ctx, openai.AudioRequest{
		Model:    d.cfg.TranscribeModel,
		FilePath: path,
	})
	if err != nil {
		return "", fmt.Errorf("transcription request failed: %w", err)
	}
	return resp.Text, nil
}

func firstChoice(resp openai.ChatCompletionResponse) (string, error) {
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}
