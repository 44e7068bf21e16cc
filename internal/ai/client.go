package ai

import (
	"context"
	"errors"
	"io"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/packages/param"
	"github.com/openai/openai-go/v3/responses"
)

// Client wraps the official OpenAI SDK and exposes the minimal helpers the
// pipeline needs: text generation for the revise loop and TTS for audio.
type Client struct {
	apiKey  string
	baseURL string
	sdk     openai.Client
}

// New constructs a new AI client. The apiKey is required; baseURL is
// optional (empty string uses the default API endpoint).
func New(apiKey, baseURL string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("OPENAI_API_KEY is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	sdk := openai.NewClient(opts...)
	return &Client{apiKey: apiKey, baseURL: baseURL, sdk: sdk}, nil
}

// GenerateText calls the Responses API and returns concatenated output text.
// The system prompt is supplied via the "instructions" field.
func (c *Client) GenerateText(ctx context.Context, model, system, prompt string) (string, error) {
	res, err := c.newResponse(ctx, model, system, prompt)
	if err != nil {
		return "", err
	}
	return res.OutputText(), nil
}

// GenerateTextWithUsage is GenerateText plus token accounting.
func (c *Client) GenerateTextWithUsage(ctx context.Context, model, system, prompt string) (string, TokenUsage, error) {
	res, err := c.newResponse(ctx, model, system, prompt)
	if err != nil {
		return "", TokenUsage{}, err
	}
	return res.OutputText(), usageFromResponse(res.Usage), nil
}

func (c *Client) newResponse(ctx context.Context, model, system, prompt string) (*responses.Response, error) {
	req := responses.ResponseNewParams{
		Model:        model,
		Instructions: param.NewOpt(system),
		Input:        responses.ResponseNewParamsInputUnion{OfString: param.NewOpt(prompt)},
	}
	return c.sdk.Responses.New(ctx, req)
}

// TTS writes MP3 audio to the provided writer using the Audio Speech API.
// model should be a TTS-capable model (e.g., gpt-4o-mini-tts).
func (c *Client) TTS(ctx context.Context, model, voice, text string, w io.Writer) error {
	req := openai.AudioSpeechNewParams{
		Model:          openai.SpeechModel(model),
		Voice:          openai.AudioSpeechNewParamsVoice(voice),
		Input:          text,
		ResponseFormat: openai.AudioSpeechNewParamsResponseFormatMP3,
	}
	resp, err := c.sdk.Audio.Speech.New(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, err = io.Copy(w, resp.Body)
	return err
}
