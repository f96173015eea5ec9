package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"
	"github.com/openai/openai-go/v3/shared"

	"github.com/bhavesh-kalluru/Carrer-Agent/internal/prompts"
)

// OpenAIClient implements Client against the OpenAI API.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates a client from config. The API key is required.
func NewOpenAIClient(config *Config) (*OpenAIClient, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if config.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	model := config.Model
	if model == "" {
		model = DefaultModel
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
		option.WithMaxRetries(0),
	}
	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	return &OpenAIClient{
		client: openai.NewClient(opts...),
		model:  model,
	}, nil
}

// strategy is one request shape against the model. Each returns the raw
// response text or an error; failures are absorbed by the caller and the
// next strategy tried.
type strategy struct {
	name string
	run  func(ctx context.Context, system, user string) (string, error)
}

// ResolveCompany asks the model for the (company, official_website,
// careers_url) triple, attempting up to three request shapes in order:
//  1. Chat Completions with JSON-object response format enforcement.
//  2. Chat Completions without enforcement, parsing the text tolerantly.
//  3. The Responses API without enforcement, parsing the text tolerantly.
//
// The first attempt that parses to an object with at least one usable field
// wins. When all three fail the returned guess is empty but still carries
// the last raw output for the trace.
func (c *OpenAIClient) ResolveCompany(ctx context.Context, input string) (*CompanyGuess, error) {
	system := prompts.MustGet("resolver.json", "system-instruction")
	user := prompts.Format(prompts.MustGet("resolver.json", "user-message"), map[string]string{
		"Input": input,
	})

	strategies := []strategy{
		{name: "chat-json-mode", run: c.chatJSONMode},
		{name: "chat-plain", run: c.chatPlain},
		{name: "responses", run: c.respond},
	}

	empty := &CompanyGuess{}
	var lastErr error
	for _, s := range strategies {
		raw, err := s.run(ctx, system, user)
		if err != nil {
			lastErr = fmt.Errorf("%s: %w", s.name, err)
			continue
		}
		empty.Raw = raw

		guess, ok := ParseGuess(raw)
		if !ok || guess.Empty() {
			lastErr = fmt.Errorf("%s: no usable fields in response", s.name)
			continue
		}
		guess.Raw = raw
		return guess, nil
	}

	return empty, fmt.Errorf("all resolver strategies failed: %w", lastErr)
}

// chatJSONMode uses Chat Completions with response_format json_object. Older
// API surfaces reject the response_format parameter; that error falls
// through to the next strategy.
func (c *OpenAIClient) chatJSONMode(ctx context.Context, system, user string) (string, error) {
	params := c.chatParams(system, user)
	params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
		OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
	}
	return c.chat(ctx, params)
}

// chatPlain uses Chat Completions without response formatting.
func (c *OpenAIClient) chatPlain(ctx context.Context, system, user string) (string, error) {
	return c.chat(ctx, c.chatParams(system, user))
}

func (c *OpenAIClient) chatParams(system, user string) openai.ChatCompletionNewParams {
	return openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Temperature: openai.Float(0),
	}
}

func (c *OpenAIClient) chat(ctx context.Context, params openai.ChatCompletionNewParams) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}

// respond uses the Responses API and aggregates whichever output text the
// response carries.
func (c *OpenAIClient) respond(ctx context.Context, system, user string) (string, error) {
	resp, err := c.client.Responses.New(ctx, responses.ResponseNewParams{
		Model:        shared.ResponsesModel(c.model),
		Instructions: openai.String(system),
		Input:        responses.ResponseNewParamsInputUnion{OfString: openai.String(user)},
		Temperature:  openai.Float(0),
	})
	if err != nil {
		return "", err
	}

	text := resp.OutputText()
	if text == "" {
		return "", fmt.Errorf("no output text in response")
	}
	return text, nil
}
