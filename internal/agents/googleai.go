package agents

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/schema"

	"github.com/dharmasatrya/travelplanner/internal/ratelimit"
)

// GoogleAICompleter adapts the langchaingo Google AI backend to the
// Completer interface. Instructions become the system message, the
// prompt the human message, and the model id a per-call option so one
// client serves all three agents.
type GoogleAICompleter struct {
	model   llms.Model
	limiter *ratelimit.EndpointLimiter
}

func NewGoogleAICompleter(ctx context.Context, apiKey string, limiter *ratelimit.EndpointLimiter) (*GoogleAICompleter, error) {
	model, err := googleai.New(ctx, googleai.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create google ai client: %w", err)
	}

	return &GoogleAICompleter{model: model, limiter: limiter}, nil
}

func (c *GoogleAICompleter) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, ratelimit.EndpointCompletion); err != nil {
			return "", err
		}
	}

	messages := make([]llms.MessageContent, 0, 2)
	if len(req.Instructions) > 0 {
		system := strings.Join(req.Instructions, "\n")
		messages = append(messages, llms.TextParts(schema.ChatMessageTypeSystem, system))
	}
	messages = append(messages, llms.TextParts(schema.ChatMessageTypeHuman, req.Prompt))

	var opts []llms.CallOption
	if req.Model != "" {
		opts = append(opts, llms.WithModel(req.Model))
	}

	resp, err := c.model.GenerateContent(ctx, messages, opts...)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}

	return resp.Choices[0].Content, nil
}

// datedInstructions appends the current date to an instruction set so
// the model can reason about seasonality and lead times.
func datedInstructions(instructions []string) []string {
	dated := make([]string, 0, len(instructions)+1)
	dated = append(dated, instructions...)
	dated = append(dated, "The current date is "+time.Now().Format("January 2, 2006")+".")
	return dated
}
