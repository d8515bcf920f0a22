package ai

import (
	"context"
	"fmt"
	"log"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"roomreport/internal/config"
)

// Provider names the model backend in call-log records.
const Provider = "ark"

// Endpoint is the logical operation recorded for every invocation.
const Endpoint = "chat/completions"

// Service runs assembled report prompts through the configured chat model.
type Service struct {
	cfg   config.AIConfig
	chain compose.Runnable[map[string]any, *schema.Message]
}

// NewService creates the generation service. It fails when the model
// credentials are missing or the chain cannot be compiled.
func NewService(ctx context.Context, cfg config.AIConfig) (*Service, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	// The prompt text arrives fully assembled; the template is a single
	// user-message slot so its content passes through verbatim.
	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.UserMessage("{prompt}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile report chain: %w", err)
	}

	return &Service{cfg: cfg, chain: runnable}, nil
}

// Generate invokes the model and returns the generated text plus the total
// token count when the provider reports usage.
func (s *Service) Generate(ctx context.Context, promptText string) (string, int, error) {
	response, err := s.chain.Invoke(ctx, map[string]any{"prompt": promptText})
	if err != nil {
		return "", 0, fmt.Errorf("failed to run report chain: %w", err)
	}

	tokensUsed := 0
	if response.ResponseMeta != nil && response.ResponseMeta.Usage != nil {
		tokensUsed = response.ResponseMeta.Usage.TotalTokens
	}

	log.Printf("[ai] generated report, model=%s, length=%d", s.cfg.Model, len(response.Content))
	return response.Content, tokensUsed, nil
}

// ModelName returns the configured model identifier for call logging.
func (s *Service) ModelName() string {
	return s.cfg.Model
}
