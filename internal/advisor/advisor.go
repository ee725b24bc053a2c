// Package advisor relays chart questions to a language model behind an
// OpenAI compatible chat completion endpoint.
package advisor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"

	apperrors "github.com/Nixie-Tech-LLC/jyotish/internal/errors"
	"github.com/Nixie-Tech-LLC/jyotish/internal/observability"
	"github.com/Nixie-Tech-LLC/jyotish/internal/resilience"
)

// LimitReached is returned instead of a model answer once the conversation
// has used up its questions.
const LimitReached = "I apologize, the question limit has been reached."

// UnavailableMessage explains a missing advisory configuration to clients.
const UnavailableMessage = "AI Service is currently unavailable. Please check API Key."

const systemPrompt = `You are an expert Vedic Astrologer.
Analyze the chart.
FORMATTING RULES:
1. Use **Bold** for Planet Names and Key Terms.
2. Use bullet points for lists.
3. Keep paragraphs short.`

// Message is one turn of a prior conversation. Any role other than "user"
// is treated as the astrologer's reply.
type Message struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// ChartSummary is the part of a computed chart given to the model as
// context.
type ChartSummary struct {
	Ascendant     string
	MoonSign      string
	MoonNakshatra string
	CurrentDasha  string
	// Houses is the rendered house-by-house placement.
	Houses string
}

func (s ChartSummary) String() string {
	var b strings.Builder
	b.WriteString("Chart:\n")
	fmt.Fprintf(&b, "Ascendant: %s\n", s.Ascendant)
	fmt.Fprintf(&b, "Moon: %s (%s)\n", s.MoonSign, s.MoonNakshatra)
	fmt.Fprintf(&b, "Current Dasha: %s\n", s.CurrentDasha)
	fmt.Fprintf(&b, "Planets: %s\n", s.Houses)
	return b.String()
}

// Completer is the slice of the go-openai client the advisor needs.
type Completer interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Advisor struct {
	client       Completer
	model        string
	maxQuestions int
	breaker      *resilience.CircuitBreaker
	metrics      *observability.Collector
}

// New builds an advisor talking to baseURL with apiKey. An empty baseURL
// keeps the go-openai default.
func New(apiKey, baseURL, model string, maxQuestions int, metrics *observability.Collector) *Advisor {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimSuffix(baseURL, "/")
	}
	return NewWithClient(openai.NewClientWithConfig(cfg), model, maxQuestions, metrics)
}

func NewWithClient(client Completer, model string, maxQuestions int, metrics *observability.Collector) *Advisor {
	return &Advisor{
		client:       client,
		model:        model,
		maxQuestions: maxQuestions,
		breaker:      resilience.NewCircuitBreaker("advisor", resilience.DefaultCircuitBreakerConfig()),
		metrics:      metrics,
	}
}

// Model names the configured model.
func (a *Advisor) Model() string {
	if a == nil {
		return ""
	}
	return a.model
}

// Ask answers question about the chart, continuing history. A nil Advisor
// reports ErrAdvisorUnavailable.
func (a *Advisor) Ask(ctx context.Context, chart ChartSummary, history []Message, question string) (string, error) {
	if a == nil {
		return "", apperrors.Upstream("advisor", UnavailableMessage, apperrors.ErrAdvisorUnavailable)
	}
	if len(history) >= 2*a.maxQuestions {
		log.Info().Int("turns", len(history)).Msg("[advisor] question limit reached")
		return LimitReached, nil
	}
	question = strings.TrimSpace(question)
	if question == "" {
		return "", apperrors.Input("advisor", "question is required", nil)
	}

	req := openai.ChatCompletionRequest{
		Model:    a.model,
		Messages: buildMessages(chart, history, question),
	}

	started := time.Now()
	answer, err := resilience.Execute(a.breaker, ctx, func(ctx context.Context) (string, error) {
		resp, err := a.client.CreateChatCompletion(ctx, req)
		if err != nil {
			return "", fmt.Errorf("chat completion failed: %w", err)
		}
		if len(resp.Choices) == 0 {
			return "", fmt.Errorf("no response from model")
		}
		return resp.Choices[0].Message.Content, nil
	})
	a.metrics.ObserveUpstream("advisor", started, err)
	if err != nil {
		log.Error().Err(err).Str("model", a.model).Msg("[advisor] ask failed")
		return "", apperrors.Upstream("advisor", "advisory service failed", err)
	}
	return answer, nil
}

func buildMessages(chart ChartSummary, history []Message, question string) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt + "\n\n" + chart.String(),
	})
	for _, m := range history {
		role := openai.ChatMessageRoleAssistant
		if m.Role == "user" {
			role = openai.ChatMessageRoleUser
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: m.Text})
	}
	return append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: question})
}
