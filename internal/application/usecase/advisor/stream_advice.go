// Package advisor contains the AI investment advisory use case.
package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/pensive/backend/internal/application/adapter"
	domainerror "github.com/pensive/backend/internal/domain/error"
)

// DefaultRiskLevel is assumed when the caller does not state a risk tolerance.
const DefaultRiskLevel = "Moderate"

// MessagePart is one typed fragment of a structured message content.
type MessagePart struct {
	Type string
	Text string
}

// Message is one conversation entry. Content carries the plain-text variant;
// Parts carries the structured variant. At most one of the two is set.
type Message struct {
	Role    string
	Content string
	Parts   []MessagePart
}

// StockContext is one quote row the caller wants the advice grounded on.
type StockContext struct {
	Symbol string
	Name   string
	Sector string
	Price  float64
	Change float64
	PE     float64
}

// StreamAdviceInput represents the input for the advisory stream.
type StreamAdviceInput struct {
	Stocks    []StockContext
	Budget    string
	RiskLevel string
	Messages  []Message
}

// StreamAdviceUseCase relays a streamed LLM completion built from the
// caller's market context. It fails before any network call when the
// provider credential is missing.
type StreamAdviceUseCase struct {
	streamer adapter.ChatStreamer
}

// NewStreamAdviceUseCase creates a new StreamAdviceUseCase instance.
func NewStreamAdviceUseCase(streamer adapter.ChatStreamer) *StreamAdviceUseCase {
	return &StreamAdviceUseCase{
		streamer: streamer,
	}
}

// Execute opens the upstream completion stream. The returned channel closes
// when the completion ends or ctx is cancelled.
func (uc *StreamAdviceUseCase) Execute(ctx context.Context, input StreamAdviceInput) (<-chan adapter.ChatDelta, error) {
	if !uc.streamer.IsConfigured() {
		return nil, domainerror.ErrAdvisorNotConfigured
	}

	system := buildSystemPrompt(input)
	user := userContent(input)

	return uc.streamer.StreamChat(ctx, system, user)
}

// userContent extracts the prompt text from the latest conversation entry.
// Only a trailing user message counts; a structured content wins through its
// first "text" part. Anything unusable falls back to a synthesized prompt.
func userContent(input StreamAdviceInput) string {
	budget := input.Budget
	if budget == "" {
		budget = "Not specified"
	}
	risk := input.RiskLevel
	if risk == "" {
		risk = DefaultRiskLevel
	}
	fallback := fmt.Sprintf(
		"Based on the current market data, suggest an investment strategy for a budget of Rs.%s "+
			"with %s risk tolerance. Recommend specific stocks with allocation percentages.",
		budget, risk,
	)

	if len(input.Messages) == 0 {
		return fallback
	}
	last := input.Messages[len(input.Messages)-1]
	if last.Role != "user" {
		return fallback
	}
	for _, part := range last.Parts {
		if part.Type == "text" && part.Text != "" {
			return part.Text
		}
	}
	if last.Content != "" {
		return last.Content
	}
	return fallback
}

// buildSystemPrompt assembles the advisor persona with the caller's stock
// context, budget and risk tolerance plus the fixed output-format rules.
func buildSystemPrompt(input StreamAdviceInput) string {
	budget := input.Budget
	if budget == "" {
		budget = "Not specified"
	}
	risk := input.RiskLevel
	if risk == "" {
		risk = DefaultRiskLevel
	}

	lines := make([]string, 0, len(input.Stocks))
	for _, s := range input.Stocks {
		lines = append(lines, fmt.Sprintf(
			"%s (%s): Rs.%v, Change: %v%%, P/E: %v, Sector: %s",
			s.Symbol, s.Name, s.Price, s.Change, s.PE, s.Sector,
		))
	}
	stockContext := strings.Join(lines, "\n")
	if stockContext == "" {
		stockContext = "No stock data available"
	}

	return fmt.Sprintf(`You are an expert Indian stock market investment advisor. You provide analysis based on fundamental and technical indicators.

Current Indian Stock Market Data:
%s

User's Investment Budget: Rs.%s
Risk Tolerance: %s

Guidelines:
- Always recommend diversification across sectors
- Consider P/E ratios, market cap, and recent performance
- Provide specific allocation percentages
- Mention risks and disclaimers
- Use Indian Rupee (Rs.) for all amounts
- Be specific about which stocks to buy and why
- Always add a disclaimer that this is for educational purposes only

Output format (strict):
- Respond ONLY in valid Markdown. Your entire response will be rendered as Markdown.
- Use Markdown headers (##, ###) for sections, bullet points for lists.
- For the investment summary, use a Markdown table with columns such as: Stock Name, P/E Ratio, Allocation, Amount to Invest (Rs.).
- Use pipe (|) and hyphens for table borders. Example:
  | Stock Name | P/E Ratio | Allocation | Amount to Invest |
  | :--------- | :-------: | :--------: | ----------------: |
  | HDFC Bank  | 19.2      | 25%%       | Rs.25000         |
- Do not use raw HTML. Use only standard Markdown so the output does not break.`,
		stockContext, budget, risk)
}
