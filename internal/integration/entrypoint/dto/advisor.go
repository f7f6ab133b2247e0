// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"encoding/json"

	"github.com/pensive/backend/internal/application/usecase/advisor"
)

// AdvisorRequest represents the body of an advisory stream request.
type AdvisorRequest struct {
	Stocks    []AdvisorStock   `json:"stocks"`
	Budget    string           `json:"budget"`
	RiskLevel string           `json:"riskLevel"`
	Messages  []AdvisorMessage `json:"messages"`
}

// AdvisorStock is one quote row of the caller's market context.
type AdvisorStock struct {
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Sector string  `json:"sector"`
	Price  float64 `json:"price"`
	Change float64 `json:"change"`
	PE     float64 `json:"pe"`
}

// AdvisorMessagePart is one typed fragment of structured message content.
type AdvisorMessagePart struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// AdvisorMessage is one conversation entry. Clients send content either as
// a plain string or as a list of typed parts (some also use a separate
// "parts" key); unmarshalling resolves both into one tagged shape.
type AdvisorMessage struct {
	Role    string
	Content string
	Parts   []AdvisorMessagePart
}

// UnmarshalJSON implements the tagged-variant decoding for AdvisorMessage.
func (m *AdvisorMessage) UnmarshalJSON(data []byte) error {
	var raw struct {
		Role    string          `json:"role"`
		Content json.RawMessage `json:"content"`
		Parts   json.RawMessage `json:"parts"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	m.Role = raw.Role
	m.Content = ""
	m.Parts = nil

	if len(raw.Content) > 0 {
		var text string
		if err := json.Unmarshal(raw.Content, &text); err == nil {
			m.Content = text
			return nil
		}
		var parts []AdvisorMessagePart
		if err := json.Unmarshal(raw.Content, &parts); err == nil {
			m.Parts = parts
			return nil
		}
	}

	if len(raw.Parts) > 0 {
		var parts []AdvisorMessagePart
		if err := json.Unmarshal(raw.Parts, &parts); err == nil {
			m.Parts = parts
		}
	}

	return nil
}

// StreamEventPart is the JSON envelope of one server-sent token event.
type StreamEventPart struct {
	Type      string `json:"type"`
	TextDelta string `json:"textDelta"`
}

// ToStreamAdviceInput converts an AdvisorRequest to the use case input.
func (r *AdvisorRequest) ToStreamAdviceInput() advisor.StreamAdviceInput {
	stocks := make([]advisor.StockContext, len(r.Stocks))
	for i, s := range r.Stocks {
		stocks[i] = advisor.StockContext{
			Symbol: s.Symbol,
			Name:   s.Name,
			Sector: s.Sector,
			Price:  s.Price,
			Change: s.Change,
			PE:     s.PE,
		}
	}

	messages := make([]advisor.Message, len(r.Messages))
	for i, m := range r.Messages {
		parts := make([]advisor.MessagePart, len(m.Parts))
		for j, p := range m.Parts {
			parts[j] = advisor.MessagePart{Type: p.Type, Text: p.Text}
		}
		messages[i] = advisor.Message{
			Role:    m.Role,
			Content: m.Content,
			Parts:   parts,
		}
	}

	return advisor.StreamAdviceInput{
		Stocks:    stocks,
		Budget:    r.Budget,
		RiskLevel: r.RiskLevel,
		Messages:  messages,
	}
}
