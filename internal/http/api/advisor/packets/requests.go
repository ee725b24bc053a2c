package packets

import (
	"encoding/json"
	"errors"

	"github.com/Nixie-Tech-LLC/jyotish/internal/advisor"
)

// ChartData is the subset of a /calculate_chart response that the chat
// endpoint reads back from the client.
type ChartData struct {
	Ascendant struct {
		Sign string `json:"sign"`
	} `json:"ascendant"`
	MoonIntelligence struct {
		Sign      string `json:"sign"`
		Nakshatra string `json:"nakshatra"`
	} `json:"moon_intelligence"`
	VimshottariTimeline []struct {
		Lord string `json:"lord"`
	} `json:"vimshottari_timeline"`
	Houses json.RawMessage `json:"chart_data"`
}

type ChatMessage struct {
	Role string `json:"role" binding:"required"`
	Text string `json:"text"`
}

type ChatRequest struct {
	ChartData ChartData     `json:"chart_data"`
	Question  string        `json:"question" binding:"required"`
	History   []ChatMessage `json:"history"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

// Summary extracts the chart context for the advisor. The current dasha is
// the first timeline entry.
func (d ChartData) Summary() (advisor.ChartSummary, error) {
	if d.Ascendant.Sign == "" || d.MoonIntelligence.Sign == "" {
		return advisor.ChartSummary{}, errors.New("chart_data is missing ascendant or moon_intelligence")
	}
	if len(d.VimshottariTimeline) == 0 {
		return advisor.ChartSummary{}, errors.New("chart_data has an empty vimshottari_timeline")
	}
	return advisor.ChartSummary{
		Ascendant:     d.Ascendant.Sign,
		MoonSign:      d.MoonIntelligence.Sign,
		MoonNakshatra: d.MoonIntelligence.Nakshatra,
		CurrentDasha:  d.VimshottariTimeline[0].Lord,
		Houses:        string(d.Houses),
	}, nil
}

func (r ChatRequest) Messages() []advisor.Message {
	out := make([]advisor.Message, 0, len(r.History))
	for _, m := range r.History {
		out = append(out, advisor.Message{Role: m.Role, Text: m.Text})
	}
	return out
}
