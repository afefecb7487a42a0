package types

import (
	"encoding/json"
	"time"
)

// StringList is a list of strings that the Gamma API serves in two shapes:
// a native JSON array, or a JSON-encoded string containing an array
// ("[\"a\", \"b\"]"). Both are accepted.
type StringList []string

// UnmarshalJSON accepts either a native array or a string-encoded array.
func (s *StringList) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*s = arr
		return nil
	}

	var encoded string
	if err := json.Unmarshal(data, &encoded); err != nil {
		return err
	}
	if encoded == "" {
		*s = nil
		return nil
	}

	return json.Unmarshal([]byte(encoded), (*[]string)(s))
}

// Market represents a discovery-service market record.
// Tradeability flags use pointers so that an absent flag is distinguishable
// from an explicit false: only explicit flags disqualify a record.
type Market struct {
	ID              string     `json:"id"`
	Question        string     `json:"question"`
	Slug            string     `json:"slug"`
	Closed          bool       `json:"closed"`
	Archived        bool       `json:"archived"`
	Active          *bool      `json:"active"`
	EnableOrderBook *bool      `json:"enableOrderBook"`
	Outcomes        StringList `json:"outcomes"`
	ClobTokenIDs    StringList `json:"clobTokenIds"`
	EndDate         time.Time  `json:"endDate,omitempty"`
	Description     string     `json:"description,omitempty"`
}

// Token is one tradeable side of a binary contract.
// Outcome may be empty when the record carries token ids without labels;
// callers must then fall back to positional order.
type Token struct {
	TokenID string   `json:"token_id"`
	Outcome string   `json:"outcome"`
	Price   *float64 `json:"price,omitempty"`
}

// OutcomeTokens pairs the market's token ids with their outcome labels.
// Token ids without a matching label produce tokens with an empty Outcome.
func (m *Market) OutcomeTokens() []Token {
	tokens := make([]Token, 0, len(m.ClobTokenIDs))
	for i, id := range m.ClobTokenIDs {
		tok := Token{TokenID: id}
		if i < len(m.Outcomes) {
			tok.Outcome = m.Outcomes[i]
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// Tradeable reports whether the record's flags allow trading.
// Absent active/enableOrderBook flags count as tradeable.
func (m *Market) Tradeable() bool {
	if m.Closed || m.Archived {
		return false
	}
	if m.Active != nil && !*m.Active {
		return false
	}
	if m.EnableOrderBook != nil && !*m.EnableOrderBook {
		return false
	}
	return true
}
