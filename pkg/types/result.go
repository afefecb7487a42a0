package types

// Diagnostics is the per-resolution trail returned alongside every result.
// It is created fresh for each call and never shared between resolutions;
// upstream indexing lag is a normal failure mode, so callers need to see
// which candidates were tried and why the last one failed.
type Diagnostics struct {
	ResolutionID string   `json:"resolution_id"`
	Strategy     string   `json:"strategy"`
	WindowStart  int64    `json:"window_start"`
	Tried        []string `json:"tried"`
	LastError    string   `json:"last_error,omitempty"`
	Notes        []string `json:"notes,omitempty"`
}

// Record appends a tried candidate identifier to the trail.
func (d *Diagnostics) Record(candidate string) {
	d.Tried = append(d.Tried, candidate)
}

// RecordError stores err as the most recent failure on the trail.
func (d *Diagnostics) RecordError(err error) {
	if err != nil {
		d.LastError = err.Error()
	}
}

// Note appends a free-form annotation, e.g. that outcome labels were absent
// and up/down assignment fell back to positional order.
func (d *Diagnostics) Note(note string) {
	d.Notes = append(d.Notes, note)
}

// Result is the outcome of one resolution call.
// On success the market fields are set and prices carry the implied
// probabilities; a nil price means that side's price was unavailable, which
// does not make the resolution a failure. On failure Found is false and the
// diagnostics explain which candidates were tried.
type Result struct {
	Found       bool         `json:"found"`
	MarketTitle string       `json:"market_title,omitempty"`
	MarketSlug  string       `json:"market_slug,omitempty"`
	UpToken     string       `json:"up_token,omitempty"`
	DownToken   string       `json:"down_token,omitempty"`
	UpPrice     *float64     `json:"up_price"`
	DownPrice   *float64     `json:"down_price"`
	Diagnostics *Diagnostics `json:"diagnostics"`
}
