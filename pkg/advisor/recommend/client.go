package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"

	"phonefinder-be/internal/entity"
	"phonefinder-be/pkg/advisor/preference"
	"phonefinder-be/pkg/advisor/prompt"
	"phonefinder-be/pkg/llm"
)

// Client issues one recommendation request per call against an injected LLM
// provider and validates the response before anything crosses into the rest of
// the system. No automatic retries: a retry is a user-initiated re-submission.
type Client struct {
	provider llm.LLMProvider
	logger   *log.Logger
}

func NewClient(provider llm.LLMProvider, logger *log.Logger) *Client {
	return &Client{
		provider: provider,
		logger:   logger,
	}
}

type wireResponse struct {
	Recommendations []entity.Recommendation `json:"recommendations"`
}

// Fetch compiles the preferences, performs a single model request and returns
// the validated, ranked recommendation list. Failures are classified as
// ErrTransport or ErrMalformedResponse; both collapse to the same user-facing
// message upstream.
func (c *Client) Fetch(ctx context.Context, prefs preference.Preferences) ([]entity.Recommendation, error) {
	instruction, schema := prompt.Compile(prefs)

	raw, err := c.provider.Generate(ctx, instruction,
		llm.WithResponseSchema(schema),
		llm.WithTemperature(0.7),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	text := trimCodeFence(raw)
	if text == "" {
		return nil, fmt.Errorf("%w: empty response text", ErrMalformedResponse)
	}

	var parsed wireResponse
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if len(parsed.Recommendations) == 0 {
		return nil, fmt.Errorf("%w: missing or empty recommendations list", ErrMalformedResponse)
	}

	valid := c.validateRecords(parsed.Recommendations)
	if len(valid) == 0 {
		return nil, fmt.Errorf("%w: no valid records after validation", ErrMalformedResponse)
	}

	// Rank descending by score, stable on ties so response order breaks them.
	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].MatchScore > valid[j].MatchScore
	})

	return valid, nil
}

// validateRecords applies the lenient per-record policy: a record missing a
// required identity or rationale field is dropped, not the whole batch.
func (c *Client) validateRecords(records []entity.Recommendation) []entity.Recommendation {
	valid := make([]entity.Recommendation, 0, len(records))
	for _, rec := range records {
		if missing := missingFields(rec); missing != "" {
			c.logger.Printf("[WARN] dropping partial record %q: missing %s", rec.Name, missing)
			continue
		}
		rec.MatchScore = clampScore(rec.MatchScore)
		if rec.KeyFeatures == nil {
			rec.KeyFeatures = []string{}
		}
		if rec.Pros == nil {
			rec.Pros = []string{}
		}
		if rec.Cons == nil {
			rec.Cons = []string{}
		}
		if rec.AvailableRetailers == nil {
			rec.AvailableRetailers = []entity.Retailer{}
		}
		valid = append(valid, rec)
	}
	return valid
}

func missingFields(rec entity.Recommendation) string {
	var missing []string
	if rec.Id == "" {
		missing = append(missing, "id")
	}
	if rec.Name == "" {
		missing = append(missing, "name")
	}
	if rec.Brand == "" {
		missing = append(missing, "brand")
	}
	if rec.WhyThisPhone == "" {
		missing = append(missing, "whyThisPhone")
	}
	return strings.Join(missing, ", ")
}

// clampScore forces the advisory score into [0,100]; out-of-range values are
// repaired rather than rejected since the score is not identity-bearing.
func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// trimCodeFence strips a markdown ```json wrapper the model sometimes adds
// despite the JSON mime type.
func trimCodeFence(raw string) string {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
