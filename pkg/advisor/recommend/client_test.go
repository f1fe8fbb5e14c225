package recommend

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phonefinder-be/pkg/advisor/preference"
	"phonefinder-be/pkg/llm"
)

// fakeProvider returns a canned response or error for every call.
type fakeProvider struct {
	response string
	err      error
	calls    int
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeProvider) Chat(ctx context.Context, messages []llm.Message, opts ...llm.Option) (string, error) {
	return f.Generate(ctx, "", opts...)
}

func newTestClient(p llm.LLMProvider) *Client {
	return NewClient(p, log.New(io.Discard, "", 0))
}

func testPrefs() preference.Preferences {
	return preference.NewFormState().Normalize()
}

const validRecord = `{
	"id": "pixel-9", "name": "Pixel 9", "brand": "Google",
	"priceEstimate": "$799", "display": "6.3\" OLED", "processor": "Tensor G4",
	"camera": "50MP", "battery": "4700mAh", "whyThisPhone": "Great camera value.",
	"keyFeatures": ["AI features"], "pros": ["Camera", "Updates", "Size"],
	"cons": ["Charging speed", "No charger"], "bestUseCase": "Photography",
	"matchScore": 88,
	"availableRetailers": [{"name": "Google Store", "url": "https://store.google.com"}]
}`

func TestFetchTransportError(t *testing.T) {
	provider := &fakeProvider{err: errors.New("connection refused")}
	client := newTestClient(provider)

	_, err := client.Fetch(context.Background(), testPrefs())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.NotErrorIs(t, err, ErrMalformedResponse)
}

func TestFetchMalformedResponses(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{name: "empty text", response: ""},
		{name: "whitespace only", response: "   \n  "},
		{name: "not json", response: "I recommend the Pixel 9, it is great."},
		{name: "missing recommendations key", response: `{"devices": []}`},
		{name: "empty recommendations list", response: `{"recommendations": []}`},
		{
			name:     "all records invalid",
			response: `{"recommendations": [{"name": "Pixel 9", "matchScore": 90}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(&fakeProvider{response: tt.response})

			_, err := client.Fetch(context.Background(), testPrefs())

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestFetchTrimsCodeFence(t *testing.T) {
	fenced := "```json\n{\"recommendations\": [" + validRecord + "]}\n```"
	client := newTestClient(&fakeProvider{response: fenced})

	recs, err := client.Fetch(context.Background(), testPrefs())

	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Pixel 9", recs[0].Name)
}

func TestFetchDropsPartialRecords(t *testing.T) {
	// One complete record plus one missing its rationale field.
	response := `{"recommendations": [` + validRecord + `,
		{"id": "x-1", "name": "Phone X", "brand": "XCorp", "matchScore": 99}
	]}`
	client := newTestClient(&fakeProvider{response: response})

	recs, err := client.Fetch(context.Background(), testPrefs())

	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "pixel-9", recs[0].Id)
}

func TestFetchClampsMatchScore(t *testing.T) {
	response := `{"recommendations": [
		{"id": "a", "name": "A", "brand": "B1", "whyThisPhone": "w", "matchScore": 150},
		{"id": "b", "name": "B", "brand": "B2", "whyThisPhone": "w", "matchScore": -20},
		{"id": "c", "name": "C", "brand": "B3", "whyThisPhone": "w", "matchScore": 42.5}
	]}`
	client := newTestClient(&fakeProvider{response: response})

	recs, err := client.Fetch(context.Background(), testPrefs())

	require.NoError(t, err)
	require.Len(t, recs, 3)
	scores := map[string]float64{}
	for _, r := range recs {
		scores[r.Id] = r.MatchScore
	}
	assert.Equal(t, float64(100), scores["a"])
	assert.Equal(t, float64(0), scores["b"])
	assert.Equal(t, 42.5, scores["c"])
}

func TestFetchSortsDescendingStable(t *testing.T) {
	response := `{"recommendations": [
		{"id": "low", "name": "Low", "brand": "B", "whyThisPhone": "w", "matchScore": 40},
		{"id": "tie-first", "name": "T1", "brand": "B", "whyThisPhone": "w", "matchScore": 85},
		{"id": "high", "name": "High", "brand": "B", "whyThisPhone": "w", "matchScore": 95},
		{"id": "tie-second", "name": "T2", "brand": "B", "whyThisPhone": "w", "matchScore": 85}
	]}`
	client := newTestClient(&fakeProvider{response: response})

	recs, err := client.Fetch(context.Background(), testPrefs())

	require.NoError(t, err)
	require.Len(t, recs, 4)
	ids := []string{recs[0].Id, recs[1].Id, recs[2].Id, recs[3].Id}
	assert.Equal(t, []string{"high", "tie-first", "tie-second", "low"}, ids)
}

func TestFetchNormalizesNilSlices(t *testing.T) {
	response := `{"recommendations": [
		{"id": "a", "name": "A", "brand": "B", "whyThisPhone": "w", "matchScore": 70}
	]}`
	client := newTestClient(&fakeProvider{response: response})

	recs, err := client.Fetch(context.Background(), testPrefs())

	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.NotNil(t, recs[0].Pros)
	assert.NotNil(t, recs[0].Cons)
	assert.NotNil(t, recs[0].KeyFeatures)
	assert.NotNil(t, recs[0].AvailableRetailers)
}

func TestFetchSingleRequestPerCall(t *testing.T) {
	provider := &fakeProvider{err: errors.New("boom")}
	client := newTestClient(provider)

	_, err := client.Fetch(context.Background(), testPrefs())

	require.Error(t, err)
	assert.Equal(t, 1, provider.calls, "no automatic retries")
}
