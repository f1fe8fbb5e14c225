package conversation

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phonefinder-be/internal/entity"
	"phonefinder-be/pkg/llm"
)

// scriptedProvider replays one reply or error per Chat call and records the
// history it was handed.
type scriptedProvider struct {
	replies   []string
	errs      []error
	histories [][]llm.Message
}

func (s *scriptedProvider) Chat(ctx context.Context, messages []llm.Message, opts ...llm.Option) (string, error) {
	call := len(s.histories)
	s.histories = append(s.histories, append([]llm.Message(nil), messages...))
	if call < len(s.errs) && s.errs[call] != nil {
		return "", s.errs[call]
	}
	if call < len(s.replies) {
		return s.replies[call], nil
	}
	return "ok", nil
}

func (s *scriptedProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return s.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, opts...)
}

func testRecs() []entity.Recommendation {
	return []entity.Recommendation{
		{
			Id: "pixel-9", Name: "Pixel 9", Brand: "Google",
			WhyThisPhone: "Best camera for the money.",
			Pros:         []string{"Camera", "Updates"},
			Cons:         []string{"Slow charging"},
			AvailableRetailers: []entity.Retailer{
				{Name: "Google Store", URL: "https://store.google.com"},
			},
		},
		{
			Id: "s24", Name: "Galaxy S24", Brand: "Samsung",
			WhyThisPhone: "Compact flagship.",
		},
	}
}

func newTestSession(p llm.LLMProvider) *Session {
	return Open(p, testRecs(), log.New(io.Discard, "", 0))
}

func TestOpenSeedsGreeting(t *testing.T) {
	session := newTestSession(&scriptedProvider{})

	history := session.History()
	require.Len(t, history, 1)
	assert.Equal(t, llm.RoleModel, history[0].Role)
	assert.Equal(t, Greeting, history[0].Text)
}

func TestSendAppendsUserThenModelTurn(t *testing.T) {
	provider := &scriptedProvider{replies: []string{"The Pixel 9 charges at 27W."}}
	session := newTestSession(provider)

	reply, err := session.Send(context.Background(), "How fast does the Pixel charge?")

	require.NoError(t, err)
	assert.Equal(t, "The Pixel 9 charges at 27W.", reply)

	history := session.History()
	require.Len(t, history, 3)
	assert.Equal(t, llm.RoleUser, history[1].Role)
	assert.Equal(t, llm.RoleModel, history[2].Role)
}

func TestHistoryAlternatesAfterManySends(t *testing.T) {
	session := newTestSession(&scriptedProvider{})

	for i := 0; i < 5; i++ {
		_, err := session.Send(context.Background(), "question")
		require.NoError(t, err)
	}

	history := session.History()
	// Greeting plus one user/model pair per send.
	require.Len(t, history, 11)
	for i, turn := range history {
		if i%2 == 0 {
			assert.Equal(t, llm.RoleModel, turn.Role, "turn %d", i)
		} else {
			assert.Equal(t, llm.RoleUser, turn.Role, "turn %d", i)
		}
	}
}

func TestSendFailureAppendsFallbackTurn(t *testing.T) {
	provider := &scriptedProvider{
		errs:    []error{errors.New("upstream 503"), nil},
		replies: []string{"", "Recovered answer."},
	}
	session := newTestSession(provider)

	reply, err := session.Send(context.Background(), "first question")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrChatTurn)
	assert.Equal(t, FallbackReply, reply)

	// The failed exchange still occupies a full user/model pair.
	history := session.History()
	require.Len(t, history, 3)
	assert.Equal(t, FallbackReply, history[2].Text)

	// The session stays usable after the failure.
	reply, err = session.Send(context.Background(), "second question")
	require.NoError(t, err)
	assert.Equal(t, "Recovered answer.", reply)
	assert.Len(t, session.History(), 5)
}

func TestSendPrependsBriefingToModelHistory(t *testing.T) {
	provider := &scriptedProvider{replies: []string{"sure"}}
	session := newTestSession(provider)

	_, err := session.Send(context.Background(), "hello")
	require.NoError(t, err)

	require.Len(t, provider.histories, 1)
	sent := provider.histories[0]
	require.NotEmpty(t, sent)
	assert.Equal(t, llm.RoleSystem, sent[0].Role)
	assert.Equal(t, session.Briefing(), sent[0].Content)
	// Briefing never appears in the visible history.
	for _, turn := range session.History() {
		assert.NotEqual(t, llm.RoleSystem, turn.Role)
	}
}

func TestBriefingCoversRecommendations(t *testing.T) {
	session := newTestSession(&scriptedProvider{})
	briefing := session.Briefing()

	assert.Contains(t, briefing, "1. Pixel 9 by Google")
	assert.Contains(t, briefing, "2. Galaxy S24 by Samsung")
	assert.Contains(t, briefing, "Why: Best camera for the money.")
	assert.Contains(t, briefing, "Pros: Camera; Updates")
	assert.Contains(t, briefing, "Cons: Slow charging")
	assert.Contains(t, briefing, "Retailers: Google Store")
}

func TestHistoryReturnsCopy(t *testing.T) {
	session := newTestSession(&scriptedProvider{})

	history := session.History()
	history[0].Text = "mutated"

	assert.Equal(t, Greeting, session.History()[0].Text)
}
