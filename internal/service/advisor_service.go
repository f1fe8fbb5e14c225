package service

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"phonefinder-be/internal/dto"
	"phonefinder-be/internal/entity"
	"phonefinder-be/internal/pkg/logger"
	"phonefinder-be/internal/pkg/serverutils"
	"phonefinder-be/internal/repository/memory"
	"phonefinder-be/pkg/advisor/conversation"
	"phonefinder-be/pkg/advisor/preference"
	"phonefinder-be/pkg/advisor/recommend"
	"phonefinder-be/pkg/events"
	"phonefinder-be/pkg/llm"
	pktNats "phonefinder-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
)

// IAdvisorService defines the recommendation search surface.
type IAdvisorService interface {
	SubmitPreferences(ctx context.Context, request *dto.SubmitPreferencesRequest) (*dto.SearchResultResponse, error)
	GetResults(ctx context.Context) (*dto.SearchResultResponse, error)
	ClearResults(ctx context.Context) error
}

type advisorService struct {
	client      *recommend.Client
	llmProvider llm.LLMProvider
	resultRepo  *memory.ResultRepository
	pubSub      *gochannel.GoChannel
	topicName   string
	natsPub     *pktNats.Publisher // optional, nil when NATS is not configured
	sysLogger   logger.ILogger
	llmLogger   *log.Logger

	// adoptMu serializes snapshot adoption; seq hands out search tokens so a
	// slow earlier search can never overwrite a newer one's result.
	adoptMu sync.Mutex
	seq     uint64
}

func NewAdvisorService(
	llmProvider llm.LLMProvider,
	resultRepo *memory.ResultRepository,
	pubSub *gochannel.GoChannel,
	topicName string,
	natsPub *pktNats.Publisher,
	sysLogger logger.ILogger,
) IAdvisorService {
	llmLogger := initLLMLogger()

	return &advisorService{
		client:      recommend.NewClient(llmProvider, llmLogger),
		llmProvider: llmProvider,
		resultRepo:  resultRepo,
		pubSub:      pubSub,
		topicName:   topicName,
		natsPub:     natsPub,
		sysLogger:   sysLogger,
		llmLogger:   llmLogger,
	}
}

func initLLMLogger() *log.Logger {
	logPath := filepath.Join(".", "logs", "llm_advisor.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Printf("Failed to create logs directory: %v", err)
	}
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return log.New(os.Stdout, "[LLM-ADVISOR] ", log.LstdFlags)
	}
	return log.New(file, "", log.LstdFlags)
}

// SubmitPreferences runs one search end to end: normalize, compile, fetch,
// rank, adopt the snapshot, open a fresh chat session for it and emit the
// analytics event.
func (s *advisorService) SubmitPreferences(ctx context.Context, request *dto.SubmitPreferencesRequest) (*dto.SearchResultResponse, error) {
	prefs := mapRequest(request)
	token := s.nextToken()

	recommendations, err := s.client.Fetch(ctx, prefs)
	if err != nil {
		s.sysLogger.Error("advisor", "recommendation fetch failed", map[string]interface{}{
			"error": err.Error(),
			"mode":  string(prefs.Mode),
		})
		return nil, serverutils.NewAppError(fiber.StatusServiceUnavailable, recommend.UserFacingMessage, err)
	}

	result := &entity.SearchResult{
		Sequence:        token,
		Recommendations: recommendations,
		CreatedAt:       time.Now(),
	}

	if s.adopt(result) {
		s.publishSearchCompleted(ctx, prefs, recommendations)
	} else {
		s.sysLogger.Warn("advisor", "discarding stale search result", map[string]interface{}{
			"sequence": token,
		})
	}

	return &dto.SearchResultResponse{
		Recommendations: result.Recommendations,
		CreatedAt:       result.CreatedAt,
	}, nil
}

func (s *advisorService) GetResults(_ context.Context) (*dto.SearchResultResponse, error) {
	result, found := s.resultRepo.GetResult()
	if !found {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, "No recommendations yet. Run a search first.", nil)
	}
	return &dto.SearchResultResponse{
		Recommendations: result.Recommendations,
		CreatedAt:       result.CreatedAt,
	}, nil
}

func (s *advisorService) ClearResults(_ context.Context) error {
	s.resultRepo.Clear()
	return nil
}

func (s *advisorService) nextToken() uint64 {
	s.adoptMu.Lock()
	defer s.adoptMu.Unlock()
	s.seq++
	return s.seq
}

// adopt stores the result and opens its conversation session, unless a newer
// search was issued meanwhile. Reports whether the result was adopted.
func (s *advisorService) adopt(result *entity.SearchResult) bool {
	s.adoptMu.Lock()
	defer s.adoptMu.Unlock()

	if result.Sequence != s.seq {
		return false
	}
	if stored, found := s.resultRepo.GetResult(); found && stored.Sequence > result.Sequence {
		return false
	}

	s.resultRepo.SaveResult(result)
	s.resultRepo.SaveSession(conversation.Open(s.llmProvider, result.Recommendations, s.llmLogger))
	return true
}

// publishSearchCompleted emits the event on the local bus and, when wired, to
// NATS. Publish failures are warnings only and never fail the request.
func (s *advisorService) publishSearchCompleted(ctx context.Context, prefs preference.Preferences, recommendations []entity.Recommendation) {
	event := events.NewSearchCompleted(string(prefs.Mode), len(recommendations), recommendations[0].MatchScore)

	payload, err := json.Marshal(event.Payload())
	if err != nil {
		s.sysLogger.Warn("advisor", "failed to encode search event", map[string]interface{}{"error": err.Error()})
		return
	}

	if s.pubSub != nil {
		msg := message.NewMessage(event.EventID(), payload)
		if err := s.pubSub.Publish(s.topicName, msg); err != nil {
			s.sysLogger.Warn("advisor", "failed to publish search event", map[string]interface{}{"error": err.Error()})
		}
	}

	if s.natsPub != nil {
		if err := s.natsPub.Publish(ctx, event); err != nil {
			s.sysLogger.Warn("advisor", "failed to publish search event to NATS", map[string]interface{}{"error": err.Error()})
		}
	}
}

func mapRequest(request *dto.SubmitPreferencesRequest) preference.Preferences {
	form := preference.NewFormState()
	form.Mode = preference.Mode(request.Mode)

	if request.Budget.Country != "" {
		form.SetCountry(request.Budget.Country)
	}
	if request.Budget.Currency != "" {
		form.SetCurrency(request.Budget.Currency)
	}
	if request.Budget.Max > 0 {
		form.MaxBudget = request.Budget.Max
	}
	form.Unlimited = request.Budget.Unlimited
	form.PrioritizePremium = request.PrioritizePremium

	for _, brand := range request.Brands {
		form.ToggleBrand(brand)
	}

	if p := preference.Priority(request.CameraPriority); p != "" {
		form.CameraPriority = p
	}
	if p := preference.Priority(request.BatteryPriority); p != "" {
		form.BatteryPriority = p
	}
	if p := preference.Priority(request.UpdatesPriority); p != "" {
		form.UpdatesPriority = p
	}

	switch form.Mode {
	case preference.ModeCasual:
		for _, goal := range request.Goals {
			form.ToggleGoal(preference.Goal(goal))
		}
	case preference.ModeExpert:
		if specs := request.Expert; specs != nil {
			if specs.Processor != "" {
				form.Expert.Processor = preference.ProcessorTier(specs.Processor)
			}
			if specs.Gaming != "" {
				form.Expert.Gaming = preference.GamingTier(specs.Gaming)
			}
			if specs.MinRAMStorage != "" {
				form.Expert.MinRAMStorage = specs.MinRAMStorage
			}
			form.Expert.Require5G = specs.Require5G
			if specs.Display != "" {
				form.Expert.Display = preference.DisplayType(specs.Display)
			}
			if specs.Audio != "" {
				form.Expert.Audio = preference.AudioType(specs.Audio)
			}
			if specs.Build != "" {
				form.Expert.Build = preference.BuildMaterial(specs.Build)
			}
		}
	}

	return form.Normalize()
}
