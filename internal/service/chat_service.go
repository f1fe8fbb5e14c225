package service

import (
	"context"
	"errors"

	"phonefinder-be/internal/dto"
	"phonefinder-be/internal/pkg/logger"
	"phonefinder-be/internal/pkg/serverutils"
	"phonefinder-be/internal/repository/memory"
	"phonefinder-be/pkg/advisor/conversation"

	"github.com/gofiber/fiber/v2"
)

// IChatService exposes the follow-up conversation over the current
// recommendation snapshot.
type IChatService interface {
	OpenChat(ctx context.Context) (*dto.OpenChatResponse, error)
	SendChat(ctx context.Context, request *dto.SendChatRequest) (*dto.SendChatResponse, error)
}

type chatService struct {
	resultRepo *memory.ResultRepository
	sysLogger  logger.ILogger
}

func NewChatService(resultRepo *memory.ResultRepository, sysLogger logger.ILogger) IChatService {
	return &chatService{
		resultRepo: resultRepo,
		sysLogger:  sysLogger,
	}
}

func (s *chatService) OpenChat(_ context.Context) (*dto.OpenChatResponse, error) {
	session, found := s.resultRepo.GetSession()
	if !found {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, "No recommendations to chat about yet. Run a search first.", nil)
	}

	return &dto.OpenChatResponse{
		Greeting: conversation.Greeting,
		History:  session.History(),
	}, nil
}

func (s *chatService) SendChat(ctx context.Context, request *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	session, found := s.resultRepo.GetSession()
	if !found {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, "No recommendations to chat about yet. Run a search first.", nil)
	}

	reply, err := session.Send(ctx, request.Chat)
	if err != nil {
		if !errors.Is(err, conversation.ErrChatTurn) {
			return nil, serverutils.NewAppError(fiber.StatusInternalServerError, "Something went wrong. Please try again.", err)
		}
		// A failed turn is recovered inside the session with a fallback
		// reply; the exchange still succeeds from the caller's view.
		s.sysLogger.Warn("chat", "chat turn failed, fallback reply used", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return &dto.SendChatResponse{
		Reply:   reply,
		History: session.History(),
	}, nil
}
