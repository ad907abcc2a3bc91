package assistant

import (
	"context"

	"github.com/hr-core/hr-core-go/internal/domain/assistant"
	"github.com/hr-core/hr-core-go/internal/pkg/advisory"
)

type AssistantServiceImpl struct {
	client advisory.Client
}

func NewAssistantService(client advisory.Client) assistant.AssistantService {
	return &AssistantServiceImpl{client: client}
}

// Ask implements assistant.AssistantService.
func (s *AssistantServiceImpl) Ask(ctx context.Context, req assistant.AskRequest) (assistant.AskResponse, error) {
	if err := req.Validate(); err != nil {
		return assistant.AskResponse{}, err
	}

	answer, err := s.client.Generate(ctx, req.Prompt)
	if err != nil {
		return assistant.AskResponse{}, err
	}
	return assistant.AskResponse{Answer: answer}, nil
}
