package assistant

import (
	"context"
)

type AssistantService interface {
	Ask(ctx context.Context, req AskRequest) (AskResponse, error)
}
