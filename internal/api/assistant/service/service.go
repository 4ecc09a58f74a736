package assistantService

import (
	"OmniCalc/pkg/nlp"
	"context"

	"github.com/sirupsen/logrus"
)

type IAssistantService interface {
	ProcessQuery(ctx context.Context, query string) nlp.QueryResult
}

type assistantService struct {
	log          *logrus.Logger
	nlpProcessor nlp.INLPProcessor
}

func NewAssistantService(
	log *logrus.Logger,
	nlpProcessor nlp.INLPProcessor,
) IAssistantService {
	return &assistantService{
		log:          log,
		nlpProcessor: nlpProcessor,
	}
}
