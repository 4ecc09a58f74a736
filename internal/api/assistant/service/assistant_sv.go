package assistantService

import (
	contextPkg "OmniCalc/pkg/context"
	"OmniCalc/pkg/nlp"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

func (s *assistantService) ProcessQuery(ctx context.Context, query string) nlp.QueryResult {
	requestID := contextPkg.GetRequestID(ctx)
	startTime := time.Now()

	result := s.nlpProcessor.Classify(query)

	s.log.WithFields(logrus.Fields{
		"request_id":      requestID,
		"query_length":    len(query),
		"result_type":     result.Type,
		"calculator":      result.Calculator,
		"processing_time": time.Since(startTime).String(),
	}).Debug("Query classified")

	return result
}
