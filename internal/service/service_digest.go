package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/nudge/internal/expiry"
	"github.com/MKhiriev/nudge/internal/logger"
	"github.com/MKhiriev/nudge/internal/store"
	"github.com/MKhiriev/nudge/models"
)

type digestService struct {
	repository store.ItemRepository
	classifier *expiry.Classifier
	logger     *logger.Logger
}

// NewDigestService counts active items across all users.
func NewDigestService(repository store.ItemRepository, classifier *expiry.Classifier, logger *logger.Logger) DigestService {
	return &digestService{repository: repository, classifier: classifier, logger: logger}
}

// CountByStatus classifies every active item and counts each bucket.
// Items with malformed dates are not counted.
func (s *digestService) CountByStatus(ctx context.Context) (map[models.Status]int, error) {
	items, err := s.repository.ListAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing active items: %w", err)
	}

	classified := make([]models.ClassifiedItem, 0, len(items))
	skipped := 0
	for _, result := range s.classifier.ClassifyEach(items) {
		if result.Err != nil {
			skipped++
			continue
		}
		classified = append(classified, result.Item)
	}
	if skipped > 0 {
		s.logger.Warn().Int("skipped", skipped).Msg("items with malformed expiry dates left out of digest")
	}

	return expiry.CountByStatus(classified), nil
}
