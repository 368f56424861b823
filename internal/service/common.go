package service

import (
	"context"
	"fmt"
	"time"

	"tournament-backend/internal/database/models"
	apperrors "tournament-backend/internal/errors"
	"tournament-backend/internal/events"
	"tournament-backend/internal/logger"
	"tournament-backend/internal/repository"
)

// publish sends a roster event. Failures are logged; the committed change stands.
func publish(ctx context.Context, publisher events.Publisher, eventType string, payload interface{}, at time.Time) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, events.New(eventType, payload, at)); err != nil {
		logger.WithContext(ctx).WithField("event_type", eventType).Warnf("failed to publish roster event: %v", err)
	}
}

// logFailure logs infrastructure errors and passes every error through unchanged
func logFailure(ctx context.Context, operation string, err error) error {
	if err == nil || apperrors.IsNotFound(err) || apperrors.IsAlreadyExists(err) ||
		apperrors.IsValidation(err) || apperrors.IsConfiguration(err) {
		return err
	}
	logger.WithContext(ctx).WithField("operation", operation).Errorf("%v", err)
	return err
}

// teamIndex loads the teams referenced by players into an id-keyed lookup
func teamIndex(ctx context.Context, teams repository.TeamRepositoryInterface, players []models.Player) (map[int64]*models.Team, error) {
	seen := make(map[int64]struct{}, len(players))
	ids := make([]int64, 0, len(players))
	for _, p := range players {
		if _, ok := seen[p.TeamID]; ok {
			continue
		}
		seen[p.TeamID] = struct{}{}
		ids = append(ids, p.TeamID)
	}

	index := make(map[int64]*models.Team, len(ids))
	if len(ids) == 0 {
		return index, nil
	}

	found, err := teams.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load teams: %w", err)
	}
	for i := range found {
		index[found[i].ID] = &found[i]
	}
	return index, nil
}
