package rest

import (
	"context"
	"net/http"
	"net/url"

	"vitalmotion/client/internal/backend"
	"vitalmotion/client/internal/domain"
)

// Exercises lists the user's full exercise catalog.
func (c *Client) Exercises(ctx context.Context, uid string) ([]domain.Exercise, error) {
	var exercises []domain.Exercise
	err := c.doJSON(ctx, http.MethodGet, c.url("/users/%s/exercises", url.PathEscape(uid)), nil, &exercises)
	if err != nil {
		return nil, err
	}
	return exercises, nil
}

// Exercise fetches one catalog entry. Resolved names are immutable, so they
// are cached and repeated lookups for the same id skip the network.
func (c *Client) Exercise(ctx context.Context, uid, exerciseID string) (*domain.Exercise, error) {
	cacheKey := []byte(uid + "::" + exerciseID)
	if cached, err := c.names.Get(cacheKey); err == nil {
		return &domain.Exercise{ID: exerciseID, Name: string(cached)}, nil
	}

	var ex domain.Exercise
	err := c.doJSON(ctx, http.MethodGet,
		c.url("/users/%s/exercises/%s", url.PathEscape(uid), url.PathEscape(exerciseID)), nil, &ex)
	if err != nil {
		return nil, err
	}

	// Best effort; a full cache just means another lookup later.
	_ = c.names.Set(cacheKey, []byte(ex.Name), 0)
	return &ex, nil
}

var _ backend.ExerciseAPI = (*Client)(nil)
