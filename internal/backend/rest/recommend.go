package rest

import (
	"context"
	"net/http"
	"net/url"

	"vitalmotion/client/internal/backend"
	"vitalmotion/client/internal/domain"
)

// RecommendExercise posts the current draft rows and returns the backend's
// suggested muscle group and intensity.
func (c *Client) RecommendExercise(ctx context.Context, uid string, draft []domain.ExerciseDraft) (*domain.Recommendation, error) {
	if draft == nil {
		draft = []domain.ExerciseDraft{}
	}
	var rec domain.Recommendation
	err := c.doJSON(ctx, http.MethodPost,
		c.url("/recommend/%s/exercise", url.PathEscape(uid)), draft, &rec)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

var _ backend.RecommendAPI = (*Client)(nil)
