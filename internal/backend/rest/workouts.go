package rest

import (
	"context"
	"net/http"
	"net/url"

	"vitalmotion/client/internal/backend"
	"vitalmotion/client/internal/domain"
)

// workoutPayload is the body for creating or updating a template: encoded
// record lines only.
type workoutPayload struct {
	Exercises []string `json:"exercises"`
}

type createWorkoutResponse struct {
	ID string `json:"id"`
}

// Workouts lists the user's stored workout templates, undecoded.
func (c *Client) Workouts(ctx context.Context, uid string) ([]domain.WorkoutRecord, error) {
	var records []domain.WorkoutRecord
	err := c.doJSON(ctx, http.MethodGet, c.url("/users/%s/workouts", url.PathEscape(uid)), nil, &records)
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Workout fetches a single stored template.
func (c *Client) Workout(ctx context.Context, uid, workoutID string) (*domain.WorkoutRecord, error) {
	var rec domain.WorkoutRecord
	err := c.doJSON(ctx, http.MethodGet,
		c.url("/users/%s/workouts/%s", url.PathEscape(uid), url.PathEscape(workoutID)), nil, &rec)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// CreateWorkout stores a new template and returns its id.
func (c *Client) CreateWorkout(ctx context.Context, uid string, exercises []string) (string, error) {
	var created createWorkoutResponse
	err := c.doJSON(ctx, http.MethodPost,
		c.url("/users/%s/workouts", url.PathEscape(uid)),
		workoutPayload{Exercises: exercises}, &created)
	if err != nil {
		return "", err
	}
	return created.ID, nil
}

// UpdateWorkout replaces the exercise lines of an existing template.
func (c *Client) UpdateWorkout(ctx context.Context, uid, workoutID string, exercises []string) error {
	return c.doJSON(ctx, http.MethodPut,
		c.url("/users/%s/workouts/%s", url.PathEscape(uid), url.PathEscape(workoutID)),
		workoutPayload{Exercises: exercises}, nil)
}

// DeleteWorkout removes a template (and, server-side, its completed
// records).
func (c *Client) DeleteWorkout(ctx context.Context, uid, workoutID string) error {
	return c.doJSON(ctx, http.MethodDelete,
		c.url("/users/%s/workouts/%s", url.PathEscape(uid), url.PathEscape(workoutID)), nil, nil)
}

// CompleteWorkout records one finished session under its template.
func (c *Client) CompleteWorkout(ctx context.Context, uid string, completed domain.CompletedWorkout) error {
	templateID := completed.TemplateID
	payload := completed
	payload.TemplateID = "" // carried in the path, not the body
	return c.doJSON(ctx, http.MethodPost,
		c.url("/users/%s/workouts/%s/completed", url.PathEscape(uid), url.PathEscape(templateID)),
		payload, nil)
}

// CompletedWorkouts fetches completed records for one template, or across
// all templates with backend.AllTemplates.
func (c *Client) CompletedWorkouts(ctx context.Context, uid, templateID string) ([]domain.CompletedWorkout, error) {
	var completed []domain.CompletedWorkout
	err := c.doJSON(ctx, http.MethodGet,
		c.url("/users/%s/workouts/%s/completed", url.PathEscape(uid), url.PathEscape(templateID)), nil, &completed)
	if err != nil {
		return nil, err
	}
	return completed, nil
}

var _ backend.WorkoutAPI = (*Client)(nil)
