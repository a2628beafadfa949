// Package backend defines the client-side view of the remote VitalMotion
// API: one interface per concern plus the error taxonomy shared by all
// implementations. The REST implementation lives in backend/rest.
package backend

import (
	"context"

	"vitalmotion/client/internal/domain"
)

// Error constants for the backend layer. Implementations wrap transport
// detail but callers classify with errors.Is against these.
var (
	ErrNotFound     = Error("not found")
	ErrTransport    = Error("transport failure")
	ErrUnauthorized = Error("unauthorized")
)

// Error helps distinguish backend errors.
type Error string

func (e Error) Error() string {
	return string(e)
}

// WorkoutAPI manages stored workout templates and completed workouts.
type WorkoutAPI interface {
	Workouts(ctx context.Context, uid string) ([]domain.WorkoutRecord, error)
	Workout(ctx context.Context, uid, workoutID string) (*domain.WorkoutRecord, error)
	CreateWorkout(ctx context.Context, uid string, exercises []string) (string, error)
	UpdateWorkout(ctx context.Context, uid, workoutID string, exercises []string) error
	DeleteWorkout(ctx context.Context, uid, workoutID string) error
	CompleteWorkout(ctx context.Context, uid string, completed domain.CompletedWorkout) error
	// CompletedWorkouts returns completed records for one template, or for
	// every template when templateID is AllTemplates.
	CompletedWorkouts(ctx context.Context, uid, templateID string) ([]domain.CompletedWorkout, error)
}

// AllTemplates is the magic template id the backend accepts for fetching
// completed workouts across every template.
const AllTemplates = "ALL"

// ExerciseAPI reads the user's exercise catalog.
type ExerciseAPI interface {
	Exercises(ctx context.Context, uid string) ([]domain.Exercise, error)
	Exercise(ctx context.Context, uid, exerciseID string) (*domain.Exercise, error)
}

// PainAPI manages pain notes. Notes are keyed by their backend-assigned
// hash id for edit and delete.
type PainAPI interface {
	PainNotes(ctx context.Context, uid string) ([]domain.PainNote, error)
	AddPainNote(ctx context.Context, uid string, note domain.PainNote) error
	EditPainNote(ctx context.Context, uid, hashID string, painLevel int, bodyPart string) error
	RemovePainNote(ctx context.Context, uid, hashID string) error
}

// JournalAPI manages free-text journal entries.
type JournalAPI interface {
	Journals(ctx context.Context, uid string) ([]domain.Journal, error)
	AddJournal(ctx context.Context, uid string, entry domain.Journal) error
	DeleteJournal(ctx context.Context, uid, journalID string) error
}

// MedicationAPI manages medication notes.
type MedicationAPI interface {
	Medications(ctx context.Context, uid string) ([]domain.Medication, error)
	AddMedication(ctx context.Context, uid string, med domain.Medication) error
	DeleteMedication(ctx context.Context, uid, medicationID string) error
}

// RecommendAPI asks the backend for the next exercise to add to a draft
// workout, given the rows currently in the editor.
type RecommendAPI interface {
	RecommendExercise(ctx context.Context, uid string, draft []domain.ExerciseDraft) (*domain.Recommendation, error)
}

// IdentityAPI exchanges an identity-provider token for a backend uid and
// initializes the account after first sign-up.
type IdentityAPI interface {
	VerifyToken(ctx context.Context, token string) (uid string, err error)
	SetupUser(ctx context.Context, uid, firstName, lastName string) error
}
