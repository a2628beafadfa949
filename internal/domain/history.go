package domain

// HistoryEntryType tags the two record streams merged into the history feed.
type HistoryEntryType string

const (
	HistoryWorkout HistoryEntryType = "workout"
	HistoryPain    HistoryEntryType = "pain"
)

// ExercisePerformance is one performed exercise inside a workout history
// entry, with the name resolved for display.
type ExercisePerformance struct {
	Name   string `json:"name"`
	Sets   string `json:"sets"`
	Reps   string `json:"reps"`
	Weight string `json:"weight"`
}

// HistoryEntry is one item of the merged timeline. It is a derived view
// model: produced by the aggregator, never persisted. Exactly the fields of
// the tagged type are populated.
type HistoryEntry struct {
	Type HistoryEntryType `json:"type"`
	Date string           `json:"date"` // YYYY-MM-DD

	// Type == HistoryWorkout
	Notes      string                `json:"notes,omitempty"`
	Difficulty int                   `json:"difficulty,omitempty"`
	Exercises  []ExercisePerformance `json:"exercises,omitempty"`

	// Type == HistoryPain
	PainLevel int    `json:"pain_level,omitempty"`
	BodyPart  string `json:"body_part,omitempty"`
}

// WorkoutEntry builds the history view of a completed workout.
func WorkoutEntry(w CompletedWorkout, exercises []ExercisePerformance) HistoryEntry {
	return HistoryEntry{
		Type:       HistoryWorkout,
		Date:       w.DateCompleted,
		Notes:      w.Notes,
		Difficulty: w.Difficulty,
		Exercises:  exercises,
	}
}

// PainEntry builds the history view of a pain note.
func PainEntry(n PainNote) HistoryEntry {
	return HistoryEntry{
		Type:      HistoryPain,
		Date:      n.Date,
		PainLevel: n.PainLevel,
		BodyPart:  n.BodyPart,
	}
}
