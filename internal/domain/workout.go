package domain

// WorkoutRecord is a stored workout exactly as the backend returns it:
// each entry of Exercises is one pipe-delimited record line
// ("sets|reps|weight|exerciseId").
type WorkoutRecord struct {
	ID        string   `json:"id"`
	Exercises []string `json:"exercises"`
}

// ExercisePlan is one planned exercise of a workout template, with the
// record line decoded and the exercise name resolved. Numeric fields are
// canonical numbers here; only the input boundary deals in strings.
type ExercisePlan struct {
	ExerciseID string  `json:"eid"`
	Name       string  `json:"name"`
	Sets       int     `json:"sets"`
	Reps       int     `json:"reps"`
	Weight     float64 `json:"weight"`
}

// WorkoutTemplate is a stored, reusable workout definition. It is a
// read-only baseline: a live session copies it and never mutates it.
type WorkoutTemplate struct {
	ID        string         `json:"id"`
	Exercises []ExercisePlan `json:"exercises"`
}

// ExerciseDraft is one editable exercise row as the user works on it.
// Fields stay raw strings until submit-time validation, which is where
// numeric rules are enforced.
type ExerciseDraft struct {
	ExerciseID string `json:"eid"`
	Name       string `json:"name"`
	Sets       string `json:"sets"`
	Reps       string `json:"reps"`
	Weight     string `json:"weight"`
}

// CompletedWorkout is one finished session, in the shape the backend stores
// and returns it. Exercises are encoded record lines.
type CompletedWorkout struct {
	ID            string   `json:"id,omitempty"`
	TemplateID    string   `json:"templateId,omitempty"`
	Exercises     []string `json:"exercises"`
	Notes         string   `json:"notes"`
	Difficulty    int      `json:"difficulty"`
	DateCompleted string   `json:"dateCompleted"` // YYYY-MM-DD
}

// Recommendation is the backend's suggestion for the next exercise to add
// to a draft workout: a muscle group plus an intensity hint relative to the
// user's recent pain ("higher", "lower" or "same").
type Recommendation struct {
	Recommended string `json:"recommended"`
	Intensity   string `json:"intensity"`
}
