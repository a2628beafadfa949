package domain

// Exercise is one entry in the user's exercise catalog. The catalog is owned
// by the backend; ids are opaque backend-assigned strings.
type Exercise struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Muscle string `json:"muscle,omitempty"` // e.g. "Chest", "Quadriceps"
}

// ExerciseRef is a resolved reference into the exercise catalog. Immutable
// once resolved; resolution failures carry the sentinel name instead.
type ExerciseRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Muscle group constants, matching the backend's catalog tags.
const (
	MuscleAbs        = "Abs"
	MuscleBack       = "Back"
	MuscleBiceps     = "Biceps"
	MuscleChest      = "Chest"
	MuscleForearms   = "Forearms"
	MuscleGlutes     = "Glutes"
	MuscleHamstrings = "Hamstrings"
	MuscleQuadriceps = "Quadriceps"
	MuscleShoulders  = "Shoulders"
	MuscleTraps      = "Traps"
	MuscleTriceps    = "Triceps"
)

// Muscles lists every muscle group tag, in the order the app presents them.
var Muscles = []string{
	MuscleAbs,
	MuscleBack,
	MuscleBiceps,
	MuscleChest,
	MuscleForearms,
	MuscleGlutes,
	MuscleHamstrings,
	MuscleQuadriceps,
	MuscleShoulders,
	MuscleTraps,
	MuscleTriceps,
}
