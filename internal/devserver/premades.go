package devserver

import "vitalmotion/client/internal/domain"

// Premade catalogs copied into every new account on setup. Ids are stable
// across users, like the shared source documents they are copied from.
var premadeExercises = []domain.Exercise{
	{ID: "ex-bench-press", Name: "Bench Press", Muscle: domain.MuscleChest},
	{ID: "ex-push-up", Name: "Push Up", Muscle: domain.MuscleChest},
	{ID: "ex-squat", Name: "Squat", Muscle: domain.MuscleQuadriceps},
	{ID: "ex-deadlift", Name: "Deadlift", Muscle: domain.MuscleBack},
	{ID: "ex-pull-up", Name: "Pull Up", Muscle: domain.MuscleBack},
	{ID: "ex-bicep-curl", Name: "Bicep Curl", Muscle: domain.MuscleBiceps},
	{ID: "ex-tricep-dip", Name: "Tricep Dip", Muscle: domain.MuscleTriceps},
	{ID: "ex-shoulder-press", Name: "Shoulder Press", Muscle: domain.MuscleShoulders},
	{ID: "ex-shrug", Name: "Shrug", Muscle: domain.MuscleTraps},
	{ID: "ex-wrist-curl", Name: "Wrist Curl", Muscle: domain.MuscleForearms},
	{ID: "ex-plank", Name: "Plank", Muscle: domain.MuscleAbs},
	{ID: "ex-glute-bridge", Name: "Glute Bridge", Muscle: domain.MuscleGlutes},
	{ID: "ex-leg-curl", Name: "Leg Curl", Muscle: domain.MuscleHamstrings},
}

// premadeWorkouts are template record lines referencing premade exercises.
var premadeWorkouts = [][]string{
	{
		"3|10|135|ex-bench-press",
		"3|8|0|ex-pull-up",
		"3|12|25|ex-bicep-curl",
	},
	{
		"4|8|185|ex-squat",
		"3|10|0|ex-glute-bridge",
		"3|12|60|ex-leg-curl",
	},
}
