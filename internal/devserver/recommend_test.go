package devserver

import (
	"testing"
	"time"

	"vitalmotion/client/internal/domain"

	"github.com/stretchr/testify/assert"
)

var testMuscleOf = map[string]string{
	"curl":   domain.MuscleBiceps,
	"dip":    domain.MuscleTriceps,
	"press":  domain.MuscleShoulders,
	"bench":  domain.MuscleChest,
	"row":    domain.MuscleBack,
	"squat":  domain.MuscleQuadriceps,
	"bridge": domain.MuscleGlutes,
}

func draftOf(ids ...string) []domain.ExerciseDraft {
	out := make([]domain.ExerciseDraft, len(ids))
	for i, id := range ids {
		out[i] = domain.ExerciseDraft{ExerciseID: id}
	}
	return out
}

func TestRecommendArmMajority(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	rec := recommendNext(draftOf("curl", "curl", "bench"), testMuscleOf, nil, now)

	// Two of three exercises hit arm muscles, so the draft reads as an arm
	// workout; the least-worked arm muscle comes back.
	assert.Equal(t, domain.MuscleTriceps, rec.Recommended)
	assert.Equal(t, "same", rec.Intensity)
}

func TestRecommendLegMajority(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	rec := recommendNext(draftOf("squat", "squat"), testMuscleOf, nil, now)

	assert.Equal(t, domain.MuscleGlutes, rec.Recommended)
}

func TestRecommendMidOverUpper(t *testing.T) {
	// Mid-body majority is checked before the combined upper-body group.
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	rec := recommendNext(draftOf("bench", "row"), testMuscleOf, nil, now)

	assert.Equal(t, domain.MuscleTraps, rec.Recommended)
}

func TestRecommendNoMajorityFallsBackToOverall(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	rec := recommendNext(nil, testMuscleOf, nil, now)

	assert.Equal(t, domain.MuscleAbs, rec.Recommended)
}

func TestRecommendSkipsUnknownExercises(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	rec := recommendNext(draftOf("curl", "mystery", ""), testMuscleOf, nil, now)

	// One resolvable arm exercise of a three-row draft is not a majority.
	assert.Equal(t, domain.MuscleAbs, rec.Recommended)
}

func TestRecommendIntensityFromRecentPain(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

	for _, tc := range []struct {
		name  string
		notes []domain.PainNote
		want  string
	}{
		{
			name:  "low pain pushes harder",
			notes: []domain.PainNote{{Date: "2024-01-09", BodyPart: domain.MuscleTriceps, PainLevel: 2}},
			want:  "higher",
		},
		{
			name:  "high pain backs off",
			notes: []domain.PainNote{{Date: "2024-01-09", BodyPart: domain.MuscleTriceps, PainLevel: 8}},
			want:  "lower",
		},
		{
			name:  "moderate pain holds level",
			notes: []domain.PainNote{{Date: "2024-01-09", BodyPart: domain.MuscleTriceps, PainLevel: 5}},
			want:  "same",
		},
		{
			name:  "stale pain is ignored",
			notes: []domain.PainNote{{Date: "2024-01-01", BodyPart: domain.MuscleTriceps, PainLevel: 9}},
			want:  "same",
		},
		{
			name: "most recent note wins",
			notes: []domain.PainNote{
				{Date: "2024-01-05", BodyPart: domain.MuscleTriceps, PainLevel: 9},
				{Date: "2024-01-09", BodyPart: domain.MuscleTriceps, PainLevel: 1},
			},
			want: "higher",
		},
		{
			name:  "pain elsewhere does not apply",
			notes: []domain.PainNote{{Date: "2024-01-09", BodyPart: domain.MuscleBack, PainLevel: 9}},
			want:  "same",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rec := recommendNext(draftOf("curl", "curl"), testMuscleOf, tc.notes, now)
			assert.Equal(t, domain.MuscleTriceps, rec.Recommended)
			assert.Equal(t, tc.want, rec.Intensity)
		})
	}
}
