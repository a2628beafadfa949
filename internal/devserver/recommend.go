package devserver

import (
	"sort"
	"time"

	"vitalmotion/client/internal/domain"
)

// Muscle groupings used to infer what kind of workout a draft is.
var (
	armMuscles = []string{domain.MuscleBiceps, domain.MuscleTriceps, domain.MuscleShoulders, domain.MuscleForearms}
	midMuscles = []string{domain.MuscleBack, domain.MuscleChest, domain.MuscleTraps, domain.MuscleAbs}
	upperMuscles = []string{
		domain.MuscleBiceps, domain.MuscleTriceps, domain.MuscleShoulders,
		domain.MuscleBack, domain.MuscleChest, domain.MuscleTraps,
		domain.MuscleAbs, domain.MuscleForearms,
	}
	legMuscles = []string{domain.MuscleGlutes, domain.MuscleHamstrings, domain.MuscleQuadriceps}
)

// recommendNext infers the focus of the draft workout from the muscle
// groups of its exercises, suggests the least-worked muscle of that focus
// area, and derives an intensity hint from the most recent pain note for
// that muscle within the last seven days.
func recommendNext(draft []domain.ExerciseDraft, muscleOf map[string]string, pain []domain.PainNote, now time.Time) domain.Recommendation {
	worked := make(map[string]int, len(domain.Muscles))
	for _, m := range domain.Muscles {
		worked[m] = 0
	}
	for _, row := range draft {
		if row.ExerciseID == "" {
			continue
		}
		if muscle, ok := muscleOf[row.ExerciseID]; ok {
			worked[muscle]++
		}
	}

	arms := worked[domain.MuscleBiceps] + worked[domain.MuscleForearms] +
		worked[domain.MuscleShoulders] + worked[domain.MuscleTriceps]
	mid := worked[domain.MuscleAbs] + worked[domain.MuscleBack] +
		worked[domain.MuscleChest] + worked[domain.MuscleTraps]
	upper := arms + mid
	legs := worked[domain.MuscleGlutes] + worked[domain.MuscleHamstrings] +
		worked[domain.MuscleQuadriceps]

	majNeeded := len(draft)/2 + 1

	var recommended string
	switch {
	case arms >= majNeeded:
		recommended = leastWorked(armMuscles, worked)
	case mid >= majNeeded:
		recommended = leastWorked(midMuscles, worked)
	case upper >= majNeeded:
		recommended = leastWorked(upperMuscles, worked)
	case legs >= majNeeded:
		recommended = leastWorked(legMuscles, worked)
	default:
		recommended = leastWorked(domain.Muscles, worked)
	}

	return domain.Recommendation{
		Recommended: recommended,
		Intensity:   intensityFor(recommended, recentPain(pain, now)),
	}
}

// leastWorked picks the first muscle with the lowest count.
func leastWorked(muscles []string, worked map[string]int) string {
	best := muscles[0]
	for _, m := range muscles[1:] {
		if worked[m] < worked[best] {
			best = m
		}
	}
	return best
}

// recentPain filters notes to the last seven days, most recent first.
func recentPain(pain []domain.PainNote, now time.Time) []domain.PainNote {
	cutoff := now.AddDate(0, 0, -7)
	var recent []domain.PainNote
	for _, n := range pain {
		d, err := time.Parse("2006-01-02", n.Date)
		if err != nil {
			continue
		}
		if !d.Before(cutoff) {
			recent = append(recent, n)
		}
	}
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date > recent[j].Date
	})
	return recent
}

// intensityFor maps the most recent pain note for the muscle to an
// intensity hint: low pain invites pushing harder, high pain backing off,
// anything in between (or no note at all) staying level.
func intensityFor(muscle string, recent []domain.PainNote) string {
	for _, n := range recent {
		if n.BodyPart != muscle {
			continue
		}
		switch {
		case n.PainLevel <= 3:
			return "higher"
		case n.PainLevel >= 7:
			return "lower"
		default:
			return "same"
		}
	}
	return "same"
}
