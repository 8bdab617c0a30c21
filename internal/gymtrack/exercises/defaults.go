package exercises

import (
	"time"

	"github.com/google/uuid"
)

type defaultExercise struct {
	name        string
	description string
	group       MuscleGroup
}

var defaultExercises = []defaultExercise{
	{"Bench Press", "Barbell chest press on a flat bench", MuscleGroupChest},
	{"Incline Bench Press", "Upper chest press on an incline bench", MuscleGroupChest},
	{"Dumbbell Fly", "Chest isolation with dumbbells", MuscleGroupChest},
	{"Cable Crossover", "Chest isolation with cables", MuscleGroupChest},

	{"Lat Pulldown", "Back exercise on the pulldown machine", MuscleGroupBack},
	{"Bent Over Row", "Back exercise with a barbell", MuscleGroupBack},
	{"One Arm Dumbbell Row", "Back exercise with a dumbbell", MuscleGroupBack},
	{"Straight Arm Pulldown", "Back exercise with cables", MuscleGroupBack},

	{"Squat", "Quadriceps exercise with a barbell", MuscleGroupLegs},
	{"Leg Press", "Quadriceps exercise on the machine", MuscleGroupLegs},
	{"Leg Extension", "Quadriceps isolation", MuscleGroupLegs},
	{"Leg Curl", "Hamstrings exercise", MuscleGroupLegs},
	{"Standing Calf Raise", "Calves exercise", MuscleGroupLegs},

	{"Overhead Press", "Shoulders press with a barbell", MuscleGroupShoulders},
	{"Lateral Raise", "Side delts isolation", MuscleGroupShoulders},
	{"Front Raise", "Front delts exercise", MuscleGroupShoulders},
	{"Upright Row", "Traps exercise", MuscleGroupShoulders},

	{"Barbell Curl", "Biceps exercise with a barbell", MuscleGroupBiceps},
	{"Alternating Dumbbell Curl", "Biceps exercise with dumbbells", MuscleGroupBiceps},

	{"Rope Pushdown", "Triceps exercise with a rope on cable", MuscleGroupTriceps},
	{"Skull Crusher", "Triceps exercise with a barbell", MuscleGroupTriceps},

	{"Crunch", "Abs exercise", MuscleGroupAbs},
	{"Oblique Crunch", "Obliques exercise", MuscleGroupAbs},
	{"Plank", "Isometric abs exercise", MuscleGroupAbs},
}

// DefaultCatalog returns the public exercises a fresh database is seeded with.
func DefaultCatalog() []Exercise {
	now := time.Now().UTC()
	catalog := make([]Exercise, 0, len(defaultExercises))
	for _, de := range defaultExercises {
		catalog = append(catalog, Exercise{
			ID:          uuid.New(),
			Name:        de.name,
			Description: de.description,
			MuscleGroup: de.group,
			IsPublic:    true,
			Status:      StatusApproved,
			CreatedAt:   now,
		})
	}
	return catalog
}
