package progress

import (
	"strings"
	"time"

	"github.com/2beens/gymtrack/pkg"

	"github.com/google/uuid"
)

const (
	MinSets = 1
	MaxSets = 20
	MinReps = 1
	MaxReps = 100
)

// TechniqueRating is how well the sets were executed. It is stored as an
// RPE value, so the progression rules can work with a number.
type TechniqueRating string

const (
	TechniquePoor    TechniqueRating = "poor"
	TechniqueRegular TechniqueRating = "regular"
	TechniqueGood    TechniqueRating = "good"
)

var techniqueRPE = map[TechniqueRating]int{
	TechniquePoor:    3,
	TechniqueRegular: 6,
	TechniqueGood:    9,
}

func (t TechniqueRating) Valid() bool {
	_, ok := techniqueRPE[t]
	return ok
}

func (t TechniqueRating) RPE() int {
	return techniqueRPE[t]
}

// RatingFromRPE maps a stored RPE back to the rating band it falls into.
func RatingFromRPE(rpe int) TechniqueRating {
	switch {
	case rpe >= 8:
		return TechniqueGood
	case rpe >= 4:
		return TechniqueRegular
	default:
		return TechniquePoor
	}
}

type Entry struct {
	ID                uuid.UUID       `json:"id"`
	OwnerID           uuid.UUID       `json:"owner_id"`
	WorkoutExerciseID uuid.UUID       `json:"workout_exercise_id"`
	Date              time.Time       `json:"date"`
	Weight            float64         `json:"weight"`
	Reps              int             `json:"reps"`
	Sets              int             `json:"sets"`
	RPE               *int            `json:"rpe"`
	Technique         TechniqueRating `json:"technique,omitempty"`
	Notes             string          `json:"notes"`
	CreatedAt         time.Time       `json:"created_at"`
}

func (e *Entry) setTechniqueFromRPE() {
	if e.RPE == nil {
		e.Technique = ""
		return
	}
	e.Technique = RatingFromRPE(*e.RPE)
}

type EntryParams struct {
	Weight    float64         `json:"weight"`
	Reps      int             `json:"reps"`
	Sets      int             `json:"sets"`
	Technique TechniqueRating `json:"technique"`
	Notes     string          `json:"notes"`
}

func (p *EntryParams) Validate() error {
	p.Technique = TechniqueRating(strings.ToLower(strings.TrimSpace(string(p.Technique))))
	p.Notes = strings.TrimSpace(p.Notes)

	if p.Weight <= 0 {
		return pkg.NewValidationError("weight must be greater than 0")
	}
	if p.Reps < MinReps || p.Reps > MaxReps {
		return pkg.NewValidationError("reps must be between %d and %d", MinReps, MaxReps)
	}
	if p.Sets < MinSets || p.Sets > MaxSets {
		return pkg.NewValidationError("sets must be between %d and %d", MinSets, MaxSets)
	}
	if p.Technique == "" {
		return pkg.NewValidationError("technique rating is required")
	}
	if !p.Technique.Valid() {
		return pkg.NewValidationError("invalid technique rating: %s", p.Technique)
	}
	return nil
}

type RecordParams struct {
	WorkoutExerciseID uuid.UUID `json:"workout_exercise_id"`
	EntryParams
}

func (p *RecordParams) Validate() error {
	if p.WorkoutExerciseID == uuid.Nil {
		return pkg.NewValidationError("workout exercise id is required")
	}
	return p.EntryParams.Validate()
}

// Today is the UTC calendar date, the date every new entry is recorded on.
func Today(now time.Time) time.Time {
	return pkg.DateOf(now)
}
