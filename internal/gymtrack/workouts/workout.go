package workouts

import (
	"strings"
	"time"

	"github.com/2beens/gymtrack/pkg"

	"github.com/google/uuid"
)

const (
	MinSets     = 1
	MaxSets     = 20
	MinReps     = 1
	MaxReps     = 100
	MinRestTime = 0
	MaxRestTime = 600
)

type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

var daysOfWeek = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func (d DayOfWeek) Valid() bool {
	for _, day := range daysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}

// weekIndex orders days from monday (0) to sunday (6), unknown days last.
func (d DayOfWeek) weekIndex() int {
	for i, day := range daysOfWeek {
		if d == day {
			return i
		}
	}
	return len(daysOfWeek)
}

type Workout struct {
	ID          uuid.UUID         `json:"id"`
	OwnerID     uuid.UUID         `json:"owner_id"`
	Name        string            `json:"name"`
	DayOfWeek   DayOfWeek         `json:"day_of_week"`
	Description string            `json:"description"`
	IsActive    bool              `json:"is_active"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	Exercises   []WorkoutExercise `json:"exercises"`
}

type WorkoutExercise struct {
	ID           uuid.UUID `json:"id"`
	WorkoutID    uuid.UUID `json:"workout_id"`
	ExerciseID   uuid.UUID `json:"exercise_id"`
	ExerciseName string    `json:"exercise_name,omitempty"`
	MuscleGroup  string    `json:"muscle_group,omitempty"`
	Sets         int       `json:"sets"`
	Reps         int       `json:"reps"`
	RestTime     int       `json:"rest_time"`
	OrderNumber  int       `json:"order_number"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
}

// ExerciseParams describes one exercise of a workout, as submitted by the client.
// ID is set only when an existing workout exercise is kept on update.
type ExerciseParams struct {
	ID         *uuid.UUID `json:"id,omitempty"`
	ExerciseID uuid.UUID  `json:"exercise_id"`
	Sets       int        `json:"sets"`
	Reps       int        `json:"reps"`
	RestTime   int        `json:"rest_time"`
	Notes      string     `json:"notes"`
}

func (p ExerciseParams) Validate() error {
	if p.ExerciseID == uuid.Nil {
		return pkg.NewValidationError("exercise id is required")
	}
	return validateVolume(p.Sets, p.Reps, p.RestTime)
}

func validateVolume(sets, reps, restTime int) error {
	if sets < MinSets || sets > MaxSets {
		return pkg.NewValidationError("sets must be between %d and %d", MinSets, MaxSets)
	}
	if reps < MinReps || reps > MaxReps {
		return pkg.NewValidationError("reps must be between %d and %d", MinReps, MaxReps)
	}
	if restTime < MinRestTime || restTime > MaxRestTime {
		return pkg.NewValidationError("rest time must be between %d and %d seconds", MinRestTime, MaxRestTime)
	}
	return nil
}

type WorkoutParams struct {
	Name        string    `json:"name"`
	DayOfWeek   DayOfWeek `json:"day_of_week"`
	Description string    `json:"description"`
	IsActive    *bool     `json:"is_active,omitempty"`
	// Exercises nil keeps the current list on update, empty clears it.
	Exercises []ExerciseParams `json:"exercises"`
}

func (p *WorkoutParams) Validate() error {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)
	p.DayOfWeek = DayOfWeek(strings.ToLower(strings.TrimSpace(string(p.DayOfWeek))))

	if p.Name == "" {
		return pkg.NewValidationError("workout name is required")
	}
	if len(p.Name) > 120 {
		return pkg.NewValidationError("workout name too long")
	}
	if p.DayOfWeek == "" {
		return pkg.NewValidationError("day of week is required")
	}
	if !p.DayOfWeek.Valid() {
		return pkg.NewValidationError("invalid day of week: %s", p.DayOfWeek)
	}

	seen := make(map[uuid.UUID]bool)
	for i, e := range p.Exercises {
		if err := e.Validate(); err != nil {
			return pkg.NewValidationError("exercise #%d: %s", i+1, pkg.ValidationMessage(err))
		}
		if e.ID != nil {
			if seen[*e.ID] {
				return pkg.NewValidationError("exercise #%d: duplicate id %s", i+1, e.ID)
			}
			seen[*e.ID] = true
		}
	}
	return nil
}

func (p *WorkoutParams) active() bool {
	if p.IsActive == nil {
		return true
	}
	return *p.IsActive
}

type WorkoutExerciseParams struct {
	Sets     int    `json:"sets"`
	Reps     int    `json:"reps"`
	RestTime int    `json:"rest_time"`
	Notes    string `json:"notes"`
}

func (p WorkoutExerciseParams) Validate() error {
	return validateVolume(p.Sets, p.Reps, p.RestTime)
}
