package exercises

import (
	"strings"
	"time"

	"github.com/2beens/gymtrack/pkg"

	"github.com/google/uuid"
)

type MuscleGroup string

const (
	MuscleGroupChest     MuscleGroup = "chest"
	MuscleGroupBack      MuscleGroup = "back"
	MuscleGroupShoulders MuscleGroup = "shoulders"
	MuscleGroupBiceps    MuscleGroup = "biceps"
	MuscleGroupTriceps   MuscleGroup = "triceps"
	MuscleGroupLegs      MuscleGroup = "legs"
	MuscleGroupGlutes    MuscleGroup = "glutes"
	MuscleGroupAbs       MuscleGroup = "abs"
	MuscleGroupCardio    MuscleGroup = "cardio"
	MuscleGroupFullBody  MuscleGroup = "full_body"
	MuscleGroupOther     MuscleGroup = "other"
)

var muscleGroups = []MuscleGroup{
	MuscleGroupChest,
	MuscleGroupBack,
	MuscleGroupShoulders,
	MuscleGroupBiceps,
	MuscleGroupTriceps,
	MuscleGroupLegs,
	MuscleGroupGlutes,
	MuscleGroupAbs,
	MuscleGroupCardio,
	MuscleGroupFullBody,
	MuscleGroupOther,
}

func MuscleGroups() []MuscleGroup {
	groups := make([]MuscleGroup, len(muscleGroups))
	copy(groups, muscleGroups)
	return groups
}

func (g MuscleGroup) Valid() bool {
	for _, mg := range muscleGroups {
		if g == mg {
			return true
		}
	}
	return false
}

func ParseMuscleGroup(s string) (MuscleGroup, error) {
	g := MuscleGroup(strings.ToLower(strings.TrimSpace(s)))
	if !g.Valid() {
		return "", pkg.NewValidationError("invalid muscle group: %s", s)
	}
	return g, nil
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type Exercise struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	MuscleGroup MuscleGroup `json:"muscle_group"`
	IsPublic    bool        `json:"is_public"`
	Status      Status      `json:"status"`
	OwnerID     *uuid.UUID  `json:"owner_id,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

// VisibleTo reports whether the user can see the exercise: public ones are
// visible to everybody, the rest only to their owner.
func (e Exercise) VisibleTo(userID uuid.UUID) bool {
	if e.IsPublic {
		return true
	}
	return e.OwnerID != nil && *e.OwnerID == userID
}

type SuggestParams struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	MuscleGroup string `json:"muscle_group"`
}

func (p SuggestParams) Validate() (MuscleGroup, error) {
	if strings.TrimSpace(p.Name) == "" {
		return "", pkg.NewValidationError("exercise name is required")
	}
	if len(p.Name) > 120 {
		return "", pkg.NewValidationError("exercise name too long")
	}
	if p.MuscleGroup == "" {
		return "", pkg.NewValidationError("muscle group is required")
	}
	return ParseMuscleGroup(p.MuscleGroup)
}
