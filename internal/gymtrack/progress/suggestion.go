package progress

const (
	weightIncrement = 2.5

	highRPE        = 8
	highRPEMinReps = 8
	midRPELow      = 4
	midRPEHigh     = 7
	midRPEMaxReps  = 7
)

type Suggestion struct {
	Weight        float64 `json:"weight"`
	Reps          int     `json:"reps"`
	HasSuggestion bool    `json:"has_suggestion"`
}

// SuggestNext returns the weight and reps to aim for in the next session:
//   - good technique (rpe >= 8) with at least 8 reps: add 2.5 kg
//   - regular technique (rpe 4-7) with fewer than 7 reps: add one rep
//   - anything else, including no rating at all: keep the same load
func SuggestNext(weight float64, reps int, rpe *int) (float64, int) {
	if rpe == nil {
		return weight, reps
	}

	switch r := *rpe; {
	case r >= highRPE && reps >= highRPEMinReps:
		return weight + weightIncrement, reps
	case r >= midRPELow && r <= midRPEHigh && reps < midRPEMaxReps:
		return weight, reps + 1
	default:
		return weight, reps
	}
}

// Suggest computes the next session target from the last recorded entry.
func Suggest(last Entry) Suggestion {
	weight, reps := SuggestNext(last.Weight, last.Reps, last.RPE)
	return Suggestion{
		Weight:        weight,
		Reps:          reps,
		HasSuggestion: weight != last.Weight || reps != last.Reps,
	}
}
