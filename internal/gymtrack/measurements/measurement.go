package measurements

import (
	"strings"
	"time"

	"github.com/2beens/gymtrack/pkg"

	"github.com/google/uuid"
)

type Field string

const (
	FieldWeight      Field = "weight"
	FieldHeight      Field = "height"
	FieldChest       Field = "chest"
	FieldWaist       Field = "waist"
	FieldHips        Field = "hips"
	FieldBicepsLeft  Field = "biceps_left"
	FieldBicepsRight Field = "biceps_right"
	FieldThighLeft   Field = "thigh_left"
	FieldThighRight  Field = "thigh_right"
	FieldCalfLeft    Field = "calf_left"
	FieldCalfRight   Field = "calf_right"
	FieldShoulders   Field = "shoulders"
)

// fields in the order they are validated and reported
var fields = []Field{
	FieldWeight, FieldHeight, FieldChest, FieldWaist, FieldHips, FieldBicepsLeft,
	FieldBicepsRight, FieldThighLeft, FieldThighRight, FieldCalfLeft, FieldCalfRight, FieldShoulders,
}

var fieldLabels = map[Field]string{
	FieldWeight:      "Weight (kg)",
	FieldHeight:      "Height (cm)",
	FieldChest:       "Chest (cm)",
	FieldWaist:       "Waist (cm)",
	FieldHips:        "Hips (cm)",
	FieldBicepsLeft:  "Left biceps (cm)",
	FieldBicepsRight: "Right biceps (cm)",
	FieldThighLeft:   "Left thigh (cm)",
	FieldThighRight:  "Right thigh (cm)",
	FieldCalfLeft:    "Left calf (cm)",
	FieldCalfRight:   "Right calf (cm)",
	FieldShoulders:   "Shoulders (cm)",
}

func ParseField(s string) (Field, error) {
	if s == "" {
		return FieldWeight, nil
	}
	f := Field(s)
	if _, ok := fieldLabels[f]; !ok {
		return "", pkg.NewValidationError("invalid measurement field: %s", s)
	}
	return f, nil
}

// Values holds the body measurements; a nil field was not measured.
type Values struct {
	Weight      *float64 `json:"weight"`
	Height      *float64 `json:"height"`
	Chest       *float64 `json:"chest"`
	Waist       *float64 `json:"waist"`
	Hips        *float64 `json:"hips"`
	BicepsLeft  *float64 `json:"biceps_left"`
	BicepsRight *float64 `json:"biceps_right"`
	ThighLeft   *float64 `json:"thigh_left"`
	ThighRight  *float64 `json:"thigh_right"`
	CalfLeft    *float64 `json:"calf_left"`
	CalfRight   *float64 `json:"calf_right"`
	Shoulders   *float64 `json:"shoulders"`
}

func (v *Values) byField() map[Field]*float64 {
	return map[Field]*float64{
		FieldWeight:      v.Weight,
		FieldHeight:      v.Height,
		FieldChest:       v.Chest,
		FieldWaist:       v.Waist,
		FieldHips:        v.Hips,
		FieldBicepsLeft:  v.BicepsLeft,
		FieldBicepsRight: v.BicepsRight,
		FieldThighLeft:   v.ThighLeft,
		FieldThighRight:  v.ThighRight,
		FieldCalfLeft:    v.CalfLeft,
		FieldCalfRight:   v.CalfRight,
		FieldShoulders:   v.Shoulders,
	}
}

// Get returns the value of the field, nil when not measured.
func (v *Values) Get(f Field) *float64 {
	return v.byField()[f]
}

type Measurement struct {
	ID      uuid.UUID `json:"id"`
	OwnerID uuid.UUID `json:"owner_id"`
	Date    time.Time `json:"date"`
	Values
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

type Params struct {
	// Date as YYYY-MM-DD, today when empty
	Date string `json:"date"`
	Values
	Notes string `json:"notes"`
}

const dateLayout = "2006-01-02"

// Validate checks the params and returns the parsed date.
func (p *Params) Validate(now time.Time) (time.Time, error) {
	p.Notes = strings.TrimSpace(p.Notes)

	values := p.byField()
	for _, f := range fields {
		if v := values[f]; v != nil && *v < 0 {
			return time.Time{}, pkg.NewValidationError("%s must not be negative", f)
		}
	}

	if strings.TrimSpace(p.Date) == "" {
		return pkg.DateOf(now), nil
	}
	date, err := time.Parse(dateLayout, strings.TrimSpace(p.Date))
	if err != nil {
		return time.Time{}, pkg.NewValidationError("invalid date, expected YYYY-MM-DD: %s", p.Date)
	}
	return date, nil
}
