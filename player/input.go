package player

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Input is a candidate player record as supplied by a caller. A nil field is
// absent. Identifier and derived attributes are deliberately not part of it.
type Input struct {
	Name       *string
	Title      *string
	Race       *Race
	Profession *Profession
	Birthday   *time.Time
	Banned     *bool
	Experience *int64
}

// Create validates a candidate record for creation. Every field except banned
// is required; banned defaults to false.
func Create(tenantId uuid.UUID, in Input) (Player, error) {
	if in.Name == nil {
		return Player{}, fmt.Errorf("%w: name is required", ErrInvalidRecord)
	}
	if in.Title == nil {
		return Player{}, fmt.Errorf("%w: title is required", ErrInvalidRecord)
	}
	if in.Race == nil {
		return Player{}, fmt.Errorf("%w: race is required", ErrInvalidRecord)
	}
	if in.Profession == nil {
		return Player{}, fmt.Errorf("%w: profession is required", ErrInvalidRecord)
	}
	if in.Birthday == nil {
		return Player{}, fmt.Errorf("%w: birthday is required", ErrInvalidRecord)
	}
	if in.Experience == nil {
		return Player{}, fmt.Errorf("%w: experience is required", ErrInvalidRecord)
	}

	b := NewBuilder(tenantId).
		SetName(*in.Name).
		SetTitle(*in.Title).
		SetRace(*in.Race).
		SetProfession(*in.Profession).
		SetBirthday(*in.Birthday).
		SetExperience(*in.Experience)
	if in.Banned != nil {
		b.SetBanned(*in.Banned)
	}
	return b.Build()
}

// Merge applies a partial update on top of the prior version of a player.
// Absent fields keep the prior value, the identifier is always the prior one,
// and the merged record is validated and re-derived as on create.
func Merge(prior Player, in Input) (Player, error) {
	b := prior.Builder()
	if in.Name != nil {
		b.SetName(*in.Name)
	}
	if in.Title != nil {
		b.SetTitle(*in.Title)
	}
	if in.Race != nil {
		b.SetRace(*in.Race)
	}
	if in.Profession != nil {
		b.SetProfession(*in.Profession)
	}
	if in.Birthday != nil {
		b.SetBirthday(*in.Birthday)
	}
	if in.Banned != nil {
		b.SetBanned(*in.Banned)
	}
	if in.Experience != nil {
		b.SetExperience(*in.Experience)
	}
	return b.Build()
}
