package player

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MaxNameLength  = 12
	MaxTitleLength = 30
)

// Builder provides fluent construction of Player models
type Builder struct {
	id         uint32
	tenantId   uuid.UUID
	name       string
	title      string
	race       Race
	profession Profession
	birthday   time.Time
	banned     bool
	experience int64
}

// NewBuilder creates a new builder for the given tenant
func NewBuilder(tenantId uuid.UUID) *Builder {
	return &Builder{
		tenantId: tenantId,
	}
}

// SetId sets the player ID
func (b *Builder) SetId(id uint32) *Builder {
	b.id = id
	return b
}

// SetName sets the player name
func (b *Builder) SetName(name string) *Builder {
	b.name = name
	return b
}

// SetTitle sets the player title
func (b *Builder) SetTitle(title string) *Builder {
	b.title = title
	return b
}

// SetRace sets the player race
func (b *Builder) SetRace(race Race) *Builder {
	b.race = race
	return b
}

// SetProfession sets the player profession
func (b *Builder) SetProfession(profession Profession) *Builder {
	b.profession = profession
	return b
}

// SetBirthday sets the player birthday
func (b *Builder) SetBirthday(birthday time.Time) *Builder {
	b.birthday = birthday
	return b
}

// SetBanned sets the banned flag
func (b *Builder) SetBanned(banned bool) *Builder {
	b.banned = banned
	return b
}

// SetExperience sets the experience. Out of range values are rejected by Build.
func (b *Builder) SetExperience(experience int64) *Builder {
	b.experience = experience
	return b
}

// Build validates the accumulated values and constructs the Player, deriving
// level and experience until next level from experience.
func (b *Builder) Build() (Player, error) {
	if b.tenantId == uuid.Nil {
		return Player{}, fmt.Errorf("%w: tenant ID is required", ErrInvalidRecord)
	}
	if n := utf8.RuneCountInString(b.name); n == 0 || n > MaxNameLength {
		return Player{}, fmt.Errorf("%w: name must be between 1 and %d characters", ErrInvalidRecord, MaxNameLength)
	}
	if n := utf8.RuneCountInString(b.title); n == 0 || n > MaxTitleLength {
		return Player{}, fmt.Errorf("%w: title must be between 1 and %d characters", ErrInvalidRecord, MaxTitleLength)
	}
	if !b.race.Valid() {
		return Player{}, fmt.Errorf("%w: unknown race [%s]", ErrInvalidRecord, b.race)
	}
	if !b.profession.Valid() {
		return Player{}, fmt.Errorf("%w: unknown profession [%s]", ErrInvalidRecord, b.profession)
	}
	if b.birthday.UnixMilli() < 0 {
		return Player{}, fmt.Errorf("%w: birthday must not precede the epoch", ErrInvalidRecord)
	}
	if b.experience < MinExperience || b.experience > MaxExperience {
		return Player{}, fmt.Errorf("%w: experience must be between %d and %d", ErrInvalidRecord, MinExperience, MaxExperience)
	}

	experience := uint32(b.experience)
	level, untilNextLevel := ComputeDerived(experience)

	return Player{
		id:             b.id,
		tenantId:       b.tenantId,
		name:           b.name,
		title:          b.title,
		race:           b.race,
		profession:     b.profession,
		birthday:       b.birthday,
		banned:         b.banned,
		experience:     experience,
		level:          level,
		untilNextLevel: untilNextLevel,
	}, nil
}
