package player

import (
	"time"

	"github.com/google/uuid"
)

// Race is the fixed set of races a player may belong to
type Race string

const (
	RaceHuman   Race = "HUMAN"
	RaceDwarf   Race = "DWARF"
	RaceElf     Race = "ELF"
	RaceGiant   Race = "GIANT"
	RaceOrc     Race = "ORC"
	RaceTroll   Race = "TROLL"
	RaceHobbit  Race = "HOBBIT"
	RaceAndroid Race = "ANDROID"
)

var races = []Race{RaceHuman, RaceDwarf, RaceElf, RaceGiant, RaceOrc, RaceTroll, RaceHobbit, RaceAndroid}

// Valid returns true if the race is one of the known races
func (r Race) Valid() bool {
	for _, v := range races {
		if v == r {
			return true
		}
	}
	return false
}

// Profession is the fixed set of professions a player may have
type Profession string

const (
	ProfessionWarrior  Profession = "WARRIOR"
	ProfessionRogue    Profession = "ROGUE"
	ProfessionSorcerer Profession = "SORCERER"
	ProfessionCleric   Profession = "CLERIC"
	ProfessionPaladin  Profession = "PALADIN"
	ProfessionNazgul   Profession = "NAZGUL"
	ProfessionWarlock  Profession = "WARLOCK"
	ProfessionDruid    Profession = "DRUID"
	ProfessionMage     Profession = "MAGE"
)

var professions = []Profession{
	ProfessionWarrior, ProfessionRogue, ProfessionSorcerer, ProfessionCleric,
	ProfessionPaladin, ProfessionNazgul, ProfessionWarlock, ProfessionDruid,
	ProfessionMage,
}

// Valid returns true if the profession is one of the known professions
func (p Profession) Valid() bool {
	for _, v := range professions {
		if v == p {
			return true
		}
	}
	return false
}

// Player represents an immutable player domain object.
// Level and untilNextLevel are always derived from experience by the Builder.
type Player struct {
	id             uint32
	tenantId       uuid.UUID
	name           string
	title          string
	race           Race
	profession     Profession
	birthday       time.Time
	banned         bool
	experience     uint32
	level          uint32
	untilNextLevel uint32
}

// Id returns the player ID
func (p Player) Id() uint32 {
	return p.id
}

// TenantId returns the tenant ID
func (p Player) TenantId() uuid.UUID {
	return p.tenantId
}

// Name returns the player name
func (p Player) Name() string {
	return p.name
}

// Title returns the player title
func (p Player) Title() string {
	return p.title
}

// Race returns the player race
func (p Player) Race() Race {
	return p.race
}

// Profession returns the player profession
func (p Player) Profession() Profession {
	return p.profession
}

// Birthday returns the player birthday
func (p Player) Birthday() time.Time {
	return p.birthday
}

// Banned returns true if the player is banned
func (p Player) Banned() bool {
	return p.banned
}

// Experience returns the accumulated experience
func (p Player) Experience() uint32 {
	return p.experience
}

// Level returns the level derived from experience
func (p Player) Level() uint32 {
	return p.level
}

// UntilNextLevel returns the experience still required to reach the next level
func (p Player) UntilNextLevel() uint32 {
	return p.untilNextLevel
}

// Builder returns a new builder seeded with the player's current values
func (p Player) Builder() *Builder {
	return &Builder{
		id:         p.id,
		tenantId:   p.tenantId,
		name:       p.name,
		title:      p.title,
		race:       p.race,
		profession: p.profession,
		birthday:   p.birthday,
		banned:     p.banned,
		experience: int64(p.experience),
	}
}
