package player

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Filter is an inclusion test over a single player.
type Filter func(p Player) bool

// All combines filters with a short-circuiting AND. No filters matches everything.
func All(filters ...Filter) Filter {
	return func(p Player) bool {
		for _, f := range filters {
			if !f(p) {
				return false
			}
		}
		return true
	}
}

// Criteria is the set of optional filter dimensions of a player query. A nil
// field places no constraint on its dimension.
type Criteria struct {
	Name          *string
	Title         *string
	Race          *Race
	Profession    *Profession
	After         *time.Time
	Before        *time.Time
	Banned        *bool
	MinExperience *int64
	MaxExperience *int64
	MinLevel      *int64
	MaxLevel      *int64
}

// Filters returns one evaluator per present dimension, in a fixed order.
func (c Criteria) Filters() []Filter {
	fs := make([]Filter, 0, 11)
	if c.Name != nil {
		fs = append(fs, NameContains(*c.Name))
	}
	if c.Title != nil {
		fs = append(fs, TitleContains(*c.Title))
	}
	if c.Race != nil {
		fs = append(fs, RaceIs(*c.Race))
	}
	if c.Profession != nil {
		fs = append(fs, ProfessionIs(*c.Profession))
	}
	if c.After != nil {
		fs = append(fs, BornAfter(*c.After))
	}
	if c.Before != nil {
		fs = append(fs, BornBefore(*c.Before))
	}
	if c.Banned != nil {
		fs = append(fs, BannedIs(*c.Banned))
	}
	if c.MinExperience != nil {
		fs = append(fs, ExperienceAtLeast(*c.MinExperience))
	}
	if c.MaxExperience != nil {
		fs = append(fs, ExperienceAtMost(*c.MaxExperience))
	}
	if c.MinLevel != nil {
		fs = append(fs, LevelAtLeast(*c.MinLevel))
	}
	if c.MaxLevel != nil {
		fs = append(fs, LevelAtMost(*c.MaxLevel))
	}
	return fs
}

// Predicate returns the combined inclusion test for the criteria.
func (c Criteria) Predicate() Filter {
	return All(c.Filters()...)
}

// CriteriaBuilder accumulates criteria one dimension at a time
type CriteriaBuilder struct {
	c Criteria
}

// NewCriteriaBuilder creates a builder with no constraints
func NewCriteriaBuilder() *CriteriaBuilder {
	return &CriteriaBuilder{}
}

func (b *CriteriaBuilder) SetName(name string) *CriteriaBuilder {
	b.c.Name = &name
	return b
}

func (b *CriteriaBuilder) SetTitle(title string) *CriteriaBuilder {
	b.c.Title = &title
	return b
}

func (b *CriteriaBuilder) SetRace(race Race) *CriteriaBuilder {
	b.c.Race = &race
	return b
}

func (b *CriteriaBuilder) SetProfession(profession Profession) *CriteriaBuilder {
	b.c.Profession = &profession
	return b
}

func (b *CriteriaBuilder) SetAfter(after time.Time) *CriteriaBuilder {
	b.c.After = &after
	return b
}

func (b *CriteriaBuilder) SetBefore(before time.Time) *CriteriaBuilder {
	b.c.Before = &before
	return b
}

func (b *CriteriaBuilder) SetBanned(banned bool) *CriteriaBuilder {
	b.c.Banned = &banned
	return b
}

func (b *CriteriaBuilder) SetMinExperience(min int64) *CriteriaBuilder {
	b.c.MinExperience = &min
	return b
}

func (b *CriteriaBuilder) SetMaxExperience(max int64) *CriteriaBuilder {
	b.c.MaxExperience = &max
	return b
}

func (b *CriteriaBuilder) SetMinLevel(min int64) *CriteriaBuilder {
	b.c.MinLevel = &min
	return b
}

func (b *CriteriaBuilder) SetMaxLevel(max int64) *CriteriaBuilder {
	b.c.MaxLevel = &max
	return b
}

// Build returns the accumulated criteria
func (b *CriteriaBuilder) Build() Criteria {
	return b.c
}

// NameContains matches players whose name contains the substring, ignoring case.
func NameContains(substr string) Filter {
	needle := fold(substr)
	return func(p Player) bool {
		return strings.Contains(fold(p.Name()), needle)
	}
}

// TitleContains matches players whose title contains the substring, ignoring case.
func TitleContains(substr string) Filter {
	needle := fold(substr)
	return func(p Player) bool {
		return strings.Contains(fold(p.Title()), needle)
	}
}

func RaceIs(race Race) Filter {
	return func(p Player) bool {
		return p.Race() == race
	}
}

func ProfessionIs(profession Profession) Filter {
	return func(p Player) bool {
		return p.Profession() == profession
	}
}

// BornAfter matches birthdays strictly later than the instant.
func BornAfter(instant time.Time) Filter {
	return func(p Player) bool {
		return p.Birthday().After(instant)
	}
}

// BornBefore matches birthdays strictly earlier than the instant.
func BornBefore(instant time.Time) Filter {
	return func(p Player) bool {
		return p.Birthday().Before(instant)
	}
}

func BannedIs(banned bool) Filter {
	return func(p Player) bool {
		return p.Banned() == banned
	}
}

func ExperienceAtLeast(min int64) Filter {
	return func(p Player) bool {
		return int64(p.Experience()) >= min
	}
}

func ExperienceAtMost(max int64) Filter {
	return func(p Player) bool {
		return int64(p.Experience()) <= max
	}
}

func LevelAtLeast(min int64) Filter {
	return func(p Player) bool {
		return int64(p.Level()) >= min
	}
}

func LevelAtMost(max int64) Filter {
	return func(p Player) bool {
		return int64(p.Level()) <= max
	}
}

// fold returns the NFC normalized, case folded form of s. Casers are stateful,
// so one is created per call.
func fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}
