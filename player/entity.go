package player

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Entity represents the GORM-compatible database representation of a player
type Entity struct {
	ID             uint32     `gorm:"primaryKey;autoIncrement"`
	TenantId       uuid.UUID  `gorm:"type:uuid;index;not null"`
	Name           string     `gorm:"size:12;not null"`
	Title          string     `gorm:"size:30;not null"`
	Race           Race       `gorm:"index;not null"`
	Profession     Profession `gorm:"index;not null"`
	Birthday       time.Time  `gorm:"not null"`
	Banned         bool       `gorm:"not null;default:false"`
	Experience     uint32     `gorm:"not null"`
	Level          uint32     `gorm:"not null"`
	UntilNextLevel uint32     `gorm:"not null"`
}

// TableName returns the table name for the player entity
func (Entity) TableName() string {
	return "players"
}

// Migration performs the database migration for the player entity
func Migration(db *gorm.DB) error {
	return db.AutoMigrate(&Entity{})
}

// Make transforms a player entity to a domain model. Derived attributes are
// recomputed rather than read back.
func Make(entity Entity) (Player, error) {
	return NewBuilder(entity.TenantId).
		SetId(entity.ID).
		SetName(entity.Name).
		SetTitle(entity.Title).
		SetRace(entity.Race).
		SetProfession(entity.Profession).
		SetBirthday(entity.Birthday).
		SetBanned(entity.Banned).
		SetExperience(int64(entity.Experience)).
		Build()
}

// ToEntity converts a player domain model to a database entity
func (p Player) ToEntity() Entity {
	return Entity{
		ID:             p.id,
		TenantId:       p.tenantId,
		Name:           p.name,
		Title:          p.title,
		Race:           p.race,
		Profession:     p.profession,
		Birthday:       p.birthday,
		Banned:         p.banned,
		Experience:     p.experience,
		Level:          p.level,
		UntilNextLevel: p.untilNextLevel,
	}
}
