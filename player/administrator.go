package player

import (
	"github.com/Chronicle20/atlas-model/model"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CreatePlayer persists a new player. The store assigns the identifier.
func CreatePlayer(db *gorm.DB, log logrus.FieldLogger) func(p Player) model.Provider[Entity] {
	return func(p Player) model.Provider[Entity] {
		return func() (Entity, error) {
			log.WithFields(logrus.Fields{
				"name":     p.Name(),
				"tenantId": p.TenantId(),
			}).Debug("Creating player entity")

			entity := p.ToEntity()
			entity.ID = 0
			if err := db.Create(&entity).Error; err != nil {
				return Entity{}, err
			}
			return entity, nil
		}
	}
}

// UpdatePlayer saves an existing player
func UpdatePlayer(db *gorm.DB, log logrus.FieldLogger) func(p Player) model.Provider[Entity] {
	return func(p Player) model.Provider[Entity] {
		return func() (Entity, error) {
			log.WithField("playerId", p.Id()).Debug("Updating player entity")

			entity := p.ToEntity()
			if err := db.Save(&entity).Error; err != nil {
				return Entity{}, err
			}
			return entity, nil
		}
	}
}

// DeletePlayer removes a player, returning ErrNotFound if nothing was removed
func DeletePlayer(db *gorm.DB, log logrus.FieldLogger) func(id uint32, tenantId uuid.UUID) error {
	return func(id uint32, tenantId uuid.UUID) error {
		log.WithFields(logrus.Fields{
			"playerId": id,
			"tenantId": tenantId,
		}).Debug("Deleting player entity")

		if id == 0 {
			return ErrInvalidIdentifier
		}

		result := db.Where("id = ? AND tenant_id = ?", id, tenantId).Delete(&Entity{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	}
}
