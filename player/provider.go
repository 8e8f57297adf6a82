package player

import (
	"errors"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AllProvider retrieves every valid player of a tenant, in identifier order
func AllProvider(db *gorm.DB, log logrus.FieldLogger) func(tenantId uuid.UUID) model.Provider[[]Player] {
	return func(tenantId uuid.UUID) model.Provider[[]Player] {
		return func() ([]Player, error) {
			log.WithField("tenantId", tenantId).Debug("Retrieving all players")

			var entities []Entity
			err := db.Where("tenant_id = ?", tenantId).
				Order("id ASC").
				Find(&entities).Error
			if err != nil {
				return nil, err
			}

			// rows that no longer pass validation are left out of the result
			players := make([]Player, 0, len(entities))
			for _, entity := range entities {
				p, err := Make(entity)
				if err != nil {
					log.WithError(err).WithFields(logrus.Fields{
						"playerId": entity.ID,
						"tenantId": tenantId,
					}).Warn("Skipping stored player that fails validation.")
					continue
				}
				players = append(players, p)
			}
			return players, nil
		}
	}
}

// ByIdProvider retrieves a player by ID
func ByIdProvider(db *gorm.DB, log logrus.FieldLogger) func(id uint32, tenantId uuid.UUID) model.Provider[Player] {
	return func(id uint32, tenantId uuid.UUID) model.Provider[Player] {
		return func() (Player, error) {
			log.WithFields(logrus.Fields{
				"playerId": id,
				"tenantId": tenantId,
			}).Debug("Retrieving player by ID")

			if id == 0 {
				return Player{}, ErrInvalidIdentifier
			}

			var entity Entity
			err := db.Where("id = ? AND tenant_id = ?", id, tenantId).First(&entity).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return Player{}, ErrNotFound
				}
				return Player{}, err
			}

			return Make(entity)
		}
	}
}
