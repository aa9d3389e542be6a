package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobfluence/api/internal/models"
)

type ChargeRepository interface {
	Create(charge *models.Charge) error
	FindByID(id uuid.UUID) (*models.Charge, error)
}

type chargeRepository struct {
	db *gorm.DB
}

func NewChargeRepository(db *gorm.DB) ChargeRepository {
	return &chargeRepository{db: db}
}

// Create implements ChargeRepository.
func (r *chargeRepository) Create(charge *models.Charge) error {
	if err := r.db.Create(charge).Error; err != nil {
		return fmt.Errorf("failed to create charge: %w", err)
	}
	return nil
}

// FindByID implements ChargeRepository.
func (r *chargeRepository) FindByID(id uuid.UUID) (*models.Charge, error) {
	var charge models.Charge
	if err := r.db.Where("id = ?", id).First(&charge).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("charge not found: %w", err)
		}
		return nil, fmt.Errorf("failed to find charge: %w", err)
	}
	return &charge, nil
}
