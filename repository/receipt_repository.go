package repository

import (
	"gorm.io/gorm"

	"github.com/naomichiang/POS-system-Cursor/entity"
)

type ReceiptRepository struct{ DB *gorm.DB }

func NewReceiptRepository(db *gorm.DB) *ReceiptRepository { return &ReceiptRepository{DB: db} }

// Create writes a receipt and its items inside the caller's transaction.
func (r *ReceiptRepository) Create(tx *gorm.DB, rec *entity.Receipt) error {
	return tx.Create(rec).Error
}

// List returns the most recent receipts, items included, newest first.
func (r *ReceiptRepository) List(limit int) ([]entity.Receipt, error) {
	if limit <= 0 {
		limit = 50
	}
	var recs []entity.Receipt
	err := r.DB.Preload("Items").
		Order("id DESC").
		Limit(limit).
		Find(&recs).Error
	return recs, err
}
