package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/wekesadev/sokopos-api/internal/domain/entity"
	domainRepo "github.com/wekesadev/sokopos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type taxCategoryRepository struct {
	db *gorm.DB
}

// NewTaxCategoryRepository creates a new tax category repository
func NewTaxCategoryRepository(db *gorm.DB) domainRepo.TaxCategoryRepository {
	return &taxCategoryRepository{db: db}
}

func (r *taxCategoryRepository) Create(ctx context.Context, category *entity.TaxCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *taxCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.TaxCategory, error) {
	var category entity.TaxCategory
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &category, err
}

func (r *taxCategoryRepository) Update(ctx context.Context, category *entity.TaxCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *taxCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.TaxCategory{}, "id = ?", id).Error
}

func (r *taxCategoryRepository) List(ctx context.Context, branchID uuid.UUID, activeOnly bool) ([]entity.TaxCategory, error) {
	var categories []entity.TaxCategory

	query := r.db.WithContext(ctx).Where("branch_id = ?", branchID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	err := query.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *taxCategoryRepository) ExistsByBranchAndName(ctx context.Context, branchID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error) {
	var count int64

	query := r.db.WithContext(ctx).Model(&entity.TaxCategory{}).
		Where("branch_id = ? AND LOWER(name) = LOWER(?)", branchID, name)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	err := query.Count(&count).Error
	return count > 0, err
}

func (r *taxCategoryRepository) CountByBranch(ctx context.Context, branchID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.TaxCategory{}).
		Where("branch_id = ?", branchID).
		Count(&count).Error
	return count, err
}
