package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/wekesadev/sokopos-api/internal/domain/entity"
	domainRepo "github.com/wekesadev/sokopos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type branchRepository struct {
	db *gorm.DB
}

// NewBranchRepository creates a new branch repository
func NewBranchRepository(db *gorm.DB) domainRepo.BranchRepository {
	return &branchRepository{db: db}
}

func (r *branchRepository) Create(ctx context.Context, branch *entity.Branch) error {
	return r.db.WithContext(ctx).Create(branch).Error
}

func (r *branchRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Branch, error) {
	var branch entity.Branch
	err := r.db.WithContext(ctx).First(&branch, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &branch, err
}

func (r *branchRepository) Update(ctx context.Context, branch *entity.Branch) error {
	return r.db.WithContext(ctx).Save(branch).Error
}

func (r *branchRepository) List(ctx context.Context) ([]entity.Branch, error) {
	var branches []entity.Branch
	err := r.db.WithContext(ctx).Order("name ASC").Find(&branches).Error
	return branches, err
}

type cashierRepository struct {
	db *gorm.DB
}

// NewCashierRepository creates a new cashier repository
func NewCashierRepository(db *gorm.DB) domainRepo.CashierRepository {
	return &cashierRepository{db: db}
}

func (r *cashierRepository) Create(ctx context.Context, cashier *entity.Cashier) error {
	return r.db.WithContext(ctx).Create(cashier).Error
}

func (r *cashierRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Cashier, error) {
	var cashier entity.Cashier
	err := r.db.WithContext(ctx).First(&cashier, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &cashier, err
}

func (r *cashierRepository) GetByEmail(ctx context.Context, email string) (*entity.Cashier, error) {
	var cashier entity.Cashier
	err := r.db.WithContext(ctx).First(&cashier, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &cashier, err
}

func (r *cashierRepository) Update(ctx context.Context, cashier *entity.Cashier) error {
	return r.db.WithContext(ctx).Save(cashier).Error
}

func (r *cashierRepository) ListByBranch(ctx context.Context, branchID uuid.UUID) ([]entity.Cashier, error) {
	var cashiers []entity.Cashier
	err := r.db.WithContext(ctx).
		Where("branch_id = ?", branchID).
		Order("full_name ASC").
		Find(&cashiers).Error
	return cashiers, err
}
