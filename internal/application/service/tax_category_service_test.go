package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wekesadev/sokopos-api/internal/domain/entity"
	"github.com/wekesadev/sokopos-api/internal/domain/enum"
)

type fakeTaxCategoryRepo struct {
	categories map[uuid.UUID]*entity.TaxCategory
}

func newFakeTaxCategoryRepo() *fakeTaxCategoryRepo {
	return &fakeTaxCategoryRepo{categories: map[uuid.UUID]*entity.TaxCategory{}}
}

func (f *fakeTaxCategoryRepo) Create(ctx context.Context, category *entity.TaxCategory) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	stored := *category
	f.categories[category.ID] = &stored
	return nil
}

func (f *fakeTaxCategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.TaxCategory, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, nil
	}
	copied := *category
	return &copied, nil
}

func (f *fakeTaxCategoryRepo) Update(ctx context.Context, category *entity.TaxCategory) error {
	stored := *category
	f.categories[category.ID] = &stored
	return nil
}

func (f *fakeTaxCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.categories, id)
	return nil
}

func (f *fakeTaxCategoryRepo) List(ctx context.Context, branchID uuid.UUID, activeOnly bool) ([]entity.TaxCategory, error) {
	var out []entity.TaxCategory
	for _, c := range f.categories {
		if c.BranchID != branchID {
			continue
		}
		if activeOnly && !c.IsActive {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeTaxCategoryRepo) ExistsByBranchAndName(ctx context.Context, branchID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error) {
	for _, c := range f.categories {
		if excludeID != nil && c.ID == *excludeID {
			continue
		}
		if c.BranchID == branchID && strings.EqualFold(c.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTaxCategoryRepo) CountByBranch(ctx context.Context, branchID uuid.UUID) (int64, error) {
	var count int64
	for _, c := range f.categories {
		if c.BranchID == branchID {
			count++
		}
	}
	return count, nil
}

func TestCreateTaxCategory(t *testing.T) {
	svc := NewTaxCategoryService(newFakeTaxCategoryRepo())
	branchID := uuid.New()

	category, err := svc.CreateTaxCategory(context.Background(), branchID, &TaxCategoryInput{
		Name:       "Standard Rate",
		Percentage: 18,
		TaxType:    enum.TaxTypeExclusive,
	})

	require.NoError(t, err)
	assert.Equal(t, "Standard Rate", category.Name)
	assert.Equal(t, 18.0, category.Percentage)
	assert.True(t, category.IsActive)
}

func TestCreateTaxCategory_Validation(t *testing.T) {
	svc := NewTaxCategoryService(newFakeTaxCategoryRepo())
	branchID := uuid.New()

	_, err := svc.CreateTaxCategory(context.Background(), branchID, &TaxCategoryInput{Percentage: 18})
	assert.Error(t, err, "name is required")

	_, err = svc.CreateTaxCategory(context.Background(), branchID, &TaxCategoryInput{Name: "Bad", Percentage: 120})
	assert.Error(t, err, "percentage above 100 is rejected")

	_, err = svc.CreateTaxCategory(context.Background(), branchID, &TaxCategoryInput{Name: "Bad", Percentage: -1})
	assert.Error(t, err, "negative percentage is rejected")
}

func TestCreateTaxCategory_DuplicateName(t *testing.T) {
	svc := NewTaxCategoryService(newFakeTaxCategoryRepo())
	branchID := uuid.New()

	_, err := svc.CreateTaxCategory(context.Background(), branchID, &TaxCategoryInput{Name: "VAT", Percentage: 18})
	require.NoError(t, err)

	_, err = svc.CreateTaxCategory(context.Background(), branchID, &TaxCategoryInput{Name: "vat", Percentage: 5})
	assert.Error(t, err, "duplicate name within the branch is rejected case-insensitively")

	// The same name in another branch is fine.
	_, err = svc.CreateTaxCategory(context.Background(), uuid.New(), &TaxCategoryInput{Name: "VAT", Percentage: 18})
	assert.NoError(t, err)
}

func TestUpdateTaxCategory_KeepsOwnName(t *testing.T) {
	svc := NewTaxCategoryService(newFakeTaxCategoryRepo())
	branchID := uuid.New()

	category, err := svc.CreateTaxCategory(context.Background(), branchID, &TaxCategoryInput{Name: "VAT", Percentage: 18})
	require.NoError(t, err)

	// Updating without renaming must not trip the uniqueness check.
	updated, err := svc.UpdateTaxCategory(context.Background(), category.ID, &TaxCategoryInput{
		Name:       "VAT",
		Percentage: 16,
		TaxType:    enum.TaxTypeInclusive,
	})

	require.NoError(t, err)
	assert.Equal(t, 16.0, updated.Percentage)
	assert.Equal(t, enum.TaxTypeInclusive, updated.TaxType)
}

func TestSetActive(t *testing.T) {
	repo := newFakeTaxCategoryRepo()
	svc := NewTaxCategoryService(repo)
	branchID := uuid.New()

	category, err := svc.CreateTaxCategory(context.Background(), branchID, &TaxCategoryInput{Name: "VAT", Percentage: 18})
	require.NoError(t, err)

	deactivated, err := svc.SetActive(context.Background(), category.ID, false)
	require.NoError(t, err)
	assert.False(t, deactivated.IsActive)

	active, err := svc.ListTaxCategories(context.Background(), branchID, true)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := svc.ListTaxCategories(context.Background(), branchID, false)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestInitDefaults(t *testing.T) {
	svc := NewTaxCategoryService(newFakeTaxCategoryRepo())
	branchID := uuid.New()

	created, err := svc.InitDefaults(context.Background(), branchID)
	require.NoError(t, err)
	require.Len(t, created, 3)

	names := []string{created[0].Name, created[1].Name, created[2].Name}
	assert.Equal(t, []string{"Standard Rate", "Reduced Rate", "Zero Rate"}, names)
	for _, c := range created {
		assert.True(t, c.IsActive)
		assert.Equal(t, branchID, c.BranchID)
	}

	// A second init on the same branch is rejected.
	_, err = svc.InitDefaults(context.Background(), branchID)
	assert.Error(t, err)
}
