// File: /services/sale_service_test.go
package services

import (
	"errors"
	"testing"
	"time"

	"autosales-api/models"
	"autosales-api/repositories"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

// fakeSaleStore keeps sales in memory so the service rules can be
// tested without a database.
type fakeSaleStore struct {
	sales  map[uint]*models.Sale
	nextID uint
}

func newFakeSaleStore() *fakeSaleStore {
	return &fakeSaleStore{sales: map[uint]*models.Sale{}, nextID: 1}
}

func (f *fakeSaleStore) Create(sale *models.Sale) error {
	sale.ID = f.nextID
	f.nextID++
	copied := *sale
	f.sales[sale.ID] = &copied
	return nil
}

func (f *fakeSaleStore) GetByID(id uint) (*models.Sale, error) {
	sale, ok := f.sales[id]
	if !ok {
		return nil, &repositories.NotFoundError{Entity: "sale", ID: id}
	}
	copied := *sale
	return &copied, nil
}

func (f *fakeSaleStore) List(filter repositories.SaleFilter) ([]models.Sale, int64, error) {
	var out []models.Sale
	for _, sale := range f.sales {
		out = append(out, *sale)
	}
	return out, int64(len(out)), nil
}

func (f *fakeSaleStore) Update(id uint, updates map[string]interface{}) (*models.Sale, error) {
	sale, ok := f.sales[id]
	if !ok {
		return nil, &repositories.NotFoundError{Entity: "sale", ID: id}
	}
	if v, ok := updates["total_amount"].(float64); ok {
		sale.TotalAmount = v
	}
	if v, ok := updates["discount_amount"].(float64); ok {
		sale.DiscountAmount = v
	}
	if v, ok := updates["tax_amount"].(float64); ok {
		sale.TaxAmount = v
	}
	if v, ok := updates["commission_rate"].(float64); ok {
		sale.CommissionRate = v
	}
	if v, ok := updates["commission_amount"].(float64); ok {
		sale.CommissionAmount = v
	}
	if v, ok := updates["payment_method"].(string); ok {
		sale.PaymentMethod = v
	}
	if v, ok := updates["status"].(string); ok {
		sale.Status = v
	}
	copied := *sale
	return &copied, nil
}

func (f *fakeSaleStore) Delete(id uint) error {
	if _, ok := f.sales[id]; !ok {
		return &repositories.NotFoundError{Entity: "sale", ID: id}
	}
	delete(f.sales, id)
	return nil
}

func validCreateInput() CreateSaleInput {
	return CreateSaleInput{
		ClientID:       1,
		EmployeeID:     2,
		VehicleID:      3,
		TotalAmount:    50000,
		PaymentMethod:  models.PaymentFinancing,
		SaleDate:       time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		DiscountAmount: 2000,
		TaxAmount:      1500,
		CommissionRate: 5,
	}
}

func TestCreateSaleComputesCommission(t *testing.T) {
	store := newFakeSaleStore()
	svc := NewSaleService(store, zaptest.NewLogger(t))

	sale, err := svc.CreateSale(validCreateInput())
	assert.NoError(t, err)
	assert.Equal(t, models.SaleStatusPending, sale.Status, "new sales start pending")
	// (50000 - 2000) * 5% = 2400
	assert.InDelta(t, 2400.0, sale.CommissionAmount, 0.001)
	assert.NotZero(t, sale.ID)
}

func TestCreateSaleRejectsBadAmounts(t *testing.T) {
	svc := NewSaleService(newFakeSaleStore(), zaptest.NewLogger(t))

	cases := []struct {
		name   string
		mutate func(*CreateSaleInput)
	}{
		{"zero total", func(in *CreateSaleInput) { in.TotalAmount = 0 }},
		{"negative discount", func(in *CreateSaleInput) { in.DiscountAmount = -1 }},
		{"discount above total", func(in *CreateSaleInput) { in.DiscountAmount = 60000 }},
		{"negative tax", func(in *CreateSaleInput) { in.TaxAmount = -0.5 }},
		{"rate above 100", func(in *CreateSaleInput) { in.CommissionRate = 101 }},
		{"negative rate", func(in *CreateSaleInput) { in.CommissionRate = -1 }},
		{"unknown payment method", func(in *CreateSaleInput) { in.PaymentMethod = "barter" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validCreateInput()
			tc.mutate(&input)

			sale, err := svc.CreateSale(input)
			assert.Nil(t, sale)

			var ce *repositories.ConstraintError
			assert.True(t, errors.As(err, &ce), "expected ConstraintError, got %v", err)
		})
	}
}

func TestUpdateSaleRecomputesCommission(t *testing.T) {
	store := newFakeSaleStore()
	svc := NewSaleService(store, zaptest.NewLogger(t))

	created, err := svc.CreateSale(validCreateInput())
	assert.NoError(t, err)

	newTotal := 40000.0
	updated, err := svc.UpdateSale(created.ID, UpdateSaleInput{TotalAmount: &newTotal})
	assert.NoError(t, err)
	// (40000 - 2000) * 5% = 1900
	assert.InDelta(t, 1900.0, updated.CommissionAmount, 0.001)
	assert.Equal(t, 40000.0, updated.TotalAmount)
	// Untouched fields survive the partial update.
	assert.Equal(t, 2000.0, updated.DiscountAmount)
}

func TestUpdateSaleValidatesMergedAmounts(t *testing.T) {
	store := newFakeSaleStore()
	svc := NewSaleService(store, zaptest.NewLogger(t))

	created, err := svc.CreateSale(validCreateInput())
	assert.NoError(t, err)

	// Lowering the total below the existing discount must fail even
	// though the discount itself is not part of the update.
	badTotal := 1000.0
	_, err = svc.UpdateSale(created.ID, UpdateSaleInput{TotalAmount: &badTotal})

	var ce *repositories.ConstraintError
	assert.True(t, errors.As(err, &ce), "expected ConstraintError, got %v", err)

	// The stored sale is untouched.
	stored, err := svc.GetSale(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, 50000.0, stored.TotalAmount)
}

func TestUpdateSaleMissing(t *testing.T) {
	svc := NewSaleService(newFakeSaleStore(), zaptest.NewLogger(t))

	newTotal := 100.0
	_, err := svc.UpdateSale(99, UpdateSaleInput{TotalAmount: &newTotal})

	var nf *repositories.NotFoundError
	assert.True(t, errors.As(err, &nf), "expected NotFoundError, got %v", err)
}

func TestUpdateStatus(t *testing.T) {
	store := newFakeSaleStore()
	svc := NewSaleService(store, zaptest.NewLogger(t))

	created, err := svc.CreateSale(validCreateInput())
	assert.NoError(t, err)

	updated, err := svc.UpdateStatus(created.ID, models.SaleStatusPaid)
	assert.NoError(t, err)
	assert.Equal(t, models.SaleStatusPaid, updated.Status)

	_, err = svc.UpdateStatus(created.ID, "shipped")
	var ce *repositories.ConstraintError
	assert.True(t, errors.As(err, &ce), "expected ConstraintError for unknown status, got %v", err)
}

func TestDeleteSale(t *testing.T) {
	store := newFakeSaleStore()
	svc := NewSaleService(store, zaptest.NewLogger(t))

	created, err := svc.CreateSale(validCreateInput())
	assert.NoError(t, err)

	assert.NoError(t, svc.DeleteSale(created.ID))

	_, err = svc.GetSale(created.ID)
	var nf *repositories.NotFoundError
	assert.True(t, errors.As(err, &nf))
}
