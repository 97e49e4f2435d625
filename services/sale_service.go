// File: /services/sale_service.go
package services

import (
	"time"

	"autosales-api/models"
	"autosales-api/repositories"

	"go.uber.org/zap"
)

// SaleStore is the storage surface the sale service needs. The
// repositories.SaleRepository implements it.
type SaleStore interface {
	Create(sale *models.Sale) error
	GetByID(id uint) (*models.Sale, error)
	List(filter repositories.SaleFilter) ([]models.Sale, int64, error)
	Update(id uint, updates map[string]interface{}) (*models.Sale, error)
	Delete(id uint) error
}

// SaleService validates sale business rules before they reach the
// store and keeps the commission amount consistent with the amounts it
// is derived from.
type SaleService struct {
	store  SaleStore
	logger *zap.Logger
}

func NewSaleService(store SaleStore, logger *zap.Logger) *SaleService {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &SaleService{
		store:  store,
		logger: logger,
	}
}

type CreateSaleInput struct {
	ClientID       uint      `json:"client_id" binding:"required,gt=0"`
	EmployeeID     uint      `json:"employee_id" binding:"required,gt=0"`
	VehicleID      uint      `json:"vehicle_id" binding:"required,gt=0"`
	TotalAmount    float64   `json:"total_amount" binding:"required,gt=0"`
	PaymentMethod  string    `json:"payment_method" binding:"required"`
	SaleDate       time.Time `json:"sale_date" binding:"required" time_format:"2006-01-02"`
	Notes          *string   `json:"notes"`
	DiscountAmount float64   `json:"discount_amount"`
	TaxAmount      float64   `json:"tax_amount"`
	CommissionRate float64   `json:"commission_rate"`
}

type UpdateSaleInput struct {
	TotalAmount    *float64   `json:"total_amount"`
	PaymentMethod  *string    `json:"payment_method"`
	Status         *string    `json:"status"`
	SaleDate       *time.Time `json:"sale_date" time_format:"2006-01-02"`
	Notes          *string    `json:"notes"`
	DiscountAmount *float64   `json:"discount_amount"`
	TaxAmount      *float64   `json:"tax_amount"`
	CommissionRate *float64   `json:"commission_rate"`
}

func validateSaleAmounts(total, discount, tax, rate float64) error {
	if total <= 0 {
		return &repositories.ConstraintError{Entity: "sale", Field: "total_amount", Reason: "must be positive"}
	}
	if discount < 0 {
		return &repositories.ConstraintError{Entity: "sale", Field: "discount_amount", Reason: "must be non-negative"}
	}
	if discount > total {
		return &repositories.ConstraintError{Entity: "sale", Field: "discount_amount", Reason: "cannot exceed total amount"}
	}
	if tax < 0 {
		return &repositories.ConstraintError{Entity: "sale", Field: "tax_amount", Reason: "must be non-negative"}
	}
	if rate < 0 || rate > 100 {
		return &repositories.ConstraintError{Entity: "sale", Field: "commission_rate", Reason: "must be between 0 and 100"}
	}
	return nil
}

// CreateSale validates the input and records the sale. The referenced
// client, employee and vehicle must exist; the store rejects the
// insert otherwise and nothing is written.
func (s *SaleService) CreateSale(input CreateSaleInput) (*models.Sale, error) {
	if !models.IsValidPaymentMethod(input.PaymentMethod) {
		return nil, &repositories.ConstraintError{Entity: "sale", Field: "payment_method", Reason: "unknown payment method"}
	}
	if err := validateSaleAmounts(input.TotalAmount, input.DiscountAmount, input.TaxAmount, input.CommissionRate); err != nil {
		return nil, err
	}

	sale := &models.Sale{
		ClientID:       input.ClientID,
		EmployeeID:     input.EmployeeID,
		VehicleID:      input.VehicleID,
		TotalAmount:    input.TotalAmount,
		PaymentMethod:  input.PaymentMethod,
		Status:         models.SaleStatusPending,
		SaleDate:       input.SaleDate,
		Notes:          input.Notes,
		DiscountAmount: input.DiscountAmount,
		TaxAmount:      input.TaxAmount,
		CommissionRate: input.CommissionRate,
	}
	sale.CommissionAmount = sale.Commission()

	if err := s.store.Create(sale); err != nil {
		s.logger.Error("failed to create sale",
			zap.Uint("client_id", input.ClientID),
			zap.Uint("vehicle_id", input.VehicleID),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("sale created",
		zap.Uint("sale_id", sale.ID),
		zap.Uint("vehicle_id", sale.VehicleID),
		zap.Float64("total_amount", sale.TotalAmount))
	return sale, nil
}

// UpdateSale applies partial changes and recomputes the commission
// amount whenever one of its inputs changed.
func (s *SaleService) UpdateSale(id uint, input UpdateSaleInput) (*models.Sale, error) {
	current, err := s.store.GetByID(id)
	if err != nil {
		return nil, err
	}

	total := current.TotalAmount
	if input.TotalAmount != nil {
		total = *input.TotalAmount
	}
	discount := current.DiscountAmount
	if input.DiscountAmount != nil {
		discount = *input.DiscountAmount
	}
	tax := current.TaxAmount
	if input.TaxAmount != nil {
		tax = *input.TaxAmount
	}
	rate := current.CommissionRate
	if input.CommissionRate != nil {
		rate = *input.CommissionRate
	}
	if err := validateSaleAmounts(total, discount, tax, rate); err != nil {
		return nil, err
	}
	if input.PaymentMethod != nil && !models.IsValidPaymentMethod(*input.PaymentMethod) {
		return nil, &repositories.ConstraintError{Entity: "sale", Field: "payment_method", Reason: "unknown payment method"}
	}
	if input.Status != nil && !models.IsValidSaleStatus(*input.Status) {
		return nil, &repositories.ConstraintError{Entity: "sale", Field: "status", Reason: "unknown status"}
	}

	updates := map[string]interface{}{
		"total_amount":    total,
		"discount_amount": discount,
		"tax_amount":      tax,
		"commission_rate": rate,
		"commission_amount": (&models.Sale{
			TotalAmount:    total,
			DiscountAmount: discount,
			CommissionRate: rate,
		}).Commission(),
	}
	if input.PaymentMethod != nil {
		updates["payment_method"] = *input.PaymentMethod
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}
	if input.SaleDate != nil {
		updates["sale_date"] = *input.SaleDate
	}
	if input.Notes != nil {
		updates["notes"] = *input.Notes
	}

	sale, err := s.store.Update(id, updates)
	if err != nil {
		s.logger.Error("failed to update sale", zap.Uint("sale_id", id), zap.Error(err))
		return nil, err
	}
	s.logger.Info("sale updated", zap.Uint("sale_id", id))
	return sale, nil
}

// UpdateStatus changes only the sale status.
func (s *SaleService) UpdateStatus(id uint, status string) (*models.Sale, error) {
	if !models.IsValidSaleStatus(status) {
		return nil, &repositories.ConstraintError{Entity: "sale", Field: "status", Reason: "unknown status"}
	}
	sale, err := s.store.Update(id, map[string]interface{}{"status": status})
	if err != nil {
		return nil, err
	}
	s.logger.Info("sale status updated", zap.Uint("sale_id", id), zap.String("status", status))
	return sale, nil
}

func (s *SaleService) GetSale(id uint) (*models.Sale, error) {
	return s.store.GetByID(id)
}

func (s *SaleService) ListSales(filter repositories.SaleFilter) ([]models.Sale, int64, error) {
	return s.store.List(filter)
}

// DeleteSale removes the historical record, releasing the delete
// protection it held on the client, employee and vehicle.
func (s *SaleService) DeleteSale(id uint) error {
	if err := s.store.Delete(id); err != nil {
		return err
	}
	s.logger.Info("sale deleted", zap.Uint("sale_id", id))
	return nil
}
