package customer

import (
	"context"
	"strings"

	"customerhub/internal/domain"
)

// BillingInfoInput mirrors incoming billing-information payloads.
type BillingInfoInput struct {
	Address    AddressInput `json:"billingAddress"`
	FullName   string       `json:"fullName"`
	NationalID string       `json:"nationalIdentificationNumber"`
	VatNumber  string       `json:"vatNumber"`
	IsDefault  bool         `json:"isDefault"`
}

// ShippingAddressInput mirrors incoming shipping-address payloads.
type ShippingAddressInput struct {
	Address   AddressInput `json:"addressInfo"`
	IsDefault bool         `json:"isDefault"`
}

// AddBillingInfo appends a billing record and returns the updated customer
// plus the new record's id.
func (s *Service) AddBillingInfo(ctx context.Context, customerID string, in BillingInfoInput) (*domain.Customer, string, error) {
	if err := validateAddress(in.Address); err != nil {
		return nil, "", err
	}
	var newID string
	c, err := s.update(ctx, customerID, func(c *domain.Customer) error {
		id, err := c.AddBillingInfo(in.Address.toDomain(), in.FullName, in.NationalID, in.VatNumber, in.IsDefault)
		newID = id
		return err
	})
	if err != nil {
		return nil, "", err
	}
	return c, newID, nil
}

// ChangeBillingInfo overwrites the billing record with the given id.
func (s *Service) ChangeBillingInfo(ctx context.Context, customerID, billingInfoID string, in BillingInfoInput) (*domain.Customer, error) {
	if strings.TrimSpace(billingInfoID) == "" {
		return nil, domain.Invalid("billingInfoId", "required")
	}
	if err := validateAddress(in.Address); err != nil {
		return nil, err
	}
	return s.update(ctx, customerID, func(c *domain.Customer) error {
		return c.ChangeBillingInfo(billingInfoID, in.Address.toDomain(), in.FullName, in.NationalID, in.VatNumber, in.IsDefault)
	})
}

// RemoveBillingInfo removes the billing record with the given id.
func (s *Service) RemoveBillingInfo(ctx context.Context, customerID, billingInfoID string) (*domain.Customer, error) {
	if strings.TrimSpace(billingInfoID) == "" {
		return nil, domain.Invalid("billingInfoId", "required")
	}
	return s.update(ctx, customerID, func(c *domain.Customer) error {
		return c.RemoveBillingInfo(billingInfoID)
	})
}

// MarkBillingInfoDefault makes the given billing record the single default.
func (s *Service) MarkBillingInfoDefault(ctx context.Context, customerID, billingInfoID string) (*domain.Customer, error) {
	if strings.TrimSpace(billingInfoID) == "" {
		return nil, domain.Invalid("billingInfoId", "required")
	}
	return s.update(ctx, customerID, func(c *domain.Customer) error {
		return c.MarkBillingInfoDefault(billingInfoID)
	})
}

// AddShippingAddress appends a shipping address and returns the updated
// customer plus the new address's id.
func (s *Service) AddShippingAddress(ctx context.Context, customerID string, in ShippingAddressInput) (*domain.Customer, string, error) {
	if err := validateAddress(in.Address); err != nil {
		return nil, "", err
	}
	var newID string
	c, err := s.update(ctx, customerID, func(c *domain.Customer) error {
		id, err := c.AddShippingAddress(in.Address.toDomain(), in.IsDefault)
		newID = id
		return err
	})
	if err != nil {
		return nil, "", err
	}
	return c, newID, nil
}

// ChangeShippingAddress overwrites the shipping address with the given id.
func (s *Service) ChangeShippingAddress(ctx context.Context, customerID, shippingAddressID string, in ShippingAddressInput) (*domain.Customer, error) {
	if strings.TrimSpace(shippingAddressID) == "" {
		return nil, domain.Invalid("shippingAddressId", "required")
	}
	if err := validateAddress(in.Address); err != nil {
		return nil, err
	}
	return s.update(ctx, customerID, func(c *domain.Customer) error {
		return c.ChangeShippingAddress(shippingAddressID, in.Address.toDomain(), in.IsDefault)
	})
}

// RemoveShippingAddress removes the shipping address with the given id.
func (s *Service) RemoveShippingAddress(ctx context.Context, customerID, shippingAddressID string) (*domain.Customer, error) {
	if strings.TrimSpace(shippingAddressID) == "" {
		return nil, domain.Invalid("shippingAddressId", "required")
	}
	return s.update(ctx, customerID, func(c *domain.Customer) error {
		return c.RemoveShippingAddress(shippingAddressID)
	})
}

// MarkShippingAddressDefault makes the given address the single default.
func (s *Service) MarkShippingAddressDefault(ctx context.Context, customerID, shippingAddressID string) (*domain.Customer, error) {
	if strings.TrimSpace(shippingAddressID) == "" {
		return nil, domain.Invalid("shippingAddressId", "required")
	}
	return s.update(ctx, customerID, func(c *domain.Customer) error {
		return c.MarkShippingAddressDefault(shippingAddressID)
	})
}
