package customer

import (
	"context"
	"strings"

	"customerhub/internal/domain"
)

// ChangePersonFirstName renames a person customer.
func (s *Service) ChangePersonFirstName(ctx context.Context, customerID, firstName string) (*domain.Customer, error) {
	if strings.TrimSpace(firstName) == "" {
		return nil, domain.Invalid("firstName", "required")
	}
	return s.updateTyped(ctx, customerID, domain.TypePerson, func(c *domain.Customer) error {
		return c.ChangeFirstName(firstName)
	})
}

// ChangePersonLastName renames a person customer.
func (s *Service) ChangePersonLastName(ctx context.Context, customerID, lastName string) (*domain.Customer, error) {
	if strings.TrimSpace(lastName) == "" {
		return nil, domain.Invalid("lastName", "required")
	}
	return s.updateTyped(ctx, customerID, domain.TypePerson, func(c *domain.Customer) error {
		return c.ChangeLastName(lastName)
	})
}

// ChangePersonBirthDate sets the person's birth date from a YYYY-MM-DD value.
func (s *Service) ChangePersonBirthDate(ctx context.Context, customerID, birthDate string) (*domain.Customer, error) {
	if strings.TrimSpace(birthDate) == "" {
		return nil, domain.Invalid("birthDate", "required")
	}
	parsed, err := parseBirthDate(birthDate)
	if err != nil {
		return nil, err
	}
	return s.updateTyped(ctx, customerID, domain.TypePerson, func(c *domain.Customer) error {
		return c.ChangeBirthDate(*parsed)
	})
}

// ChangePersonGender sets the person's gender.
func (s *Service) ChangePersonGender(ctx context.Context, customerID, gender string) (*domain.Customer, error) {
	parsed, err := parseGender(gender)
	if err != nil {
		return nil, err
	}
	return s.updateTyped(ctx, customerID, domain.TypePerson, func(c *domain.Customer) error {
		return c.ChangeGender(parsed)
	})
}

// SetCustomerNationalID stores the national identification number for either
// variant; the aggregate dispatches on its own type tag.
func (s *Service) SetCustomerNationalID(ctx context.Context, customerID, nationalID string) (*domain.Customer, error) {
	return s.update(ctx, customerID, func(c *domain.Customer) error {
		return c.SetNationalID(nationalID)
	})
}

// SetPersonNationalID stores the person's national identification number.
func (s *Service) SetPersonNationalID(ctx context.Context, customerID, nationalID string) (*domain.Customer, error) {
	return s.updateTyped(ctx, customerID, domain.TypePerson, func(c *domain.Customer) error {
		return c.SetNationalID(nationalID)
	})
}

// ChangeCompanyName renames a company customer.
func (s *Service) ChangeCompanyName(ctx context.Context, customerID, companyName string) (*domain.Customer, error) {
	if strings.TrimSpace(companyName) == "" {
		return nil, domain.Invalid("companyName", "required")
	}
	return s.updateTyped(ctx, customerID, domain.TypeCompany, func(c *domain.Customer) error {
		return c.ChangeCompanyName(companyName)
	})
}

// ChangeCompanyVatNumber replaces a company's VAT number.
func (s *Service) ChangeCompanyVatNumber(ctx context.Context, customerID, vatNumber string) (*domain.Customer, error) {
	if strings.TrimSpace(vatNumber) == "" {
		return nil, domain.Invalid("vatNumber", "required")
	}
	return s.updateTyped(ctx, customerID, domain.TypeCompany, func(c *domain.Customer) error {
		return c.ChangeVatNumber(vatNumber)
	})
}

// ChangeCompanyLegalAddress replaces a company's legal address.
func (s *Service) ChangeCompanyLegalAddress(ctx context.Context, customerID string, in AddressInput) (*domain.Customer, error) {
	if err := validateAddress(in); err != nil {
		return nil, err
	}
	return s.updateTyped(ctx, customerID, domain.TypeCompany, func(c *domain.Customer) error {
		return c.ChangeLegalAddress(in.toDomain())
	})
}

// SetCompanyNationalID stores the company's national identification number.
func (s *Service) SetCompanyNationalID(ctx context.Context, customerID, nationalID string) (*domain.Customer, error) {
	return s.updateTyped(ctx, customerID, domain.TypeCompany, func(c *domain.Customer) error {
		return c.SetNationalID(nationalID)
	})
}
