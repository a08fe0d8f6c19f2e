package customer

import (
	"context"
	"strings"

	"customerhub/internal/domain"
)

// RegisterPersonInput captures the fields expected when registering a person.
type RegisterPersonInput struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Gender     string `json:"gender"`
	BirthDate  string `json:"birthDate"`
	NationalID string `json:"nationalIdentificationNumber"`
}

// RegisterPersonWithAccountInput additionally carries account credentials.
type RegisterPersonWithAccountInput struct {
	RegisterPersonInput
	UserName string `json:"userName"`
	Password string `json:"password"`
}

// RegisterCompanyInput captures the fields expected when registering a company.
type RegisterCompanyInput struct {
	CompanyName string `json:"companyName"`
	VatNumber   string `json:"vatNumber"`
	NationalID  string `json:"nationalIdentificationNumber"`
}

// RegisterCompanyWithAccountInput additionally carries account credentials.
type RegisterCompanyWithAccountInput struct {
	RegisterCompanyInput
	UserName string `json:"userName"`
	Password string `json:"password"`
}

// RegisterPerson creates and persists a new person customer.
func (s *Service) RegisterPerson(ctx context.Context, in RegisterPersonInput) (*domain.Customer, error) {
	if strings.TrimSpace(in.FirstName) == "" {
		return nil, domain.Invalid("firstName", "required")
	}
	if strings.TrimSpace(in.LastName) == "" {
		return nil, domain.Invalid("lastName", "required")
	}
	gender, err := parseGender(in.Gender)
	if err != nil {
		return nil, err
	}
	birth, err := parseBirthDate(in.BirthDate)
	if err != nil {
		return nil, err
	}

	c, err := domain.RegisterPerson(in.FirstName, in.LastName, gender, birth)
	if err != nil {
		return nil, err
	}
	if in.NationalID != "" {
		if err := c.SetNationalID(in.NationalID); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	s.publish(c)
	return c, nil
}

// RegisterPersonWithAccount registers an account remotely, then creates and
// persists the person with that account linked. The local write is last; if
// it fails the divergence is reported, never swallowed.
func (s *Service) RegisterPersonWithAccount(ctx context.Context, in RegisterPersonWithAccountInput) (*domain.Customer, error) {
	if strings.TrimSpace(in.FirstName) == "" {
		return nil, domain.Invalid("firstName", "required")
	}
	if strings.TrimSpace(in.LastName) == "" {
		return nil, domain.Invalid("lastName", "required")
	}
	gender, err := parseGender(in.Gender)
	if err != nil {
		return nil, err
	}
	birth, err := parseBirthDate(in.BirthDate)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.UserName) == "" {
		return nil, domain.Invalid("userName", "required")
	}
	if strings.TrimSpace(in.Password) == "" {
		return nil, domain.Invalid("password", "required")
	}

	userID, err := s.accounts.FindOrRegisterAccount(ctx, in.UserName, in.Password)
	if err != nil {
		return nil, err
	}
	c, err := domain.RegisterPersonWithAccount(in.FirstName, in.LastName, gender, birth, userID, in.UserName)
	if err != nil {
		return nil, err
	}
	if in.NationalID != "" {
		if err := c.SetNationalID(in.NationalID); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, s.diverged(c.ID, "register person with account", userID, err)
	}
	s.publish(c)
	return c, nil
}

// RegisterCompany creates and persists a new company customer.
func (s *Service) RegisterCompany(ctx context.Context, in RegisterCompanyInput) (*domain.Customer, error) {
	if strings.TrimSpace(in.CompanyName) == "" {
		return nil, domain.Invalid("companyName", "required")
	}
	if strings.TrimSpace(in.VatNumber) == "" {
		return nil, domain.Invalid("vatNumber", "required")
	}

	c, err := domain.RegisterCompany(in.CompanyName, in.VatNumber)
	if err != nil {
		return nil, err
	}
	if in.NationalID != "" {
		if err := c.SetNationalID(in.NationalID); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	s.publish(c)
	return c, nil
}

// RegisterCompanyWithAccount registers an account remotely, then creates and
// persists the company with that account linked.
func (s *Service) RegisterCompanyWithAccount(ctx context.Context, in RegisterCompanyWithAccountInput) (*domain.Customer, error) {
	if strings.TrimSpace(in.CompanyName) == "" {
		return nil, domain.Invalid("companyName", "required")
	}
	if strings.TrimSpace(in.VatNumber) == "" {
		return nil, domain.Invalid("vatNumber", "required")
	}
	if strings.TrimSpace(in.UserName) == "" {
		return nil, domain.Invalid("userName", "required")
	}
	if strings.TrimSpace(in.Password) == "" {
		return nil, domain.Invalid("password", "required")
	}

	userID, err := s.accounts.FindOrRegisterAccount(ctx, in.UserName, in.Password)
	if err != nil {
		return nil, err
	}
	c, err := domain.RegisterCompanyWithAccount(in.CompanyName, in.VatNumber, userID, in.UserName)
	if err != nil {
		return nil, err
	}
	if in.NationalID != "" {
		if err := c.SetNationalID(in.NationalID); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, s.diverged(c.ID, "register company with account", userID, err)
	}
	s.publish(c)
	return c, nil
}
