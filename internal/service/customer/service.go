package customer

import (
	"context"
	"io"
	"log"
	"strings"
	"time"

	"customerhub/internal/accounts"
	"customerhub/internal/domain"
	custrepo "customerhub/internal/repository/customer"
	factrepo "customerhub/internal/repository/fact"
)

// Service implements the customer use cases. Every command validates its raw
// inputs first, then loads the aggregate, invokes behavior, and persists.
// Account-affecting commands additionally coordinate the remote account
// service; persistence is always the last step so a remote failure never
// leaves a half-written aggregate behind.
type Service struct {
	repo     custrepo.Repository
	accounts accounts.Client
	factLog  factrepo.Repository
	bus      domain.FactBus
	logger   *log.Logger
}

// New creates a Service. bus and factLog may be nil in tests.
func New(repo custrepo.Repository, accounts accounts.Client, factLog factrepo.Repository, bus domain.FactBus, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		repo:     repo,
		accounts: accounts,
		factLog:  factLog,
		bus:      bus,
		logger:   logger,
	}
}

// AddressInput mirrors incoming address payloads.
type AddressInput struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Province   string `json:"province"`
	Country    string `json:"country"`
}

func (in AddressInput) toDomain() domain.PostalAddress {
	return domain.PostalAddress{
		Address:    in.Address,
		City:       in.City,
		PostalCode: in.PostalCode,
		Province:   in.Province,
		Country:    in.Country,
	}
}

func validateAddress(in AddressInput) error {
	if strings.TrimSpace(in.Address) == "" {
		return domain.Invalid("address", "required")
	}
	if strings.TrimSpace(in.City) == "" {
		return domain.Invalid("city", "required")
	}
	if strings.TrimSpace(in.Province) == "" {
		return domain.Invalid("province", "required")
	}
	return nil
}

func parseGender(value string) (domain.Gender, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return domain.GenderUnspecified, nil
	case "male":
		return domain.GenderMale, nil
	case "female":
		return domain.GenderFemale, nil
	case "unspecified":
		return domain.GenderUnspecified, nil
	default:
		return "", domain.Invalid("gender", "must be male, female or unspecified")
	}
}

func parseBirthDate(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, domain.Invalid("birthDate", "must be a YYYY-MM-DD date")
	}
	return &t, nil
}

func (s *Service) fetch(ctx context.Context, id string) (*domain.Customer, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.Invalid("customerId", "required")
	}
	return s.repo.Get(ctx, id)
}

// fetchTyped is the typed fetch used by variant-specific commands: from the
// caller's view a person command addressed at a company id names a customer
// that does not exist.
func (s *Service) fetchTyped(ctx context.Context, id string, want domain.CustomerType) (*domain.Customer, error) {
	c, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Type != want {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (s *Service) update(ctx context.Context, id string, mutate func(*domain.Customer) error) (*domain.Customer, error) {
	c, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, c, mutate)
}

func (s *Service) updateTyped(ctx context.Context, id string, want domain.CustomerType, mutate func(*domain.Customer) error) (*domain.Customer, error) {
	c, err := s.fetchTyped(ctx, id, want)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, c, mutate)
}

func (s *Service) apply(ctx context.Context, c *domain.Customer, mutate func(*domain.Customer) error) (*domain.Customer, error) {
	if err := mutate(c); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	s.publish(c)
	return c, nil
}

func (s *Service) publish(c *domain.Customer) {
	facts := c.PullFacts()
	if s.bus == nil {
		return
	}
	for _, f := range facts {
		s.bus.Publish(f)
	}
}

// diverged builds, logs and returns the ConsistencyError for a dual write
// whose final persist failed after the remote call succeeded.
func (s *Service) diverged(customerID, op, remoteUserID string, err error) error {
	cerr := &domain.ConsistencyError{
		CustomerID:   customerID,
		Op:           op,
		RemoteUserID: remoteUserID,
		Err:          err,
	}
	s.logger.Printf("dual write: %v", cerr)
	return cerr
}

// DeleteCustomer flags the customer deleted.
func (s *Service) DeleteCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	return s.update(ctx, customerID, func(c *domain.Customer) error {
		return c.Delete()
	})
}

// RestoreCustomer reverses a prior delete.
func (s *Service) RestoreCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	return s.update(ctx, customerID, func(c *domain.Customer) error {
		return c.Restore()
	})
}

// GetCustomer returns a single customer by id.
func (s *Service) GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	return s.fetch(ctx, customerID)
}

// ListCustomers returns customers filtered by type and deletion flag.
func (s *Service) ListCustomers(ctx context.Context, f custrepo.Filter) ([]domain.Customer, error) {
	return s.repo.List(ctx, f)
}

// CustomerFacts returns the audit trail recorded for a customer.
func (s *Service) CustomerFacts(ctx context.Context, customerID string) ([]domain.Fact, error) {
	if strings.TrimSpace(customerID) == "" {
		return nil, domain.Invalid("customerId", "required")
	}
	return s.factLog.ListByCustomer(ctx, customerID)
}
