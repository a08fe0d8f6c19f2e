package customer

import (
	"context"
	"strings"

	"customerhub/internal/domain"
)

// The account commands are dual writes: one write lands in the aggregate
// store, the other in the remote account service, with no shared transaction.
// The order is always mutate in memory, call the remote service, persist
// last. A remote failure therefore leaves the stored aggregate untouched; a
// persist failure after a successful remote call is reported as a
// ConsistencyError for the caller's reconciliation policy.

// SetCustomerAccount registers a fresh account remotely and links it to the
// customer, replacing any current account.
func (s *Service) SetCustomerAccount(ctx context.Context, customerID, userName, password string) (*domain.Customer, error) {
	if strings.TrimSpace(userName) == "" {
		return nil, domain.Invalid("userName", "required")
	}
	if strings.TrimSpace(password) == "" {
		return nil, domain.Invalid("password", "required")
	}
	c, err := s.fetch(ctx, customerID)
	if err != nil {
		return nil, err
	}

	userID, err := s.accounts.RegisterAccount(ctx, userName, password)
	if err != nil {
		return nil, err
	}
	c.SetAccount(userID, userName)
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, s.diverged(c.ID, "set account", userID, err)
	}
	s.publish(c)
	return c, nil
}

// RemoveCustomerAccount unlinks the customer's account and disables it
// remotely. Removing when no account is linked only persists the no-op.
func (s *Service) RemoveCustomerAccount(ctx context.Context, customerID string) (*domain.Customer, error) {
	c, err := s.fetch(ctx, customerID)
	if err != nil {
		return nil, err
	}

	var userID string
	if c.Account != nil {
		userID = c.Account.UserID
	}
	c.RemoveAccount()
	if userID != "" {
		if err := s.accounts.DisableAccount(ctx, userID); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Save(ctx, c); err != nil {
		if userID != "" {
			return nil, s.diverged(c.ID, "remove account", userID, err)
		}
		return nil, err
	}
	s.publish(c)
	return c, nil
}

// LockCustomerAccount locks the linked account locally and disables it in
// the remote account service.
func (s *Service) LockCustomerAccount(ctx context.Context, customerID string) (*domain.Customer, error) {
	c, err := s.fetch(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if err := c.LockAccount(); err != nil {
		return nil, err
	}

	userID := c.Account.UserID
	if err := s.accounts.DisableAccount(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, s.diverged(c.ID, "lock account", userID, err)
	}
	s.publish(c)
	return c, nil
}

// UnlockCustomerAccount unlocks the linked account locally and re-enables it
// in the remote account service.
func (s *Service) UnlockCustomerAccount(ctx context.Context, customerID string) (*domain.Customer, error) {
	c, err := s.fetch(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if err := c.UnlockAccount(); err != nil {
		return nil, err
	}

	userID := c.Account.UserID
	if err := s.accounts.EnableAccount(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, s.diverged(c.ID, "unlock account", userID, err)
	}
	s.publish(c)
	return c, nil
}
