package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CustomerType tags the aggregate variant.
type CustomerType string

const (
	TypePerson  CustomerType = "person"
	TypeCompany CustomerType = "company"
)

// BillingInfo is a billing record owned by a customer. It has identity within
// the aggregate but is never referenced from outside it.
type BillingInfo struct {
	ID         string        `json:"id"`
	Address    PostalAddress `json:"billingAddress"`
	FullName   string        `json:"fullName,omitempty"`
	NationalID string        `json:"nationalIdentificationNumber,omitempty"`
	VatNumber  string        `json:"vatNumber,omitempty"`
	Default    bool          `json:"isDefault"`
}

// ShippingAddress is a shipping destination owned by a customer.
type ShippingAddress struct {
	ID      string        `json:"id"`
	Address PostalAddress `json:"addressInfo"`
	Default bool          `json:"isDefault"`
}

// Customer is the aggregate root: a person or company with an optional linked
// account and exclusively-owned billing and shipping collections. It is built
// only through the Register factories and mutated only through its methods.
type Customer struct {
	ID        string            `json:"id"`
	Type      CustomerType      `json:"type"`
	Deleted   bool              `json:"deleted"`
	CreatedAt time.Time         `json:"createdAt"`
	Version   int               `json:"version"`
	Account   *AccountInfo      `json:"account,omitempty"`
	Billing   []BillingInfo     `json:"billingInformation,omitempty"`
	Shipping  []ShippingAddress `json:"shippingAddresses,omitempty"`
	Person    *PersonDetails    `json:"person,omitempty"`
	Company   *CompanyDetails   `json:"company,omitempty"`

	pending []Fact
}

func newCustomer(t CustomerType) *Customer {
	return &Customer{
		ID:        uuid.NewString(),
		Type:      t,
		CreatedAt: time.Now().UTC(),
	}
}

func (c *Customer) record(kind FactKind, format string, args ...interface{}) {
	c.pending = append(c.pending, Fact{
		ID:           uuid.NewString(),
		CustomerID:   c.ID,
		CustomerType: c.Type,
		Kind:         kind,
		Summary:      fmt.Sprintf(format, args...),
		OccurredAt:   time.Now().UTC(),
	})
}

// PullFacts returns and clears the facts recorded since the last pull.
func (c *Customer) PullFacts() []Fact {
	facts := c.pending
	c.pending = nil
	return facts
}

// Delete marks the customer deleted. Deletion is a flag, never physical.
func (c *Customer) Delete() error {
	if c.Deleted {
		return &InvariantError{Reason: "customer already deleted"}
	}
	c.Deleted = true
	c.record(FactCustomerDeleted, "customer %s deleted", c.ID)
	return nil
}

// Restore reverses a prior Delete.
func (c *Customer) Restore() error {
	if !c.Deleted {
		return &InvariantError{Reason: "customer not deleted"}
	}
	c.Deleted = false
	c.record(FactCustomerRestored, "customer %s restored", c.ID)
	return nil
}

// SetAccount links a fresh, unlocked account, replacing any current one.
// Uniqueness of the account is the account service's concern, not the
// aggregate's.
func (c *Customer) SetAccount(userID, userName string) {
	c.Account = &AccountInfo{UserID: userID, UserName: userName}
	c.record(FactAccountSet, "account %s (%s) linked to customer %s", userName, userID, c.ID)
}

// RemoveAccount unlinks the current account, if any.
func (c *Customer) RemoveAccount() {
	c.Account = nil
	c.record(FactAccountRemoved, "account unlinked from customer %s", c.ID)
}

// LockAccount locks the linked account. Locking an already-locked account is
// a no-op.
func (c *Customer) LockAccount() error {
	if c.Account == nil {
		return &InvariantError{Reason: "no account linked"}
	}
	if c.Account.Locked {
		return nil
	}
	c.Account.Locked = true
	c.record(FactAccountLocked, "account %s locked for customer %s", c.Account.UserName, c.ID)
	return nil
}

// UnlockAccount unlocks a currently-locked account.
func (c *Customer) UnlockAccount() error {
	if c.Account == nil {
		return &InvariantError{Reason: "no account linked"}
	}
	if !c.Account.Locked {
		return &InvariantError{Reason: "account not locked"}
	}
	c.Account.Locked = false
	c.record(FactAccountUnlocked, "account %s unlocked for customer %s", c.Account.UserName, c.ID)
	return nil
}

// AddBillingInfo appends a billing record and returns its assigned id. When
// isDefault is requested the current default, if any, loses the flag in the
// same operation. The first record gets no implicit default.
func (c *Customer) AddBillingInfo(address PostalAddress, fullName, nationalID, vatNumber string, isDefault bool) (string, error) {
	if err := address.validate(); err != nil {
		return "", err
	}
	info := BillingInfo{
		ID:         uuid.NewString(),
		Address:    address,
		FullName:   fullName,
		NationalID: nationalID,
		VatNumber:  vatNumber,
		Default:    isDefault,
	}
	next := make([]BillingInfo, 0, len(c.Billing)+1)
	for _, b := range c.Billing {
		if isDefault {
			b.Default = false
		}
		next = append(next, b)
	}
	c.Billing = append(next, info)
	c.record(FactBillingAdded, "billing info %s added to customer %s", info.ID, c.ID)
	return info.ID, nil
}

// ChangeBillingInfo overwrites the billing record with the given id.
func (c *Customer) ChangeBillingInfo(id string, address PostalAddress, fullName, nationalID, vatNumber string, isDefault bool) error {
	idx := c.billingIndex(id)
	if idx < 0 {
		return ErrNotFound
	}
	if err := address.validate(); err != nil {
		return err
	}
	next := make([]BillingInfo, len(c.Billing))
	copy(next, c.Billing)
	if isDefault {
		for i := range next {
			next[i].Default = false
		}
	}
	next[idx] = BillingInfo{
		ID:         id,
		Address:    address,
		FullName:   fullName,
		NationalID: nationalID,
		VatNumber:  vatNumber,
		Default:    isDefault,
	}
	c.Billing = next
	c.record(FactBillingChanged, "billing info %s changed on customer %s", id, c.ID)
	return nil
}

// RemoveBillingInfo removes the billing record with the given id. If it was
// the default no replacement is chosen; callers mark a new one explicitly.
func (c *Customer) RemoveBillingInfo(id string) error {
	idx := c.billingIndex(id)
	if idx < 0 {
		return ErrNotFound
	}
	c.Billing = append(c.Billing[:idx:idx], c.Billing[idx+1:]...)
	c.record(FactBillingRemoved, "billing info %s removed from customer %s", id, c.ID)
	return nil
}

// MarkBillingInfoDefault makes the given record the single default, clearing
// every sibling in the same step.
func (c *Customer) MarkBillingInfoDefault(id string) error {
	idx := c.billingIndex(id)
	if idx < 0 {
		return ErrNotFound
	}
	next := make([]BillingInfo, len(c.Billing))
	copy(next, c.Billing)
	for i := range next {
		next[i].Default = i == idx
	}
	c.Billing = next
	c.record(FactBillingDefaultSet, "billing info %s marked default on customer %s", id, c.ID)
	return nil
}

// AddShippingAddress appends a shipping address and returns its assigned id.
// Default handling matches AddBillingInfo.
func (c *Customer) AddShippingAddress(address PostalAddress, isDefault bool) (string, error) {
	if err := address.validate(); err != nil {
		return "", err
	}
	addr := ShippingAddress{
		ID:      uuid.NewString(),
		Address: address,
		Default: isDefault,
	}
	next := make([]ShippingAddress, 0, len(c.Shipping)+1)
	for _, s := range c.Shipping {
		if isDefault {
			s.Default = false
		}
		next = append(next, s)
	}
	c.Shipping = append(next, addr)
	c.record(FactShippingAdded, "shipping address %s added to customer %s", addr.ID, c.ID)
	return addr.ID, nil
}

// ChangeShippingAddress overwrites the shipping address with the given id.
func (c *Customer) ChangeShippingAddress(id string, address PostalAddress, isDefault bool) error {
	idx := c.shippingIndex(id)
	if idx < 0 {
		return ErrNotFound
	}
	if err := address.validate(); err != nil {
		return err
	}
	next := make([]ShippingAddress, len(c.Shipping))
	copy(next, c.Shipping)
	if isDefault {
		for i := range next {
			next[i].Default = false
		}
	}
	next[idx] = ShippingAddress{ID: id, Address: address, Default: isDefault}
	c.Shipping = next
	c.record(FactShippingChanged, "shipping address %s changed on customer %s", id, c.ID)
	return nil
}

// RemoveShippingAddress removes the shipping address with the given id.
func (c *Customer) RemoveShippingAddress(id string) error {
	idx := c.shippingIndex(id)
	if idx < 0 {
		return ErrNotFound
	}
	c.Shipping = append(c.Shipping[:idx:idx], c.Shipping[idx+1:]...)
	c.record(FactShippingRemoved, "shipping address %s removed from customer %s", id, c.ID)
	return nil
}

// MarkShippingAddressDefault makes the given address the single default.
func (c *Customer) MarkShippingAddressDefault(id string) error {
	idx := c.shippingIndex(id)
	if idx < 0 {
		return ErrNotFound
	}
	next := make([]ShippingAddress, len(c.Shipping))
	copy(next, c.Shipping)
	for i := range next {
		next[i].Default = i == idx
	}
	c.Shipping = next
	c.record(FactShippingDefaultSet, "shipping address %s marked default on customer %s", id, c.ID)
	return nil
}

// SetNationalID stores the national identification number for either variant.
// An empty value clears it.
func (c *Customer) SetNationalID(value string) error {
	switch c.Type {
	case TypePerson:
		p, err := c.person()
		if err != nil {
			return err
		}
		p.NationalID = value
		c.record(FactPersonChanged, "national id set on customer %s", c.ID)
	case TypeCompany:
		co, err := c.company()
		if err != nil {
			return err
		}
		co.NationalID = value
		c.record(FactCompanyChanged, "national id set on customer %s", c.ID)
	default:
		return &InvariantError{Reason: "unknown customer type"}
	}
	return nil
}

func (c *Customer) billingIndex(id string) int {
	for i, b := range c.Billing {
		if b.ID == id {
			return i
		}
	}
	return -1
}

func (c *Customer) shippingIndex(id string) int {
	for i, s := range c.Shipping {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func (c *Customer) person() (*PersonDetails, error) {
	if c.Type != TypePerson || c.Person == nil {
		return nil, ErrNotFound
	}
	return c.Person, nil
}

func (c *Customer) company() (*CompanyDetails, error) {
	if c.Type != TypeCompany || c.Company == nil {
		return nil, ErrNotFound
	}
	return c.Company, nil
}
