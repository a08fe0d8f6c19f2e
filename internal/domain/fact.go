package domain

import "time"

// FactKind classifies recorded facts.
type FactKind string

const (
	FactCustomerRegistered FactKind = "customer.registered"
	FactCustomerDeleted    FactKind = "customer.deleted"
	FactCustomerRestored   FactKind = "customer.restored"
	FactAccountSet         FactKind = "customer.account.set"
	FactAccountRemoved     FactKind = "customer.account.removed"
	FactAccountLocked      FactKind = "customer.account.locked"
	FactAccountUnlocked    FactKind = "customer.account.unlocked"
	FactBillingAdded       FactKind = "customer.billing.added"
	FactBillingChanged     FactKind = "customer.billing.changed"
	FactBillingRemoved     FactKind = "customer.billing.removed"
	FactBillingDefaultSet  FactKind = "customer.billing.default-set"
	FactShippingAdded      FactKind = "customer.shipping.added"
	FactShippingChanged    FactKind = "customer.shipping.changed"
	FactShippingRemoved    FactKind = "customer.shipping.removed"
	FactShippingDefaultSet FactKind = "customer.shipping.default-set"
	FactPersonChanged      FactKind = "person.changed"
	FactCompanyChanged     FactKind = "company.changed"
)

// Fact is an immutable record of one successful aggregate behavior, kept in
// an append-only log for audit trails.
type Fact struct {
	ID           string       `json:"id"`
	CustomerID   string       `json:"customerId"`
	CustomerType CustomerType `json:"customerType"`
	Kind         FactKind     `json:"kind"`
	Summary      string       `json:"summary"`
	OccurredAt   time.Time    `json:"occurredAt"`
}

// FactHandler consumes published facts. Handlers should be idempotent.
type FactHandler func(Fact)

// FactBus dispatches facts recorded by aggregates to registered listeners
// once the aggregate has been persisted.
type FactBus interface {
	Publish(Fact)
	Subscribe(FactHandler)
}
