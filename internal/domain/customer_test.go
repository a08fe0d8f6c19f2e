package domain

import (
	"errors"
	"testing"
)

func testAddress() PostalAddress {
	return PostalAddress{
		Address:    "Via Roma 1",
		City:       "Rome",
		PostalCode: "00100",
		Province:   "RM",
		Country:    "IT",
	}
}

func registerTestPerson(t *testing.T) *Customer {
	t.Helper()
	c, err := RegisterPerson("Jane", "Doe", GenderFemale, nil)
	if err != nil {
		t.Fatalf("register person: %v", err)
	}
	c.PullFacts()
	return c
}

func TestDeleteTwiceFailsSecondTime(t *testing.T) {
	c := registerTestPerson(t)

	if err := c.Delete(); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	err := c.Delete()
	var ierr *InvariantError
	if !errors.As(err, &ierr) {
		t.Fatalf("expected invariant violation, got %v", err)
	}
	if !c.Deleted {
		t.Fatalf("failed delete must not clear the flag")
	}
}

func TestRestoreBeforeDeleteFails(t *testing.T) {
	c := registerTestPerson(t)

	err := c.Restore()
	var ierr *InvariantError
	if !errors.As(err, &ierr) {
		t.Fatalf("expected invariant violation, got %v", err)
	}

	if err := c.Delete(); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := c.Restore(); err != nil {
		t.Fatalf("restore after delete: %v", err)
	}
	if c.Deleted {
		t.Fatalf("restore must clear the deleted flag")
	}
}

func TestLockAccountRequiresAccount(t *testing.T) {
	c := registerTestPerson(t)

	err := c.LockAccount()
	var ierr *InvariantError
	if !errors.As(err, &ierr) {
		t.Fatalf("expected invariant violation without account, got %v", err)
	}

	c.SetAccount("u-1", "jane")
	if err := c.LockAccount(); err != nil {
		t.Fatalf("lock with account: %v", err)
	}
	if !c.Account.Locked {
		t.Fatalf("account must be locked")
	}

	// locking twice is a no-op
	if err := c.LockAccount(); err != nil {
		t.Fatalf("second lock: %v", err)
	}

	if err := c.UnlockAccount(); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if c.Account.Locked {
		t.Fatalf("account must be unlocked")
	}

	err = c.UnlockAccount()
	if !errors.As(err, &ierr) {
		t.Fatalf("expected invariant violation unlocking an unlocked account, got %v", err)
	}
}

func TestSetAccountReplacesUnlocked(t *testing.T) {
	c := registerTestPerson(t)

	c.SetAccount("u-1", "jane")
	if err := c.LockAccount(); err != nil {
		t.Fatalf("lock: %v", err)
	}
	c.SetAccount("u-2", "jane2")
	if c.Account.UserID != "u-2" || c.Account.Locked {
		t.Fatalf("set account must replace with a fresh unlocked account, got %+v", c.Account)
	}

	c.RemoveAccount()
	if c.Account != nil {
		t.Fatalf("remove account must unlink, got %+v", c.Account)
	}
}

func TestAddBillingInfoTwoDefaultsKeepsOne(t *testing.T) {
	c := registerTestPerson(t)

	first, err := c.AddBillingInfo(testAddress(), "Jane Doe", "", "1234567890", true)
	if err != nil {
		t.Fatalf("add first: %v", err)
	}
	second, err := c.AddBillingInfo(testAddress(), "Jane Doe", "", "1234567890", true)
	if err != nil {
		t.Fatalf("add second: %v", err)
	}

	defaults := 0
	for _, b := range c.Billing {
		if b.Default {
			defaults++
			if b.ID != second {
				t.Fatalf("most recently marked entry must hold the default, got %s", b.ID)
			}
		}
	}
	if defaults != 1 {
		t.Fatalf("expected exactly one default, got %d", defaults)
	}
	if first == second {
		t.Fatalf("ids must be unique")
	}
}

func TestMarkBillingDefaultUnknownIDLeavesFlags(t *testing.T) {
	c := registerTestPerson(t)

	id, err := c.AddBillingInfo(testAddress(), "Jane Doe", "", "", true)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := c.MarkBillingInfoDefault("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if !c.Billing[0].Default || c.Billing[0].ID != id {
		t.Fatalf("existing default flags must be unchanged, got %+v", c.Billing)
	}
}

func TestBillingInfoValidation(t *testing.T) {
	c := registerTestPerson(t)

	bad := testAddress()
	bad.City = " "
	_, err := c.AddBillingInfo(bad, "Jane Doe", "", "", false)
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "city" {
		t.Fatalf("expected validation error on city, got %v", err)
	}
	if len(c.Billing) != 0 {
		t.Fatalf("failed add must not append")
	}
}

func TestChangeBillingInfoReassignsDefault(t *testing.T) {
	c := registerTestPerson(t)

	first, _ := c.AddBillingInfo(testAddress(), "Jane Doe", "", "", true)
	second, _ := c.AddBillingInfo(testAddress(), "Jane Doe", "", "", false)

	if err := c.ChangeBillingInfo(second, testAddress(), "J. Doe", "ABC", "999", true); err != nil {
		t.Fatalf("change: %v", err)
	}
	for _, b := range c.Billing {
		switch b.ID {
		case first:
			if b.Default {
				t.Fatalf("previous default must be cleared")
			}
		case second:
			if !b.Default || b.FullName != "J. Doe" {
				t.Fatalf("changed entry not updated: %+v", b)
			}
		}
	}

	if err := c.ChangeBillingInfo("missing", testAddress(), "", "", "", false); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRemoveBillingInfoNoAutoDefault(t *testing.T) {
	c := registerTestPerson(t)

	first, _ := c.AddBillingInfo(testAddress(), "Jane Doe", "", "", true)
	c.AddBillingInfo(testAddress(), "Jane Doe", "", "", false)

	if err := c.RemoveBillingInfo(first); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(c.Billing) != 1 {
		t.Fatalf("expected one remaining entry, got %d", len(c.Billing))
	}
	if c.Billing[0].Default {
		t.Fatalf("no replacement default may be auto-selected")
	}

	if err := c.RemoveBillingInfo("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestShippingDefaultMovesOnSecondAdd(t *testing.T) {
	c := registerTestPerson(t)

	first, err := c.AddShippingAddress(testAddress(), true)
	if err != nil {
		t.Fatalf("add first: %v", err)
	}
	milan := PostalAddress{Address: "Via Milano 2", City: "Milan", Province: "MI"}
	second, err := c.AddShippingAddress(milan, true)
	if err != nil {
		t.Fatalf("add second: %v", err)
	}

	for _, s := range c.Shipping {
		switch s.ID {
		case first:
			if s.Default {
				t.Fatalf("first address must lose the default")
			}
		case second:
			if !s.Default {
				t.Fatalf("second address must gain the default")
			}
		}
	}
}

func TestMarkShippingAddressDefault(t *testing.T) {
	c := registerTestPerson(t)

	first, _ := c.AddShippingAddress(testAddress(), true)
	second, _ := c.AddShippingAddress(PostalAddress{Address: "Via Milano 2", City: "Milan", Province: "MI"}, false)

	if err := c.MarkShippingAddressDefault(second); err != nil {
		t.Fatalf("mark default: %v", err)
	}
	if c.Shipping[0].ID != first || c.Shipping[0].Default {
		t.Fatalf("previous default must be cleared")
	}
	if !c.Shipping[1].Default {
		t.Fatalf("target must become default")
	}

	if err := c.MarkShippingAddressDefault("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestShippingAddressFirstAddNoImplicitDefault(t *testing.T) {
	c := registerTestPerson(t)

	if _, err := c.AddShippingAddress(testAddress(), false); err != nil {
		t.Fatalf("add: %v", err)
	}
	if c.Shipping[0].Default {
		t.Fatalf("first address must not become default unless requested")
	}
}

func TestPullFactsDrains(t *testing.T) {
	c, err := RegisterPerson("Jane", "Doe", GenderFemale, nil)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	facts := c.PullFacts()
	if len(facts) != 1 || facts[0].Kind != FactCustomerRegistered {
		t.Fatalf("expected a single registration fact, got %+v", facts)
	}
	if facts[0].CustomerID != c.ID || facts[0].CustomerType != TypePerson {
		t.Fatalf("fact must carry aggregate id and type tag: %+v", facts[0])
	}
	if got := c.PullFacts(); len(got) != 0 {
		t.Fatalf("second pull must be empty, got %+v", got)
	}

	if err := c.Delete(); err != nil {
		t.Fatalf("delete: %v", err)
	}
	facts = c.PullFacts()
	if len(facts) != 1 || facts[0].Kind != FactCustomerDeleted {
		t.Fatalf("expected a delete fact, got %+v", facts)
	}
}
