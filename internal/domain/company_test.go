package domain

import (
	"errors"
	"testing"
)

func TestRegisterCompanyValidatesRequiredFields(t *testing.T) {
	var verr *ValidationError

	_, err := RegisterCompany("", "1234567890")
	if !errors.As(err, &verr) || verr.Field != "companyName" {
		t.Fatalf("expected companyName validation, got %v", err)
	}
	_, err = RegisterCompany("Acme", "")
	if !errors.As(err, &verr) || verr.Field != "vatNumber" {
		t.Fatalf("expected vatNumber validation, got %v", err)
	}
}

func TestChangeCompanyNameScenario(t *testing.T) {
	c, err := RegisterCompany("Acme", "1234567890")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	var verr *ValidationError
	if err := c.ChangeCompanyName(""); !errors.As(err, &verr) || verr.Field != "companyName" {
		t.Fatalf("expected companyName validation, got %v", err)
	}
	if c.Company.CompanyName != "Acme" {
		t.Fatalf("failed change must not mutate")
	}

	if err := c.ChangeCompanyName("Acme Corp"); err != nil {
		t.Fatalf("change: %v", err)
	}
	if c.Company.CompanyName != "Acme Corp" {
		t.Fatalf("company name not applied")
	}
	if c.Company.VatNumber != "1234567890" {
		t.Fatalf("vat number must be unchanged, got %s", c.Company.VatNumber)
	}
}

func TestChangeVatNumberRejectsEmpty(t *testing.T) {
	c, _ := RegisterCompany("Acme", "1234567890")

	var verr *ValidationError
	if err := c.ChangeVatNumber("  "); !errors.As(err, &verr) || verr.Field != "vatNumber" {
		t.Fatalf("expected vatNumber validation, got %v", err)
	}
	if err := c.ChangeVatNumber("0987654321"); err != nil {
		t.Fatalf("change: %v", err)
	}
	if c.Company.VatNumber != "0987654321" {
		t.Fatalf("vat number not applied")
	}
}

func TestChangeLegalAddressValidatesShape(t *testing.T) {
	c, _ := RegisterCompany("Acme", "1234567890")

	var verr *ValidationError
	bad := PostalAddress{Address: "Via Roma 1", City: "Rome"}
	if err := c.ChangeLegalAddress(bad); !errors.As(err, &verr) || verr.Field != "province" {
		t.Fatalf("expected province validation, got %v", err)
	}
	if !c.Company.LegalAddress.Equals(PostalAddress{}) {
		t.Fatalf("failed change must leave the empty default")
	}

	good := testAddress()
	if err := c.ChangeLegalAddress(good); err != nil {
		t.Fatalf("change: %v", err)
	}
	if !c.Company.LegalAddress.Equals(good) {
		t.Fatalf("legal address not applied: %+v", c.Company.LegalAddress)
	}
}

func TestRegisterCompanyWithAccount(t *testing.T) {
	c, err := RegisterCompanyWithAccount("Acme", "1234567890", "u-9", "acme")
	if err != nil {
		t.Fatalf("register with account: %v", err)
	}
	if c.Account == nil || !c.Account.Equals(AccountInfo{UserID: "u-9", UserName: "acme"}) {
		t.Fatalf("account must be linked, got %+v", c.Account)
	}

	var verr *ValidationError
	if _, err := RegisterCompanyWithAccount("Acme", "1234567890", "u-9", " "); !errors.As(err, &verr) || verr.Field != "userName" {
		t.Fatalf("expected userName validation, got %v", err)
	}
}

func TestCompanyBehaviorOnPersonIsNotFound(t *testing.T) {
	c := registerTestPerson(t)
	if err := c.ChangeCompanyName("Acme"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found on wrong variant, got %v", err)
	}
}
