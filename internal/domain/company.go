package domain

import "strings"

// CompanyDetails is the variant payload for organization customers.
type CompanyDetails struct {
	CompanyName  string        `json:"companyName"`
	VatNumber    string        `json:"vatNumber"`
	NationalID   string        `json:"nationalIdentificationNumber,omitempty"`
	LegalAddress PostalAddress `json:"legalAddress"`
}

// RegisterCompany creates a company customer. The legal address starts empty
// and is set through ChangeLegalAddress.
func RegisterCompany(companyName, vatNumber string) (*Customer, error) {
	if strings.TrimSpace(companyName) == "" {
		return nil, Invalid("companyName", "required")
	}
	if strings.TrimSpace(vatNumber) == "" {
		return nil, Invalid("vatNumber", "required")
	}
	c := newCustomer(TypeCompany)
	c.Company = &CompanyDetails{
		CompanyName: companyName,
		VatNumber:   vatNumber,
	}
	c.record(FactCustomerRegistered, "company %s registered", companyName)
	return c, nil
}

// RegisterCompanyWithAccount creates a company customer with a linked account.
func RegisterCompanyWithAccount(companyName, vatNumber, userID, userName string) (*Customer, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, Invalid("userId", "required")
	}
	if strings.TrimSpace(userName) == "" {
		return nil, Invalid("userName", "required")
	}
	c, err := RegisterCompany(companyName, vatNumber)
	if err != nil {
		return nil, err
	}
	c.Account = &AccountInfo{UserID: userID, UserName: userName}
	return c, nil
}

// ChangeCompanyName renames the company. Empty names are rejected.
func (c *Customer) ChangeCompanyName(companyName string) error {
	co, err := c.company()
	if err != nil {
		return err
	}
	if strings.TrimSpace(companyName) == "" {
		return Invalid("companyName", "required")
	}
	co.CompanyName = companyName
	c.record(FactCompanyChanged, "company name changed to %s on customer %s", companyName, c.ID)
	return nil
}

// ChangeVatNumber replaces the VAT number. Empty values are rejected.
func (c *Customer) ChangeVatNumber(vatNumber string) error {
	co, err := c.company()
	if err != nil {
		return err
	}
	if strings.TrimSpace(vatNumber) == "" {
		return Invalid("vatNumber", "required")
	}
	co.VatNumber = vatNumber
	c.record(FactCompanyChanged, "vat number changed on customer %s", c.ID)
	return nil
}

// ChangeLegalAddress replaces the legal address after shape validation.
func (c *Customer) ChangeLegalAddress(address PostalAddress) error {
	co, err := c.company()
	if err != nil {
		return err
	}
	if err := address.validate(); err != nil {
		return err
	}
	co.LegalAddress = address
	c.record(FactCompanyChanged, "legal address changed on customer %s", c.ID)
	return nil
}
