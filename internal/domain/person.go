package domain

import (
	"strings"
	"time"
)

// Gender enumerates person genders.
type Gender string

const (
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
	GenderUnspecified Gender = "unspecified"
)

// PersonDetails is the variant payload for individual customers.
type PersonDetails struct {
	FirstName  string     `json:"firstName"`
	LastName   string     `json:"lastName"`
	Gender     Gender     `json:"gender"`
	BirthDate  *time.Time `json:"birthDate,omitempty"`
	NationalID string     `json:"nationalIdentificationNumber,omitempty"`
}

// RegisterPerson creates a person customer. All required fields are checked
// before anything is constructed.
func RegisterPerson(firstName, lastName string, gender Gender, birthDate *time.Time) (*Customer, error) {
	if strings.TrimSpace(firstName) == "" {
		return nil, Invalid("firstName", "required")
	}
	if strings.TrimSpace(lastName) == "" {
		return nil, Invalid("lastName", "required")
	}
	if birthDate != nil && !beforeToday(*birthDate) {
		return nil, Invalid("birthDate", "must be in the past")
	}
	if gender == "" {
		gender = GenderUnspecified
	}
	c := newCustomer(TypePerson)
	c.Person = &PersonDetails{
		FirstName: firstName,
		LastName:  lastName,
		Gender:    gender,
		BirthDate: birthDate,
	}
	c.record(FactCustomerRegistered, "person %s %s registered", firstName, lastName)
	return c, nil
}

// RegisterPersonWithAccount creates a person customer with a linked account.
func RegisterPersonWithAccount(firstName, lastName string, gender Gender, birthDate *time.Time, userID, userName string) (*Customer, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, Invalid("userId", "required")
	}
	if strings.TrimSpace(userName) == "" {
		return nil, Invalid("userName", "required")
	}
	c, err := RegisterPerson(firstName, lastName, gender, birthDate)
	if err != nil {
		return nil, err
	}
	c.Account = &AccountInfo{UserID: userID, UserName: userName}
	return c, nil
}

// ChangeFirstName renames the person. Empty names are rejected.
func (c *Customer) ChangeFirstName(firstName string) error {
	p, err := c.person()
	if err != nil {
		return err
	}
	if strings.TrimSpace(firstName) == "" {
		return Invalid("firstName", "required")
	}
	p.FirstName = firstName
	c.record(FactPersonChanged, "first name changed to %s on customer %s", firstName, c.ID)
	return nil
}

// ChangeLastName renames the person. Empty names are rejected.
func (c *Customer) ChangeLastName(lastName string) error {
	p, err := c.person()
	if err != nil {
		return err
	}
	if strings.TrimSpace(lastName) == "" {
		return Invalid("lastName", "required")
	}
	p.LastName = lastName
	c.record(FactPersonChanged, "last name changed to %s on customer %s", lastName, c.ID)
	return nil
}

// ChangeBirthDate sets the birth date, which must be strictly before today.
func (c *Customer) ChangeBirthDate(birthDate time.Time) error {
	p, err := c.person()
	if err != nil {
		return err
	}
	if !beforeToday(birthDate) {
		return Invalid("birthDate", "must be in the past")
	}
	d := birthDate
	p.BirthDate = &d
	c.record(FactPersonChanged, "birth date changed on customer %s", c.ID)
	return nil
}

// ChangeGender sets the gender unconditionally.
func (c *Customer) ChangeGender(gender Gender) error {
	p, err := c.person()
	if err != nil {
		return err
	}
	p.Gender = gender
	c.record(FactPersonChanged, "gender changed on customer %s", c.ID)
	return nil
}

// beforeToday reports whether t falls on a calendar day strictly before
// today (UTC). Any time on the current day is rejected.
func beforeToday(t time.Time) bool {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return t.Before(today)
}
