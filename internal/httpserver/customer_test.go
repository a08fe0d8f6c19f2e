package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"customerhub/internal/domain"
	custrepo "customerhub/internal/repository/customer"
	customersvc "customerhub/internal/service/customer"
	"github.com/gin-gonic/gin"
)

// stubService satisfies CustomerService with canned responses and records
// the last call so route wiring can be asserted.
type stubService struct {
	customer  *domain.Customer
	customers []domain.Customer
	facts     []domain.Fact
	newID     string
	err       error

	lastOp     string
	lastID     string
	lastItemID string
	lastArg    string
}

func (s *stubService) respond(op, id, itemID, arg string) (*domain.Customer, error) {
	s.lastOp, s.lastID, s.lastItemID, s.lastArg = op, id, itemID, arg
	return s.customer, s.err
}

func (s *stubService) RegisterPerson(_ context.Context, in customersvc.RegisterPersonInput) (*domain.Customer, error) {
	return s.respond("registerPerson", "", "", in.FirstName)
}

func (s *stubService) RegisterPersonWithAccount(_ context.Context, in customersvc.RegisterPersonWithAccountInput) (*domain.Customer, error) {
	return s.respond("registerPersonWithAccount", "", "", in.UserName)
}

func (s *stubService) RegisterCompany(_ context.Context, in customersvc.RegisterCompanyInput) (*domain.Customer, error) {
	return s.respond("registerCompany", "", "", in.CompanyName)
}

func (s *stubService) RegisterCompanyWithAccount(_ context.Context, in customersvc.RegisterCompanyWithAccountInput) (*domain.Customer, error) {
	return s.respond("registerCompanyWithAccount", "", "", in.UserName)
}

func (s *stubService) DeleteCustomer(_ context.Context, id string) (*domain.Customer, error) {
	return s.respond("deleteCustomer", id, "", "")
}

func (s *stubService) RestoreCustomer(_ context.Context, id string) (*domain.Customer, error) {
	return s.respond("restoreCustomer", id, "", "")
}

func (s *stubService) SetCustomerAccount(_ context.Context, id, userName, _ string) (*domain.Customer, error) {
	return s.respond("setCustomerAccount", id, "", userName)
}

func (s *stubService) RemoveCustomerAccount(_ context.Context, id string) (*domain.Customer, error) {
	return s.respond("removeCustomerAccount", id, "", "")
}

func (s *stubService) LockCustomerAccount(_ context.Context, id string) (*domain.Customer, error) {
	return s.respond("lockCustomerAccount", id, "", "")
}

func (s *stubService) UnlockCustomerAccount(_ context.Context, id string) (*domain.Customer, error) {
	return s.respond("unlockCustomerAccount", id, "", "")
}

func (s *stubService) ChangePersonFirstName(_ context.Context, id, firstName string) (*domain.Customer, error) {
	return s.respond("changePersonFirstName", id, "", firstName)
}

func (s *stubService) ChangePersonLastName(_ context.Context, id, lastName string) (*domain.Customer, error) {
	return s.respond("changePersonLastName", id, "", lastName)
}

func (s *stubService) ChangePersonBirthDate(_ context.Context, id, birthDate string) (*domain.Customer, error) {
	return s.respond("changePersonBirthDate", id, "", birthDate)
}

func (s *stubService) ChangePersonGender(_ context.Context, id, gender string) (*domain.Customer, error) {
	return s.respond("changePersonGender", id, "", gender)
}

func (s *stubService) SetCustomerNationalID(_ context.Context, id, nationalID string) (*domain.Customer, error) {
	return s.respond("setCustomerNationalID", id, "", nationalID)
}

func (s *stubService) ChangeCompanyName(_ context.Context, id, companyName string) (*domain.Customer, error) {
	return s.respond("changeCompanyName", id, "", companyName)
}

func (s *stubService) ChangeCompanyVatNumber(_ context.Context, id, vatNumber string) (*domain.Customer, error) {
	return s.respond("changeCompanyVatNumber", id, "", vatNumber)
}

func (s *stubService) ChangeCompanyLegalAddress(_ context.Context, id string, in customersvc.AddressInput) (*domain.Customer, error) {
	return s.respond("changeCompanyLegalAddress", id, "", in.City)
}

func (s *stubService) AddBillingInfo(_ context.Context, id string, in customersvc.BillingInfoInput) (*domain.Customer, string, error) {
	c, err := s.respond("addBillingInfo", id, "", in.FullName)
	return c, s.newID, err
}

func (s *stubService) ChangeBillingInfo(_ context.Context, id, itemID string, in customersvc.BillingInfoInput) (*domain.Customer, error) {
	return s.respond("changeBillingInfo", id, itemID, in.FullName)
}

func (s *stubService) RemoveBillingInfo(_ context.Context, id, itemID string) (*domain.Customer, error) {
	return s.respond("removeBillingInfo", id, itemID, "")
}

func (s *stubService) MarkBillingInfoDefault(_ context.Context, id, itemID string) (*domain.Customer, error) {
	return s.respond("markBillingInfoDefault", id, itemID, "")
}

func (s *stubService) AddShippingAddress(_ context.Context, id string, in customersvc.ShippingAddressInput) (*domain.Customer, string, error) {
	c, err := s.respond("addShippingAddress", id, "", in.Address.City)
	return c, s.newID, err
}

func (s *stubService) ChangeShippingAddress(_ context.Context, id, itemID string, in customersvc.ShippingAddressInput) (*domain.Customer, error) {
	return s.respond("changeShippingAddress", id, itemID, in.Address.City)
}

func (s *stubService) RemoveShippingAddress(_ context.Context, id, itemID string) (*domain.Customer, error) {
	return s.respond("removeShippingAddress", id, itemID, "")
}

func (s *stubService) MarkShippingAddressDefault(_ context.Context, id, itemID string) (*domain.Customer, error) {
	return s.respond("markShippingAddressDefault", id, itemID, "")
}

func (s *stubService) GetCustomer(_ context.Context, id string) (*domain.Customer, error) {
	return s.respond("getCustomer", id, "", "")
}

func (s *stubService) ListCustomers(_ context.Context, f custrepo.Filter) ([]domain.Customer, error) {
	s.lastOp, s.lastArg = "listCustomers", string(f.Type)
	return s.customers, s.err
}

func (s *stubService) CustomerFacts(_ context.Context, id string) ([]domain.Fact, error) {
	s.lastOp, s.lastID = "customerFacts", id
	return s.facts, s.err
}

func testCustomer() *domain.Customer {
	return &domain.Customer{
		ID:        "c-1",
		Type:      domain.TypePerson,
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Version:   1,
		Person:    &domain.PersonDetails{FirstName: "Jane", LastName: "Doe"},
	}
}

func newTestRouter(t *testing.T, svc *stubService) *gin.Engine {
	t.Helper()
	router, err := buildRouter(log.New(io.Discard, "", 0), nil, Deps{CustomerSvc: svc})
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestBuildRouterRequiresService(t *testing.T) {
	if _, err := buildRouter(log.New(io.Discard, "", 0), nil, Deps{}); err == nil {
		t.Fatalf("expected error without a customer service")
	}
}

func TestRegisterPersonRoute(t *testing.T) {
	svc := &stubService{customer: testCustomer()}
	router := newTestRouter(t, svc)

	rec := doRequest(router, http.MethodPost, "/persons", `{"firstName":"Jane","lastName":"Doe"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if svc.lastOp != "registerPerson" || svc.lastArg != "Jane" {
		t.Fatalf("service call mismatch: %s %q", svc.lastOp, svc.lastArg)
	}

	var body struct {
		Customer customerView `json:"customer"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Customer.ID != "c-1" || body.Customer.Person == nil {
		t.Fatalf("unexpected view %+v", body.Customer)
	}
	if body.Customer.Billing == nil || body.Customer.Shipping == nil {
		t.Fatalf("empty collections must serialize as arrays, not null")
	}
}

func TestMalformedBodyIsBadRequest(t *testing.T) {
	svc := &stubService{customer: testCustomer()}
	router := newTestRouter(t, svc)

	rec := doRequest(router, http.MethodPost, "/persons", `{"firstName":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if svc.lastOp != "" {
		t.Fatalf("service must not be called on a malformed body")
	}
}

func TestCommandRoutesPassIDs(t *testing.T) {
	svc := &stubService{customer: testCustomer(), newID: "b-1"}
	router := newTestRouter(t, svc)

	cases := []struct {
		method, path, body string
		wantStatus         int
		wantOp             string
		wantItemID         string
	}{
		{http.MethodDelete, "/customers/c-1", "", http.StatusOK, "deleteCustomer", ""},
		{http.MethodPost, "/customers/c-1/restore", "", http.StatusOK, "restoreCustomer", ""},
		{http.MethodPut, "/customers/c-1/account", `{"userName":"jane","password":"x"}`, http.StatusOK, "setCustomerAccount", ""},
		{http.MethodDelete, "/customers/c-1/account", "", http.StatusOK, "removeCustomerAccount", ""},
		{http.MethodPost, "/customers/c-1/account/lock", "", http.StatusOK, "lockCustomerAccount", ""},
		{http.MethodPost, "/customers/c-1/account/unlock", "", http.StatusOK, "unlockCustomerAccount", ""},
		{http.MethodPut, "/customers/c-1/first-name", `{"firstName":"Janet"}`, http.StatusOK, "changePersonFirstName", ""},
		{http.MethodPut, "/customers/c-1/national-id", `{"nationalIdentificationNumber":"X1"}`, http.StatusOK, "setCustomerNationalID", ""},
		{http.MethodPut, "/customers/c-1/company-name", `{"companyName":"Acme"}`, http.StatusOK, "changeCompanyName", ""},
		{http.MethodPost, "/customers/c-1/billing-info", `{"fullName":"Jane Doe"}`, http.StatusCreated, "addBillingInfo", ""},
		{http.MethodPut, "/customers/c-1/billing-info/b-1", `{"fullName":"Jane Doe"}`, http.StatusOK, "changeBillingInfo", "b-1"},
		{http.MethodDelete, "/customers/c-1/billing-info/b-1", "", http.StatusOK, "removeBillingInfo", "b-1"},
		{http.MethodPost, "/customers/c-1/billing-info/b-1/default", "", http.StatusOK, "markBillingInfoDefault", "b-1"},
		{http.MethodPost, "/customers/c-1/shipping-addresses", `{"addressInfo":{"city":"Rome"}}`, http.StatusCreated, "addShippingAddress", ""},
		{http.MethodPut, "/customers/c-1/shipping-addresses/s-1", `{"addressInfo":{"city":"Rome"}}`, http.StatusOK, "changeShippingAddress", "s-1"},
		{http.MethodDelete, "/customers/c-1/shipping-addresses/s-1", "", http.StatusOK, "removeShippingAddress", "s-1"},
		{http.MethodPost, "/customers/c-1/shipping-addresses/s-1/default", "", http.StatusOK, "markShippingAddressDefault", "s-1"},
	}
	for _, tc := range cases {
		rec := doRequest(router, tc.method, tc.path, tc.body)
		if rec.Code != tc.wantStatus {
			t.Fatalf("%s %s: status = %d, body %s", tc.method, tc.path, rec.Code, rec.Body.String())
		}
		if svc.lastOp != tc.wantOp || svc.lastID != "c-1" || svc.lastItemID != tc.wantItemID {
			t.Fatalf("%s %s: call = %s id=%s item=%s", tc.method, tc.path, svc.lastOp, svc.lastID, svc.lastItemID)
		}
	}
}

func TestAddBillingInfoReturnsNewID(t *testing.T) {
	svc := &stubService{customer: testCustomer(), newID: "b-42"}
	router := newTestRouter(t, svc)

	rec := doRequest(router, http.MethodPost, "/customers/c-1/billing-info", `{"fullName":"Jane Doe"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		BillingInfoID string `json:"billingInfoId"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.BillingInfoID != "b-42" {
		t.Fatalf("expected b-42, got %q", body.BillingInfoID)
	}
}

func TestListCustomersQueryFilter(t *testing.T) {
	svc := &stubService{customers: []domain.Customer{*testCustomer()}}
	router := newTestRouter(t, svc)

	rec := doRequest(router, http.MethodGet, "/customers?type=person", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if svc.lastArg != "person" {
		t.Fatalf("type filter not forwarded, got %q", svc.lastArg)
	}
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"validation", domain.Invalid("firstName", "required"), http.StatusBadRequest, "invalid_input"},
		{"not found", domain.ErrNotFound, http.StatusNotFound, "not_found"},
		{"invariant", &domain.InvariantError{Reason: "customer already deleted"}, http.StatusConflict, "invariant_violation"},
		{"conflict", domain.ErrConflict, http.StatusConflict, "conflict"},
		{"remote", &domain.RemoteError{Op: "disable account", Err: errors.New("down")}, http.StatusBadGateway, "account_service_unavailable"},
		{"diverged", &domain.ConsistencyError{CustomerID: "c-1", Op: "lock account", RemoteUserID: "u-7", Err: errors.New("save failed")}, http.StatusInternalServerError, "state_diverged"},
	}
	for _, tc := range cases {
		svc := &stubService{err: tc.err}
		router := newTestRouter(t, svc)
		rec := doRequest(router, http.MethodDelete, "/customers/c-1", "")
		if rec.Code != tc.wantStatus {
			t.Fatalf("%s: status = %d, want %d", tc.name, rec.Code, tc.wantStatus)
		}
		var body map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: decode: %v", tc.name, err)
		}
		if body["error"] != tc.wantError {
			t.Fatalf("%s: error = %v, want %s", tc.name, body["error"], tc.wantError)
		}
	}
}

func TestDivergedResponseCarriesDetails(t *testing.T) {
	svc := &stubService{err: &domain.ConsistencyError{
		CustomerID:   "c-1",
		Op:           "lock account",
		RemoteUserID: "u-7",
		Err:          errors.New("save failed"),
	}}
	router := newTestRouter(t, svc)

	rec := doRequest(router, http.MethodPost, "/customers/c-1/account/lock", "")
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["customerId"] != "c-1" || body["remoteUserId"] != "u-7" || body["operation"] != "lock account" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t, &stubService{})
	rec := doRequest(router, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}
