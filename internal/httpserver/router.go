package httpserver

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"customerhub/internal/domain"
	custrepo "customerhub/internal/repository/customer"
	customersvc "customerhub/internal/service/customer"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CustomerService is the command-layer surface consumed by the handlers.
type CustomerService interface {
	RegisterPerson(ctx context.Context, in customersvc.RegisterPersonInput) (*domain.Customer, error)
	RegisterPersonWithAccount(ctx context.Context, in customersvc.RegisterPersonWithAccountInput) (*domain.Customer, error)
	RegisterCompany(ctx context.Context, in customersvc.RegisterCompanyInput) (*domain.Customer, error)
	RegisterCompanyWithAccount(ctx context.Context, in customersvc.RegisterCompanyWithAccountInput) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, customerID string) (*domain.Customer, error)
	RestoreCustomer(ctx context.Context, customerID string) (*domain.Customer, error)
	SetCustomerAccount(ctx context.Context, customerID, userName, password string) (*domain.Customer, error)
	RemoveCustomerAccount(ctx context.Context, customerID string) (*domain.Customer, error)
	LockCustomerAccount(ctx context.Context, customerID string) (*domain.Customer, error)
	UnlockCustomerAccount(ctx context.Context, customerID string) (*domain.Customer, error)
	ChangePersonFirstName(ctx context.Context, customerID, firstName string) (*domain.Customer, error)
	ChangePersonLastName(ctx context.Context, customerID, lastName string) (*domain.Customer, error)
	ChangePersonBirthDate(ctx context.Context, customerID, birthDate string) (*domain.Customer, error)
	ChangePersonGender(ctx context.Context, customerID, gender string) (*domain.Customer, error)
	SetCustomerNationalID(ctx context.Context, customerID, nationalID string) (*domain.Customer, error)
	ChangeCompanyName(ctx context.Context, customerID, companyName string) (*domain.Customer, error)
	ChangeCompanyVatNumber(ctx context.Context, customerID, vatNumber string) (*domain.Customer, error)
	ChangeCompanyLegalAddress(ctx context.Context, customerID string, in customersvc.AddressInput) (*domain.Customer, error)
	AddBillingInfo(ctx context.Context, customerID string, in customersvc.BillingInfoInput) (*domain.Customer, string, error)
	ChangeBillingInfo(ctx context.Context, customerID, billingInfoID string, in customersvc.BillingInfoInput) (*domain.Customer, error)
	RemoveBillingInfo(ctx context.Context, customerID, billingInfoID string) (*domain.Customer, error)
	MarkBillingInfoDefault(ctx context.Context, customerID, billingInfoID string) (*domain.Customer, error)
	AddShippingAddress(ctx context.Context, customerID string, in customersvc.ShippingAddressInput) (*domain.Customer, string, error)
	ChangeShippingAddress(ctx context.Context, customerID, shippingAddressID string, in customersvc.ShippingAddressInput) (*domain.Customer, error)
	RemoveShippingAddress(ctx context.Context, customerID, shippingAddressID string) (*domain.Customer, error)
	MarkShippingAddressDefault(ctx context.Context, customerID, shippingAddressID string) (*domain.Customer, error)
	GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, f custrepo.Filter) ([]domain.Customer, error)
	CustomerFacts(ctx context.Context, customerID string) ([]domain.Fact, error)
}

// Deps carries the collaborators handlers need.
type Deps struct {
	CustomerSvc CustomerService
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	if deps.CustomerSvc == nil {
		return nil, errors.New("customer service is required")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	h := &customerHandlers{svc: deps.CustomerSvc}

	router.POST("/persons", h.registerPerson)
	router.POST("/persons/with-account", h.registerPersonWithAccount)
	router.POST("/companies", h.registerCompany)
	router.POST("/companies/with-account", h.registerCompanyWithAccount)

	customers := router.Group("/customers")
	{
		customers.GET("", h.list)
		customers.GET("/:id", h.get)
		customers.GET("/:id/facts", h.facts)
		customers.DELETE("/:id", h.remove)
		customers.POST("/:id/restore", h.restore)

		customers.PUT("/:id/account", h.setAccount)
		customers.DELETE("/:id/account", h.removeAccount)
		customers.POST("/:id/account/lock", h.lockAccount)
		customers.POST("/:id/account/unlock", h.unlockAccount)

		customers.PUT("/:id/first-name", h.changeFirstName)
		customers.PUT("/:id/last-name", h.changeLastName)
		customers.PUT("/:id/birth-date", h.changeBirthDate)
		customers.PUT("/:id/gender", h.changeGender)
		customers.PUT("/:id/national-id", h.setNationalID)
		customers.PUT("/:id/company-name", h.changeCompanyName)
		customers.PUT("/:id/vat-number", h.changeVatNumber)
		customers.PUT("/:id/legal-address", h.changeLegalAddress)

		customers.POST("/:id/billing-info", h.addBillingInfo)
		customers.PUT("/:id/billing-info/:itemId", h.changeBillingInfo)
		customers.DELETE("/:id/billing-info/:itemId", h.removeBillingInfo)
		customers.POST("/:id/billing-info/:itemId/default", h.markBillingDefault)

		customers.POST("/:id/shipping-addresses", h.addShippingAddress)
		customers.PUT("/:id/shipping-addresses/:itemId", h.changeShippingAddress)
		customers.DELETE("/:id/shipping-addresses/:itemId", h.removeShippingAddress)
		customers.POST("/:id/shipping-addresses/:itemId/default", h.markShippingDefault)
	}

	return router, nil
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func readyHandler(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "db not configured"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "db not reachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
