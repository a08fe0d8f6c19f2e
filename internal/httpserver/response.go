package httpserver

import (
	"errors"
	"net/http"
	"time"

	"customerhub/internal/domain"
	"github.com/gin-gonic/gin"
)

type customerView struct {
	ID        string                   `json:"id"`
	Type      domain.CustomerType      `json:"type"`
	Deleted   bool                     `json:"deleted"`
	CreatedAt time.Time                `json:"createdAt"`
	Version   int                      `json:"version"`
	Account   *domain.AccountInfo      `json:"account,omitempty"`
	Billing   []domain.BillingInfo     `json:"billingInformation"`
	Shipping  []domain.ShippingAddress `json:"shippingAddresses"`
	Person    *domain.PersonDetails    `json:"person,omitempty"`
	Company   *domain.CompanyDetails   `json:"company,omitempty"`
}

func toCustomerView(c *domain.Customer) customerView {
	billing := c.Billing
	if billing == nil {
		billing = []domain.BillingInfo{}
	}
	shipping := c.Shipping
	if shipping == nil {
		shipping = []domain.ShippingAddress{}
	}
	return customerView{
		ID:        c.ID,
		Type:      c.Type,
		Deleted:   c.Deleted,
		CreatedAt: c.CreatedAt,
		Version:   c.Version,
		Account:   c.Account,
		Billing:   billing,
		Shipping:  shipping,
		Person:    c.Person,
		Company:   c.Company,
	}
}

func respondCustomer(c *gin.Context, status int, cust *domain.Customer, err error) {
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(status, gin.H{"customer": toCustomerView(cust)})
}

func bindJSON(c *gin.Context, out interface{}) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed_body", "message": err.Error()})
		return false
	}
	return true
}

// writeError maps the domain error taxonomy onto HTTP statuses so clients
// can branch on kind without parsing messages.
func writeError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	var ierr *domain.InvariantError
	var rerr *domain.RemoteError
	var cerr *domain.ConsistencyError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_input",
			"field":   verr.Field,
			"message": verr.Reason,
		})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
	case errors.As(err, &ierr):
		c.JSON(http.StatusConflict, gin.H{
			"error":   "invariant_violation",
			"message": ierr.Reason,
		})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error":     "conflict",
			"retryable": true,
		})
	case errors.As(err, &rerr):
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "account_service_unavailable",
			"message": rerr.Error(),
		})
	case errors.As(err, &cerr):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":        "state_diverged",
			"customerId":   cerr.CustomerID,
			"operation":    cerr.Op,
			"remoteUserId": cerr.RemoteUserID,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
	}
}
