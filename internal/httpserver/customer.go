package httpserver

import (
	"net/http"

	"customerhub/internal/domain"
	custrepo "customerhub/internal/repository/customer"
	customersvc "customerhub/internal/service/customer"
	"github.com/gin-gonic/gin"
)

type customerHandlers struct {
	svc CustomerService
}

type accountRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

type fieldRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	BirthDate   string `json:"birthDate"`
	Gender      string `json:"gender"`
	NationalID  string `json:"nationalIdentificationNumber"`
	CompanyName string `json:"companyName"`
	VatNumber   string `json:"vatNumber"`
}

func (h *customerHandlers) registerPerson(c *gin.Context) {
	var in customersvc.RegisterPersonInput
	if !bindJSON(c, &in) {
		return
	}
	cust, err := h.svc.RegisterPerson(c.Request.Context(), in)
	respondCustomer(c, http.StatusCreated, cust, err)
}

func (h *customerHandlers) registerPersonWithAccount(c *gin.Context) {
	var in customersvc.RegisterPersonWithAccountInput
	if !bindJSON(c, &in) {
		return
	}
	cust, err := h.svc.RegisterPersonWithAccount(c.Request.Context(), in)
	respondCustomer(c, http.StatusCreated, cust, err)
}

func (h *customerHandlers) registerCompany(c *gin.Context) {
	var in customersvc.RegisterCompanyInput
	if !bindJSON(c, &in) {
		return
	}
	cust, err := h.svc.RegisterCompany(c.Request.Context(), in)
	respondCustomer(c, http.StatusCreated, cust, err)
}

func (h *customerHandlers) registerCompanyWithAccount(c *gin.Context) {
	var in customersvc.RegisterCompanyWithAccountInput
	if !bindJSON(c, &in) {
		return
	}
	cust, err := h.svc.RegisterCompanyWithAccount(c.Request.Context(), in)
	respondCustomer(c, http.StatusCreated, cust, err)
}

func (h *customerHandlers) list(c *gin.Context) {
	f := custrepo.Filter{
		Type:           domain.CustomerType(c.Query("type")),
		IncludeDeleted: c.Query("includeDeleted") == "true",
	}
	customers, err := h.svc.ListCustomers(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}
	views := make([]customerView, 0, len(customers))
	for i := range customers {
		views = append(views, toCustomerView(&customers[i]))
	}
	c.JSON(http.StatusOK, gin.H{"customers": views})
}

func (h *customerHandlers) get(c *gin.Context) {
	cust, err := h.svc.GetCustomer(c.Request.Context(), c.Param("id"))
	respondCustomer(c, http.StatusOK, cust, err)
}

func (h *customerHandlers) facts(c *gin.Context) {
	facts, err := h.svc.CustomerFacts(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	if facts == nil {
		facts = []domain.Fact{}
	}
	c.JSON(http.StatusOK, gin.H{"facts": facts})
}

func (h *customerHandlers) remove(c *gin.Context) {
	cust, err := h.svc.DeleteCustomer(c.Request.Context(), c.Param("id"))
	respondCustomer(c, http.StatusOK, cust, err)
}

func (h *customerHandlers) restore(c *gin.Context) {
	cust, err := h.svc.RestoreCustomer(c.Request.Context(), c.Param("id"))
	respondCustomer(c, http.StatusOK, cust, err)
}

func (h *customerHandlers) setAccount(c *gin.Context) {
	var in accountRequest
	if !bindJSON(c, &in) {
		return
	}
	cust, err := h.svc.SetCustomerAccount(c.Request.Context(), c.Param("id"), in.UserName, in.Password)
	respondCustomer(c, http.StatusOK, cust, err)
}

func (h *customerHandlers) removeAccount(c *gin.Context) {
	cust, err := h.svc.RemoveCustomerAccount(c.Request.Context(), c.Param("id"))
	respondCustomer(c, http.StatusOK, cust, err)
}

func (h *customerHandlers) lockAccount(c *gin.Context) {
	cust, err := h.svc.LockCustomerAccount(c.Request.Context(), c.Param("id"))
	respondCustomer(c, http.StatusOK, cust, err)
}

func (h *customerHandlers) unlockAccount(c *gin.Context) {
	cust, err := h.svc.UnlockCustomerAccount(c.Request.Context(), c.Param("id"))
	respondCustomer(c, http.StatusOK, cust, err)
}

func (h *customerHandlers) changeFirstName(c *gin.Context) {
	var in fieldRequest
	if !bindJSON(c, &in) {
		return
	}
	cust, err := h.svc.ChangePersonFirstName(c.Request.Context(), c.Param("id"), in.FirstName)
	respondCustomer(c, http.StatusOK, cust, err)
}

func (h *customerHandlers) changeLastName(c *gin.Context) {
	var in fieldRequest
	if !bindJSON(c, &in) {
		return
	}
	cust, err := h.svc.ChangePersonLastName(c.Request.Context(), c.Param("id"), in.LastName)
	respondCustomer(c, http.StatusOK, cust, err)
}

func (h *customerHandlers) changeBirthDate(c *gin.Context) {
	var in fieldRequest
	if !bindJSON(c, &in) {
		return
	}
	cust, err := h.svc.ChangePersonBirthDate(c.Request.Context(), c.Param("id"), in.BirthDate)
	respondCustomer(c, http.StatusOK, cust, err)
}

func (h *customerHandlers) changeGender(c *gin.Context) {
	var in fieldRequest
	if !bindJSON(c, &in) {
		return
	}
	cust, err := h.svc.ChangePersonGender(c.Request.Context(), c.Param("id"), in.Gender)
	respondCustomer(c, http.StatusOK, cust, err)
}

func (h *customerHandlers) setNationalID(c *gin.Context) {
	var in fieldRequest
	if !bindJSON(c, &in) {
		return
	}
	cust, err := h.svc.SetCustomerNationalID(c.Request.Context(), c.Param("id"), in.NationalID)
	respondCustomer(c, http.StatusOK, cust, err)
}

func (h *customerHandlers) changeCompanyName(c *gin.Context) {
	var in fieldRequest
	if !bindJSON(c, &in) {
		return
	}
	cust, err := h.svc.ChangeCompanyName(c.Request.Context(), c.Param("id"), in.CompanyName)
	respondCustomer(c, http.StatusOK, cust, err)
}

func (h *customerHandlers) changeVatNumber(c *gin.Context) {
	var in fieldRequest
	if !bindJSON(c, &in) {
		return
	}
	cust, err := h.svc.ChangeCompanyVatNumber(c.Request.Context(), c.Param("id"), in.VatNumber)
	respondCustomer(c, http.StatusOK, cust, err)
}

func (h *customerHandlers) changeLegalAddress(c *gin.Context) {
	var in customersvc.AddressInput
	if !bindJSON(c, &in) {
		return
	}
	cust, err := h.svc.ChangeCompanyLegalAddress(c.Request.Context(), c.Param("id"), in)
	respondCustomer(c, http.StatusOK, cust, err)
}

func (h *customerHandlers) addBillingInfo(c *gin.Context) {
	var in customersvc.BillingInfoInput
	if !bindJSON(c, &in) {
		return
	}
	cust, newID, err := h.svc.AddBillingInfo(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"billingInfoId": newID, "customer": toCustomerView(cust)})
}

func (h *customerHandlers) changeBillingInfo(c *gin.Context) {
	var in customersvc.BillingInfoInput
	if !bindJSON(c, &in) {
		return
	}
	cust, err := h.svc.ChangeBillingInfo(c.Request.Context(), c.Param("id"), c.Param("itemId"), in)
	respondCustomer(c, http.StatusOK, cust, err)
}

func (h *customerHandlers) removeBillingInfo(c *gin.Context) {
	cust, err := h.svc.RemoveBillingInfo(c.Request.Context(), c.Param("id"), c.Param("itemId"))
	respondCustomer(c, http.StatusOK, cust, err)
}

func (h *customerHandlers) markBillingDefault(c *gin.Context) {
	cust, err := h.svc.MarkBillingInfoDefault(c.Request.Context(), c.Param("id"), c.Param("itemId"))
	respondCustomer(c, http.StatusOK, cust, err)
}

func (h *customerHandlers) addShippingAddress(c *gin.Context) {
	var in customersvc.ShippingAddressInput
	if !bindJSON(c, &in) {
		return
	}
	cust, newID, err := h.svc.AddShippingAddress(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"shippingAddressId": newID, "customer": toCustomerView(cust)})
}

func (h *customerHandlers) changeShippingAddress(c *gin.Context) {
	var in customersvc.ShippingAddressInput
	if !bindJSON(c, &in) {
		return
	}
	cust, err := h.svc.ChangeShippingAddress(c.Request.Context(), c.Param("id"), c.Param("itemId"), in)
	respondCustomer(c, http.StatusOK, cust, err)
}

func (h *customerHandlers) removeShippingAddress(c *gin.Context) {
	cust, err := h.svc.RemoveShippingAddress(c.Request.Context(), c.Param("id"), c.Param("itemId"))
	respondCustomer(c, http.StatusOK, cust, err)
}

func (h *customerHandlers) markShippingDefault(c *gin.Context) {
	cust, err := h.svc.MarkShippingAddressDefault(c.Request.Context(), c.Param("id"), c.Param("itemId"))
	respondCustomer(c, http.StatusOK, cust, err)
}
