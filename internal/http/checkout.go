package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"glutivia/internal/checkout"
	"glutivia/internal/domain"
	"glutivia/internal/service"
)

type paymentMethodReq struct {
	Method domain.PaymentMethod `json:"method" binding:"required,oneof=card cod"`
}

type checkoutResp struct {
	State        checkout.State `json:"state"`
	Order        *domain.Order  `json:"order,omitempty"`
	CountryCodes []string       `json:"countryCodes"`
}

func respondState(c *gin.Context, st checkout.State, err error) {
	if err != nil {
		status, body := errorBody(err)
		body["state"] = st
		c.JSON(status, body)
		return
	}
	c.JSON(http.StatusOK, checkoutResp{State: st, CountryCodes: checkout.CountryCodes})
}

func respondResult(c *gin.Context, res *service.CheckoutResult, err error) {
	if err != nil {
		status, body := errorBody(err)
		if res != nil {
			body["state"] = res.State
		}
		c.JSON(status, body)
		return
	}
	c.JSON(http.StatusOK, checkoutResp{State: res.State, Order: res.Order, CountryCodes: checkout.CountryCodes})
}

// @Summary Current checkout draft
// @Tags checkout
// @Produce json
// @Security CustomerToken
// @Success 200 {object} checkoutResp
// @Router /checkout [get]
func (s *Server) getCheckout(c *gin.Context) {
	respondState(c, s.svc.Checkout.State(session(c)), nil)
}

// @Summary Start checkout
// @Tags checkout
// @Produce json
// @Security CustomerToken
// @Success 200 {object} checkoutResp
// @Failure 409 {object} map[string]any
// @Router /checkout/begin [post]
func (s *Server) beginCheckout(c *gin.Context) {
	st, err := s.svc.Checkout.Begin(c, session(c))
	respondState(c, st, err)
}

// @Summary Submit delivery details
// @Tags checkout
// @Accept json
// @Produce json
// @Security CustomerToken
// @Param input body checkout.CustomerInfo true "Customer"
// @Success 200 {object} checkoutResp
// @Failure 422 {object} map[string]any
// @Router /checkout/customer-info [post]
func (s *Server) submitCustomerInfo(c *gin.Context) {
	var req checkout.CustomerInfo
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	st, err := s.svc.Checkout.SubmitCustomerInfo(c, session(c), req)
	respondState(c, st, err)
}

// @Summary Choose payment method
// @Tags checkout
// @Accept json
// @Produce json
// @Security CustomerToken
// @Param input body paymentMethodReq true "card or cod"
// @Success 200 {object} checkoutResp
// @Failure 409 {object} map[string]any
// @Router /checkout/payment-method [post]
func (s *Server) choosePaymentMethod(c *gin.Context) {
	var req paymentMethodReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	st, err := s.svc.Checkout.ChoosePayment(c, session(c), req.Method)
	respondState(c, st, err)
}

// @Summary Pay by card
// @Description Validates the card, simulates processing and places the order.
// @Tags checkout
// @Accept json
// @Produce json
// @Security CustomerToken
// @Param input body checkout.CardData true "Card"
// @Success 200 {object} checkoutResp
// @Failure 409 {object} map[string]any
// @Failure 422 {object} map[string]any
// @Router /checkout/card [post]
func (s *Server) submitCard(c *gin.Context) {
	var req checkout.CardData
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	res, err := s.svc.Checkout.SubmitCard(c, session(c), req)
	respondResult(c, res, err)
}

// @Summary Confirm cash on delivery
// @Tags checkout
// @Produce json
// @Security CustomerToken
// @Success 200 {object} checkoutResp
// @Failure 409 {object} map[string]any
// @Router /checkout/cod [post]
func (s *Server) confirmCOD(c *gin.Context) {
	res, err := s.svc.Checkout.ConfirmCOD(c, session(c))
	respondResult(c, res, err)
}

// @Summary Previous checkout step
// @Tags checkout
// @Produce json
// @Security CustomerToken
// @Success 200 {object} checkoutResp
// @Router /checkout/back [post]
func (s *Server) checkoutBack(c *gin.Context) {
	st, err := s.svc.Checkout.Back(c, session(c))
	respondState(c, st, err)
}

// @Summary Abandon checkout
// @Tags checkout
// @Produce json
// @Security CustomerToken
// @Success 200 {object} checkoutResp
// @Router /checkout/cancel [post]
func (s *Server) cancelCheckout(c *gin.Context) {
	st, err := s.svc.Checkout.Cancel(c, session(c))
	respondState(c, st, err)
}

// @Summary Leave the success screen
// @Tags checkout
// @Produce json
// @Security CustomerToken
// @Success 200 {object} checkoutResp
// @Router /checkout/reset [post]
func (s *Server) resetCheckout(c *gin.Context) {
	st, err := s.svc.Checkout.Reset(c, session(c))
	respondState(c, st, err)
}
