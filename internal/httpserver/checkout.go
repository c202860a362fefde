package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"musclesaction-store/internal/i18n"
	checkoutsvc "musclesaction-store/internal/service/checkout"
)

type applyCouponRequest struct {
	Code string `json:"code"`
}

type checkoutRequest struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	PaymentMethod string `json:"paymentMethod"`
	CouponCode    string `json:"couponCode"`
}

func applyCouponHandler(svc CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := requestLang(c)
		token := cartToken(c)

		var req applyCouponRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, lang, "couponRequired")
			return
		}

		quote, coupon, err := svc.ApplyCoupon(c.Request.Context(), token, req.Code)
		if err != nil {
			if errors.Is(err, checkoutsvc.ErrCouponCodeRequired) {
				respondError(c, http.StatusBadRequest, lang, "couponRequired")
				return
			}
			respondServiceError(c, lang, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"coupon": gin.H{
				"code":     coupon.Code,
				"type":     string(coupon.Type),
				"discount": coupon.Discount.InexactFloat64(),
			},
			"quote":   toQuotePayload(*quote),
			"message": i18n.T(lang, "couponApplied"),
		})
	}
}

func checkoutHandler(svc CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := requestLang(c)
		token := cartToken(c)

		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, lang, "orderFailed")
			return
		}

		order, err := svc.PlaceOrder(c.Request.Context(), token, checkoutsvc.PlaceOrderInput{
			Name:          req.Name,
			Address:       req.Address,
			Phone:         req.Phone,
			PaymentMethod: req.PaymentMethod,
			CouponCode:    req.CouponCode,
		})
		if err != nil {
			respondServiceError(c, lang, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"order":   toOrderPayload(*order),
			"message": i18n.T(lang, "orderPlaced"),
		})
	}
}
