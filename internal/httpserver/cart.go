package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"musclesaction-store/internal/domain"
)

type addCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Flavor    string `json:"flavor"`
	Quantity  int    `json:"quantity"`
}

type updateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func getCartHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := requestLang(c)
		token := cartToken(c)
		lines, err := svc.Get(c.Request.Context(), token)
		if err != nil {
			respondServiceError(c, lang, err)
			return
		}
		c.JSON(http.StatusOK, toCartPayload(lines))
	}
}

func addCartItemHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := requestLang(c)
		token := cartToken(c)

		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, lang, "productNotFound")
			return
		}
		qty := req.Quantity
		if qty < 1 {
			qty = 1
		}

		lines, err := svc.AddItem(c.Request.Context(), token, req.ProductID, req.Flavor, qty)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				respondError(c, http.StatusNotFound, lang, "productNotFound")
				return
			}
			respondServiceError(c, lang, err)
			return
		}
		c.JSON(http.StatusOK, toCartPayload(lines))
	}
}

func updateCartItemHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := requestLang(c)
		token := cartToken(c)

		var req updateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, lang, "notFound")
			return
		}

		lines, err := svc.UpdateQuantity(c.Request.Context(), token, c.Param("productId"), *req.Quantity)
		if err != nil {
			respondServiceError(c, lang, err)
			return
		}
		c.JSON(http.StatusOK, toCartPayload(lines))
	}
}

func removeCartItemHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := requestLang(c)
		token := cartToken(c)

		lines, err := svc.RemoveItem(c.Request.Context(), token, c.Param("productId"))
		if err != nil {
			respondServiceError(c, lang, err)
			return
		}
		c.JSON(http.StatusOK, toCartPayload(lines))
	}
}

func clearCartHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := requestLang(c)
		token := cartToken(c)

		if err := svc.Clear(c.Request.Context(), token); err != nil {
			respondServiceError(c, lang, err)
			return
		}
		c.JSON(http.StatusOK, toCartPayload(nil))
	}
}
