package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"musclesaction-store/internal/domain"
)

type adminLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type productRequest struct {
	Name          string   `json:"name" binding:"required"`
	NameAr        string   `json:"nameAr"`
	Description   string   `json:"description"`
	DescriptionAr string   `json:"descriptionAr"`
	Images        []string `json:"images"`
	Flavors       []string `json:"flavors"`
	Price         float64  `json:"price" binding:"required"`
	OriginalPrice *float64 `json:"originalPrice"`
	Discount      *int     `json:"discount"`
	Category      string   `json:"category"`
	InStock       *bool    `json:"inStock"`
	IsBestSeller  bool     `json:"isBestSeller"`
	IsNew         bool     `json:"isNew"`
	Rating        float64  `json:"rating"`
}

func (r productRequest) toDomain(id string) domain.Product {
	p := domain.Product{
		ID:            id,
		Name:          r.Name,
		NameAr:        r.NameAr,
		Description:   r.Description,
		DescriptionAr: r.DescriptionAr,
		Images:        emptyIfNil(r.Images),
		Flavors:       emptyIfNil(r.Flavors),
		Price:         decimal.NewFromFloat(r.Price),
		Discount:      r.Discount,
		Category:      r.Category,
		InStock:       true,
		IsBestSeller:  r.IsBestSeller,
		IsNew:         r.IsNew,
		Rating:        r.Rating,
	}
	if r.OriginalPrice != nil {
		v := decimal.NewFromFloat(*r.OriginalPrice)
		p.OriginalPrice = &v
	}
	if r.InStock != nil {
		p.InStock = *r.InStock
	}
	return p
}

type offerRequest struct {
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description"`
	Discount      int      `json:"discount" binding:"required"`
	ProductIDs    []string `json:"products" binding:"required"`
	DurationValue int      `json:"durationValue"`
	DurationUnit  string   `json:"durationType"`
}

func (r offerRequest) toDomain(id string) domain.Offer {
	return domain.Offer{
		ID:            id,
		Title:         r.Title,
		Description:   r.Description,
		Discount:      r.Discount,
		ProductIDs:    r.ProductIDs,
		DurationValue: r.DurationValue,
		DurationUnit:  r.DurationUnit,
	}
}

type couponRequest struct {
	Code       string     `json:"code" binding:"required"`
	Discount   float64    `json:"discount"`
	Type       string     `json:"type" binding:"required"`
	UsageLimit *int       `json:"usageLimit"`
	ExpiresAt  *time.Time `json:"expiresAt"`
	Active     *bool      `json:"active"`
}

func (r couponRequest) toDomain(id string) domain.Coupon {
	c := domain.Coupon{
		ID:         id,
		Code:       r.Code,
		Discount:   decimal.NewFromFloat(r.Discount),
		Type:       domain.CouponType(r.Type),
		UsageLimit: r.UsageLimit,
		ExpiresAt:  r.ExpiresAt,
		Active:     true,
	}
	if r.Active != nil {
		c.Active = *r.Active
	}
	return c
}

func adminLoginHandler(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := requestLang(c)
		var req adminLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, lang, "loginFailed")
			return
		}
		token, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondServiceError(c, lang, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

func adminLogoutHandler(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := requestLang(c)
		if err := svc.Logout(c.Request.Context(), c.GetString("adminToken")); err != nil {
			respondServiceError(c, lang, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func adminListProductsHandler(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := requestLang(c)
		products, err := svc.ListProducts(c.Request.Context())
		if err != nil {
			respondServiceError(c, lang, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": toProductPayloads(products)})
	}
}

func adminCreateProductHandler(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := requestLang(c)
		var req productRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product", "detail": err.Error()})
			return
		}
		created, err := svc.CreateProduct(c.Request.Context(), req.toDomain(""))
		if err != nil {
			respondServiceError(c, lang, err)
			return
		}
		c.JSON(http.StatusCreated, toProductPayload(*created))
	}
}

func adminUpdateProductHandler(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := requestLang(c)
		var req productRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product", "detail": err.Error()})
			return
		}
		updated, err := svc.UpdateProduct(c.Request.Context(), req.toDomain(c.Param("id")))
		if err != nil {
			respondServiceError(c, lang, err)
			return
		}
		c.JSON(http.StatusOK, toProductPayload(*updated))
	}
}

func adminDeleteProductHandler(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := requestLang(c)
		if err := svc.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
			respondServiceError(c, lang, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func adminListOffersHandler(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := requestLang(c)
		offers, err := svc.ListOffers(c.Request.Context())
		if err != nil {
			respondServiceError(c, lang, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"offers": offers})
	}
}

func adminCreateOfferHandler(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := requestLang(c)
		var req offerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offer", "detail": err.Error()})
			return
		}
		created, err := svc.CreateOffer(c.Request.Context(), req.toDomain(""))
		if err != nil {
			respondServiceError(c, lang, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func adminUpdateOfferHandler(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := requestLang(c)
		var req offerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offer", "detail": err.Error()})
			return
		}
		updated, err := svc.UpdateOffer(c.Request.Context(), req.toDomain(c.Param("id")))
		if err != nil {
			respondServiceError(c, lang, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func adminDeleteOfferHandler(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := requestLang(c)
		if err := svc.DeleteOffer(c.Request.Context(), c.Param("id")); err != nil {
			respondServiceError(c, lang, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func adminListCouponsHandler(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := requestLang(c)
		coupons, err := svc.ListCoupons(c.Request.Context())
		if err != nil {
			respondServiceError(c, lang, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"coupons": toCouponPayloads(coupons)})
	}
}

func adminCreateCouponHandler(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := requestLang(c)
		var req couponRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coupon", "detail": err.Error()})
			return
		}
		created, err := svc.CreateCoupon(c.Request.Context(), req.toDomain(""))
		if err != nil {
			respondServiceError(c, lang, err)
			return
		}
		c.JSON(http.StatusCreated, toCouponPayload(*created))
	}
}

func adminUpdateCouponHandler(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := requestLang(c)
		var req couponRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coupon", "detail": err.Error()})
			return
		}
		updated, err := svc.UpdateCoupon(c.Request.Context(), req.toDomain(c.Param("id")))
		if err != nil {
			respondServiceError(c, lang, err)
			return
		}
		c.JSON(http.StatusOK, toCouponPayload(*updated))
	}
}

func adminDeleteCouponHandler(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := requestLang(c)
		if err := svc.DeleteCoupon(c.Request.Context(), c.Param("id")); err != nil {
			respondServiceError(c, lang, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func adminListOrdersHandler(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := requestLang(c)
		orders, err := svc.ListOrders(c.Request.Context())
		if err != nil {
			respondServiceError(c, lang, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": toOrderPayloads(orders)})
	}
}

func adminConfirmOrderHandler(svc AdminService) gin.HandlerFunc {
	return orderStatusHandler(svc.ConfirmOrder)
}

func adminDeliverOrderHandler(svc AdminService) gin.HandlerFunc {
	return orderStatusHandler(svc.DeliverOrder)
}

func adminDeleteOrderHandler(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := requestLang(c)
		if err := svc.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
			respondServiceError(c, lang, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func orderStatusHandler(transition func(ctx context.Context, id string) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := requestLang(c)
		if err := transition(c.Request.Context(), c.Param("id")); err != nil {
			respondServiceError(c, lang, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func adminStatsHandler(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := requestLang(c)
		stats, err := svc.OrderStats(c.Request.Context())
		if err != nil {
			respondServiceError(c, lang, err)
			return
		}
		c.JSON(http.StatusOK, toStatsPayload(*stats))
	}
}
