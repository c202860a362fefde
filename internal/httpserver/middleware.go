package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"musclesaction-store/internal/domain"
	"musclesaction-store/internal/i18n"
	checkoutsvc "musclesaction-store/internal/service/checkout"
)

const cartTokenHeader = "X-Cart-Token"

// requestLang resolves the response language: the lang query parameter wins,
// then Accept-Language, defaulting to English.
func requestLang(c *gin.Context) i18n.Lang {
	if v := c.Query("lang"); v != "" {
		return i18n.Parse(v)
	}
	return i18n.Parse(c.GetHeader("Accept-Language"))
}

// cartToken returns the visitor's cart token, minting a fresh one when the
// header is absent or malformed. The token is always echoed on the response
// so the client can persist it.
func cartToken(c *gin.Context) string {
	tok := strings.TrimSpace(c.GetHeader(cartTokenHeader))
	if tok == "" || len(tok) > 128 {
		tok = uuid.New().String()
	}
	c.Header(cartTokenHeader, tok)
	return tok
}

// requireAdmin resolves the bearer token to an admin id and aborts with 401
// otherwise. The admin id is stored on the context for handlers.
func requireAdmin(svc AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		adminID, err := svc.Authenticate(c.Request.Context(), token)
		if err != nil {
			lang := requestLang(c)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": i18n.T(lang, "loginFailed"),
			})
			return
		}
		c.Set("adminID", adminID)
		c.Set("adminToken", token)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

// respondError writes a localized error body.
func respondError(c *gin.Context, status int, lang i18n.Lang, key string) {
	c.JSON(status, gin.H{"error": key, "message": i18n.T(lang, key)})
}

// respondServiceError maps known domain errors to status codes and localized
// messages; anything else is a 500.
func respondServiceError(c *gin.Context, lang i18n.Lang, err error) {
	var verr *checkoutsvc.ValidationError
	switch {
	case errors.As(err, &verr):
		respondError(c, http.StatusBadRequest, lang, verr.Key)
	case errors.Is(err, domain.ErrNotFound):
		respondError(c, http.StatusNotFound, lang, "notFound")
	case errors.Is(err, domain.ErrEmptyCart):
		respondError(c, http.StatusBadRequest, lang, "cartEmpty")
	case errors.Is(err, domain.ErrInvalidCoupon):
		respondError(c, http.StatusBadRequest, lang, "couponInvalid")
	case errors.Is(err, domain.ErrCouponLimitReached):
		respondError(c, http.StatusBadRequest, lang, "couponLimitReached")
	case errors.Is(err, domain.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, lang, "loginFailed")
	case errors.Is(err, domain.ErrInvalidToken):
		respondError(c, http.StatusUnauthorized, lang, "loginFailed")
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal"})
	}
}
