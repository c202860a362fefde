package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"musclesaction-store/internal/domain"
	catalogsvc "musclesaction-store/internal/service/catalog"
)

func listProductsHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := requestLang(c)
		f := catalogsvc.Filter{
			Category:   c.Query("category"),
			BestSeller: c.Query("bestSeller") == "true",
			New:        c.Query("isNew") == "true",
		}
		if v := c.Query("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				f.Limit = n
			}
		}

		products, err := svc.List(c.Request.Context(), f)
		if err != nil {
			respondServiceError(c, lang, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": toProductPayloads(products)})
	}
}

func getProductHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := requestLang(c)
		p, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				respondError(c, http.StatusNotFound, lang, "productNotFound")
				return
			}
			respondServiceError(c, lang, err)
			return
		}
		c.JSON(http.StatusOK, toProductPayload(*p))
	}
}

func offersHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := requestLang(c)
		views, err := svc.Offers(c.Request.Context())
		if err != nil {
			respondServiceError(c, lang, err)
			return
		}
		offers := make([]offerPayload, 0, len(views))
		for _, v := range views {
			offers = append(offers, toOfferPayload(v))
		}
		c.JSON(http.StatusOK, gin.H{"offers": offers})
	}
}

// storeCategories is the storefront's fixed category tag set.
var storeCategories = []struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	NameAr string `json:"nameAr"`
}{
	{"protein", "Protein", "بروتين"},
	{"creatine", "Creatine", "كرياتين"},
	{"mass-gainer", "Mass Gainer", "ماس جينر"},
	{"carb", "Carb", "كارب"},
	{"fat-burner", "Fat Burner", "فات برنر"},
	{"test-booster", "Test Booster", "تست بوستر"},
	{"amino-acids", "Amino Acids", "أحماض أمينية"},
	{"preworkout", "Preworkout", "بري وورك أوت"},
	{"vitamins", "Vitamins", "فيتامينات"},
}

func categoriesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": storeCategories})
}
