// Package i18n holds the storefront's two-locale translation table. The
// language is resolved per request and passed down explicitly; there is no
// process-wide current-language state.
package i18n

import "strings"

// Lang is a supported storefront locale.
type Lang string

const (
	English Lang = "en"
	Arabic  Lang = "ar"
)

// Parse resolves a language tag from a query value or Accept-Language header.
// Anything that is not Arabic falls back to English.
func Parse(s string) Lang {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "ar" || strings.HasPrefix(s, "ar-") || strings.HasPrefix(s, "ar,") {
		return Arabic
	}
	return English
}

// T returns the translation for key in lang, falling back to English and
// finally to the key itself.
func T(lang Lang, key string) string {
	if table, ok := translations[lang]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := translations[English][key]; ok {
		return msg
	}
	return key
}

var translations = map[Lang]map[string]string{
	English: {
		// Navigation
		"home":        "Home",
		"offers":      "Offers",
		"menu":        "Menu",
		"newProducts": "New Products",
		"contact":     "Contact",
		"cart":        "Cart",

		// Product
		"addToCart":   "Add to Cart",
		"price":       "Price",
		"flavor":      "Flavor",
		"rating":      "Rating",
		"description": "Description",

		// Cart
		"cartEmpty":        "Your cart is empty",
		"continueShopping": "Continue Shopping",
		"checkout":         "Checkout",
		"total":            "Total",
		"quantity":         "Quantity",
		"delivery":         "Delivery",
		"egp":              "EGP",

		// Checkout
		"fullName":      "Full Name",
		"address":       "Address",
		"phoneNumber":   "Phone Number",
		"paymentMethod": "Payment Method",
		"placeOrder":    "Place Order",

		// Messages
		"addedToCart":        "Added to cart",
		"orderPlaced":        "Order placed successfully!",
		"orderFailed":        "Something went wrong while placing the order. Please try again.",
		"couponRequired":     "Please enter a coupon code",
		"couponInvalid":      "Invalid or inactive coupon code",
		"couponLimitReached": "This coupon has reached its usage limit",
		"couponApplied":      "Coupon applied successfully!",
		"fullNameRequired":   "Full name is required",
		"addressRequired":    "Address is required",
		"phoneRequired":      "Phone number is required",
		"phoneInvalid":       "Phone number must contain digits only",
		"paymentRequired":    "Please choose a payment method",
		"productNotFound":    "Product not found",
		"notFound":           "Not found",
		"loginFailed":        "Invalid email or password",
	},
	Arabic: {
		// Navigation
		"home":        "الرئيسية",
		"offers":      "العروض",
		"menu":        "القائمة",
		"newProducts": "منتجات جديدة",
		"contact":     "اتصل بنا",
		"cart":        "السلة",

		// Product
		"addToCart":   "أضف إلى السلة",
		"price":       "السعر",
		"flavor":      "النكهة",
		"rating":      "التقييم",
		"description": "الوصف",

		// Cart
		"cartEmpty":        "سلتك فارغة",
		"continueShopping": "مواصلة التسوق",
		"checkout":         "إتمام الطلب",
		"total":            "الإجمالي",
		"quantity":         "الكمية",
		"delivery":         "التوصيل",
		"egp":              "جنيه",

		// Checkout
		"fullName":      "الاسم الكامل",
		"address":       "العنوان",
		"phoneNumber":   "رقم الهاتف",
		"paymentMethod": "طريقة الدفع",
		"placeOrder":    "تأكيد الطلب",

		// Messages
		"addedToCart":        "تمت الإضافة إلى السلة",
		"orderPlaced":        "تم الطلب بنجاح!",
		"orderFailed":        "حدث خطأ أثناء تنفيذ الطلب. حاول مرة أخرى.",
		"couponRequired":     "يرجى إدخال كود الخصم",
		"couponInvalid":      "كود الخصم غير صحيح أو غير مفعل",
		"couponLimitReached": "تم الوصول للحد الأقصى لاستخدام هذا الكوبون",
		"couponApplied":      "تم تطبيق الكوبون بنجاح!",
		"fullNameRequired":   "الاسم الكامل مطلوب",
		"addressRequired":    "العنوان مطلوب",
		"phoneRequired":      "رقم الهاتف مطلوب",
		"phoneInvalid":       "رقم الهاتف يجب أن يحتوي على أرقام فقط",
		"paymentRequired":    "يرجى اختيار طريقة الدفع",
		"productNotFound":    "المنتج غير موجود",
		"notFound":           "غير موجود",
		"loginFailed":        "البريد الإلكتروني أو كلمة المرور غير صحيحة",
	},
}
