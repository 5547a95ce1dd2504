package helpers

import (
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	"github.com/Rakhulsr/go-catalog/app/models/other"
	"github.com/Rakhulsr/go-catalog/app/utils/breadcrumb"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
)

type contextKey string

const (
	ContextKeyRequestID contextKey = "requestID"
)

var fieldLabels = map[string]string{
	"name":          "Product name",
	"img":           "Image URL",
	"description":   "Description",
	"productTypeId": "Product type",
	"productType":   "Product type",
	"colors":        "Colors",
}

// NewValidator returns a validator that reports fields by their json name,
// so error maps line up with request bodies and form inputs.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("web_url", isWebURL)
	return v
}

var webURLSchemes = map[string]bool{"http": true, "https": true, "ftp": true}

// isWebURL accepts absolute http, https and ftp URLs with a host.
func isWebURL(fl validator.FieldLevel) bool {
	u, err := url.Parse(fl.Field().String())
	if err != nil {
		return false
	}
	return webURLSchemes[strings.ToLower(u.Scheme)] && u.Host != ""
}

// GetBaseData fills the fields every page shares. A status/message pair in
// the query string is shown as a banner.
func GetBaseData(r *http.Request, title string, crumbs []breadcrumb.Breadcrumb) other.BasePageData {
	if title == "" {
		title = "Product Management System"
	}
	if crumbs == nil {
		crumbs = []breadcrumb.Breadcrumb{}
	}

	return other.BasePageData{
		Title:         title,
		CSRFField:     csrf.TemplateField(r),
		Message:       r.URL.Query().Get("message"),
		MessageStatus: r.URL.Query().Get("status"),
		Breadcrumbs:   crumbs,
		CurrentPath:   r.URL.Path,
	}
}

func fieldLabel(field string) string {
	if label, ok := fieldLabels[field]; ok {
		return label
	}
	return field
}

func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMessages := make(map[string]string)
	for _, err := range errs {
		field := err.Field()
		label := fieldLabel(field)

		switch err.Tag() {
		case "required":
			switch field {
			case "productTypeId", "productType":
				errorMessages[field] = "Please select a product type"
			case "colors":
				errorMessages[field] = "Please select at least one color"
			default:
				errorMessages[field] = fmt.Sprintf("%s is required", label)
			}
		case "min":
			if err.Kind() == reflect.Slice {
				errorMessages[field] = "Please select at least one color"
			} else {
				errorMessages[field] = fmt.Sprintf("%s must be at least %s characters", label, err.Param())
			}
		case "max":
			errorMessages[field] = fmt.Sprintf("%s must be %s characters or less", label, err.Param())
		case "url", "http_url", "web_url":
			errorMessages[field] = "Please enter a valid URL"
		case "gte", "gt":
			errorMessages[field] = fmt.Sprintf("%s must be a positive integer", label)
		default:
			errorMessages[field] = fmt.Sprintf("Validation %s failed on field %s.", err.Tag(), label)
		}
	}
	return errorMessages
}
