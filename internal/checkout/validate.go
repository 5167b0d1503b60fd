package checkout

import (
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var expiryRe = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)

// сообщения для полей; одно на поле независимо от нарушенного правила
var fieldMessages = map[string]string{
	"firstName":   "First name required",
	"lastName":    "Last name required",
	"countryCode": "Unsupported country code",
	"phone":       "Phone number required",
	"location":    "Delivery location required",
	"cardName":    "Name on card required",
	"cardNumber":  "16-digit number required",
	"expiry":      "Use MM/YY",
	"cvv":         "3 digits required",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	must(v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}))
	must(v.RegisterValidation("cardnumber", func(fl validator.FieldLevel) bool {
		digits := strings.Join(strings.Fields(fl.Field().String()), "")
		return len(digits) == 16 && onlyDigits(digits)
	}))
	must(v.RegisterValidation("expiry", func(fl validator.FieldLevel) bool {
		return expiryRe.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("countrycode", func(fl validator.FieldLevel) bool {
		return SupportedCountryCode(fl.Field().String())
	}))
	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// ValidationError ошибки полей формы: имя поля -> сообщение
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		names = append(names, k)
	}
	sort.Strings(names)
	return "validation failed: " + strings.Join(names, ", ")
}

// ValidateCustomer проверяет данные доставки
func ValidateCustomer(c CustomerInfo) map[string]string {
	return collect(validate.Struct(c))
}

// ValidateCard проверяет реквизиты карты
func ValidateCard(c CardData) map[string]string {
	return collect(validate.Struct(c))
}

// SupportedCountryCode сообщает, есть ли код в списке доступных
func SupportedCountryCode(code string) bool {
	for _, c := range CountryCodes {
		if c == code {
			return true
		}
	}
	return false
}

func collect(err error) map[string]string {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"form": err.Error()}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		msg, ok := fieldMessages[fe.Field()]
		if !ok {
			msg = fe.Error()
		}
		out[fe.Field()] = msg
	}
	return out
}

func onlyDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
