package common

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/amirasaad/ledger/pkg/domain/money"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// Reason codes reported per field in ProblemDetails.Errors.
const (
	ReasonRequired         = "required"
	ReasonInvalidEmail     = "invalid_email"
	ReasonMustBeInt        = "must_be_int"
	ReasonMustBeGreater0   = "must_be_greater_0"
	ReasonMustNotBeNeg     = "must_not_be_negative"
	ReasonInvalidPrecision = "invalid_precision"
	ReasonInvalidDecimal   = "invalid_decimal"
	ReasonNotUnique        = "not_unique"
	ReasonNotFound         = "not_found"
	ReasonTooBig           = "too_big"
	ReasonSameAsSource     = "same_as_source_account"
	ReasonNotEnoughMoney   = "not_enough_money"
	ReasonStoreUnavailable = "store_unavailable"
	ReasonServerError      = "server_error"
	ReasonInvalid          = "invalid"
	ReasonInvalidBody      = "invalid_json"
)

// FieldBody keys errors that belong to the request body as a whole.
const FieldBody = "body"

var tagReasons = map[string]string{
	"required":          ReasonRequired,
	"email":             ReasonInvalidEmail,
	"gt":                ReasonMustBeGreater0,
	"nefield":           ReasonSameAsSource,
	"money_positive":    ReasonMustBeGreater0,
	"money_nonnegative": ReasonMustNotBeNeg,
	"money_scale":       ReasonInvalidPrecision,
	"money_max":         ReasonTooBig,
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator with the money tags registered.
// Decimal fields are validated through their string form.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				return d.String()
			}
			return nil
		}, decimal.Decimal{})

		mustRegister(v, "money_positive", func(d decimal.Decimal) bool { return d.IsPositive() })
		mustRegister(v, "money_nonnegative", func(d decimal.Decimal) bool { return !d.IsNegative() })
		mustRegister(v, "money_scale", money.HasScale)
		mustRegister(v, "money_max", money.InRange)
		validate = v
	})
	return validate
}

func mustRegister(v *validator.Validate, tag string, check func(decimal.Decimal) bool) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		return check(d)
	})
	if err != nil {
		panic(err)
	}
}

// ValidationErrors converts validator failures to field -> reason codes.
func ValidationErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{FieldBody: ReasonInvalid}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		reason, ok := tagReasons[fe.Tag()]
		if !ok {
			reason = ReasonInvalid
		}
		out[fe.Field()] = reason
	}
	return out
}

// decodeErrors explains a body that failed to decode. Type mismatches name
// the offending field.
func decodeErrors(err error) map[string]string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		switch typeErr.Type.Kind() {
		case reflect.Int, reflect.Int32, reflect.Int64:
			return map[string]string{typeErr.Field: ReasonMustBeInt}
		default:
			return map[string]string{typeErr.Field: ReasonInvalid}
		}
	}
	if strings.Contains(err.Error(), "decimal") {
		return map[string]string{FieldBody: ReasonInvalidDecimal}
	}
	return map[string]string{FieldBody: ReasonInvalidBody}
}

// BindAndValidate parses the request body and validates it using go-playground/validator.
// Returns a pointer to the struct (populated), or writes a 422 problem
// response and returns nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ErrorResponseJSON(c, fiber.StatusUnprocessableEntity, "Invalid request body", decodeErrors(err))
	}
	if err := Validator().Struct(input); err != nil {
		return nil, ErrorResponseJSON(c, fiber.StatusUnprocessableEntity, "Validation failed", ValidationErrors(err))
	}
	return &input, nil
}

// ParseID reads a positive integer path parameter. On failure it writes a
// 422 problem response naming field and returns ok == false.
func ParseID(c *fiber.Ctx, param, field string) (id int64, ok bool, err error) {
	n, convErr := c.ParamsInt(param)
	if convErr != nil {
		return 0, false, ErrorResponseJSON(c, fiber.StatusUnprocessableEntity, "Invalid path parameter",
			map[string]string{field: ReasonMustBeInt})
	}
	if n <= 0 {
		return 0, false, ErrorResponseJSON(c, fiber.StatusUnprocessableEntity, "Invalid path parameter",
			map[string]string{field: ReasonMustBeGreater0})
	}
	return int64(n), true, nil
}
