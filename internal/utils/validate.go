package utils

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/a2sh3r/stablex/internal/apperrors"
	"github.com/a2sh3r/stablex/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	upiPattern     = regexp.MustCompile(`^[a-zA-Z0-9.\-_]{2,256}@[a-zA-Z]{2,64}$`)
	ifscPattern    = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	accountPattern = regexp.MustCompile(`^[0-9]{9,18}$`)
	tronPattern    = regexp.MustCompile(`^T[1-9A-HJ-NP-Za-km-z]{33}$`)
	evmPattern     = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// decimal.Decimal is validated through its string form.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	mustRegister(v, "positive", decimalRule(func(d decimal.Decimal) bool { return d.IsPositive() }))
	mustRegister(v, "nonnegative", decimalRule(func(d decimal.Decimal) bool { return !d.IsNegative() }))
	mustRegister(v, "cents", decimalRule(func(d decimal.Decimal) bool { return d.Equal(d.Round(2)) }))
	mustRegister(v, "amountcap", decimalRule(func(d decimal.Decimal) bool { return d.LessThanOrEqual(models.MaxAmount) }))
	mustRegister(v, "percent", decimalRule(func(d decimal.Decimal) bool {
		return !d.IsNegative() && d.LessThanOrEqual(decimal.NewFromInt(100))
	}))
	mustRegister(v, "balancecap", decimalRule(func(d decimal.Decimal) bool { return d.LessThanOrEqual(models.MaxBalance) }))

	mustRegister(v, "upi", func(fl validator.FieldLevel) bool { return isValidUPI(fl.Field().String()) })
	mustRegister(v, "ifsc", func(fl validator.FieldLevel) bool { return isValidIFSC(fl.Field().String()) })
	mustRegister(v, "bankaccount", func(fl validator.FieldLevel) bool { return isValidAccountNumber(fl.Field().String()) })
	mustRegister(v, "cryptoaddr", func(fl validator.FieldLevel) bool {
		network := fl.Parent().FieldByName("Network")
		if !network.IsValid() || network.Kind() != reflect.String {
			return false
		}
		return isValidCryptoAddress(network.String(), fl.Field().String())
	})

	v.RegisterStructValidation(depositRequestRules, models.DepositRequest{})
	v.RegisterStructValidation(withdrawalRequestRules, models.WithdrawalRequest{})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func decimalRule(ok func(decimal.Decimal) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		return ok(d)
	}
}

func depositRequestRules(sl validator.StructLevel) {
	req := sl.Current().Interface().(models.DepositRequest)
	p := req.Payload

	switch req.Method {
	case models.DepositUPI:
		requireValue(sl, p.TransactionRef, "payload.transaction_ref", "TransactionRef")
	case models.DepositCrypto:
		requireValue(sl, p.TransactionRef, "payload.transaction_ref", "TransactionRef")
		requireValue(sl, p.Network, "payload.network", "Network")
	case models.DepositBuyStablecoin:
		requireValue(sl, p.WalletAddress, "payload.wallet_address", "WalletAddress")
		requireValue(sl, p.Network, "payload.network", "Network")
	}
}

func withdrawalRequestRules(sl validator.StructLevel) {
	req := sl.Current().Interface().(models.WithdrawalRequest)

	switch req.Method {
	case models.WithdrawINR:
		if req.PaymentMethod == models.PaymentCrypto {
			sl.ReportError(req.PaymentMethod, "payment_method", "PaymentMethod", "inr_payment", "")
		}
	case models.WithdrawUSDT:
		if req.PaymentMethod != models.PaymentCrypto {
			sl.ReportError(req.PaymentMethod, "payment_method", "PaymentMethod", "usdt_payment", "")
		}
	}

	d := req.Destination
	switch req.PaymentMethod {
	case models.PaymentBank:
		requireValue(sl, d.AccountHolder, "destination.account_holder", "AccountHolder")
		requireValue(sl, d.AccountNumber, "destination.account_number", "AccountNumber")
		requireValue(sl, d.IFSC, "destination.ifsc", "IFSC")
	case models.PaymentUPI:
		requireValue(sl, d.UPIID, "destination.upi_id", "UPIID")
	case models.PaymentCrypto:
		requireValue(sl, d.Network, "destination.network", "Network")
		requireValue(sl, d.CryptoAddress, "destination.crypto_address", "CryptoAddress")
	}
}

func requireValue(sl validator.StructLevel, value, field, structField string) {
	if strings.TrimSpace(value) == "" {
		sl.ReportError(value, field, structField, "required", "")
	}
}

// ValidateStruct checks the validate tags and cross-field rules of a request and
// returns the first failure as an *apperrors.ValidationError.
func ValidateStruct(s any) error {
	return toValidationError(validate.Struct(s), "")
}

// ValidateVar checks a single value against tag and reports failures under field.
func ValidateVar(field string, value any, tag string) error {
	return toValidationError(validate.Var(value, tag), field)
}

func toValidationError(err error, field string) error {
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return err
	}
	fe := errs[0]
	if field == "" {
		field = fieldPath(fe.Namespace())
	}
	return apperrors.NewValidationError(field, reason(fe))
}

// fieldPath drops the root type name from a namespace such as
// "WithdrawalRequest.destination.ifsc".
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "positive":
		return "must be greater than zero"
	case "nonnegative":
		return "must not be negative"
	case "cents":
		return "must have at most two decimal places"
	case "amountcap":
		return "must not exceed " + models.MaxAmount.String()
	case "percent":
		return "must be between 0 and 100"
	case "balancecap":
		return "must not exceed " + models.MaxBalance.StringFixed(2)
	case "upi":
		return "is not a valid UPI id"
	case "ifsc":
		return "is not a valid IFSC code"
	case "bankaccount":
		return "must be 9 to 18 digits"
	case "cryptoaddr":
		return "is not a valid address for the selected network"
	case "inr_payment":
		return "must be bank or upi for INR withdrawals"
	case "usdt_payment":
		return "must be crypto for USDT withdrawals"
	default:
		return "is invalid"
	}
}

func isValidUPI(id string) bool {
	return upiPattern.MatchString(id)
}

func isValidIFSC(code string) bool {
	return ifscPattern.MatchString(strings.ToUpper(code))
}

func isValidAccountNumber(n string) bool {
	return accountPattern.MatchString(n)
}

// isValidCryptoAddress checks the address format for the supported stablecoin networks.
func isValidCryptoAddress(network, address string) bool {
	switch strings.ToUpper(network) {
	case "TRC20":
		return tronPattern.MatchString(address)
	case "ERC20", "BEP20", "POLYGON":
		return evmPattern.MatchString(address)
	default:
		return false
	}
}
