package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jwalitptl/clinic-console/internal/model"
)

// Salvadoran document formats plus the clinic's invoice numbering.
var (
	duiPattern     = regexp.MustCompile(`^\d{8}-\d$`)
	isssPattern    = regexp.MustCompile(`^\d{9}$`)
	nitPattern     = regexp.MustCompile(`^\d{4}-\d{6}-\d{3}-\d$`)
	phonePattern   = regexp.MustCompile(`^\d{4}-\d{4}$`)
	invoicePattern = regexp.MustCompile(`^FACT-\d{4}-\d{4}$`)
)

// FieldError is a single violated rule, surfaced to the user as-is.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

// Validator checks form drafts at submit time. It is client-side glue, not
// a replacement for server-side validation.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	mustRegister(v, "dui", matcher(duiPattern))
	mustRegister(v, "isss", matcher(isssPattern))
	mustRegister(v, "nit", matcher(nitPattern))
	mustRegister(v, "contact_phone", matcher(phonePattern))
	mustRegister(v, "invoice_number", matcher(invoicePattern))
	mustRegister(v, "positive_amount", positiveAmount)

	v.RegisterStructValidation(scheduleTimes, model.ScheduleDraft{})

	return &Validator{v: v}
}

// Struct validates a draft and returns the first violated rule.
func (va *Validator) Struct(s interface{}) error {
	err := va.v.Struct(s)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return err
	}
	fe := errs[0]
	return &FieldError{Field: fe.Field(), Message: message(fe)}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

func matcher(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

func positiveAmount(fl validator.FieldLevel) bool {
	amount, err := strconv.ParseFloat(fl.Field().String(), 64)
	return err == nil && amount > 0
}

// scheduleTimes enforces start < end. Lexicographic compare is sufficient
// for same-day HH:MM strings.
func scheduleTimes(sl validator.StructLevel) {
	draft := sl.Current().Interface().(model.ScheduleDraft)
	if draft.Start == "" || draft.End == "" {
		return
	}
	if draft.Start >= draft.End {
		sl.ReportError(draft.Start, "hora_inicio", "Start", "start_before_end", "")
	}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "dui":
		return "DUI must match 00000000-0"
	case "isss":
		return "ISSS must be exactly 9 digits"
	case "nit":
		return "NIT must match 0000-000000-000-0"
	case "contact_phone":
		return "phone must match 0000-0000"
	case "invoice_number":
		return "invoice number must match FACT-0000-0000"
	case "positive_amount":
		return fmt.Sprintf("%s must be greater than 0", fe.Field())
	case "start_before_end":
		return "start time must be before end time"
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
