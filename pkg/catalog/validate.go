package catalog

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/mchmarny/aic-catalog/pkg/errors"
	"github.com/mchmarny/aic-catalog/pkg/item"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// getValidator returns the shared definition validator. Field names in
// validation errors are the YAML keys.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
		if err := v.RegisterValidation("region", validateRegion); err != nil {
			panic(fmt.Sprintf("registering region validation: %v", err))
		}
		validate = v
	})
	return validate
}

func validateRegion(fl validator.FieldLevel) bool {
	region := fl.Field().String()
	if region == "" {
		return true
	}
	return item.Region(region).IsValid()
}

// validateDef checks a definition's struct tags and converts failures into
// an INVALID_REQUEST error.
func validateDef(def any, ctx map[string]any) error {
	err := getValidator().Struct(def)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return errors.WrapWithContext(errors.ErrCodeInvalidRequest, "invalid definition", err, ctx)
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, describe(e))
	}
	return errors.WrapWithContext(errors.ErrCodeInvalidRequest,
		"invalid definition: "+strings.Join(msgs, "; "), err, ctx)
}

func describe(e validator.FieldError) string {
	field := strings.SplitN(e.Namespace(), ".", 2)
	name := e.Field()
	if len(field) == 2 {
		name = field[1]
	}
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "gte":
		return fmt.Sprintf("%s must be at least %s", name, e.Param())
	case "region":
		return fmt.Sprintf("%s %q is not one of %q, %q", name, e.Value(), item.RegionValley, item.RegionWuling)
	default:
		return fmt.Sprintf("%s failed %q", name, e.Tag())
	}
}
