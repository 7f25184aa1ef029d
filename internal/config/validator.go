package config

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := validate.RegisterValidation("intervals", isMonotonicIntervals); err != nil {
		return nil, nil, fmt.Errorf("register intervals validation: %w", err)
	}
	if err := validate.RegisterTranslation("intervals", trans, func(ut ut.Translator) error {
		return ut.Add("intervals", "{0} must be a monotonically non-decreasing interval table", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("intervals", strings.TrimPrefix(fe.Namespace(), "Config."))
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("register intervals translation: %w", err)
	}

	validate.RegisterStructValidation(validateMixerRatios, MixerConfig{})

	return validate, trans, nil
}

// isMonotonicIntervals checks that the interval step table never shrinks as
// strength grows.
func isMonotonicIntervals(fl validator.FieldLevel) bool {
	v := fl.Field()
	if v.Kind() != reflect.Slice {
		return false
	}
	prev := -1
	for i := 0; i < v.Len(); i++ {
		d := int(v.Index(i).Int())
		if d < 0 || d < prev {
			return false
		}
		prev = d
	}
	return true
}

// validateMixerRatios enforces that the bucket ratios split the full budget.
func validateMixerRatios(sl validator.StructLevel) {
	m := sl.Current().Interface().(MixerConfig)
	sum := m.CurrentRatio + m.ReviewRatio + m.OlderRatio
	if math.Abs(sum-1.0) > 1e-9 {
		sl.ReportError(m.CurrentRatio, "current_ratio", "CurrentRatio", "ratiosum", "")
	}
}

// Validate checks a loaded configuration and returns readable errors.
func Validate(cfg *Config) error {
	validate, trans, err := newValidator()
	if err != nil {
		return err
	}

	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if ok := isValidationErrors(err, &verrs); ok {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				if fe.Tag() == "ratiosum" {
					msgs = append(msgs, "mixer ratios must sum to 1.0")
					continue
				}
				msgs = append(msgs, fe.Translate(trans))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("validate configuration: %w", err)
	}
	return nil
}

func isValidationErrors(err error, out *validator.ValidationErrors) bool {
	if verrs, ok := err.(validator.ValidationErrors); ok {
		*out = verrs
		return true
	}
	return false
}
