package config

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"git.home.luguber.info/inful/signgate/internal/foundation/errors"
)

// javaPackage matches dotted Java package names with at least two segments.
var javaPackage = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*(\.[a-zA-Z][a-zA-Z0-9_]*)+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("javapackage", func(fl validator.FieldLevel) bool {
		return javaPackage.MatchString(fl.Field().String())
	})
	return v
}

// Validate checks cfg against its struct constraints and the cross-field rules
// the Android Gradle plugin enforces.
func Validate(cfg *Config) error {
	fields := map[string]string{}

	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if !stderrors.As(err, &verrs) {
			return errors.WrapError(err, errors.CategoryInternal, "config validation failed").Fatal().Build()
		}
		for _, fe := range verrs {
			fields[trimRoot(fe.Namespace())] = describe(fe)
		}
	}

	if cfg.Release.ShrinkResources && !cfg.Release.MinifyEnabled {
		fields["release.shrink_resources"] = "shrink_resources requires minify_enabled"
	}

	if len(fields) == 0 {
		return nil
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, fields[k])
	}

	b := errors.ValidationError("invalid configuration: " + strings.Join(msgs, "; "))
	for k, v := range fields {
		b = b.WithContext(k, v)
	}
	return b.Build()
}

func trimRoot(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	field := trimRoot(fe.Namespace())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "javapackage":
		return fmt.Sprintf("%s must be a dotted package name, got %q", field, fe.Value())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "ltefield":
		return fmt.Sprintf("%s must not exceed %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s validation failed on '%s' tag", field, fe.Tag())
	}
}
