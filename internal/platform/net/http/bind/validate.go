// Package bind decodes request bodies and validates them with go-playground/validator
// messages are english and fields are named by their json tags
package bind

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	perr "internhub/internal/platform/errors"
	"internhub/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entrans "github.com/go-playground/validator/v10/translations/en"
)

type engine struct {
	v  *validator.Validate
	tr ut.Translator
	mu sync.Mutex // guards registration
}

var (
	engineOnce sync.Once
	eng        *engine
)

func get() *engine {
	engineOnce.Do(func() {
		loc := en.New()
		tr, _ := ut.New(loc, loc).GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonName)
		_ = entrans.RegisterDefaultTranslations(v, tr)

		eng = &engine{v: v, tr: tr}
		eng.translate("min", "{0} must be at least {1}")
		eng.translate("max", "{0} must be at most {1}")
	})
	return eng
}

// jsonName reports a field by its json key, the go name when it has none
func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

// translate sets the message for tag, {0} is the field and {1} the tag param
func (e *engine) translate(tag, text string) {
	_ = e.v.RegisterTranslation(tag, e.tr,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}

// RegisterEnum adds a string tag that passes when valid does, msg is its message
// registering a tag again replaces it
func RegisterEnum(tag, msg string, valid func(string) bool) error {
	e := get()
	e.mu.Lock()
	defer e.mu.Unlock()

	err := e.v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		f := fl.Field()
		return f.Kind() == reflect.String && valid(f.String())
	})
	if err != nil {
		return err
	}
	e.translate(tag, msg)
	return nil
}

// Validate checks a struct, or pointer to one, and reports the first failing field
// the result is a Validation error with the field's json name attached, anything not a struct passes
func Validate(v any) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	err := get().v.Struct(v)
	if err == nil {
		return nil
	}
	var bad *validator.InvalidValidationError
	if errors.As(err, &bad) {
		logger.Get().Error().Err(bad).Msg("validator misuse")
		return perr.JSONErrf("validation error")
	}
	field, msg := ValidationFieldAndMessage(err)
	return perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s", msg), field)
}

// ValidationFieldAndMessage picks the first field error and translates it
// errors not from the validator come back as their text with no field
func ValidationFieldAndMessage(err error) (field, message string) {
	var verrs validator.ValidationErrors
	switch {
	case err == nil:
		return "", ""
	case errors.As(err, &verrs) && len(verrs) > 0:
		return verrs[0].Field(), verrs[0].Translate(get().tr)
	}
	return "", err.Error()
}
