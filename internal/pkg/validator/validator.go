package validator

import (
	"reflect"
	"strings"

	"github.com/conecta-coleta/internal/domain"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// В ошибках поля называются так же, как в API
	validate.RegisterTagNameFunc(fieldName)

	// Категория сравнивается без учёта регистра, как в фильтре ранжирования
	_ = validate.RegisterValidation("disposal_category", func(fl validator.FieldLevel) bool {
		_, ok := domain.ParseDisposalCategory(fl.Field().String())
		return ok
	})
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "query"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}
