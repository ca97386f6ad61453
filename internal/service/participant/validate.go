package participant

import (
	"errors"
	"fortune_wheel/internal/model"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^[0-9+\-\s()]+$`)

// lead - поля формы с правилами проверки. Имена полей совпадают с json формы
type lead struct {
	FirstName string `validate:"required" field:"nombre"`
	LastName  string `validate:"required" field:"apellido"`
	Phone     string `validate:"required,phone" field:"telefono"`
	Email     string `validate:"required,email" field:"email"`
}

var messages = map[string]map[string]string{
	"nombre":   {"required": "El nombre es obligatorio"},
	"apellido": {"required": "El apellido es obligatorio"},
	"telefono": {"required": "El teléfono es obligatorio", "phone": "Formato de teléfono inválido"},
	"email":    {"required": "El email es obligatorio", "email": "Formato de email inválido"},
}

// ValidationError - ошибки формы по полям
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid participant: " + strings.Join(parts, "; ")
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("field")
	})
	err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	if err != nil {
		panic("failed to register phone validation: " + err.Error())
	}
	return v
}

// normalize обрезает пробелы по краям, строка из пробелов считается пустой
func normalize(p model.Participant) model.Participant {
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Email = strings.TrimSpace(p.Email)
	return p
}

// check возвращает *ValidationError или nil
func (s *serv) check(p model.Participant) error {
	err := s.validate.Struct(lead{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Phone:     p.Phone,
		Email:     p.Email,
	})
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	verr := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		msg, ok := messages[fe.Field()][fe.Tag()]
		if !ok {
			msg = "Campo inválido"
		}
		verr.Fields[fe.Field()] = msg
	}
	return verr
}
