package http

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// validate instancia única del validador estructural. Los nombres de campo en
// los errores salen del tag json, que es lo que el cliente envió.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
	return v
}

// validateStruct corre la validación estructural y devuelve los errores
// agrupados por campo: {campo: [mensajes...]}. nil = válido.
func validateStruct(s interface{}) map[string][]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string][]string{"_": {err.Error()}}
	}
	fields := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = append(fields[fe.Field()], fieldMessage(fe))
	}
	return fields
}

// fieldMessage traduce el tag fallido a un mensaje corto legible.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "uuid":
		return "Invalid uuid"
	case "email":
		return "Invalid email"
	case "oneof":
		return "Must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "Invalid value"
	}
}

// validateUUIDList valida formato uuid de cada elemento de un body de borrado
// masivo, agrupando por índice. nil = todos válidos.
func validateUUIDList(ids []string) map[string][]string {
	var fields map[string][]string
	for i, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			if fields == nil {
				fields = make(map[string][]string)
			}
			key := fmt.Sprintf("%d", i)
			fields[key] = append(fields[key], "Invalid uuid")
		}
	}
	return fields
}
