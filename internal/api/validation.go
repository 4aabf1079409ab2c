package api

import (
	"vybor/internal/catalog"
)

type FieldError struct {
	Code    string `json:"code"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Коды ошибок, которыми будем пользоваться
const (
	ErrRequired     = "required"
	ErrTypeMismatch = "type_mismatch"
	ErrEnumInvalid  = "enum_invalid"
	ErrNotEnum      = "not_enum"
)

func ferr(code, field, msg string) FieldError {
	return FieldError{Code: code, Field: field, Message: msg}
}

// ValidateValue проверяет присланное значение против справочника:
// строка, непустая, один из кодов. Deprecated-коды пропускаем —
// старые записи обязаны проходить валидацию при редактировании.
func ValidateValue(dir catalog.Directory, v any) []FieldError {
	var errs []FieldError

	if v == nil {
		return append(errs, ferr(ErrRequired, "value", "Field 'value' is required"))
	}
	s, ok := v.(string)
	if !ok {
		return append(errs, ferr(ErrTypeMismatch, "value", "Field 'value' must be string"))
	}
	if s == "" {
		return append(errs, ferr(ErrRequired, "value", "Field 'value' is required"))
	}

	for _, it := range dir.Items {
		if it.Code == s {
			return errs
		}
	}
	return append(errs, ferr(ErrEnumInvalid, "value", "Invalid value for '"+dir.FQN()+"'"))
}
