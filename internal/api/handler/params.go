package handler

import "github.com/pkg/errors"

func errInvalidQueryParam(name, value string) error {
	return errors.Errorf("parâmetro %s inválido: %s", name, value)
}

func errMissingField(message string) error {
	return errors.New(message)
}
