package utils

import "github.com/go-playground/validator/v10"

var validatorInstance = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// reponame accepts owner/repo, optionally with .git. Empty is left to required rules.
	_ = v.RegisterValidation("reponame", func(fl validator.FieldLevel) bool {
		name := fl.Field().String()
		if name == "" {
			return true
		}
		_, ok := NormalizeRepoName(name)
		return ok
	})
	return v
}

func Validate(v any) error {
	return validatorInstance.Struct(v)
}
