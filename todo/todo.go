package todo

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

const (
	// MaxTitleLen is the longest title accepted at the boundary,
	// in characters. Mirrored by the validate tag on Title.
	MaxTitleLen = 200
	// MaxDescriptionLen is the longest description accepted at the
	// boundary, in characters. Mirrored by the validate tag on
	// Description.
	MaxDescriptionLen = 500
)

// Todo is the single entity managed by this service. ID is the sole
// lookup key and is assigned by the service layer on create.
type Todo struct {
	ID          string `json:"id"`
	Title       string `json:"title" validate:"notblank,max=200"`
	Description string `json:"description" validate:"max=500"`
	Completed   bool   `json:"completed"`
}

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()

	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("could not register notblank validation: %s", err))
	}

	return v
}

// Validate checks the boundary constraints on a todo: title must be
// non-blank and at most MaxTitleLen characters, description at most
// MaxDescriptionLen characters. Limits count characters, not bytes.
// ID and Completed are not validated here.
func (todo Todo) Validate() error {
	err := validate.Struct(todo)

	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors

	if !errors.As(err, &fieldErrors) {
		return err
	}

	return validationMessage(fieldErrors[0])
}

func validationMessage(fieldError validator.FieldError) error {
	switch {
	case fieldError.Field() == "Title" && fieldError.Tag() == "notblank":
		return fmt.Errorf("title is required")
	case fieldError.Field() == "Title":
		return fmt.Errorf("title must not exceed %d characters", MaxTitleLen)
	default:
		return fmt.Errorf("description must not exceed %d characters", MaxDescriptionLen)
	}
}
