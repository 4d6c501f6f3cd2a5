package validator

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/authz"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/valueobject"
	"github.com/ONLYOFFICE/DocSpace-server-sub006/pkg/apperror"
)

var invalidTitleChars = regexp.MustCompile(`[/\\:*?"<>|]`)

// CustomValidator はEcho用のカスタムバリデーターです
type CustomValidator struct {
	validator *validator.Validate
}

// NewCustomValidator は新しいCustomValidatorを作成します
func NewCustomValidator() *CustomValidator {
	v := validator.New()

	// エラーのフィールド名はJSONのキーで返す
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("access_level", validateAccessLevel)
	_ = v.RegisterValidation("subject_type", validateSubjectType)
	_ = v.RegisterValidation("room_type", validateRoomType)
	_ = v.RegisterValidation("entry_title", validateEntryTitle)

	return &CustomValidator{validator: v}
}

// Validate はリクエストを検証します
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return cv.formatValidationErrors(err)
	}
	return nil
}

// formatValidationErrors はバリデーションエラーをフォーマットします
func (cv *CustomValidator) formatValidationErrors(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return apperror.NewValidationError(err.Error(), nil)
	}

	details := make([]apperror.FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		details = append(details, apperror.FieldError{
			Field:   e.Field(),
			Message: getValidationMessage(e),
		})
	}

	return apperror.NewValidationError("validation failed", details)
}

func validateAccessLevel(fl validator.FieldLevel) bool {
	_, err := authz.NewAccessLevel(fl.Field().String())
	return err == nil
}

func validateSubjectType(fl validator.FieldLevel) bool {
	_, err := authz.NewSubjectType(fl.Field().String())
	return err == nil
}

func validateRoomType(fl validator.FieldLevel) bool {
	_, err := valueobject.NewRoomType(fl.Field().String())
	return err == nil
}

// validateEntryTitle はエントリ名のバリデーション
func validateEntryTitle(fl validator.FieldLevel) bool {
	title := strings.TrimSpace(fl.Field().String())
	if title == "" || title == "." || title == ".." {
		return false
	}
	return !invalidTitleChars.MatchString(title)
}

// getValidationMessage はバリデーションエラーメッセージを返します
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "this field is required"
	case "max":
		return "must be at most " + e.Param() + " characters"
	case "uuid":
		return "must be a valid UUID"
	case "oneof":
		return "must be one of: " + e.Param()
	case "access_level":
		return "must be one of: none read review comment editing"
	case "subject_type":
		return "must be one of: user group"
	case "room_type":
		return "must be one of: public custom filling_forms editing virtual_data"
	case "entry_title":
		return "must be a valid title (no special characters)"
	default:
		return "validation failed"
	}
}
