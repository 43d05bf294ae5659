package catalog

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	lumenerrors "github.com/alexisbeaulieu97/lumen/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern   = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?$`)
	itemIDPattern   = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
	categoryPattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("item_id", func(fl validator.FieldLevel) bool {
			return itemIDPattern.MatchString(fl.Field().String())
		})

		// "all" is reserved for the filter wildcard.
		_ = v.RegisterValidation("category_name", func(fl validator.FieldLevel) bool {
			name := fl.Field().String()
			return name != string(All) && categoryPattern.MatchString(name)
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema and cross-field validation on a catalog document.
func Validate(file *File) error {
	if file == nil {
		return lumenerrors.NewValidationError("catalog", "catalog is nil", nil)
	}

	if err := validatorInstance().Struct(file); err != nil {
		return convertValidationError(err)
	}

	categories := file.Categories
	if len(categories) == 0 {
		categories = DefaultCategories
	}
	known := make(map[Category]struct{}, len(categories))
	for i, cat := range categories {
		if _, dup := known[cat]; dup {
			return lumenerrors.NewValidationError(fmt.Sprintf("categories[%d]", i), fmt.Sprintf("duplicate category %q", cat), nil)
		}
		known[cat] = struct{}{}
	}

	seen := make(map[string]int, len(file.Items))
	for i, item := range file.Items {
		if first, dup := seen[item.ID]; dup {
			return lumenerrors.NewValidationError(fieldForItem(i, "id"), fmt.Sprintf("duplicate item id %q (first used by items[%d])", item.ID, first), nil)
		}
		seen[item.ID] = i

		if _, ok := known[item.Category]; !ok {
			return lumenerrors.NewValidationError(fieldForItem(i, "category"), fmt.Sprintf("unknown category %q", item.Category), nil)
		}
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return lumenerrors.NewValidationError(field, msg, err)
	}

	return lumenerrors.NewValidationError("catalog", err.Error(), err)
}

// yamlishFieldName drops the root struct name: "File.Items[0].ID" becomes "items[0].id".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}

func fieldForItem(index int, field string) string {
	return fmt.Sprintf("items[%d].%s", index, field)
}
