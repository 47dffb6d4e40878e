// Package store loads an optional catalog file that replaces the seed
// catalog. Files are read once at startup and never written.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/variants/internal/model"
)

// record is the on-disk shape of one variant. Prices are decimals.
type record struct {
	Size      string  `json:"size" yaml:"size" validate:"required,oneof=small medium"`
	Color     string  `json:"color" yaml:"color" validate:"required"`
	Price     float64 `json:"price" yaml:"price" validate:"gte=0"`
	Available int     `json:"available" yaml:"available" validate:"gte=0"`
}

type file struct {
	Variants []record `json:"variants" yaml:"variants" validate:"required,min=1,dive"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	yamlLineRegex = regexp.MustCompile(`line (\d+)`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Load reads a YAML (.yaml, .yml) or JSON (.json) catalog.
func Load(path string) (model.Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.Catalog{}, fmt.Errorf("catalog %s: %w", path, err)
		}
		return model.Catalog{}, fmt.Errorf("read file: %w", err)
	}

	var f file
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(b, &f); err != nil {
			return model.Catalog{}, NewParseError(path, 0, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &f); err != nil {
			return model.Catalog{}, NewParseError(path, extractLine(err), err)
		}
	default:
		return model.Catalog{}, fmt.Errorf("catalog %s: unsupported extension %q", path, filepath.Ext(path))
	}

	if err := validate(&f); err != nil {
		return model.Catalog{}, err
	}

	vs := make([]model.Variant, 0, len(f.Variants))
	for _, r := range f.Variants {
		vs = append(vs, model.Variant{
			Size:      model.Size(r.Size),
			Color:     r.Color,
			Price:     model.PriceFromFloat(r.Price),
			Available: r.Available,
		})
	}
	return model.NewCatalog(vs), nil
}

func validate(f *file) error {
	err := validatorInstance().Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return NewValidationError(fieldPath(fe.Namespace()), describe(fe))
	}
	return NewValidationError("", err.Error())
}

// fieldPath turns "file.Variants[1].Price" into "variants[1].price".
func fieldPath(ns string) string {
	ns = strings.TrimPrefix(ns, "file.")
	return strings.ToLower(ns)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %v", fe.Param(), fe.Value())
	case "gte":
		return fmt.Sprintf("must be >= %s", fe.Param())
	case "min":
		return fmt.Sprintf("needs at least %s entry", fe.Param())
	}
	return fmt.Sprintf("failed %q", fe.Tag())
}

func extractLine(err error) int {
	m := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(m) != 2 {
		return 0
	}
	n, convErr := strconv.Atoi(m[1])
	if convErr != nil {
		return 0
	}
	return n
}
