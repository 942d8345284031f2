package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/craftshop/admin-backend/internal/domain"
)

// ProductInput holds the parameters for creating or fully replacing a
// product. Updates carry the complete field set and pass the same rules as
// creates.
type ProductInput struct {
	Title         string
	Status        domain.ProductStatus
	Description   string
	Media         []string
	Price         decimal.Decimal
	Expense       decimal.Decimal
	CollectionIDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *ProductInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > 500 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long (max 500)"})
	}

	if i.Status == "" {
		errs = append(errs, domain.FieldError{Field: "status", Message: "required"})
	} else if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}

	switch desc := strings.TrimSpace(i.Description); {
	case desc == "":
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	case len(desc) < 10:
		errs = append(errs, domain.FieldError{Field: "description", Message: "too short (min 10)"})
	case len(desc) > 5000:
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long (max 5000)"})
	}

	if len(i.Media) == 0 {
		errs = append(errs, domain.FieldError{Field: "media", Message: "required (at least 1)"})
	}
	for _, m := range i.Media {
		if strings.TrimSpace(m) == "" {
			errs = append(errs, domain.FieldError{Field: "media", Message: "empty reference"})
			break
		}
	}

	if len(i.CollectionIDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "collections", Message: "required (at least 1)"})
	}
	for _, id := range i.CollectionIDs {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "collections", Message: "invalid reference"})
			break
		}
	}

	if !i.Price.IsPositive() {
		errs = append(errs, domain.FieldError{Field: "price", Message: "must be positive"})
	}
	if !i.Expense.IsPositive() {
		errs = append(errs, domain.FieldError{Field: "expense", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// toProduct converts validated input into a domain.Product ready to persist.
func (i *ProductInput) toProduct() *domain.Product {
	return &domain.Product{
		Title:       strings.TrimSpace(i.Title),
		Status:      i.Status,
		Description: strings.TrimSpace(i.Description),
		Media:       i.Media,
		Price:       i.Price,
		Expense:     i.Expense,
	}
}

// CollectionInput holds the parameters for creating or renaming a collection.
type CollectionInput struct {
	Title string
}

// Validate checks all fields and collects all errors.
func (i *CollectionInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long (max 200)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
