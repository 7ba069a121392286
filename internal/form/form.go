// Package form validates the register screen's input and turns it into
// a complete transaction ready for the ledger.
package form

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"gofinances/internal/core"
)

// Selection errors. Type and category are picked outside the text
// fields, so a missing pick is reported as "select it" rather than as
// a malformed value.
var (
	ErrKindNotSelected     = errors.New("selecione o tipo da transação")
	ErrCategoryNotSelected = errors.New("selecione a categoria")
)

// Field errors.
var (
	ErrNameRequired    = errors.New("o nome é obrigatório")
	ErrAmountRequired  = errors.New("o valor é obrigatório")
	ErrAmountInvalid   = errors.New("informe um valor numérico positivo")
	ErrUnknownCategory = errors.New("categoria desconhecida")
)

// Draft is the raw form state. The zero values of Kind and CategoryKey
// mean "not chosen yet": a Draft can exist half-filled, a
// core.Transaction cannot.
type Draft struct {
	Name        string
	Amount      string
	Kind        core.Kind
	CategoryKey string
}

// FieldError ties a violation to the form field it belongs to.
type FieldError struct {
	Field string
	Err   error
}

func (e FieldError) Error() string { return e.Field + ": " + e.Err.Error() }
func (e FieldError) Unwrap() error { return e.Err }

// ValidationErrors collects every violation of one submission so the
// screen can show them all at once.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, fe := range v {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) Unwrap() []error {
	errs := make([]error, len(v))
	for i, fe := range v {
		errs[i] = fe
	}
	return errs
}

// Validator checks drafts and stamps accepted ones with a fresh ID and
// the submission time. Now and NewID are swappable for tests.
type Validator struct {
	Now   func() time.Time
	NewID func() string
}

func NewValidator() *Validator {
	return &Validator{Now: time.Now, NewID: uuid.NewString}
}

// Validate applies every rule and returns either a complete transaction
// or the full list of violations as ValidationErrors.
func (v *Validator) Validate(d Draft) (core.Transaction, error) {
	var errs ValidationErrors

	name := clean(d.Name)
	if name == "" {
		errs = append(errs, FieldError{Field: "name", Err: ErrNameRequired})
	}

	var amount core.Money
	switch trimmed := strings.TrimSpace(d.Amount); {
	case trimmed == "":
		errs = append(errs, FieldError{Field: "amount", Err: ErrAmountRequired})
	default:
		parsed, err := core.ParseAmount(trimmed)
		if err != nil {
			errs = append(errs, FieldError{Field: "amount", Err: ErrAmountInvalid})
		} else {
			amount = parsed
		}
	}

	switch {
	case d.Kind == "":
		errs = append(errs, FieldError{Field: "type", Err: ErrKindNotSelected})
	case !d.Kind.Valid():
		errs = append(errs, FieldError{Field: "type", Err: core.ErrInvalidKind})
	}

	switch key := strings.TrimSpace(d.CategoryKey); {
	case key == "" || key == core.UnselectedCategoryKey:
		errs = append(errs, FieldError{Field: "category", Err: ErrCategoryNotSelected})
	default:
		if _, ok := core.CategoryByKey(key); !ok {
			errs = append(errs, FieldError{Field: "category", Err: ErrUnknownCategory})
		}
	}

	if len(errs) > 0 {
		return core.Transaction{}, errs
	}

	return core.Transaction{
		ID:       v.NewID(),
		Name:     name,
		Amount:   amount,
		Kind:     d.Kind,
		Category: strings.TrimSpace(d.CategoryKey),
		Date:     v.Now(),
	}, nil
}

// clean strips control characters from free text and trims whitespace.
func clean(s string) string {
	s = strings.Map(func(r rune) rune {
		if r < 32 && r != 9 {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}
