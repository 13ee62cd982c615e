package validationx

import (
	"errors"
	"testing"
	"unicode"

	"github.com/ARUMANDESU/validation"

	"gitlab.com/lexdraft/lexdraft-backend/pkg/i18nx"
)

const (
	MaxTitleLen       = 300
	MaxDescriptionLen = 20_000
	MaxContentLen     = 500_000
)

var ErrInvalidTitle = validation.NewError(
	i18nx.ValidationIsTitle,
	"must contain at least one letter or digit",
)

var (
	IsTitle = TitleRule{}

	TitleRules = []validation.Rule{
		validation.Required,
		validation.RuneLength(1, MaxTitleLen),
		IsTitle,
	}

	DescriptionRules = []validation.Rule{
		validation.RuneLength(0, MaxDescriptionLen),
	}

	ContentRules = []validation.Rule{
		validation.Required,
		validation.RuneLength(1, MaxContentLen),
	}
)

// TitleRule rejects titles made only of punctuation or symbols, which is what
// the extraction backend emits when it fails to find a heading.
type TitleRule struct{}

func (TitleRule) Validate(value any) error {
	s, ok := value.(string)
	if !ok {
		return errors.New("value is not a string")
	}
	if s == "" {
		return nil // Let Required handle emptiness
	}

	for _, c := range s {
		if unicode.IsLetter(c) || unicode.IsDigit(c) {
			return nil
		}
	}

	return ErrInvalidTitle
}

func AssertValidationErrors(t *testing.T, err error, expected error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error %v, got nil", expected)
	}

	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected error to be of type validation.Errors, got %T: %v", err, err)
	}

	var expectedVerrs validation.Errors
	if !errors.As(expected, &expectedVerrs) {
		t.Fatalf("expected expected error to be of type validation.Errors, got %T: %v", expected, expected)
	}

	if len(verrs) != len(expectedVerrs) {
		t.Fatalf("expected number of validation errors to match, got %v and %v", verrs, expectedVerrs)
	}

	for field, expectedErr := range expectedVerrs {
		actualErr, found := verrs[field]
		if !found {
			t.Errorf("field %s: expected error %v, got none", field, expectedErr)
			continue
		}
		AssertValidationError(t, actualErr, expectedErr)
	}
}

func AssertValidationError(t *testing.T, err error, expected error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error %v, got nil", expected)
	}

	var verr validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected error to be of type validation.Error, got %T: %v", err, err)
	}
	var expectedVerr validation.Error
	if !errors.As(expected, &expectedVerr) {
		t.Fatalf("expected expected error to be of type validation.Error, got %T: %v", expected, expected)
	}

	if verr.Code() != expectedVerr.Code() {
		t.Errorf("expected validation error code %q, got %q", expectedVerr.Code(), verr.Code())
	}
}
