package validate_test

import (
	"testing"

	"github.com/joycybakery/fournil/pkg/validate"
)

type productInput struct {
	Name     string  `json:"name"     validate:"required,max=100"`
	Email    string  `json:"email"    validate:"required,email"`
	Price    float64 `json:"price"    validate:"required,gte=0"`
	Category string  `json:"category" validate:"required,in=pain,viennoiserie,gâteau,pâtisserie,autre"`
	ImageURL string  `json:"imageUrl" validate:"nullable,url"`
	Date     string  `json:"date"     validate:"nullable,date"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(productInput{
		Name:     "Cookie XL Chocolat",
		Email:    "marie@example.com",
		Price:    5.00,
		Category: "pâtisserie",
		ImageURL: "", // nullable — allowed to be empty
		Date:     "2026-09-15",
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(productInput{})
	if !validate.HasErrors(errs) {
		t.Error("expected required errors")
	}
	if _, ok := errs["name"]; !ok {
		t.Error("expected name to be required")
	}
	if _, ok := errs["category"]; !ok {
		t.Error("expected category to be required")
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	errs := validate.Struct(in{Email: "not-an-email"})
	if _, ok := errs["email"]; !ok {
		t.Error("expected email validation error")
	}
	errs = validate.Struct(in{Email: "valid@example.com"})
	if validate.HasErrors(errs) {
		t.Errorf("expected valid email to pass, got: %v", errs)
	}
}

func TestDateRule(t *testing.T) {
	type in struct {
		Delivery string `json:"deliveryDate" validate:"required,date"`
	}
	if errs := validate.Struct(in{Delivery: "15/09/2026"}); !validate.HasErrors(errs) {
		t.Error("expected non-ISO date to fail")
	}
	if errs := validate.Struct(in{Delivery: "2026-02-30"}); !validate.HasErrors(errs) {
		t.Error("expected impossible date to fail")
	}
	if errs := validate.Struct(in{Delivery: "2026-09-15"}); validate.HasErrors(errs) {
		t.Errorf("expected valid date to pass, got: %v", errs)
	}
}

func TestInRuleWithAccentedValues(t *testing.T) {
	type in struct {
		Category string `json:"category" validate:"required,in=pain,viennoiserie,gâteau,pâtisserie,autre"`
	}
	if errs := validate.Struct(in{Category: "boissons"}); !validate.HasErrors(errs) {
		t.Error("expected unknown category to fail")
	}
	if errs := validate.Struct(in{Category: "gâteau"}); validate.HasErrors(errs) {
		t.Errorf("expected gâteau to pass: %v", errs)
	}
	if errs := validate.Struct(in{Category: "gateau"}); !validate.HasErrors(errs) {
		t.Error("expected unaccented spelling to fail — stored values carry accents")
	}
}

func TestNumericBounds(t *testing.T) {
	type in struct {
		Price float64 `json:"price" validate:"required,gte=0,lte=500"`
	}
	if errs := validate.Struct(in{Price: -1}); !validate.HasErrors(errs) {
		t.Error("expected negative price to fail")
	}
	if errs := validate.Struct(in{Price: 45}); validate.HasErrors(errs) {
		t.Errorf("expected price 45 to pass, got: %v", errs)
	}
}

func TestMaxLengthCountsRunes(t *testing.T) {
	type in struct {
		Name string `json:"name" validate:"required,max=5"`
	}
	// 5 runes but more than 5 bytes — must pass.
	if errs := validate.Struct(in{Name: "gâtée"}); validate.HasErrors(errs) {
		t.Errorf("expected 5-rune name to pass, got: %v", errs)
	}
	if errs := validate.Struct(in{Name: "gâteaux"}); !validate.HasErrors(errs) {
		t.Error("expected 7-rune name to fail max=5")
	}
}

func TestNullableSkipsRules(t *testing.T) {
	type in struct {
		Website string `json:"website" validate:"nullable,url"`
	}
	// Empty string — nullable, should pass even though it's not a URL
	if errs := validate.Struct(in{Website: ""}); validate.HasErrors(errs) {
		t.Errorf("expected empty nullable to pass: %v", errs)
	}
	// Non-empty but invalid URL — should fail
	if errs := validate.Struct(in{Website: "not-a-url"}); !validate.HasErrors(errs) {
		t.Error("expected invalid URL to fail")
	}
}

func TestInParamFollowedByAnotherRule(t *testing.T) {
	type in struct {
		Status string `json:"status" validate:"required,in=pending,confirmed,ready,completed,cancelled,max=20"`
	}
	if errs := validate.Struct(in{Status: "pending"}); validate.HasErrors(errs) {
		t.Errorf("expected pending to pass: %v", errs)
	}
	if errs := validate.Struct(in{Status: "shipped"}); !validate.HasErrors(errs) {
		t.Error("expected shipped to fail the in rule")
	}
}
