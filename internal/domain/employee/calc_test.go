package employee

import "testing"

var testComponents = []PayComponent{
	{Name: "Vale Transporte", Kind: ComponentAddition, Amount: 200},
	{Name: "Insalubridade", Kind: ComponentAddition, Amount: 150},
	{Name: "Adiantamento", Kind: ComponentDiscount, Amount: 100},
}

func TestTotalPay(t *testing.T) {
	total := TotalPay(1500, []string{"Vale Transporte", "Insalubridade"}, testComponents)
	if total != 1850 {
		t.Fatalf("expected 1850, got %v", total)
	}
}

func TestTotalPayIgnoresUnknownAndDiscountNames(t *testing.T) {
	total := TotalPay(1000, []string{"Bônus Fantasma", "Adiantamento"}, testComponents)
	if total != 1000 {
		t.Fatalf("unknown or discount names must not add, got %v", total)
	}
}

func TestTotalPayCaseInsensitive(t *testing.T) {
	total := TotalPay(1000, []string{" vale transporte "}, testComponents)
	if total != 1200 {
		t.Fatalf("expected folded name match, got %v", total)
	}
}

func TestDiscountTotalIsDisplayOnly(t *testing.T) {
	if got := DiscountTotal([]string{"Adiantamento"}, testComponents); got != 100 {
		t.Fatalf("expected 100, got %v", got)
	}
	// and it is never folded into TotalPay
	if got := TotalPay(500, nil, testComponents); got != 500 {
		t.Fatalf("discounts must not affect total, got %v", got)
	}
}
