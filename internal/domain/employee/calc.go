package employee

import "strings"

const (
	ComponentAddition = "addition"
	ComponentDiscount = "discount"
)

// PayComponent is a configured bonus or deduction type: a name with a fixed
// amount, selected by name on each employee.
type PayComponent struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Kind   string  `json:"kind"`
	Amount float64 `json:"amount"`
}

// TotalPay is baseSalary plus the configured amount of every selected
// addition. Selected discounts are carried on the record but deliberately not
// subtracted here: no payroll revision ever applied them, and inventing the
// arithmetic would change people's reported pay.
func TotalPay(baseSalary float64, selectedAdditions []string, components []PayComponent) float64 {
	total := baseSalary
	for _, name := range selectedAdditions {
		if component, ok := findComponent(components, ComponentAddition, name); ok {
			total += component.Amount
		}
	}
	return total
}

// DiscountTotal sums the configured amounts of the selected discount types,
// for display only.
func DiscountTotal(selectedDiscounts []string, components []PayComponent) float64 {
	var total float64
	for _, name := range selectedDiscounts {
		if component, ok := findComponent(components, ComponentDiscount, name); ok {
			total += component.Amount
		}
	}
	return total
}

func findComponent(components []PayComponent, kind, name string) (PayComponent, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, component := range components {
		if component.Kind == kind && strings.ToLower(strings.TrimSpace(component.Name)) == needle {
			return component, true
		}
	}
	return PayComponent{}, false
}
