package attendance

const (
	TypeIn  = "Entrada"
	TypeOut = "Saída"
)

// TypeForCount applies the parity rule: with count prior entries for a person
// on one calendar day, the next entry is Entrada when count is even and Saída
// when odd. The rule is scoped to the date, not a rolling 24h window; a new
// day starts back at Entrada.
func TypeForCount(count int) string {
	if count%2 == 0 {
		return TypeIn
	}
	return TypeOut
}
