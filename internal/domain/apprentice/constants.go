package apprentice

// Board columns. Set by a human action on the evaluation board, never derived
// from cycle or score.
const (
	StatusNotEvaluated = "not_evaluated"
	StatusDismiss      = "dismiss"
	StatusRecover      = "recover"
	StatusFit          = "fit"
)

func ValidStatus(status string) bool {
	switch status {
	case StatusNotEvaluated, StatusDismiss, StatusRecover, StatusFit:
		return true
	}
	return false
}
