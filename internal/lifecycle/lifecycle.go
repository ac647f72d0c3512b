package lifecycle

// Status values a listing moves through.
const (
	StatusAvailable = "available"
	StatusPending   = "pending"
	StatusSold      = "sold"
	StatusRejected  = "rejected"
)

var transitions = map[string]map[string]struct{}{
	StatusPending: {
		StatusAvailable: {},
		StatusRejected:  {},
	},
	StatusAvailable: {
		StatusPending: {},
		StatusSold:    {},
	},
	StatusSold: {
		StatusAvailable: {},
	},
	StatusRejected: {
		StatusPending: {},
	},
}

// IsStatus reports whether s is a known listing status.
func IsStatus(s string) bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition reports whether a listing may move from one status to
// another. Staying on the same status is always allowed.
func CanTransition(from, to string) bool {
	if from == to {
		return IsStatus(from)
	}
	next, ok := transitions[from]
	if !ok {
		return false
	}
	_, ok = next[to]
	return ok
}

// AdminOnly reports whether moving out of the given status requires the
// admin role. Approval and rejection are admin decisions.
func AdminOnly(from string) bool {
	return from == StatusPending || from == StatusRejected
}
