package fetch

// Strategy decides what a caller receives once every attempt has failed.
type Strategy int

const (
	// StrategyThrow returns the typed error.
	StrategyThrow Strategy = iota
	// StrategyErrorObject returns a {"error": message} payload and no error.
	StrategyErrorObject
	// StrategyUndefined logs the failure and returns an empty payload and no error.
	StrategyUndefined
)

func (s Strategy) String() string {
	switch s {
	case StrategyErrorObject:
		return "error_object"
	case StrategyUndefined:
		return "undefined"
	default:
		return "throw"
	}
}

// Request describes one upstream resource and how to treat it.
type Request struct {
	Locator   string
	Class     DurationClass
	OnFailure Strategy
}
