package match

//go:generate go tool stringer -type=Outcome -trimprefix=Outcome -output=outcome_string.go

// Outcome says how a query was answered.
type Outcome int

const (
	_ Outcome = iota // zero value is not a valid outcome

	// OutcomeMatched means the closest question was within the threshold.
	OutcomeMatched
	// OutcomeFallback means the closest question was too far away.
	OutcomeFallback
	// OutcomeEmptyCorpus means there was no question to compare against.
	OutcomeEmptyCorpus
)

// MarshalText encodes the outcome by name.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}
