package experiment

import "errors"

// RolloutError implements errors unique to extracting a path from a
// learned policy.
type RolloutError struct {
	Op  string
	Err error
}

// Error satisifes the error interface
func (e *RolloutError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error
func (e *RolloutError) Unwrap() error {
	return e.Err
}

var errPolicyDivergence = errors.New("policy did not reach a terminal " +
	"state")

var errTableShape = errors.New("table does not match the board")

// IsPolicyDivergence returns whether or not an error reports that the
// greedy policy cycled among non-terminal states.
func IsPolicyDivergence(err error) bool {
	if rolloutErr, ok := err.(*RolloutError); ok {
		err = rolloutErr.Err
	}
	return err == errPolicyDivergence
}

// IsTableShape returns whether or not an error reports that a table
// has the wrong number of states or actions.
func IsTableShape(err error) bool {
	if rolloutErr, ok := err.(*RolloutError); ok {
		err = rolloutErr.Err
	}
	return err == errTableShape
}
