package ast

import (
	"errors"
	"fmt"
)

// ErrConsistency reports a node outside the closed schema.  It signals
// a programming defect rather than bad input.
var ErrConsistency = errors.New("ast consistency error")

type ConsistencyError struct {
	Node   Node
	Type   Type
	Reason string
}

func (e *ConsistencyError) Error() string {
	switch {
	case e.Node != nil:
		return fmt.Sprintf("%s: %T: %s", ErrConsistency, e.Node, e.Reason)
	case e.Type != NoType:
		return fmt.Sprintf("%s: type %d: %s", ErrConsistency, int(e.Type), e.Reason)
	default:
		return fmt.Sprintf("%s: %s", ErrConsistency, e.Reason)
	}
}

func (e *ConsistencyError) Unwrap() error {
	return ErrConsistency
}
