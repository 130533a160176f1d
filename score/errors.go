package score

import "errors"

var (
	// ErrNoScore indicates the rule finished without assigning score.
	ErrNoScore = errors.New("score: rule did not assign score")
	// ErrNotNumeric indicates score was assigned a non-numeric value.
	ErrNotNumeric = errors.New("score: rule assigned a non-numeric score")
)
