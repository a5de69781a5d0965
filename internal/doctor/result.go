// Package doctor runs environment diagnostics for the scanner setup.
package doctor

// Status classifies a check outcome.
type Status int

const (
	// StatusOK means the check passed.
	StatusOK Status = iota
	// StatusWarn means the check found something worth fixing but not fatal.
	StatusWarn
	// StatusFail means the check found a problem that blocks the scanner.
	StatusFail
)

// Result is a single diagnostic finding.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}
