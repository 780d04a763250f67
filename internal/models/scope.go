package models

import "fmt"

// Scope identifies whose span counts a simulation runs over and how far back
// the window reaches.
type Scope struct {
	Organization string `json:"organization"`
	Project      string `json:"project"`
	PeriodDays   int    `json:"periodDays"`
}

func (s Scope) String() string {
	return fmt.Sprintf("%s/%s/%dd", s.Organization, s.Project, s.PeriodDays)
}
