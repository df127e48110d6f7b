package roster

import (
	"github.com/mentorlab/coachdesk/internal/model/coach"
	"github.com/mentorlab/coachdesk/internal/model/session"
)

// Policy is the rule table for coach assignment. It is data, not code: a
// new coach or bracket extends the table instead of adding branches.
type Policy struct {
	// Supportive lists the mentor roles treated as emotional-support work.
	Supportive map[string]bool
	// Nurture maps brackets that get a dedicated supportive coach when the
	// requested role is in the Supportive set.
	Nurture map[session.AgeGroup]coach.Name
	// Fallback is assigned in every remaining case.
	Fallback coach.Name
}

// DefaultPolicy returns the shipped two-bucket assignment table.
func DefaultPolicy() Policy {
	return Policy{
		Supportive: map[string]bool{
			"Motivation Coach":        true,
			"Emotional Support Guide": true,
		},
		Nurture: map[session.AgeGroup]coach.Name{
			session.AgeGroup6to8: coach.NameTara,
		},
		Fallback: coach.NameRavi,
	}
}

// Pick routes a (bracket, mentor role) pair to a coach. Pure and total:
// unrecognized role strings fall through to the fallback rather than erroring.
func (p Policy) Pick(ageGroup session.AgeGroup, mentorRole string) coach.Name {
	if p.Supportive[mentorRole] {
		if name, ok := p.Nurture[ageGroup]; ok {
			return name
		}
	}
	return p.Fallback
}
