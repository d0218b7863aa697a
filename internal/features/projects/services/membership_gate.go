package projects_services

import (
	"fmt"
	"time"

	projects_models "matchme/internal/features/projects/models"
	time_utils "matchme/internal/util/time"

	"github.com/google/uuid"
)

const nextAvailableDateLayout = "January 2, 2006"

type DeletionDecision struct {
	Allowed         bool   `json:"allowed"`
	Reason          string `json:"reason,omitempty"`
	BlockingMembers int    `json:"blockingMembers"`
}

// EvaluateProjectDeletion blocks deletion while any active member other than
// the requester exists. The requester's own row never counts.
func EvaluateProjectDeletion(
	members []*projects_models.ProjectTeamMember,
	requesterID uuid.UUID,
) DeletionDecision {
	blocking := 0
	for _, member := range members {
		if member.IsActive && member.UserID != requesterID {
			blocking++
		}
	}

	if blocking == 0 {
		return DeletionDecision{Allowed: true}
	}

	return DeletionDecision{
		Allowed:         false,
		Reason:          fmt.Sprintf("remove the %d other active team member(s) before deleting the project", blocking),
		BlockingMembers: blocking,
	}
}

type SlugChangeDecision struct {
	CanChange                  bool       `json:"canChange"`
	NextAvailableDate          *time.Time `json:"nextAvailableDate,omitempty"`
	NextAvailableDateFormatted string     `json:"nextAvailableDateFormatted,omitempty"`
}

// SlugChangePolicy allows one slug change per CooldownMonths calendar months.
type SlugChangePolicy struct {
	CooldownMonths int
}

func (p SlugChangePolicy) Evaluate(lastChangedAt *time.Time, now time.Time) SlugChangeDecision {
	if lastChangedAt == nil || p.CooldownMonths <= 0 {
		return SlugChangeDecision{CanChange: true}
	}

	nextAvailable := time_utils.AddCalendarMonths(*lastChangedAt, p.CooldownMonths)
	if !now.Before(nextAvailable) {
		return SlugChangeDecision{CanChange: true}
	}

	return SlugChangeDecision{
		CanChange:                  false,
		NextAvailableDate:          &nextAvailable,
		NextAvailableDateFormatted: nextAvailable.Format(nextAvailableDateLayout),
	}
}
