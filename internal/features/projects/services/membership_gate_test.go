package projects_services

import (
	"strings"
	"testing"
	"time"

	projects_models "matchme/internal/features/projects/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func member(userID uuid.UUID, isActive bool) *projects_models.ProjectTeamMember {
	return &projects_models.ProjectTeamMember{ID: uuid.New(), UserID: userID, IsActive: isActive}
}

func Test_EvaluateProjectDeletion_WithNoMembers_Allows(t *testing.T) {
	decision := EvaluateProjectDeletion(nil, uuid.New())

	assert.True(t, decision.Allowed)
	assert.Empty(t, decision.Reason)
}

func Test_EvaluateProjectDeletion_WithOnlyRequesterActive_Allows(t *testing.T) {
	requester := uuid.New()

	decision := EvaluateProjectDeletion([]*projects_models.ProjectTeamMember{member(requester, true)}, requester)

	assert.True(t, decision.Allowed)
}

func Test_EvaluateProjectDeletion_WithOnlyInactiveOthers_Allows(t *testing.T) {
	requester := uuid.New()

	decision := EvaluateProjectDeletion([]*projects_models.ProjectTeamMember{
		member(uuid.New(), false),
		member(uuid.New(), false),
	}, requester)

	assert.True(t, decision.Allowed)
}

func Test_EvaluateProjectDeletion_WithActiveOther_Blocks(t *testing.T) {
	requester := uuid.New()

	decision := EvaluateProjectDeletion([]*projects_models.ProjectTeamMember{
		member(requester, true),
		member(uuid.New(), true),
		member(uuid.New(), false),
	}, requester)

	assert.False(t, decision.Allowed)
	assert.Equal(t, 1, decision.BlockingMembers)
	assert.NotEmpty(t, decision.Reason)
}

func Test_SlugChangePolicy_WithoutPreviousChange_Allows(t *testing.T) {
	decision := SlugChangePolicy{CooldownMonths: 1}.Evaluate(nil, time.Now())

	assert.True(t, decision.CanChange)
	assert.Nil(t, decision.NextAvailableDate)
}

func Test_SlugChangePolicy_WithinCooldown_ReturnsNextDateOneMonthLater(t *testing.T) {
	changedAt := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	now := changedAt.Add(5 * 24 * time.Hour)

	decision := SlugChangePolicy{CooldownMonths: 1}.Evaluate(&changedAt, now)

	assert.False(t, decision.CanChange)
	expected := time.Date(2024, time.April, 10, 12, 0, 0, 0, time.UTC)
	assert.True(t, expected.Equal(*decision.NextAvailableDate))
	assert.Equal(t, "April 10, 2024", decision.NextAvailableDateFormatted)
}

func Test_SlugChangePolicy_UsesCalendarMonthsNotThirtyDays(t *testing.T) {
	changedAt := time.Date(2023, time.January, 31, 9, 0, 0, 0, time.UTC)
	policy := SlugChangePolicy{CooldownMonths: 1}

	// 30 days later is still inside the calendar month window
	decision := policy.Evaluate(&changedAt, changedAt.Add(30*24*time.Hour))
	assert.False(t, decision.CanChange)
	assert.Equal(t, "March 3, 2023", decision.NextAvailableDateFormatted)

	decision = policy.Evaluate(&changedAt, time.Date(2023, time.March, 3, 9, 0, 0, 0, time.UTC))
	assert.True(t, decision.CanChange)
}

func Test_SlugChangePolicy_AfterCooldown_Allows(t *testing.T) {
	changedAt := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	decision := SlugChangePolicy{CooldownMonths: 1}.Evaluate(&changedAt, changedAt.AddDate(0, 2, 0))

	assert.True(t, decision.CanChange)
}

func Test_ValidateSlug_RejectsBadFormats(t *testing.T) {
	assert.NoError(t, ValidateSlug("abc"))
	assert.NoError(t, ValidateSlug("my-cool-project-2"))

	assert.Error(t, ValidateSlug("ab"))
	assert.Error(t, ValidateSlug("-abc"))
	assert.Error(t, ValidateSlug("abc-"))
	assert.Error(t, ValidateSlug("ab_c"))
	assert.Error(t, ValidateSlug("Abc"))
	assert.Error(t, ValidateSlug(strings.Repeat("a", 51)))
}
