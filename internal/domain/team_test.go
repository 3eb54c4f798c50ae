package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMemberIDs(t *testing.T) {
	t.Run("убирает дубликаты и сохраняет порядок", func(t *testing.T) {
		ids, err := NormalizeMemberIDs([]int64{3, 1, 3, 2, 1})
		require.NoError(t, err)
		assert.Equal(t, []int64{3, 1, 2}, ids)
	})

	t.Run("пустой состав - ошибка валидации", func(t *testing.T) {
		_, err := NormalizeMemberIDs(nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrValidation))
	})

	t.Run("некорректный id - ошибка валидации", func(t *testing.T) {
		_, err := NormalizeMemberIDs([]int64{1, 0})
		assert.True(t, errors.Is(err, ErrValidation))
	})
}

func TestValidateTeamName(t *testing.T) {
	name, err := ValidateTeamName("  Backend ")
	require.NoError(t, err)
	assert.Equal(t, "Backend", name)

	_, err = ValidateTeamName("   ")
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestTeam_SortMembers(t *testing.T) {
	team := &Team{Members: []TeamMember{
		{UserID: 3, Name: "Charlie"},
		{UserID: 2, Name: "Alice"},
		{UserID: 1, Name: "Alice"},
		{UserID: 4, Name: "Bob"},
	}}

	team.SortMembers()

	assert.Equal(t, []int64{1, 2, 4, 3}, team.MemberIDs())
	assert.True(t, team.HasMember(4))
	assert.False(t, team.HasMember(5))
}

func TestDomainError_Is(t *testing.T) {
	err := NewValidationError("team must have at least one member")
	assert.True(t, errors.Is(err, ErrValidation))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "team must have at least one member", err.Error())

	wrapped := NewNotFoundError("team 7")
	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.Equal(t, "team 7 not found", wrapped.Error())
}
