package profile

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerpilot/careerpilot/adapters/persistence"
)

func TestProfile_SaveThenGetReturnsLastSaved(t *testing.T) {
	ctx := context.Background()
	uc := NewProfileUseCase(persistence.NewKVProfileRepo(persistence.NewMemoryStore()))
	userID := uuid.New()

	_, err := uc.ExecuteSaveProfile(ctx, SaveProfileInput{
		UserID:      userID,
		Name:        "Linh",
		CurrentRole: "QA Engineer",
		Skills:      []string{"Selenium"},
	})
	require.NoError(t, err)

	// second save overwrites wholesale, no merge
	_, err = uc.ExecuteSaveProfile(ctx, SaveProfileInput{
		UserID: userID,
		Name:   "Linh",
		Skills: []string{"Go", "Kubernetes"},
	})
	require.NoError(t, err)

	out, err := uc.ExecuteGetProfile(ctx, GetProfileInput{UserID: userID})
	require.NoError(t, err)
	require.NotNil(t, out.Profile)
	assert.Equal(t, []string{"Go", "Kubernetes"}, out.Profile.Skills)
	assert.Empty(t, out.Profile.CurrentRole, "overwrite must not keep fields from the first save")
}

func TestProfile_GetWithoutSaveReturnsNil(t *testing.T) {
	ctx := context.Background()
	uc := NewProfileUseCase(persistence.NewKVProfileRepo(persistence.NewMemoryStore()))

	out, err := uc.ExecuteGetProfile(ctx, GetProfileInput{UserID: uuid.New()})
	require.NoError(t, err)
	assert.Nil(t, out.Profile)
}
