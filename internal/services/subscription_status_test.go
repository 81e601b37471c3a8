package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rugbyanthemzone/anthem-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromCache(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "")
	require.NoError(t, db.Create(&models.UserAccessCache{
		UserID:     user.ID,
		TierCode:   models.TierSuper,
		HasPremium: true,
		HasSuper:   true,
	}).Error)

	svc := NewSubscriptionService(db, NewNotifier(testConfig()))
	status, err := svc.Status(user.ID)
	require.NoError(t, err)

	assert.Equal(t, models.TierSuper, status.Tier)
	assert.True(t, status.HasPremium)
	assert.True(t, status.HasSuper)
	assert.Equal(t, "cache", status.Source)
}

func TestStatusFallsBackToUsersTable(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "")
	premium := models.TierPremium
	require.NoError(t, db.Model(user).Update("tier", &premium).Error)

	svc := NewSubscriptionService(db, NewNotifier(testConfig()))
	status, err := svc.Status(user.ID)
	require.NoError(t, err)

	assert.Equal(t, models.TierPremium, status.Tier)
	assert.True(t, status.HasPremium)
	assert.False(t, status.HasSuper)
	assert.Equal(t, "users", status.Source)
}

func TestStatusDefaultsToFree(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "")

	svc := NewSubscriptionService(db, NewNotifier(testConfig()))
	status, err := svc.Status(user.ID)
	require.NoError(t, err)

	assert.Equal(t, models.TierFree, status.Tier)
	assert.False(t, status.HasPremium)
	assert.False(t, status.HasSuper)
	assert.Equal(t, "users", status.Source)
}

func TestStatusUnknownUser(t *testing.T) {
	db := newTestDB(t)

	svc := NewSubscriptionService(db, NewNotifier(testConfig()))
	_, err := svc.Status(uuid.New())
	assert.Error(t, err)
}
