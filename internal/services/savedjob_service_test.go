package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobflix/jobflix-backend/internal/apperr"
	"github.com/jobflix/jobflix-backend/internal/models"
)

func TestSaveJob(t *testing.T) {
	db := newTestDB(t)
	svc := NewSavedJobService(db, testLog())
	owner := seedUser(t, db, models.RoleEmployer)
	job := seedJob(t, db, seedCompany(t, db, owner))
	seeker := seedUser(t, db, models.RoleJobSeeker)

	saved, err := svc.Save(context.Background(), seeker.ID, job.ID, "looks good", []string{"backend"})
	require.NoError(t, err)
	assert.Equal(t, job.ID, saved.JobID)
	assert.Equal(t, "looks good", saved.Notes)

	_, err = svc.Save(context.Background(), seeker.ID, job.ID, "", nil)
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeDuplicateSave))
}

func TestSaveJobUnknownOrExpired(t *testing.T) {
	db := newTestDB(t)
	svc := NewSavedJobService(db, testLog())
	owner := seedUser(t, db, models.RoleEmployer)
	company := seedCompany(t, db, owner)
	gone := seedJob(t, db, company, expired)
	seeker := seedUser(t, db, models.RoleJobSeeker)

	_, err := svc.Save(context.Background(), seeker.ID, gone.ID, "", nil)
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeJobNotFound))
}

func TestUnsave(t *testing.T) {
	db := newTestDB(t)
	svc := NewSavedJobService(db, testLog())
	owner := seedUser(t, db, models.RoleEmployer)
	job := seedJob(t, db, seedCompany(t, db, owner))
	seeker := seedUser(t, db, models.RoleJobSeeker)

	_, err := svc.Save(context.Background(), seeker.ID, job.ID, "", nil)
	require.NoError(t, err)
	require.NoError(t, svc.Unsave(context.Background(), seeker.ID, job.ID))

	err = svc.Unsave(context.Background(), seeker.ID, job.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))

	// Unsaving frees the slot for a fresh save.
	_, err = svc.Save(context.Background(), seeker.ID, job.ID, "", nil)
	require.NoError(t, err)
}

func TestListSavedJobsIsPerUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewSavedJobService(db, testLog())
	owner := seedUser(t, db, models.RoleEmployer)
	company := seedCompany(t, db, owner)
	job1 := seedJob(t, db, company)
	job2 := seedJob(t, db, company)
	alice := seedUser(t, db, models.RoleJobSeeker)
	bob := seedUser(t, db, models.RoleJobSeeker)

	_, err := svc.Save(context.Background(), alice.ID, job1.ID, "", nil)
	require.NoError(t, err)
	_, err = svc.Save(context.Background(), alice.ID, job2.ID, "", nil)
	require.NoError(t, err)
	_, err = svc.Save(context.Background(), bob.ID, job1.ID, "", nil)
	require.NoError(t, err)

	mine, err := svc.List(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	theirs, err := svc.List(context.Background(), bob.ID)
	require.NoError(t, err)
	assert.Len(t, theirs, 1)
}
