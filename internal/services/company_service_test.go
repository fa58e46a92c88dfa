package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobflix/jobflix-backend/internal/apperr"
	"github.com/jobflix/jobflix-backend/internal/dtos"
	"github.com/jobflix/jobflix-backend/internal/models"
)

func TestCompanyCreate(t *testing.T) {
	db := newTestDB(t)
	svc := NewCompanyService(db, testLog())
	owner := seedUser(t, db, models.RoleEmployer)

	company, err := svc.Create(context.Background(), owner.ID, &dtos.CompanyCreationRequest{
		Name: "Acme", Slug: "acme", Industry: "Software",
	})
	require.NoError(t, err)
	assert.Equal(t, owner.ID, company.OwnerUserID)

	_, err = svc.Create(context.Background(), owner.ID, &dtos.CompanyCreationRequest{
		Name: "Acme Clone", Slug: "acme",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeDuplicateSlug))
}

func TestCompanyGetBySlug(t *testing.T) {
	db := newTestDB(t)
	svc := NewCompanyService(db, testLog())
	owner := seedUser(t, db, models.RoleEmployer)
	company := seedCompany(t, db, owner)
	seedJob(t, db, company)

	got, err := svc.GetBySlug(context.Background(), company.Slug)
	require.NoError(t, err)
	assert.Len(t, got.Jobs, 1)

	_, err = svc.GetBySlug(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeNotFound))
}
