package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/jobflix/jobflix-backend/internal/apperr"
	"github.com/jobflix/jobflix-backend/internal/models"
)

func TestWeightedScorerWorkedExample(t *testing.T) {
	// skills 2/3 ≈ 66.7, experience exact, remote, salary in range, culture 50
	// → 0.40*66.7 + 0.25*100 + 0.15*100 + 0.10*100 + 0.10*50 ≈ 81.7 → 82.
	profile := &models.Profile{
		Skills:          datatypes.NewJSONSlice([]string{"React", "Node"}),
		ExperienceYears: 5,
		DesiredSalary:   100000,
	}
	job := &models.Job{
		Requirements:    datatypes.NewJSONSlice([]string{"React", "Node", "SQL"}),
		ExperienceLevel: models.ExperienceMid,
		IsRemote:        true,
		SalaryMin:       80000,
		SalaryMax:       120000,
	}

	score, err := NewWeightedScorer().ScoreJob(context.Background(), profile, job)
	require.NoError(t, err)
	assert.Equal(t, 82, score)
}

func TestWeightedScorerDeterministic(t *testing.T) {
	profile := &models.Profile{
		Skills:          datatypes.NewJSONSlice([]string{"Go", "SQL", "Docker"}),
		ExperienceYears: 9,
		Location:        "Berlin",
		DesiredSalary:   95000,
	}
	job := &models.Job{
		Requirements:    datatypes.NewJSONSlice([]string{"Go", "Kubernetes"}),
		ExperienceLevel: models.ExperienceSenior,
		Location:        "Munich",
		SalaryMin:       90000,
		SalaryMax:       110000,
	}

	scorer := NewWeightedScorer()
	first, err := scorer.ScoreJob(context.Background(), profile, job)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := scorer.ScoreJob(context.Background(), profile, job)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestWeightedScorerMonotonicInSkillOverlap(t *testing.T) {
	job := &models.Job{
		Requirements:    datatypes.NewJSONSlice([]string{"Go", "SQL", "Redis", "Kafka"}),
		ExperienceLevel: models.ExperienceMid,
		Location:        "Berlin",
		SalaryMin:       80000,
		SalaryMax:       120000,
	}
	scorer := NewWeightedScorer()

	prev := -1
	skills := []string{}
	for _, add := range []string{"Go", "SQL", "Redis", "Kafka"} {
		skills = append(skills, add)
		profile := &models.Profile{
			Skills:          datatypes.NewJSONSlice(skills),
			ExperienceYears: 5,
			Location:        "Berlin",
			DesiredSalary:   100000,
		}
		score, err := scorer.ScoreJob(context.Background(), profile, job)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, score, prev, "adding skill %q lowered the score", add)
		prev = score
	}
}

func TestWeightedScorerSkillMatchingIsCaseInsensitive(t *testing.T) {
	scorer := NewWeightedScorer()
	job := &models.Job{Requirements: datatypes.NewJSONSlice([]string{"go", "sql"})}

	upper, err := scorer.ScoreJob(context.Background(), &models.Profile{
		Skills: datatypes.NewJSONSlice([]string{"GO", " SQL "}),
	}, job)
	require.NoError(t, err)
	lower, err := scorer.ScoreJob(context.Background(), &models.Profile{
		Skills: datatypes.NewJSONSlice([]string{"go", "sql"}),
	}, job)
	require.NoError(t, err)
	assert.Equal(t, lower, upper)
}

func TestWeightedScorerNeutralWhenJobListsNoRequirements(t *testing.T) {
	profile := &models.Profile{
		Skills:          datatypes.NewJSONSlice([]string{"Go"}),
		ExperienceYears: 5,
		DesiredSalary:   100000,
	}
	job := &models.Job{
		ExperienceLevel: models.ExperienceMid,
		IsRemote:        true,
		SalaryMin:       80000,
		SalaryMax:       120000,
	}
	// 0.40*50 + 0.25*100 + 0.15*100 + 0.10*100 + 0.10*50 = 75
	score, err := NewWeightedScorer().ScoreJob(context.Background(), profile, job)
	require.NoError(t, err)
	assert.Equal(t, 75, score)
}

func TestWeightedScorerRejectsEmptyProfile(t *testing.T) {
	_, err := NewWeightedScorer().ScoreJob(context.Background(), &models.Profile{}, &models.Job{})
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeInvalidProfile))
}

func TestMatcherServiceScoreJobForUser(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, models.RoleEmployer)
	company := seedCompany(t, db, owner)
	job := seedJob(t, db, company, func(j *models.Job) {
		j.Requirements = datatypes.NewJSONSlice([]string{"React", "Node", "SQL"})
		j.IsRemote = true
	})
	seeker := seedUser(t, db, models.RoleJobSeeker)
	seedProfile(t, db, seeker, []string{"React", "Node"}, 5)

	matcher := NewMatcherService(db, testLog(), NewWeightedScorer(), nil)
	score, err := matcher.ScoreJobForUser(context.Background(), seeker.ID, job.ID)
	require.NoError(t, err)
	assert.Equal(t, 82, score)
}

func TestMatcherServiceScoreWithoutProfile(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, models.RoleEmployer)
	job := seedJob(t, db, seedCompany(t, db, owner))
	seeker := seedUser(t, db, models.RoleJobSeeker)

	matcher := NewMatcherService(db, testLog(), NewWeightedScorer(), nil)
	_, err := matcher.ScoreJobForUser(context.Background(), seeker.ID, job.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsCode(err, apperr.CodeInvalidProfile))
}

func TestMatcherServiceRankJobs(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, models.RoleEmployer)
	company := seedCompany(t, db, owner)

	strong := seedJob(t, db, company, func(j *models.Job) {
		j.Title = "Strong match"
		j.Requirements = datatypes.NewJSONSlice([]string{"Go", "SQL"})
		j.IsRemote = true
	})
	weak := seedJob(t, db, company, func(j *models.Job) {
		j.Title = "Weak match"
		j.Requirements = datatypes.NewJSONSlice([]string{"Rust", "C++", "Erlang"})
		j.Location = "Tokyo"
	})
	seedJob(t, db, company, func(j *models.Job) {
		j.Title = "Expired, never ranked"
		expired(j)
	})
	seedJob(t, db, company, func(j *models.Job) {
		j.Title = "Closed, never ranked"
		j.Status = models.JobClosed
	})

	seeker := seedUser(t, db, models.RoleJobSeeker)
	seedProfile(t, db, seeker, []string{"Go", "SQL"}, 5)

	matcher := NewMatcherService(db, testLog(), NewWeightedScorer(), nil)
	ranked, err := matcher.RankJobs(context.Background(), seeker.ID)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, strong.ID, ranked[0].Job.ID)
	assert.Equal(t, weak.ID, ranked[1].Job.ID)
	assert.Greater(t, ranked[0].Score, ranked[1].Score)
}

func TestMatcherServiceRankJobsStableOnTies(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, models.RoleEmployer)
	company := seedCompany(t, db, owner)

	// Identical jobs score identically; the earlier listing stays first.
	first := seedJob(t, db, company, func(j *models.Job) { j.Title = "Listed first" })
	second := seedJob(t, db, company, func(j *models.Job) { j.Title = "Listed second" })

	seeker := seedUser(t, db, models.RoleJobSeeker)
	seedProfile(t, db, seeker, []string{"Go"}, 5)

	matcher := NewMatcherService(db, testLog(), NewWeightedScorer(), nil)
	ranked, err := matcher.RankJobs(context.Background(), seeker.ID)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, ranked[0].Score, ranked[1].Score)
	assert.Equal(t, first.ID, ranked[0].Job.ID)
	assert.Equal(t, second.ID, ranked[1].Job.ID)
}
