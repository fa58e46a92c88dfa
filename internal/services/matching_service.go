package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/jobflix/jobflix-backend/internal/apperr"
	"github.com/jobflix/jobflix-backend/internal/dtos"
	"github.com/jobflix/jobflix-backend/internal/logger"
	"github.com/jobflix/jobflix-backend/internal/models"
)

// Scorer computes a 0-100 compatibility score between a profile and a job.
// The weighted scorer below is the default; an LLM-backed strategy can be
// plugged in behind the same contract.
type Scorer interface {
	ScoreJob(ctx context.Context, profile *models.Profile, job *models.Job) (int, error)
}

// MatchWeights are the relative shares of each sub-score.
type MatchWeights struct {
	Skills     float64
	Experience float64
	Location   float64
	Salary     float64
	Culture    float64
}

var DefaultMatchWeights = MatchWeights{
	Skills:     0.40,
	Experience: 0.25,
	Location:   0.15,
	Salary:     0.10,
	Culture:    0.10,
}

const neutralScore = 50.0

// WeightedScorer is deterministic: identical inputs always produce the
// identical score.
type WeightedScorer struct {
	weights MatchWeights
}

func NewWeightedScorer() *WeightedScorer {
	return &WeightedScorer{weights: DefaultMatchWeights}
}

func (w *WeightedScorer) ScoreJob(ctx context.Context, profile *models.Profile, job *models.Job) (int, error) {
	if len(profile.Skills) == 0 && profile.ExperienceYears <= 0 {
		return 0, apperr.Validation(apperr.CodeInvalidProfile,
			"profile has no matchable fields: add skills or experience before scoring")
	}

	total := w.weights.Skills*skillOverlapScore(profile.Skills, job.Requirements) +
		w.weights.Experience*experienceFitScore(profile.ExperienceYears, job.ExperienceLevel) +
		w.weights.Location*locationFitScore(profile.Location, job.Location, job.IsRemote) +
		w.weights.Salary*salaryFitScore(profile.DesiredSalary, job.SalaryMin, job.SalaryMax) +
		w.weights.Culture*neutralScore

	score := int(math.Round(total))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score, nil
}

// skillOverlapScore is |skills ∩ requirements| / |requirements| scaled to
// 0-100. A job without listed requirements scores neutral.
func skillOverlapScore(skills []string, requirements []string) float64 {
	if len(requirements) == 0 {
		return neutralScore
	}
	have := make(map[string]bool, len(skills))
	for _, s := range skills {
		have[strings.ToLower(strings.TrimSpace(s))] = true
	}
	matched := 0
	for _, r := range requirements {
		if have[strings.ToLower(strings.TrimSpace(r))] {
			matched++
		}
	}
	return float64(matched) / float64(len(requirements)) * 100
}

var experienceBuckets = map[models.ExperienceLevel]int{
	models.ExperienceEntry:     0,
	models.ExperienceMid:       1,
	models.ExperienceSenior:    2,
	models.ExperienceExecutive: 3,
}

func bucketForYears(years int) int {
	switch {
	case years < 3:
		return 0
	case years < 8:
		return 1
	case years < 15:
		return 2
	default:
		return 3
	}
}

// experienceFitScore is distance-based: exact bucket match 100, one bucket
// off 60, further 20. Jobs that do not declare a level score neutral.
func experienceFitScore(years int, level models.ExperienceLevel) float64 {
	want, ok := experienceBuckets[level]
	if !ok {
		return neutralScore
	}
	diff := bucketForYears(years) - want
	if diff < 0 {
		diff = -diff
	}
	switch diff {
	case 0:
		return 100
	case 1:
		return 60
	default:
		return 20
	}
}

func locationFitScore(profileLocation, jobLocation string, isRemote bool) float64 {
	if isRemote {
		return 100
	}
	if profileLocation != "" && strings.EqualFold(strings.TrimSpace(profileLocation), strings.TrimSpace(jobLocation)) {
		return 100
	}
	return 40
}

// salaryFitScore is 100 inside [min, max] and decays linearly to 0 at 50%
// outside the nearer bound. Missing signals on either side score neutral.
func salaryFitScore(desired, salaryMin, salaryMax int) float64 {
	if desired <= 0 || (salaryMin <= 0 && salaryMax <= 0) {
		return neutralScore
	}
	if salaryMin <= 0 {
		salaryMin = salaryMax
	}
	if salaryMax <= 0 {
		salaryMax = salaryMin
	}
	if desired >= salaryMin && desired <= salaryMax {
		return 100
	}
	if desired < salaryMin {
		span := float64(salaryMin) * 0.5
		if span <= 0 {
			return 0
		}
		return math.Max(0, 100*(1-float64(salaryMin-desired)/span))
	}
	span := float64(salaryMax) * 0.5
	if span <= 0 {
		return 0
	}
	return math.Max(0, 100*(1-float64(desired-salaryMax)/span))
}

// MatcherService resolves profiles and jobs from the store, delegates to the
// configured Scorer and optionally caches results in Redis.
type MatcherService struct {
	DB     *gorm.DB
	log    *logger.Logger
	scorer Scorer
	cache  *redis.Client
}

func NewMatcherService(db *gorm.DB, log *logger.Logger, scorer Scorer, cache *redis.Client) *MatcherService {
	return &MatcherService{
		DB:     db,
		log:    log.With("service", "MatcherService"),
		scorer: scorer,
		cache:  cache,
	}
}

func (s *MatcherService) ScoreJobForUser(ctx context.Context, userID, jobID uuid.UUID) (int, error) {
	var profile models.Profile
	if err := s.DB.WithContext(ctx).First(&profile, "user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, apperr.Validation(apperr.CodeInvalidProfile, "no profile on record for user")
		}
		return 0, err
	}
	var job models.Job
	if err := s.DB.WithContext(ctx).First(&job, "id = ?", jobID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, apperr.NotFound(apperr.CodeJobNotFound, "job %s not found", jobID)
		}
		return 0, err
	}
	return s.score(ctx, &profile, &job)
}

// RankJobs scores every visible job for the user and returns them best
// first. The sort is stable so equal scores keep the jobs' insertion order.
func (s *MatcherService) RankJobs(ctx context.Context, userID uuid.UUID) ([]dtos.RankedJob, error) {
	var profile models.Profile
	if err := s.DB.WithContext(ctx).First(&profile, "user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.Validation(apperr.CodeInvalidProfile, "no profile on record for user")
		}
		return nil, err
	}

	now := time.Now()
	var jobs []models.Job
	if err := s.DB.WithContext(ctx).
		Preload("Company").
		Where("status = ?", models.JobActive).
		Where("expires_at IS NULL OR expires_at > ?", now).
		Order("created_at ASC").
		Find(&jobs).Error; err != nil {
		return nil, err
	}

	ranked := make([]dtos.RankedJob, 0, len(jobs))
	for i := range jobs {
		score, err := s.score(ctx, &profile, &jobs[i])
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, dtos.RankedJob{Job: jobs[i], Score: score})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked, nil
}

func (s *MatcherService) score(ctx context.Context, profile *models.Profile, job *models.Job) (int, error) {
	key := fmt.Sprintf("match:%s:%s:%d:%d",
		profile.ID, job.ID, profile.UpdatedAt.UnixNano(), job.UpdatedAt.UnixNano())
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key).Result(); err == nil {
			if score, convErr := strconv.Atoi(cached); convErr == nil {
				return score, nil
			}
		}
	}
	score, err := s.scorer.ScoreJob(ctx, profile, job)
	if err != nil {
		return 0, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, strconv.Itoa(score), time.Hour).Err(); err != nil {
			s.log.Warn("score cache write failed", "error", err)
		}
	}
	return score, nil
}
