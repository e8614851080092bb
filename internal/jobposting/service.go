package jobposting

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/jobportal/jobportal/internal/account"
	"github.com/jobportal/jobportal/internal/platform/cache"
)

// Service wraps job posting business rules. Keyword listings are the hot
// path, so they run through the versioned redis cache with singleflight
// guarding concurrent misses.
type Service struct {
	repo  Repository
	cache *cache.Cache

	listGroup singleflight.Group
}

// NewService constructs a new Service. cache may be nil, which disables
// read-side caching.
func NewService(repo Repository, c *cache.Cache) *Service {
	return &Service{repo: repo, cache: c}
}

// Post publishes an opening and invalidates cached listings.
func (s *Service) Post(ctx context.Context, req PostJobRequest, createdBy string) (*Job, error) {
	job := &Job{
		ID:              uuid.NewString(),
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    account.SplitSkills(req.Requirements),
		Salary:          req.Salary,
		ExperienceLevel: req.ExperienceLevel,
		Location:        req.Location,
		JobType:         req.JobType,
		Positions:       req.Positions,
		Company:         req.Company,
		CreatedBy:       createdBy,
	}
	if err := s.repo.Create(ctx, job); err != nil {
		return nil, err
	}
	_ = s.cache.Invalidate(ctx)
	return job, nil
}

// List returns postings matching the keyword, served from cache when warm.
func (s *Service) List(ctx context.Context, keyword string) ([]Job, error) {
	key, err := s.cache.BuildKey(ctx, "list", keyword)
	if err != nil {
		// Degrade to the repository when the cache is unreachable.
		return s.repo.List(ctx, keyword)
	}

	result := s.listGroup.DoChan(key, func() (any, error) {
		var jobs []Job
		err := s.cache.FetchJSON(ctx, key, &jobs, func(ctx context.Context) (any, error) {
			return s.repo.List(ctx, keyword)
		})
		return jobs, err
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-result:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]Job), nil
	}
}

// Get fetches one posting.
func (s *Service) Get(ctx context.Context, id string) (*Job, error) {
	return s.repo.Get(ctx, id)
}

// ListByCreator returns the authenticated user's postings, uncached: the
// owner expects to see a fresh list right after posting.
func (s *Service) ListByCreator(ctx context.Context, userID string) ([]Job, error) {
	return s.repo.ListByCreator(ctx, userID)
}
