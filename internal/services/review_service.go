package services

import (
	"context"
	"math"

	"mercadito/internal/domain"
	"mercadito/internal/repos"
)

type ReviewService struct {
	Comments *repos.CommentRepo
}

func NewReviewService(comments *repos.CommentRepo) *ReviewService {
	return &ReviewService{Comments: comments}
}

func (s *ReviewService) CommentsFor(ctx context.Context, productID any) ([]domain.Comment, error) {
	return s.Comments.ForProduct(ctx, productID)
}

// Summary aggregates a product's ratings. The distribution always carries
// buckets 1..5, not just the observed ones; the average is rounded to one
// decimal.
func (s *ReviewService) Summary(ctx context.Context, productID any) (domain.ReviewSummary, error) {
	comments, err := s.Comments.ForProduct(ctx, productID)
	if err != nil {
		return domain.ReviewSummary{}, err
	}

	dist := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	sum := 0
	for _, c := range comments {
		if c.Rating >= 1 && c.Rating <= 5 {
			dist[c.Rating]++
		}
		sum += c.Rating
	}

	summary := domain.ReviewSummary{
		TotalReviews:       len(comments),
		RatingDistribution: dist,
	}
	if len(comments) > 0 {
		avg := float64(sum) / float64(len(comments))
		summary.AverageRating = math.Round(avg*10) / 10
	}
	return summary, nil
}
