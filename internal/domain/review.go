package domain

type Comment struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"productId"`
	UserName  string `json:"userName"`
	Rating    int    `json:"rating"` // 1..5
	Comment   string `json:"comment"`
	Date      string `json:"date"`
}

// ReviewSummary aggregates a product's comments. RatingDistribution always
// carries all five buckets, including empty ones.
type ReviewSummary struct {
	AverageRating      float64     `json:"averageRating"` // rounded to 1 decimal
	TotalReviews       int         `json:"totalReviews"`
	RatingDistribution map[int]int `json:"ratingDistribution"`
}
