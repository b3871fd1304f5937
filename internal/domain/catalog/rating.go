package catalog

import (
	"cmp"
	"slices"

	"cheeserater/internal/domain/entity"
)

// RatingSummary is the derived rating data for one cheese.
type RatingSummary struct {
	Average float64 `json:"averageRating"`
	Count   int     `json:"reviewCount"`
}

// AverageRating returns the mean rating of the cheese, or 0 when it has no reviews.
func AverageRating(cheeseID string, reviews []entity.Review) float64 {
	return Summarize(cheeseID, reviews).Average
}

// ReviewCount returns the number of reviews for the cheese.
func ReviewCount(cheeseID string, reviews []entity.Review) int {
	count := 0
	for i := range reviews {
		if reviews[i].CheeseID == cheeseID {
			count++
		}
	}

	return count
}

// Summarize computes average and count in a single pass.
func Summarize(cheeseID string, reviews []entity.Review) RatingSummary {
	sum, count := 0, 0
	for i := range reviews {
		if reviews[i].CheeseID == cheeseID {
			sum += reviews[i].Rating
			count++
		}
	}
	if count == 0 {
		return RatingSummary{}
	}

	return RatingSummary{Average: float64(sum) / float64(count), Count: count}
}

// FindUserReview returns the user's review of the cheese, if any.
func FindUserReview(cheeseID, userID string, reviews []entity.Review) (*entity.Review, bool) {
	for i := range reviews {
		if reviews[i].CheeseID == cheeseID && reviews[i].UserID == userID {
			r := reviews[i]

			return &r, true
		}
	}

	return nil, false
}

// ReviewsFor returns the cheese's reviews, newest first.
func ReviewsFor(cheeseID string, reviews []entity.Review) []entity.Review {
	out := make([]entity.Review, 0)
	for i := range reviews {
		if reviews[i].CheeseID == cheeseID {
			out = append(out, reviews[i])
		}
	}
	slices.SortStableFunc(out, func(a, b entity.Review) int {
		return cmp.Compare(b.CreatedAt, a.CreatedAt)
	})

	return out
}

// Summaries indexes the rating summary of every reviewed cheese.
func Summaries(reviews []entity.Review) map[string]RatingSummary {
	sums := make(map[string]int)
	counts := make(map[string]int)
	for i := range reviews {
		sums[reviews[i].CheeseID] += reviews[i].Rating
		counts[reviews[i].CheeseID]++
	}

	out := make(map[string]RatingSummary, len(sums))
	for id, sum := range sums {
		out[id] = RatingSummary{Average: float64(sum) / float64(counts[id]), Count: counts[id]}
	}

	return out
}
