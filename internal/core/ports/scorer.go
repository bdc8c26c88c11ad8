package ports

// TextScorer rates how well a candidate matches a user query.
//
//go:generate go run go.uber.org/mock/mockgen -source=scorer.go -destination=mocks/mock_scorer.go -package=mocks
type TextScorer interface {
	// Score returns the relevance of candidate for query. A score of zero or less means no match.
	Score(query, candidate string) int
}
