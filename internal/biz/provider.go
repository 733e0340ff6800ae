package biz

import (
	"feed-engagement/internal/conf"
	"feed-engagement/internal/domain"

	"github.com/google/wire"
)

// ProviderSet is biz providers.
var ProviderSet = wire.NewSet(
	NewEngagementUsecase,
	NewSyncerUsecase,
	ProvideScoreWeights,
)

// Default scoring weights, applied when configuration leaves them unset.
const (
	defaultReactionWeight = 2.0
	defaultCommentWeight  = 4.0
)

// ProvideScoreWeights builds the injected scoring weights from configuration.
func ProvideScoreWeights(c *conf.Engagement) domain.ScoreWeights {
	w := domain.ScoreWeights{
		Reaction: defaultReactionWeight,
		Comment:  defaultCommentWeight,
	}
	if c != nil {
		if c.ReactionWeight > 0 {
			w.Reaction = c.ReactionWeight
		}
		if c.CommentWeight > 0 {
			w.Comment = c.CommentWeight
		}
	}
	return w
}
