package service

import (
	"context"

	"affiliate_portal/internal/model"
)

var guideCatalog = []model.Guide{
	{ID: 1, Title: "Domain Mastery 101", Description: "How to choose, register & optimize domains for maximum profit", Level: 1},
	{ID: 2, Title: "AI-Powered Landing Pages", Description: "Create high-converting landing pages with AI", Level: 1},
	{ID: 3, Title: "Affiliate Marketing Secrets", Description: "Unlock the secrets to successful affiliate marketing", Level: 2},
	{ID: 4, Title: "Advanced Traffic Strategies", Description: "Drive massive traffic to your offers", Level: 3},
	{ID: 5, Title: "Empire Building", Description: "Scale your business to the next level", Level: 4},
}

// TrainingGuides returns the guide catalog. Every guide is unlocked
// regardless of package level; the level tag is informational only.
func (s *AccountService) TrainingGuides(ctx context.Context) []model.Guide {
	guides := make([]model.Guide, len(guideCatalog))
	copy(guides, guideCatalog)
	return guides
}
