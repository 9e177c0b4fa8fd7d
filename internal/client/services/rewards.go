package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/ecorewards/internal/client/catalog"
	"github.com/dmitrijs2005/ecorewards/internal/client/models"
	"github.com/dmitrijs2005/ecorewards/internal/common"
	"github.com/dmitrijs2005/ecorewards/internal/logging"
)

var (
	ErrRewardNotFound     = fmt.Errorf("reward %w", common.ErrorNotFound)
	ErrInsufficientPoints = errors.New("insufficient points")
)

// PointsLedger is the part of the ledger redemption needs.
type PointsLedger interface {
	CanAfford(cost int) bool
	RedeemReward(ctx context.Context, cost int)
}

type RewardService struct {
	ledger PointsLedger
	logger logging.Logger
}

func NewRewardService(l PointsLedger, logger logging.Logger) *RewardService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &RewardService{ledger: l, logger: logger.With("module", "rewards")}
}

// List returns the catalog filtered by category; "" means all.
func (s *RewardService) List(category models.RewardCategory) []models.Reward {
	if category == "" {
		category = models.RewardCategoryAll
	}
	return catalog.Rewards(category)
}

// Redeem spends the reward's points. Unknown ids and unaffordable rewards are
// rejected before the ledger is touched.
func (s *RewardService) Redeem(ctx context.Context, id int) (models.Reward, error) {
	r, ok := catalog.RewardByID(id)
	if !ok {
		return models.Reward{}, ErrRewardNotFound
	}
	if !s.ledger.CanAfford(r.Points) {
		return r, ErrInsufficientPoints
	}

	s.ledger.RedeemReward(ctx, r.Points)
	s.logger.Info(ctx, "reward redeemed", "reward", r.Name, "cost", r.Points)
	return r, nil
}
