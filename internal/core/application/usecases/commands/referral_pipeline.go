package commands

import (
	"context"
	"log/slog"

	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

// ReferralRewardPipeline updates the referrer's counters when a referred
// order completes, and grants a reward each time the countdown reaches zero.
//
// The pipeline runs in its own transaction, after the order transition has
// committed. It is invoked at most once per order because completion is a
// terminal state and the status transition guarding it can fire only once.
type ReferralRewardPipeline struct {
	uowFactory      CustomerUoWFactory
	rewardGranter   ports.RewardGranter
	rewardThreshold int
	logger          *slog.Logger
}

// NewReferralRewardPipeline creates the pipeline. rewardThreshold is the
// number of successful referrals required to earn one reward.
func NewReferralRewardPipeline(
	uowFactory CustomerUoWFactory,
	rewardGranter ports.RewardGranter,
	rewardThreshold int,
	logger *slog.Logger,
) (*ReferralRewardPipeline, error) {
	if rewardThreshold <= 0 {
		return nil, errs.NewValueIsInvalidError("rewardThreshold")
	}

	return &ReferralRewardPipeline{
		uowFactory:      uowFactory,
		rewardGranter:   rewardGranter,
		rewardThreshold: rewardThreshold,
		logger:          logger.With("component", "referral_pipeline"),
	}, nil
}

// Run increments the referrer's success count, decrements the reward
// countdown, and grants a reward with a countdown reset when it reaches zero.
// An unknown referral code is not an error for the caller's order; it is
// reported so a stale or mistyped code can be investigated.
func (p *ReferralRewardPipeline) Run(ctx context.Context, referralCode string) error {
	if referralCode == "" {
		return errs.NewValueIsRequiredError("referralCode")
	}

	uow := p.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()

	referrer, err := customerRepo.GetByReferralCode(ctx, referralCode)
	if err != nil {
		return err
	}

	rewardDue := referrer.RecordReferralSuccess()
	if rewardDue {
		if err = referrer.ResetRewardCountdown(p.rewardThreshold); err != nil {
			return err
		}
	}

	if err = customerRepo.UpdateReferralCounters(ctx, referrer); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if rewardDue {
		if err = p.rewardGranter.GrantReward(ctx, referrer); err != nil {
			p.logger.ErrorContext(ctx, "reward delivery failed",
				"referral_code", referralCode, "error", err)
		}

		p.logger.InfoContext(ctx, "referral reward granted",
			"referral_code", referralCode,
			"success_count", referrer.ReferralSuccessCount())
	}

	return nil
}
