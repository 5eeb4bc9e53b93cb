package lleenv

import "github.com/samuelfneumann/lle/event"

// Reward weights matching original_source/src/reward/mod.rs's constants
// exactly, so TeamReward reproduces the conventional LLE scalar reward.
const (
	RewardGemCollected float64 = 1
	RewardAgentDied    float64 = -1
	RewardAgentArrived float64 = 1
	RewardEndGame      float64 = 1
)

// TeamReward folds one step's events into the conventional LLE scalar
// reward: if any agent died this step, the reward is capped at the
// number of deaths (negated) regardless of any gems collected or exits
// reached in the same step; otherwise +1 per gem, +1 per arrival, plus
// +1 more if every agent has now arrived (episode end bonus). Ported
// from original_source/src/reward/team_reward.rs's RewardCollector
// impl, collapsed from its Cell-based accumulator (built to survive
// interior mutability across a whole episode) into a pure per-step fold
// since Go callers hold their own episode-scoped accumulator, if any.
func TeamReward(events []event.Event, nAgents, agentsArrivedSoFar int) float64 {
	nDead := 0
	for _, e := range events {
		if e.Kind == event.AgentDied {
			nDead++
		}
	}
	if nDead > 0 {
		return -float64(nDead)
	}

	reward := 0.0
	arrived := agentsArrivedSoFar
	for _, e := range events {
		switch e.Kind {
		case event.GemCollected:
			reward += RewardGemCollected
		case event.AgentExit:
			arrived++
			reward += RewardAgentArrived
			if arrived == nAgents {
				reward += RewardEndGame
			}
		}
	}
	return reward
}
