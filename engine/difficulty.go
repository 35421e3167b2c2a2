package engine

import "time"

// Speed returns the forward distance items travel per tick at the given score
//
//	speed = BaseSpeed + floor(score / SpeedScoreStep) * SpeedIncrement
func Speed(t Tuning, score int) float64 {
	if score < 0 {
		score = 0
	}
	return t.BaseSpeed + float64(score/t.SpeedScoreStep)*t.SpeedIncrement
}

// SpawnInterval returns the time between spawns at the given score
//
//	interval = max(MinSpawnInterval, BaseSpawnInterval - floor(score / SpawnScoreStep) * SpawnIntervalStep)
func SpawnInterval(t Tuning, score int) time.Duration {
	if score < 0 {
		score = 0
	}
	interval := t.BaseSpawnInterval - time.Duration(score/t.SpawnScoreStep)*t.SpawnIntervalStep
	if interval < t.MinSpawnInterval {
		return t.MinSpawnInterval
	}
	return interval
}
