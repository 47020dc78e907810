package report

import (
	"synapse-go/internal/extractor"
	"synapse-go/internal/types"
)

// Static reference scores. They are fixed baselines, not statistics computed
// from past sessions.
const (
	AverageScore      = 7.2
	TopPerformerScore = 8.8

	midScore   = 8.0 // halfway between average and top
	lowerScore = 6.0 // average minus 1.2
)

// Percentile buckets score against the static baselines.
func Percentile(score float64) int {
	switch {
	case score >= TopPerformerScore:
		return 95
	case score >= midScore:
		return 80
	case score >= AverageScore:
		return 60
	case score >= lowerScore:
		return 40
	default:
		return 20
	}
}

func Benchmark(score float64) types.BenchmarkComparison {
	return types.BenchmarkComparison{
		YourScore:     extractor.Round2(score),
		AverageScore:  AverageScore,
		TopPerformers: TopPerformerScore,
		Percentile:    Percentile(score),
	}
}

// Level maps an overall score to its band.
func Level(score float64) types.ScoreLevel {
	switch {
	case score >= 9:
		return types.LevelExcellent
	case score >= 7.5:
		return types.LevelGood
	case score >= 6:
		return types.LevelSatisfactory
	default:
		return types.LevelNeedsImprovement
	}
}
