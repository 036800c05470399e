package suitability

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/weather-assistant/internal/domain/weather"
)

func TestScoreCricketScenario(t *testing.T) {
	scorer := NewScorer()
	verdict := scorer.Score(weather.Snapshot{Temperature: 28, WindSpeed: 10, Precipitation: 0, Humidity: 50}, "cricket")

	require.Equal(t, "cricket", verdict.Activity)
	require.Equal(t, 100, verdict.Score)
	require.Equal(t, TierExcellent, verdict.Recommendation)
	require.Equal(t, 100, verdict.Confidence)
	require.True(t, verdict.Suitable)
	require.Empty(t, verdict.Reason)

	names := make([]string, 0, len(verdict.Factors))
	for _, f := range verdict.Factors {
		names = append(names, f.Name)
	}
	require.Equal(t, []string{"temperature", "wind", "precipitation", "humidity"}, names)
	require.Equal(t, "28.0°C", verdict.Factors[0].Value)
	require.Equal(t, "50%", verdict.Factors[3].Value)
}

func TestScoreMidpointIsExcellentForEveryProfile(t *testing.T) {
	scorer := NewScorer()
	for _, profile := range Catalog() {
		snap := weather.Snapshot{
			Temperature: (profile.OptimalMin + profile.OptimalMax) / 2,
			Humidity:    50,
		}
		verdict := scorer.ScoreProfile(snap, profile)
		require.Equal(t, TierExcellent, verdict.Recommendation, profile.Name)
		require.True(t, verdict.Suitable, profile.Name)
	}
}

func TestScorePrecipitationLowersTier(t *testing.T) {
	scorer := NewScorer()
	for _, profile := range Catalog() {
		dry := weather.Snapshot{Temperature: (profile.OptimalMin + profile.OptimalMax) / 2, Humidity: 50}
		wet := dry
		wet.Precipitation = profile.PrecipitationTolerance + 0.1

		dryVerdict := scorer.ScoreProfile(dry, profile)
		wetVerdict := scorer.ScoreProfile(wet, profile)
		require.Less(t, wetVerdict.Recommendation.Rank(), dryVerdict.Recommendation.Rank(), profile.Name)
		require.Equal(t, ImpactPoor, wetVerdict.Factors[2].Impact)
		require.Equal(t, 20, wetVerdict.Factors[2].Score)
	}
}

func TestScoreTemperatureBands(t *testing.T) {
	profile, ok := Lookup("cycling")
	require.True(t, ok)
	scorer := NewScorer()

	tests := []struct {
		name   string
		temp   float64
		impact Impact
		score  int
	}{
		{name: "inside range", temp: 20, impact: ImpactExcellent, score: 100},
		{name: "lower buffer", temp: 6, impact: ImpactModerate, score: 85},
		{name: "upper buffer edge", temp: 30, impact: ImpactModerate, score: 85},
		{name: "far below", temp: 4.9, impact: ImpactPoor, score: 60},
		{name: "far above", temp: 31, impact: ImpactPoor, score: 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := scorer.ScoreProfile(weather.Snapshot{Temperature: tt.temp, Humidity: 50}, profile)
			require.Equal(t, tt.impact, verdict.Factors[0].Impact)
			require.Equal(t, tt.score, verdict.Score)
		})
	}
}

func TestScoreHumidityPreferences(t *testing.T) {
	scorer := NewScorer()
	running, _ := Lookup("running")
	cricket, _ := Lookup("cricket")
	walking, _ := Lookup("walking")

	humid := weather.Snapshot{Temperature: 12, Humidity: 75}
	require.Equal(t, ImpactModerate, scorer.ScoreProfile(humid, running).Factors[3].Impact)
	require.Equal(t, 90, scorer.ScoreProfile(humid, running).Score)

	dry := weather.Snapshot{Temperature: 25, Humidity: 20}
	require.Equal(t, 70, scorer.ScoreProfile(dry, cricket).Factors[3].Score)
	require.Equal(t, ImpactGood, scorer.ScoreProfile(weather.Snapshot{Temperature: 20, Humidity: 99}, walking).Factors[3].Impact)
}

func TestScoreNegativeScoreClampsConfidence(t *testing.T) {
	scorer := NewScorer()
	picnic, _ := Lookup("picnic")
	verdict := scorer.ScoreProfile(weather.Snapshot{Temperature: -5, WindSpeed: 20, Precipitation: 8, Humidity: 95}, picnic)

	require.Equal(t, 100-40-25-50-10, verdict.Score)
	require.Equal(t, 0, verdict.Confidence)
	require.Equal(t, TierPoor, verdict.Recommendation)
	require.False(t, verdict.Suitable)
}

func TestScoreIsIdempotent(t *testing.T) {
	scorer := NewScorer()
	snap := weather.Snapshot{Temperature: 31, WindSpeed: 9, Precipitation: 0.2, Humidity: 81}
	require.Equal(t, scorer.Score(snap, "football"), scorer.Score(snap, "football"))
}

func TestScoreUnknownActivity(t *testing.T) {
	verdict := NewScorer().Score(weather.Snapshot{Temperature: 20}, "curling")
	require.False(t, verdict.Suitable)
	require.Equal(t, ReasonUnrecognized, verdict.Reason)
	require.Equal(t, TierPoor, verdict.Recommendation)
}

func TestTierForIsMonotonic(t *testing.T) {
	prev := TierFor(-200).Rank()
	for score := -199; score <= 100; score++ {
		rank := TierFor(score).Rank()
		require.GreaterOrEqual(t, rank, prev)
		prev = rank
	}
	require.Equal(t, TierGood, TierFor(70))
	require.Equal(t, TierModerate, TierFor(50))
	require.Equal(t, TierPoor, TierFor(49))
}
