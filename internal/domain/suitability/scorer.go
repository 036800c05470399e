package suitability

import (
	"fmt"

	"github.com/yanqian/weather-assistant/internal/domain/weather"
)

// Tier is a discrete recommendation level.
type Tier string

const (
	TierExcellent Tier = "excellent"
	TierGood      Tier = "good"
	TierModerate  Tier = "moderate"
	TierPoor      Tier = "poor"
)

// Impact is the qualitative effect of one weather factor.
type Impact string

const (
	ImpactExcellent Impact = "excellent"
	ImpactGood      Impact = "good"
	ImpactModerate  Impact = "moderate"
	ImpactPoor      Impact = "poor"
)

// ReasonUnrecognized is set on verdicts for activities outside the catalog.
const ReasonUnrecognized = "activity not recognized"

const (
	temperatureBuffer = 5.0
	suitableThreshold = 50
)

// Factor is the assessment of a single weather dimension.
type Factor struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Impact Impact `json:"impact"`
	Score  int    `json:"score"`
}

// Verdict is the structured suitability judgement for an activity.
type Verdict struct {
	Activity       string   `json:"activity"`
	Score          int      `json:"score"`
	Recommendation Tier     `json:"recommendation"`
	Confidence     int      `json:"confidence"`
	Suitable       bool     `json:"suitable"`
	Factors        []Factor `json:"factors"`
	Reason         string   `json:"reason,omitempty"`
}

// Scorer evaluates weather against activity profiles. It holds no state.
type Scorer struct{}

// NewScorer returns a scorer bound to the static catalog.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score resolves the activity in the catalog and scores it.
func (s *Scorer) Score(snapshot weather.Snapshot, activity string) Verdict {
	profile, ok := Lookup(activity)
	if !ok {
		return Verdict{
			Activity:       activity,
			Recommendation: TierPoor,
			Suitable:       false,
			Factors:        []Factor{},
			Reason:         ReasonUnrecognized,
		}
	}
	return s.ScoreProfile(snapshot, profile)
}

// ScoreProfile applies the cumulative penalty rules. Factor order is
// temperature, wind, precipitation, humidity.
func (s *Scorer) ScoreProfile(snapshot weather.Snapshot, profile Profile) Verdict {
	score := 100
	factors := make([]Factor, 0, 4)

	temp := Factor{Name: "temperature", Value: fmt.Sprintf("%.1f°C", snapshot.Temperature)}
	switch {
	case snapshot.Temperature >= profile.OptimalMin && snapshot.Temperature <= profile.OptimalMax:
		temp.Impact, temp.Score = ImpactExcellent, 100
	case snapshot.Temperature < profile.OptimalMin-temperatureBuffer || snapshot.Temperature > profile.OptimalMax+temperatureBuffer:
		temp.Impact, temp.Score = ImpactPoor, 30
		score -= 40
	default:
		temp.Impact, temp.Score = ImpactModerate, 70
		score -= 15
	}
	factors = append(factors, temp)

	wind := Factor{Name: "wind", Value: fmt.Sprintf("%.1f m/s", snapshot.WindSpeed)}
	if snapshot.WindSpeed <= profile.MaxWind {
		wind.Impact, wind.Score = ImpactGood, 90
	} else {
		wind.Impact, wind.Score = ImpactPoor, 40
		score -= 25
	}
	factors = append(factors, wind)

	precip := Factor{Name: "precipitation", Value: fmt.Sprintf("%.1f mm", snapshot.Precipitation)}
	if snapshot.Precipitation <= profile.PrecipitationTolerance {
		precip.Impact, precip.Score = ImpactExcellent, 100
	} else {
		precip.Impact, precip.Score = ImpactPoor, 20
		score -= 50
	}
	factors = append(factors, precip)

	humidity := Factor{Name: "humidity", Value: fmt.Sprintf("%d%%", snapshot.Humidity), Impact: ImpactGood, Score: 85}
	if humidityPenalised(profile.HumidityPreference, snapshot.Humidity) {
		humidity.Impact, humidity.Score = ImpactModerate, 70
		score -= 10
	}
	factors = append(factors, humidity)

	return Verdict{
		Activity:       profile.Name,
		Score:          score,
		Recommendation: TierFor(score),
		Confidence:     clamp(score, 0, 100),
		Suitable:       score >= suitableThreshold,
		Factors:        factors,
	}
}

// TierFor maps a score onto a tier; it is monotonic in score.
func TierFor(score int) Tier {
	switch {
	case score >= 85:
		return TierExcellent
	case score >= 70:
		return TierGood
	case score >= 50:
		return TierModerate
	default:
		return TierPoor
	}
}

// Rank orders tiers from poor (0) to excellent (3).
func (t Tier) Rank() int {
	switch t {
	case TierExcellent:
		return 3
	case TierGood:
		return 2
	case TierModerate:
		return 1
	default:
		return 0
	}
}

func humidityPenalised(pref HumidityPreference, humidity int) bool {
	switch pref {
	case HumidityLow:
		return humidity > 70
	case HumidityModerate:
		return humidity > 80 || humidity < 30
	default:
		return false
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
