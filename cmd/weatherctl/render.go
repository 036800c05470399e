package main

import (
	"github.com/fatih/color"

	"github.com/yanqian/weather-assistant/internal/domain/assistant"
	"github.com/yanqian/weather-assistant/internal/domain/suitability"
)

var (
	labelColor  = color.New(color.Bold)
	promptColor = color.New(color.FgCyan, color.Bold)
	mutedColor  = color.New(color.FgHiBlack)
)

func tierColor(t suitability.Tier) *color.Color {
	switch t {
	case suitability.TierExcellent:
		return color.New(color.FgGreen, color.Bold)
	case suitability.TierGood:
		return color.New(color.FgGreen)
	case suitability.TierModerate:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

func impactColor(i suitability.Impact) *color.Color {
	return tierColor(suitability.Tier(i))
}

func replyColor(t assistant.ResponseType) *color.Color {
	switch t {
	case assistant.ResponseError:
		return color.New(color.FgRed)
	case assistant.ResponseSmallTalk:
		return color.New(color.FgMagenta)
	default:
		return color.New(color.Reset)
	}
}
