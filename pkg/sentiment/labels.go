package sentiment

import "github.com/marketmood/moodscope/pkg/domain"

// LabelForScore maps a signed sentiment score to one of the five mood labels.
// The intervals partition the whole real line:
//
//	score <= -0.35           Bearish
//	-0.35 < score <= -0.15   Somewhat-Bearish
//	-0.15 < score <  0.15    Neutral
//	 0.15 <= score <  0.35   Somewhat-Bullish
//	 score >= 0.35           Bullish
//
// Boundary inclusion is exact: -0.35 is Bearish, 0.15 is Somewhat-Bullish.
func LabelForScore(score float64) domain.SentimentLabel {
	switch {
	case score <= -0.35:
		return domain.LabelBearish
	case score <= -0.15:
		return domain.LabelSomewhatBearish
	case score < 0.15:
		return domain.LabelNeutral
	case score < 0.35:
		return domain.LabelSomewhatBullish
	default:
		return domain.LabelBullish
	}
}
