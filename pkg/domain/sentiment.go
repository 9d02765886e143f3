package domain

// SentimentLabel is one of five ordinal mood labels derived from a
// continuous sentiment score. Wire values match the upstream feed format.
type SentimentLabel string

const (
	LabelBearish         SentimentLabel = "Bearish"
	LabelSomewhatBearish SentimentLabel = "Somewhat-Bearish"
	LabelNeutral         SentimentLabel = "Neutral"
	LabelSomewhatBullish SentimentLabel = "Somewhat-Bullish"
	LabelBullish         SentimentLabel = "Bullish"
)

// AllLabels lists every sentiment label in bearish-to-bullish order.
// Used to pre-populate count maps so all five keys are always present.
func AllLabels() []SentimentLabel {
	return []SentimentLabel{
		LabelBearish,
		LabelSomewhatBearish,
		LabelNeutral,
		LabelSomewhatBullish,
		LabelBullish,
	}
}
