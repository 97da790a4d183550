package domain

// Candle is a single historical price point as the market-data origin
// reports it. Some routes key the day on "date", older ones on "time".
type Candle struct {
	Date   string  `json:"date,omitempty"`
	Time   string  `json:"time,omitempty"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// Day returns whichever of the two date fields is populated.
func (c Candle) Day() string {
	if c.Date != "" {
		return c.Date
	}
	return c.Time
}

// CandlePoint is one chart-ready candlestick.
type CandlePoint struct {
	Time  string  `json:"time"`
	Open  float64 `json:"open"`
	High  float64 `json:"high"`
	Low   float64 `json:"low"`
	Close float64 `json:"close"`
}

// VolumePoint is one chart-ready volume bar, colored by the day's direction.
type VolumePoint struct {
	Time  string  `json:"time"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

const (
	VolumeUpColor   = "rgba(34,197,94,0.5)"
	VolumeDownColor = "rgba(239,68,68,0.5)"
)
