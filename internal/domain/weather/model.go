package weather

import "time"

// Snapshot is a single point-in-time weather reading for a location.
type Snapshot struct {
	Location      string    `json:"location"`
	Country       string    `json:"country"`
	Temperature   float64   `json:"temperature"`
	FeelsLike     float64   `json:"feels_like"`
	Humidity      int       `json:"humidity"`
	WindSpeed     float64   `json:"wind_speed"`
	Precipitation float64   `json:"precipitation"`
	Description   string    `json:"description"`
	ObservedAt    time.Time `json:"observed_at"`
}

// ForecastEntry is a forecast snapshot valid at Time.
type ForecastEntry struct {
	Snapshot
	Time time.Time `json:"time"`
}

// Forecast is the ordered 3-hour forecast for a location.
type Forecast struct {
	Location       string          `json:"location"`
	Country        string          `json:"country"`
	TimezoneOffset int             `json:"timezone_offset"`
	Entries        []ForecastEntry `json:"entries"`
}

// DailySummary condenses one local day of forecast entries.
type DailySummary struct {
	Date        string  `json:"date"`
	MinTemp     float64 `json:"min_temp"`
	MaxTemp     float64 `json:"max_temp"`
	Description string  `json:"description"`
}

// AirQuality holds the pollution reading for a location.
type AirQuality struct {
	Location string  `json:"location"`
	AQI      int     `json:"aqi"`
	Label    string  `json:"label"`
	CO       float64 `json:"co"`
	PM25     float64 `json:"pm2_5"`
	PM10     float64 `json:"pm10"`
}

// Zone returns the fixed zone of the forecast location.
func (f Forecast) Zone() *time.Location {
	return time.FixedZone(f.Location, f.TimezoneOffset)
}

// AQILabel maps the 1-5 OpenWeather index to its label.
func AQILabel(aqi int) string {
	switch aqi {
	case 1:
		return "Good"
	case 2:
		return "Fair"
	case 3:
		return "Moderate"
	case 4:
		return "Poor"
	case 5:
		return "Very Poor"
	default:
		return "Unknown"
	}
}
