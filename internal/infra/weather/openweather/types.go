package openweather

import (
	"time"

	"github.com/yanqian/weather-assistant/internal/domain/weather"
)

type mainBlock struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  int     `json:"humidity"`
}

type windBlock struct {
	Speed float64 `json:"speed"`
}

type conditionBlock struct {
	Description string `json:"description"`
}

type volumeBlock struct {
	OneHour    float64 `json:"1h"`
	ThreeHours float64 `json:"3h"`
}

type currentResponse struct {
	Name    string           `json:"name"`
	Dt      int64            `json:"dt"`
	Main    mainBlock        `json:"main"`
	Wind    windBlock        `json:"wind"`
	Weather []conditionBlock `json:"weather"`
	Rain    volumeBlock      `json:"rain"`
	Snow    volumeBlock      `json:"snow"`
	Sys     struct {
		Country string `json:"country"`
	} `json:"sys"`
}

func (r currentResponse) snapshot() weather.Snapshot {
	return weather.Snapshot{
		Location:      r.Name,
		Country:       r.Sys.Country,
		Temperature:   r.Main.Temp,
		FeelsLike:     r.Main.FeelsLike,
		Humidity:      r.Main.Humidity,
		WindSpeed:     r.Wind.Speed,
		Precipitation: r.Rain.OneHour + r.Snow.OneHour,
		Description:   describe(r.Weather),
		ObservedAt:    unixUTC(r.Dt),
	}
}

type forecastItem struct {
	Dt      int64            `json:"dt"`
	Main    mainBlock        `json:"main"`
	Wind    windBlock        `json:"wind"`
	Weather []conditionBlock `json:"weather"`
	Rain    volumeBlock      `json:"rain"`
	Snow    volumeBlock      `json:"snow"`
}

type forecastResponse struct {
	List []forecastItem `json:"list"`
	City struct {
		Name     string `json:"name"`
		Country  string `json:"country"`
		Timezone int    `json:"timezone"`
	} `json:"city"`
}

func (r forecastResponse) forecast() weather.Forecast {
	out := weather.Forecast{
		Location:       r.City.Name,
		Country:        r.City.Country,
		TimezoneOffset: r.City.Timezone,
		Entries:        make([]weather.ForecastEntry, 0, len(r.List)),
	}
	for _, item := range r.List {
		ts := unixUTC(item.Dt)
		out.Entries = append(out.Entries, weather.ForecastEntry{
			Snapshot: weather.Snapshot{
				Location:      r.City.Name,
				Country:       r.City.Country,
				Temperature:   item.Main.Temp,
				FeelsLike:     item.Main.FeelsLike,
				Humidity:      item.Main.Humidity,
				WindSpeed:     item.Wind.Speed,
				Precipitation: item.Rain.ThreeHours + item.Snow.ThreeHours,
				Description:   describe(item.Weather),
				ObservedAt:    ts,
			},
			Time: ts,
		})
	}
	return out
}

type geoResult struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
}

type airResponse struct {
	List []struct {
		Main struct {
			AQI int `json:"aqi"`
		} `json:"main"`
		Components struct {
			CO   float64 `json:"co"`
			PM25 float64 `json:"pm2_5"`
			PM10 float64 `json:"pm10"`
		} `json:"components"`
	} `json:"list"`
}

func (r airResponse) airQuality(location string) weather.AirQuality {
	item := r.List[0]
	return weather.AirQuality{
		Location: location,
		AQI:      item.Main.AQI,
		Label:    weather.AQILabel(item.Main.AQI),
		CO:       item.Components.CO,
		PM25:     item.Components.PM25,
		PM10:     item.Components.PM10,
	}
}

func describe(conditions []conditionBlock) string {
	if len(conditions) == 0 {
		return ""
	}
	return conditions[0].Description
}

func unixUTC(sec int64) time.Time {
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}
