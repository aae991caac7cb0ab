package models

// LocalityWeather is what the HTTP surface serves: station readings joined with
// the locality metadata from the bundled table.
type LocalityWeather struct {
	LocalityID       string  `json:"locality_id"`
	LocalityName     string  `json:"locality_name,omitempty"`
	DeviceType       uint8   `json:"device_type"`
	Temperature      float64 `json:"temperature"`
	Humidity         float64 `json:"humidity"`
	WindSpeed        float64 `json:"wind_speed"`
	WindDirection    float64 `json:"wind_direction"`
	RainIntensity    float64 `json:"rain_intensity"`
	RainAccumulation float64 `json:"rain_accumulation"`
}

// LocalityInfo describes one entry of the bundled locality table.
type LocalityInfo struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
