package catalog

// Default returns the built-in tile catalog for a weather station site.
func Default() *Catalog {
	return New(
		// Temperature
		TileDefinition{
			ID:          "temperature",
			Label:       "Temperature",
			Category:    CategoryTemperature,
			MinColSpan:  3,
			HasFlipTile: true,
			Sensor:      "outdoor_temp",
			ChartLabel:  "Temperature",
			ChartUnit:   "°C",
		},
		TileDefinition{
			ID:         "feels-like",
			Label:      "Feels Like",
			Category:   CategoryTemperature,
			MinColSpan: 2,
		},
		TileDefinition{
			ID:          "indoor-temperature",
			Label:       "Indoor Temperature",
			Category:    CategoryTemperature,
			MinColSpan:  2,
			HasFlipTile: true,
			Sensor:      "indoor_temp",
			ChartLabel:  "Indoor",
			ChartUnit:   "°C",
		},

		// Atmosphere
		TileDefinition{
			ID:          "humidity",
			Label:       "Humidity",
			Category:    CategoryAtmosphere,
			MinColSpan:  2,
			HasFlipTile: true,
			Sensor:      "humidity",
			ChartLabel:  "Humidity",
			ChartUnit:   "%",
		},
		TileDefinition{
			ID:          "pressure",
			Label:       "Pressure",
			Category:    CategoryAtmosphere,
			MinColSpan:  3,
			HasFlipTile: true,
			Sensor:      "rel_pressure",
			ChartLabel:  "Pressure",
			ChartUnit:   "hPa",
		},
		TileDefinition{
			ID:         "dew-point",
			Label:      "Dew Point",
			Category:   CategoryAtmosphere,
			MinColSpan: 2,
		},

		// Wind
		TileDefinition{
			ID:          "wind",
			Label:       "Wind",
			Category:    CategoryWind,
			MinColSpan:  3,
			HasFlipTile: true,
			Sensor:      "wind_speed",
			ChartLabel:  "Wind Speed",
			ChartUnit:   "km/h",
		},
		TileDefinition{
			ID:         "wind-direction",
			Label:      "Wind Direction",
			Category:   CategoryWind,
			MinColSpan: 2,
		},
		TileDefinition{
			ID:          "gusts",
			Label:       "Gusts",
			Category:    CategoryWind,
			MinColSpan:  2,
			HasFlipTile: true,
			Sensor:      "wind_gust",
			ChartLabel:  "Gusts",
			ChartUnit:   "km/h",
		},

		// Rain
		TileDefinition{
			ID:          "rain",
			Label:       "Rain",
			Category:    CategoryRain,
			MinColSpan:  3,
			HasFlipTile: true,
			Sensor:      "rain_rate",
			ChartLabel:  "Rain Rate",
			ChartUnit:   "mm/h",
		},
		TileDefinition{
			ID:         "rain-today",
			Label:      "Rain Today",
			Category:   CategoryRain,
			MinColSpan: 2,
		},

		// Solar
		TileDefinition{
			ID:            "uv-index",
			Label:         "UV Index",
			Category:      CategorySolar,
			MinColSpan:    2,
			RequiresSolar: true,
		},
		TileDefinition{
			ID:            "solar-radiation",
			Label:         "Solar Radiation",
			Category:      CategorySolar,
			MinColSpan:    3,
			HasFlipTile:   true,
			Sensor:        "solar_radiation",
			ChartLabel:    "Solar Radiation",
			ChartUnit:     "W/m²",
			RequiresSolar: true,
		},

		// Status
		TileDefinition{
			ID:         "station-status",
			Label:      "Station Status",
			Category:   CategoryStatus,
			MinColSpan: 2,
		},
		TileDefinition{
			ID:         "battery",
			Label:      "Battery",
			Category:   CategoryStatus,
			MinColSpan: 2,
		},
	)
}
