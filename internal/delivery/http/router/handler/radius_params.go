package handler

import (
	"strconv"

	"jobsearch/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// parseRadiusParams reads the optional geo-radius query parameters. All three
// of latitude, longitude and radius_miles must be present together; none of
// them present means no radius filtering.
func parseRadiusParams(c echo.Context) (*usecase.RadiusInput, error) {
	latStr := c.QueryParam("latitude")
	lonStr := c.QueryParam("longitude")
	radiusStr := c.QueryParam("radius_miles")

	if latStr == "" && lonStr == "" && radiusStr == "" {
		return nil, nil
	}
	if latStr == "" || lonStr == "" || radiusStr == "" {
		return nil, errors.New("latitude, longitude and radius_miles must be provided together")
	}

	latitude, err := strconv.ParseFloat(latStr, 64)
	if err != nil || latitude < -90 || latitude > 90 {
		return nil, errors.New("invalid latitude")
	}

	longitude, err := strconv.ParseFloat(lonStr, 64)
	if err != nil || longitude < -180 || longitude > 180 {
		return nil, errors.New("invalid longitude")
	}

	radiusMiles, err := strconv.ParseFloat(radiusStr, 64)
	if err != nil || radiusMiles <= 0 {
		return nil, errors.New("invalid radius_miles")
	}

	useTraffic, _ := strconv.ParseBool(c.QueryParam("use_traffic"))

	return &usecase.RadiusInput{
		Latitude:    latitude,
		Longitude:   longitude,
		RadiusMiles: radiusMiles,
		UseTraffic:  useTraffic,
	}, nil
}
