package weather

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"coopsense.io/poultry-telemetry-service/pkg/common"
)

// Client fetches current outdoor conditions for a farm's coordinates from
// an external weather provider. The provider's JSON is passed through
// untouched; ventilation dashboards render it next to in-house readings.
type Client struct {
	http   *resty.Client
	apiKey string
}

func NewClient(baseURL, apiKey string) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		SetHeader("Accept", "application/json")

	return &Client{
		http:   client,
		apiKey: apiKey,
	}
}

// NewClientFromEnv builds a client from POULTRY_WEATHER_API_URL and
// POULTRY_WEATHER_API_KEY. Without a configured URL there is no client and
// the weather endpoint reports itself unavailable.
func NewClientFromEnv() *Client {
	baseURL := os.Getenv(common.EnvKeyPoultryWeatherApiUrl)
	if baseURL == "" {
		return nil
	}
	return NewClient(baseURL, os.Getenv(common.EnvKeyPoultryWeatherApiKey))
}

func (c *Client) CurrentAt(lat, lon float64) (json.RawMessage, error) {
	logger := common.GetLoggerWith(common.LoggerNameWeather)

	resp, err := c.http.R().
		SetQueryParams(map[string]string{
			"lat":   strconv.FormatFloat(lat, 'f', -1, 64),
			"lon":   strconv.FormatFloat(lon, 'f', -1, 64),
			"appid": c.apiKey,
		}).
		Get("")
	if err != nil {
		logger.Error("Weather provider call failed", zap.Error(err))
		return nil, fmt.Errorf("failed to call weather provider: %w", err)
	}

	if resp.StatusCode() != 200 {
		logger.Error("Weather provider returned error",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("body", resp.String()))
		return nil, fmt.Errorf("weather provider error: status %d", resp.StatusCode())
	}

	return resp.Body(), nil
}
