package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"coopsense.io/poultry-telemetry-service/pkg/common"
	"coopsense.io/poultry-telemetry-service/pkg/ingest"
	"coopsense.io/poultry-telemetry-service/pkg/models"
	"coopsense.io/poultry-telemetry-service/pkg/telemetry"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

// envelopeHouse picks the identifier an envelope is about, for rate
// limiting. Controllers post one envelope per house.
func envelopeHouse(events []models.SensorEvent, houseState *ingest.HouseStateEntry) string {
	if houseState != nil {
		return houseState.HouseID
	}
	if len(events) > 0 {
		return events[0].HouseID
	}
	return ""
}

func (rs *RestfulServer) PostIngest(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	kinds, err := rs.Telemetry.Thresholds.EventKinds()
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	events, houseState, err := ingest.ParseMessage(kinds, body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if houseID := envelopeHouse(events, houseState); houseID != "" && !rs.CheckHouseLimiter(houseID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	inserted, err := rs.Ingest.ProcessEnvelope(events, houseState)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"inserted": inserted})
}

func (rs *RestfulServer) ListFarms(c *gin.Context) {
	farms, err := rs.Telemetry.Houses.ListFarms()
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, farms)
}

func (rs *RestfulServer) ListFarmHouses(c *gin.Context) {
	farmID := c.Param("farm_id")

	if _, err := rs.Telemetry.Houses.GetFarm(farmID); err != nil {
		if errors.Is(err, telemetry.ErrFarmNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	houses, err := rs.Telemetry.Houses.ListFarmHouses(farmID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, houses)
}

func (rs *RestfulServer) GetFarmWeather(c *gin.Context) {
	if rs.Weather == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "weather service not configured"})
		return
	}

	farm, err := rs.Telemetry.Houses.GetFarm(c.Param("farm_id"))
	if err != nil {
		if errors.Is(err, telemetry.ErrFarmNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	payload, err := rs.Weather.CurrentAt(farm.Latitude, farm.Longitude)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "application/json", payload)
}

func (rs *RestfulServer) GetHouse(c *gin.Context) {
	houseID := c.Param("house_id")

	if !rs.CheckHouseLimiter(houseID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	house, err := rs.Telemetry.Houses.GetHouse(houseID)
	if err != nil {
		if errors.Is(err, telemetry.ErrHouseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, house)
}

func (rs *RestfulServer) GetHouseAlerts(c *gin.Context) {
	houseID := c.Param("house_id")

	if !rs.CheckHouseLimiter(houseID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	alerts, err := rs.Telemetry.Alerts.GetHouseAlerts(houseID)
	if err != nil {
		if errors.Is(err, telemetry.ErrHouseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, alerts)
}

const defaultEventsLimit = 100

func (rs *RestfulServer) GetHouseEvents(c *gin.Context) {
	houseID := c.Param("house_id")

	if !rs.CheckHouseLimiter(houseID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	limit := defaultEventsLimit
	if val := c.Query("limit"); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	events, err := rs.Telemetry.Persister.GetHouseEvents(houseID, limit)
	if err != nil {
		if errors.Is(err, telemetry.ErrHouseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// TrendPoint is one sample of a single metric's recent series, newest
// first. Exactly one of the value fields is set, matching the reading arm.
type TrendPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     *float64  `json:"value,omitempty"`
	Text      *string   `json:"text,omitempty"`
	Flag      *bool     `json:"flag,omitempty"`
}

func (rs *RestfulServer) GetHouseTrend(c *gin.Context) {
	houseID := c.Param("house_id")

	if !rs.CheckHouseLimiter(houseID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	eventType := c.Query("eventType")
	if eventType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "eventType is required"})
		return
	}

	limit := defaultEventsLimit
	if val := c.Query("limit"); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	events, err := rs.Telemetry.Persister.GetHouseEventSeries(houseID, eventType, limit)
	if err != nil {
		if errors.Is(err, telemetry.ErrHouseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, common.Mapper(events, func(ev models.SensorEvent) TrendPoint {
		return TrendPoint{
			Timestamp: ev.Timestamp,
			Value:     ev.Reading.Number,
			Text:      ev.Reading.Text,
			Flag:      ev.Reading.Flag,
		}
	}))
}

type HouseStateRequest struct {
	BirdCount   *int    `json:"birdCount"`
	BirdAgeDays *int    `json:"birdAgeDays"`
	FlockID     *string `json:"flockId"`
}

var houseStateRequestSchema = z.Struct(z.Shape{
	"BirdCount":   z.Ptr(z.Int().GTE(0)),
	"BirdAgeDays": z.Ptr(z.Int().GTE(0)),
	"FlockID":     z.Ptr(z.String()),
})

func (rs *RestfulServer) PutHouseState(c *gin.Context) {
	houseID := c.Param("house_id")

	if !rs.CheckHouseLimiter(houseID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var req HouseStateRequest
	if err := houseStateRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	err := rs.Telemetry.Houses.UpdateHouseLiveState(houseID, &models.HouseLiveState{
		BirdCount:   req.BirdCount,
		BirdAgeDays: req.BirdAgeDays,
		FlockID:     req.FlockID,
	})
	if err != nil {
		if errors.Is(err, telemetry.ErrHouseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusOK)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	houseID := c.Param("house_id")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(houseID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
