package http

import (
	"coopsense.io/poultry-telemetry-service/pkg/ingest"
	"coopsense.io/poultry-telemetry-service/pkg/telemetry"
	"coopsense.io/poultry-telemetry-service/pkg/weather"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type RestfulServer struct {
	Server           *gin.Engine
	Telemetry        *telemetry.Telemetry
	Ingest           *ingest.Coordinator
	Weather          *weather.Client
	RateLimiterStore *telemetry.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(houseID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(houseID)
	}
}

func (rs *RestfulServer) CheckHouseLimiter(houseID string) bool {
	limiter := rs.GetLimiter(houseID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(houseID string, houseRate float64, houseBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(houseID, rate.Limit(houseRate), houseBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.POST("/ingest", rs.PostIngest)

	farms := rs.Server.Group("/farms")
	{
		farms.GET("", rs.ListFarms)
		farms.GET("/:farm_id/houses", rs.ListFarmHouses)
		farms.GET("/:farm_id/weather", rs.GetFarmWeather)
	}

	houses := rs.Server.Group("/houses/:house_id")
	{
		houses.GET("", rs.GetHouse)
		houses.GET("/alerts", rs.GetHouseAlerts)
		houses.GET("/events", rs.GetHouseEvents)
		houses.GET("/trends", rs.GetHouseTrend)
		houses.PUT("/state", rs.PutHouseState)
		houses.POST("/limiter", rs.PostLimiter)
	}
}
