package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"coopsense.io/poultry-telemetry-service/pkg/common"
	"coopsense.io/poultry-telemetry-service/pkg/db"
	poultryHttp "coopsense.io/poultry-telemetry-service/pkg/http"
	"coopsense.io/poultry-telemetry-service/pkg/ingest"
	"coopsense.io/poultry-telemetry-service/pkg/telemetry"
	"coopsense.io/poultry-telemetry-service/pkg/weather"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	poultryDbType := os.Getenv(common.EnvKeyPoultryDBType)
	switch poultryDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown POULTRY_DB_TYPE: " + poultryDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyPoultryHttpHostPort))
	redisAddr := strings.TrimSpace(os.Getenv(common.EnvKeyPoultryRedisAddr))
	mqttBroker := strings.TrimSpace(os.Getenv(common.EnvKeyPoultryMqttBroker))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyPoultryDefaultRate), 64); err != nil {
		log.Fatal("Invalid POULTRY_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyPoultryDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid POULTRY_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	telemetryCore := telemetry.Telemetry{
		Db: *dbInstance,
	}
	telemetryCore.WithServices(telemetry.ServiceOpts{
		Persister:  telemetryCore.GetIPersister(),
		Houses:     telemetryCore.GetIHouses(),
		Thresholds: telemetryCore.GetIThresholds(),
		Evaluator:  telemetryCore.GetIEvaluator(),
		Alerts:     telemetryCore.GetIAlerts(),
	})

	coordinator := &ingest.Coordinator{Telemetry: &telemetryCore}

	if redisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: os.Getenv(common.EnvKeyPoultryRedisPassword),
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("failed to connect to redis at %s: %v", redisAddr, err)
		}

		streamName := strings.TrimSpace(os.Getenv(common.EnvKeyPoultryStreamName))
		if streamName == "" {
			streamName = "poultry:events"
		}
		consumerGroup := strings.TrimSpace(os.Getenv(common.EnvKeyPoultryConsumerGroup))
		if consumerGroup == "" {
			consumerGroup = "telemetry-pipeline"
		}
		consumerName := strings.TrimSpace(os.Getenv(common.EnvKeyPoultryConsumerName))
		if consumerName == "" {
			consumerName = "worker-1"
		}

		batchSize := int64(100)
		if val := os.Getenv(common.EnvKeyPoultryStreamBatchSize); val != "" {
			if batchSize, err = strconv.ParseInt(val, 10, 64); err != nil {
				log.Fatal("Invalid POULTRY_STREAM_BATCH_SIZE, should be an int value")
			}
		}

		logger.Info("Starting stream consumer on " + redisAddr)
		go func() {
			consumer := &ingest.StreamConsumer{
				Client:      redisClient,
				Coordinator: coordinator,
				Stream:      streamName,
				Group:       consumerGroup,
				Consumer:    consumerName,
				BatchSize:   batchSize,
			}
			if err := consumer.Run(context.Background()); err != nil {
				log.Fatalf("stream consumer failed: %v", err)
			}
		}()

		if mqttBroker != "" {
			clientID := strings.TrimSpace(os.Getenv(common.EnvKeyPoultryMqttClientID))
			if clientID == "" {
				clientID = "poultry-telemetry-bridge"
			}
			topic := strings.TrimSpace(os.Getenv(common.EnvKeyPoultryMqttTopic))
			if topic == "" {
				topic = "poultry/+/events"
			}

			bridge := &ingest.MqttBridge{
				Redis:    redisClient,
				Stream:   streamName,
				Broker:   mqttBroker,
				ClientID: clientID,
				Topic:    topic,
			}
			if err := bridge.Start(); err != nil {
				log.Fatalf("mqtt bridge failed to start: %v", err)
			}
			defer bridge.Stop()
		}
	}

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &poultryHttp.RestfulServer{
		Server:           gin.Default(),
		Telemetry:        &telemetryCore,
		Ingest:           coordinator,
		Weather:          weather.NewClientFromEnv(),
		RateLimiterStore: telemetry.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
