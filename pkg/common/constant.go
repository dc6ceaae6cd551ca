package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyPoultryDBType  string = "POULTRY_DB_TYPE"
	EnvKeyPoultryDbPath  string = "POULTRY_DB_PATH"
	EnvKeyPoultryLogsDir string = "POULTRY_LOGS_DIR"

	EnvKeyPoultryHttpHostPort string = "POULTRY_HTTP_HOST_PORT"

	EnvKeyPoultryRedisAddr       string = "POULTRY_REDIS_ADDR"
	EnvKeyPoultryRedisPassword   string = "POULTRY_REDIS_PASSWORD"
	EnvKeyPoultryStreamName      string = "POULTRY_STREAM_NAME"
	EnvKeyPoultryConsumerGroup   string = "POULTRY_CONSUMER_GROUP"
	EnvKeyPoultryConsumerName    string = "POULTRY_CONSUMER_NAME"
	EnvKeyPoultryStreamBatchSize string = "POULTRY_STREAM_BATCH_SIZE"

	EnvKeyPoultryMqttBroker   string = "POULTRY_MQTT_BROKER"
	EnvKeyPoultryMqttClientID string = "POULTRY_MQTT_CLIENT_ID"
	EnvKeyPoultryMqttTopic    string = "POULTRY_MQTT_TOPIC"

	EnvKeyPoultryDefaultRate  string = "POULTRY_DEFAULT_RATE"
	EnvKeyPoultryDefaultBurst string = "POULTRY_DEFAULT_BURST"

	EnvKeyPoultrySeedHouses string = "POULTRY_SEED_HOUSES"

	EnvKeyPoultryWeatherApiUrl string = "POULTRY_WEATHER_API_URL"
	EnvKeyPoultryWeatherApiKey string = "POULTRY_WEATHER_API_KEY"

	LoggerNameTelemetryCore  string = "telemetry_core"
	LoggerNameIngest         string = "ingest"
	LoggerNameRestfulServer  string = "restful_server"
	LoggerNameStreamConsumer string = "stream_consumer"
	LoggerNameMqttBridge     string = "mqtt_bridge"
	LoggerNameWeather        string = "weather"

	LoggerFieldCategory string = "category"

	LoggerCategoryPersister   string = "persister"
	LoggerCategoryHouse       string = "house"
	LoggerCategoryThreshold   string = "threshold"
	LoggerCategoryEvaluator   string = "evaluator"
	LoggerCategoryAlert       string = "alert"
	LoggerCategoryCoordinator string = "coordinator"
)
