package db

import (
	"log"
	"os"
	"sync"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	constant "coopsense.io/poultry-telemetry-service/pkg/common"
	"coopsense.io/poultry-telemetry-service/pkg/models"
)

type DB struct {
	Conn *gorm.DB
}

var (
	instance *DB
	once     sync.Once
)

// GetInstance lazily opens the shared store handle. The first caller
// establishes the connection and runs migrations; every later caller gets
// the same instance. There is no teardown, the handle lives as long as the
// process.
func GetInstance(dialector gorm.Dialector) *DB {
	var logger = constant.GetLogger()
	once.Do(func() {
		conn, err := gorm.Open(dialector, &gorm.Config{})
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}

		logger.Info("Connected to database with dialector:", zap.String("dialector", dialector.Name()))

		instance = &DB{Conn: conn}

		err = instance.Conn.AutoMigrate(
			&models.Farm{},
			&models.House{},
			&models.EventTypeDef{},
			&models.ThresholdPolicy{},
			&models.SensorEvent{},
			&models.Alert{},
		)
		if err != nil {
			log.Fatal("Failed to migrate database:", err)
		}

		logger.Info("Database migration completed")

		if err := instance.Conn.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			log.Fatal("Failed to enable sqlite foreign key support", err)
		}

		if err := instance.Conn.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
			log.Fatal("Failed to set sqlite journal mode", err)
		}

		if err := seedEventTypeDefs(instance.Conn); err != nil {
			log.Fatal("Failed to seed event type definitions", err)
		}

		logger.Info("Event type definitions seeded")
	})
	return instance
}

func UseSqliteDialector() gorm.Dialector {
	var dbPath string
	var found bool
	if dbPath, found = os.LookupEnv(constant.EnvKeyPoultryDbPath); !found {
		dbPath = "poultry.db"
	}
	return sqlite.Open(dbPath)
}

func UseMemorySqliteDialector() gorm.Dialector {
	return sqlite.Open("file::memory:?cache=shared")
}

// defaultEventTypeDefs is the event-type→kind reference data the parser
// selects reading arms with. New sensor families get a row here.
var defaultEventTypeDefs = []models.EventTypeDef{
	{Code: "temperature", Kind: models.EventKindNumeric},
	{Code: "humidity", Kind: models.EventKindNumeric},
	{Code: "ammonia", Kind: models.EventKindNumeric},
	{Code: "co2", Kind: models.EventKindNumeric},
	{Code: "feed_level", Kind: models.EventKindNumeric},
	{Code: "water_consumption", Kind: models.EventKindNumeric},
	{Code: "ventilation_rate", Kind: models.EventKindNumeric},
	{Code: "light_level", Kind: models.EventKindNumeric},
	{Code: "fan_status", Kind: models.EventKindFlag},
	{Code: "water_pump_status", Kind: models.EventKindFlag},
	{Code: "door_state", Kind: models.EventKindText},
}

func seedEventTypeDefs(conn *gorm.DB) error {
	for _, def := range defaultEventTypeDefs {
		err := conn.Clauses(clause.OnConflict{DoNothing: true}).Create(&def).Error
		if err != nil {
			return err
		}
	}
	return nil
}
