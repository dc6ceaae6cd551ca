package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"coopsense.io/poultry-telemetry-service/pkg/common"
	"coopsense.io/poultry-telemetry-service/pkg/db"
	"coopsense.io/poultry-telemetry-service/pkg/models"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func f64(v float64) *float64 {
	return &v
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	poultryDbType := os.Getenv(common.EnvKeyPoultryDBType)
	switch poultryDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		log.Fatal("Seeding a memory database is pointless, use POULTRY_DB_TYPE=file")
	default:
		log.Fatal("Unknown POULTRY_DB_TYPE: " + poultryDbType)
	}

	houses := 6
	if val := os.Getenv(common.EnvKeyPoultrySeedHouses); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil || parsed < 1 {
			log.Fatal("Invalid POULTRY_SEED_HOUSES, should be a positive int")
		}
		houses = parsed
	}

	seedEventTypes(dbInstance)
	seedThresholdPolicies(dbInstance)
	seedFarmsAndHouses(dbInstance, houses)
}

func seedEventTypes(dbInstance *db.DB) {
	kinds := map[string]models.EventKind{
		"temperature":       models.EventKindNumeric,
		"humidity":          models.EventKindNumeric,
		"ammonia":           models.EventKindNumeric,
		"co2":               models.EventKindNumeric,
		"water_consumption": models.EventKindNumeric,
		"fan_status":        models.EventKindFlag,
		"door_state":        models.EventKindText,
	}

	for code, kind := range kinds {
		var row models.EventTypeDef
		err := dbInstance.Conn.
			Where(models.EventTypeDef{Code: code}).
			Attrs(models.EventTypeDef{Code: code, Kind: kind}).
			FirstOrCreate(&row).Error
		if err != nil {
			log.Fatalf("failed to seed event type %s: %v", code, err)
		}
	}

	fmt.Printf("seeded %v event types\n", len(kinds))
}

func seedThresholdPolicies(dbInstance *db.DB) {
	// Broiler house guideline bands. Temperature starts warm for chicks
	// and steps down as the flock feathers out.
	policies := []models.ThresholdPolicy{
		{EventType: "temperature", AgeMinDays: 0, AgeMaxDays: 7, WarningMin: f64(85), WarningMax: f64(93), CriticalMin: f64(80), CriticalMax: f64(97), DisplayName: "Temperature", Unit: "°F"},
		{EventType: "temperature", AgeMinDays: 8, AgeMaxDays: 21, WarningMin: f64(75), WarningMax: f64(88), CriticalMin: f64(70), CriticalMax: f64(92), DisplayName: "Temperature", Unit: "°F"},
		{EventType: "temperature", AgeMinDays: 22, AgeMaxDays: 42, WarningMin: f64(60), WarningMax: f64(82), CriticalMin: f64(55), CriticalMax: f64(88), DisplayName: "Temperature", Unit: "°F"},
		{EventType: "humidity", AgeMinDays: 0, AgeMaxDays: 42, WarningMin: f64(40), WarningMax: f64(70), CriticalMin: f64(30), CriticalMax: f64(80), DisplayName: "Humidity", Unit: "%"},
		{EventType: "ammonia", AgeMinDays: 0, AgeMaxDays: 42, WarningMax: f64(20), CriticalMax: f64(35), DisplayName: "Ammonia", Unit: "ppm"},
		{EventType: "co2", AgeMinDays: 0, AgeMaxDays: 42, WarningMax: f64(3000), CriticalMax: f64(5000), DisplayName: "CO2", Unit: "ppm"},
	}

	for _, policy := range policies {
		var row models.ThresholdPolicy
		err := dbInstance.Conn.
			Where("event_type = ? AND age_min_days = ?", policy.EventType, policy.AgeMinDays).
			Attrs(policy).
			FirstOrCreate(&row).Error
		if err != nil {
			log.Fatalf("failed to seed policy %s/%d: %v", policy.EventType, policy.AgeMinDays, err)
		}
	}

	fmt.Printf("seeded %v threshold policies\n", len(policies))
}

func seedFarmsAndHouses(dbInstance *db.DB, houses int) {
	farms := []models.Farm{
		{Name: "North Ridge Farm", Latitude: 34.30, Longitude: -83.82},
		{Name: "Creekside Farm", Latitude: 32.46, Longitude: -84.99},
	}

	farmIDs := make([]string, len(farms))
	for i, farm := range farms {
		var row models.Farm
		farm.ID = uuid.NewString()
		err := dbInstance.Conn.
			Where("name = ?", farm.Name).
			Attrs(farm).
			FirstOrCreate(&row).Error
		if err != nil {
			log.Fatalf("failed to seed farm %s: %v", farm.Name, err)
		}
		farmIDs[i] = row.ID
	}

	for n := 1; n <= houses; n++ {
		age := (n % 42) + 1
		count := 16000 + (n%5)*1000
		house := models.House{
			ID:               uuid.NewString(),
			FarmID:           farmIDs[n%len(farmIDs)],
			Name:             fmt.Sprintf("House %d", n),
			DeviceIdentifier: fmt.Sprintf("ctrl-%04d", n),
			BirdAgeDays:      &age,
			BirdCount:        &count,
			Status:           "active",
		}

		var row models.House
		err := dbInstance.Conn.
			Where("device_identifier = ?", house.DeviceIdentifier).
			Attrs(house).
			FirstOrCreate(&row).Error
		if err != nil {
			log.Fatalf("failed to seed house %s: %v", house.DeviceIdentifier, err)
		}
		fmt.Printf("\rseeded house %v", n)
	}

	fmt.Printf("\rseeded %v farms and %v houses\n", len(farms), houses)
}
