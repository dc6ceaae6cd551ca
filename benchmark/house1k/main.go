package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

var maxHouses int = 1000
var httpHostPort string = "127.0.0.1:1080"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	controllers := fetchControllers()
	if len(controllers) == 0 {
		log.Fatal("no houses registered, run the seed command first")
	}
	if len(controllers) > maxHouses {
		controllers = controllers[:maxHouses]
	}
	fmt.Printf("collected %v house controllers\n", len(controllers))

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := range controllers {
		wg.Add(1)
		go func() {
			putLiveState(controllers[i])
			fmt.Printf("\rpushed live state for house %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rpushed live state for %v houses: used time=%v seconds, throughput=%v action/second\n",
		len(controllers), usedTime.Seconds(), float64(len(controllers))/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := range controllers {
		wg.Add(1)
		go func() {
			doAction(controllers[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v houses: used time=%v seconds, throughput=%v action/second\n",
		len(controllers), usedTime.Seconds(), float64(len(controllers)*4)/usedTime.Seconds(),
	)
}

type farmEntry struct {
	ID string
}

type houseEntry struct {
	DeviceIdentifier string
}

func fetchControllers() []string {
	resp, err := http.Get(fmt.Sprintf("http://%s/farms", httpHostPort))
	if err != nil {
		log.Fatal("Failed to list farms:", err)
	}
	defer resp.Body.Close()

	var farms []farmEntry
	if err := json.NewDecoder(resp.Body).Decode(&farms); err != nil {
		log.Fatal("Failed to decode farms:", err)
	}

	var controllers []string
	for _, farm := range farms {
		housesResp, err := http.Get(fmt.Sprintf("http://%s/farms/%s/houses", httpHostPort, farm.ID))
		if err != nil {
			log.Fatal("Failed to list houses:", err)
		}

		var houses []houseEntry
		if err := json.NewDecoder(housesResp.Body).Decode(&houses); err != nil {
			log.Fatal("Failed to decode houses:", err)
		}
		housesResp.Body.Close()

		for _, house := range houses {
			controllers = append(controllers, house.DeviceIdentifier)
		}
	}
	return controllers
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := min + rnd.Float64()*(max-min)
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}

func putLiveState(controller string) {
	payload := map[string]any{
		"birdAgeDays": 1 + rnd.Intn(42),
		"birdCount":   15000 + rnd.Intn(7000),
	}
	jsonData, _ := json.Marshal(payload)

	req, err := http.NewRequest(http.MethodPut,
		fmt.Sprintf("http://%s/houses/%s/state", httpHostPort, controller),
		bytes.NewBuffer(jsonData))
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
}

func doAction(controller string) {
	actions := []func(){
		genPostEnvelopeAction(controller),
		genGetAlertsAction(controller),
		genGetEventsAction(controller),
		genGetTrendAction(controller),
	}
	actionNames := []string{
		"PostEnvelope",
		"GetAlerts",
		"GetEvents",
		"GetTrend",
	}
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for house %v", actionNames[index], controller)
		time.Sleep(time.Duration(100+rnd.Int31n(1000)) * time.Millisecond)
	}
}

func genPostEnvelopeAction(controller string) func() {
	return func() {
		now := time.Now().Format(time.RFC3339)
		payload := map[string]any{
			"events": []map[string]any{
				{
					"houseId":   controller,
					"eventType": "temperature",
					"timestamp": now,
					"value":     rndFloat64(55.0, 100.0, 2),
				},
				{
					"houseId":   controller,
					"eventType": "humidity",
					"timestamp": now,
					"value":     rndFloat64(25.0, 85.0, 2),
				},
				{
					"houseId":   controller,
					"eventType": "ammonia",
					"timestamp": now,
					"value":     rndFloat64(0.0, 40.0, 2),
				},
			},
		}

		jsonData, _ := json.Marshal(payload)
		resp, err := http.Post(fmt.Sprintf("http://%s/ingest", httpHostPort), "application/json", bytes.NewBuffer(jsonData))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusAccepted {
			fmt.Printf("\nresponse status code != 202: %v\n", resp)
		}
	}
}

func genGetAlertsAction(controller string) func() {
	return func() {
		resp, err := http.Get(fmt.Sprintf("http://%s/houses/%s/alerts", httpHostPort, controller))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}

func genGetEventsAction(controller string) func() {
	return func() {
		resp, err := http.Get(fmt.Sprintf("http://%s/houses/%s/events?limit=20", httpHostPort, controller))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}

func genGetTrendAction(controller string) func() {
	return func() {
		resp, err := http.Get(fmt.Sprintf("http://%s/houses/%s/trends?eventType=temperature&limit=20", httpHostPort, controller))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}
