package ingest

import (
	"context"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"coopsense.io/poultry-telemetry-service/pkg/common"
)

// MqttBridge forwards device payloads from an MQTT topic into the ingest
// stream, where the consumer group picks them up as regular deliveries.
// House controllers that cannot talk to the stream directly publish here.
type MqttBridge struct {
	Redis    *redis.Client
	Stream   string
	Broker   string
	ClientID string
	Topic    string

	client mqtt.Client
}

func (mb *MqttBridge) Start() error {
	logger := common.GetLoggerWith(common.LoggerNameMqttBridge)

	opts := mqtt.NewClientOptions()
	opts.AddBroker(mb.Broker)
	opts.SetClientID(mb.ClientID)
	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)

	mb.client = mqtt.NewClient(opts)
	if token := mb.client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}

	if token := mb.client.Subscribe(mb.Topic, 1, func(_ mqtt.Client, msg mqtt.Message) {
		if err := mb.forward(msg.Payload()); err != nil {
			logger.Error("Failed to forward MQTT message",
				zap.String("topic", msg.Topic()),
				zap.Error(err))
		}
	}); token.Wait() && token.Error() != nil {
		return fmt.Errorf("failed to subscribe to topic %s: %w", mb.Topic, token.Error())
	}

	logger.Info("MQTT bridge started",
		zap.String("topic", mb.Topic),
		zap.String("stream", mb.Stream))
	return nil
}

func (mb *MqttBridge) forward(payload []byte) error {
	return mb.Redis.XAdd(context.Background(), &redis.XAddArgs{
		Stream: mb.Stream,
		Values: map[string]interface{}{"data": string(payload)},
	}).Err()
}

func (mb *MqttBridge) Stop() {
	if mb.client == nil {
		return
	}
	mb.client.Unsubscribe(mb.Topic)
	mb.client.Disconnect(250)
}
