package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// MQTTPublisher sends frames as binary over MQTT to an ledrx device.
type MQTTPublisher struct {
	client mqtt.Client
	topic  string
	qos    byte
}

// NewMQTTPublisher creates an instance of an MQTTPublisher.
func NewMQTTPublisher(client mqtt.Client, topic string, qos byte) *MQTTPublisher {
	p := new(MQTTPublisher)
	p.client = client
	p.topic = topic
	p.qos = qos
	return p
}

// Publish sends f and waits for the broker to accept it.
func (p *MQTTPublisher) Publish(f *Frame) error {
	b, err := f.MarshalBinary()
	if err != nil {
		return err
	}
	token := p.client.Publish(p.topic, p.qos, false, b)
	token.Wait()
	return token.Error()
}

// ControlHandler turns JSON commands received on the control topic into
// calls on a Streamer and publishes a Reply on the status topic.
type ControlHandler struct {
	streamer    *Streamer
	statusTopic string
	qos         byte
	timeout     time.Duration
}

// NewControlHandler creates an instance of a ControlHandler.
func NewControlHandler(streamer *Streamer, statusTopic string, qos byte) *ControlHandler {
	h := new(ControlHandler)
	h.streamer = streamer
	h.statusTopic = statusTopic
	h.qos = qos
	h.timeout = 5 * time.Second
	return h
}

// Subscribe registers the handler for topic on client.
func (h *ControlHandler) Subscribe(client mqtt.Client, topic string) error {
	token := client.Subscribe(topic, h.qos, h.handleMessage)
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("subscribe %s: %w", topic, err)
	}
	log.Printf("Subscribed to %s", topic)
	return nil
}

func (h *ControlHandler) handleMessage(client mqtt.Client, msg mqtt.Message) {
	log.Printf("Received msg %d on %s: %s", msg.MessageID(), msg.Topic(), msg.Payload())

	b := h.Handle(msg.Payload())
	if h.statusTopic == "" {
		return
	}
	// Handlers run on the client's router; never wait on the token here.
	client.Publish(h.statusTopic, h.qos, false, b)
}

// Handle decodes one JSON command, runs it and returns the encoded Reply.
func (h *ControlHandler) Handle(payload []byte) []byte {
	var reply Reply
	var cmd Command
	if err := json.Unmarshal(payload, &cmd); err != nil {
		reply.Error = fmt.Sprintf("decode command: %v", err)
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
		st, err := h.streamer.Do(ctx, cmd)
		cancel()
		reply.Status = st
		if err != nil {
			reply.Error = err.Error()
			log.Printf("command %s: %v", cmd.Type, err)
		}
	}

	b, err := json.Marshal(reply)
	if err != nil {
		log.Printf("encode reply: %v", err)
		return nil
	}
	return b
}
