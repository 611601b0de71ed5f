// Package mqttpush receives device pushes from a cloud MQTT broker and
// hands them to a transport.PushHandler, typically Session.OnMessage.
package mqttpush

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/vacsync/vacsync-go/pkg/transport"
)

// Defaults.
const (
	DefaultConnectTimeout = 10 * time.Second
	DefaultClientID       = "vacsync"
)

// Errors.
var (
	ErrNoBroker       = errors.New("mqtt broker is required")
	ErrNoTopic        = errors.New("mqtt topic is required")
	ErrInvalidMessage = errors.New("invalid push message")
)

// Config configures a Subscriber.
type Config struct {
	// Broker is the broker URL, e.g. ssl://cn.iot.example.com:19974.
	Broker string `yaml:"broker"`

	// Topic is the status topic of the device.
	Topic string `yaml:"topic"`

	ClientID string `yaml:"client_id"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`

	// TLS enables TLS with the system roots. ssl:// brokers imply it.
	TLS bool `yaml:"tls"`

	ConnectTimeout time.Duration `yaml:"connect_timeout"`
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Broker == "" {
		return ErrNoBroker
	}
	if c.Topic == "" {
		return ErrNoTopic
	}
	return nil
}

// Option configures a Subscriber.
type Option func(*Subscriber)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Subscriber) { s.logger = logger }
}

// Subscriber forwards pushed device messages to a handler.
type Subscriber struct {
	cfg     Config
	handler transport.PushHandler
	logger  *slog.Logger

	mu       sync.Mutex
	client   mqtt.Client
	received uint64
	dropped  uint64
}

// New creates a subscriber. Nothing connects until Connect.
func New(cfg Config, handler transport.PushHandler, opts ...Option) (*Subscriber, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.ClientID == "" {
		cfg.ClientID = DefaultClientID
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = DefaultConnectTimeout
	}
	s := &Subscriber{cfg: cfg, handler: handler}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Subscriber) clientOptions() *mqtt.ClientOptions {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(s.cfg.Broker)
	if s.cfg.TLS {
		opts.SetTLSConfig(&tls.Config{})
	}
	opts.SetUsername(s.cfg.Username)
	opts.SetPassword(s.cfg.Password)
	opts.SetClientID(s.cfg.ClientID)
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectTimeout(s.cfg.ConnectTimeout)
	opts.OnConnect = func(c mqtt.Client) {
		// Subscriptions do not survive a reconnect with a clean session.
		if token := c.Subscribe(s.cfg.Topic, 0, s.onMessage); token.Wait() && token.Error() != nil {
			s.warn("subscribe failed", "topic", s.cfg.Topic, "error", token.Error())
		}
	}
	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		s.warn("connection lost", "error", err)
	}
	return opts
}

// Connect connects to the broker and subscribes to the topic.
func (s *Subscriber) Connect(ctx context.Context) error {
	client := mqtt.NewClient(s.clientOptions())
	token := client.Connect()

	select {
	case <-token.Done():
	case <-ctx.Done():
		client.Disconnect(0)
		return ctx.Err()
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("connect %s: %w", s.cfg.Broker, err)
	}

	s.mu.Lock()
	s.client = client
	s.mu.Unlock()
	if s.logger != nil {
		s.logger.Info("mqtt push connected", "broker", s.cfg.Broker, "topic", s.cfg.Topic)
	}
	return nil
}

// Close disconnects from the broker.
func (s *Subscriber) Close() {
	s.mu.Lock()
	client := s.client
	s.client = nil
	s.mu.Unlock()
	if client != nil {
		client.Unsubscribe(s.cfg.Topic).Wait()
		client.Disconnect(250)
	}
}

// Connected reports whether the broker connection is up.
func (s *Subscriber) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.client != nil && s.client.IsConnectionOpen()
}

// Stats returns the number of delivered and dropped messages.
func (s *Subscriber) Stats() (received, dropped uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.received, s.dropped
}

func (s *Subscriber) onMessage(_ mqtt.Client, msg mqtt.Message) {
	s.deliver(msg.Topic(), msg.Payload())
}

func (s *Subscriber) deliver(topic string, payload []byte) {
	method, params, err := Decode(payload)
	s.mu.Lock()
	if err != nil {
		s.dropped++
	} else {
		s.received++
	}
	s.mu.Unlock()

	if err != nil {
		if s.logger != nil {
			s.logger.Debug("dropping push", "topic", topic, "error", err)
		}
		return
	}
	s.handler(method, params)
}

func (s *Subscriber) warn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}

// envelope is the cloud message. Some brokers wrap the call in "data".
type envelope struct {
	ID     int64                 `json:"id"`
	DID    string                `json:"did"`
	Method string                `json:"method"`
	Params []transport.PushParam `json:"params"`
	Data   *envelope             `json:"data"`
}

// Decode parses a push payload into a method and its parameters.
func Decode(payload []byte) (string, []transport.PushParam, error) {
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	did := env.DID
	if env.Data != nil {
		if env.Data.DID != "" {
			did = env.Data.DID
		}
		env = *env.Data
	}
	if env.Method == "" {
		return "", nil, fmt.Errorf("%w: no method", ErrInvalidMessage)
	}
	for i := range env.Params {
		if env.Params[i].DID == "" {
			env.Params[i].DID = did
		}
	}
	return env.Method, env.Params, nil
}
