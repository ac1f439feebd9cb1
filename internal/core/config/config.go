package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`
	// HTTPClientTimeout bounds every outbound call to an upstream API.
	HTTPClientTimeout time.Duration `mapstructure:"HTTP_CLIENT_TIMEOUT" default:"15s"`

	// Jumpseller holds the commerce platform API configuration.
	Jumpseller JumpsellerConfig `mapstructure:",squash"`

	// BlueExpress holds the carrier tracking API configuration.
	BlueExpress BlueExpressConfig `mapstructure:",squash"`

	// Redis holds the cache connection configuration.
	Redis RedisConfig `mapstructure:",squash"`

	// Checkout holds the checkout flow tuning knobs.
	Checkout CheckoutConfig `mapstructure:",squash"`

	// Kafka holds the order event publishing configuration.
	Kafka KafkaConfig `mapstructure:",squash"`
}

// JumpsellerConfig holds the credentials for the Jumpseller store API.
type JumpsellerConfig struct {
	// URL is the base URL of the Jumpseller API, without trailing slash.
	URL string `mapstructure:"JUMPSELLER_API_URL" default:"https://api.jumpseller.com/v1"`
	// Login is the store login sent as the "login" query parameter.
	Login string `mapstructure:"JUMPSELLER_LOGIN" required:"true"`
	// AuthToken is the API token sent as the "authtoken" query parameter.
	AuthToken string `mapstructure:"JUMPSELLER_AUTHTOKEN" required:"true"`
	// TrackedShippingMethodID restricts customer order listings to orders shipped with
	// this method. Zero disables the filter.
	TrackedShippingMethodID int64 `mapstructure:"JUMPSELLER_TRACKED_SHIPPING_METHOD_ID"`
}

// BlueExpressConfig holds the credentials for the Blue Express tracking API.
type BlueExpressConfig struct {
	// URL is the base URL of the tracking API.
	URL string `mapstructure:"BX_API_URL" default:"https://bx-tracking.bluex.cl/bx-tracking/v1"`
	// Token is sent as the BX-TOKEN header.
	Token string `mapstructure:"BX_CLIENT_TOKEN" required:"true"`
	// UserCode is sent as the BX-USERCODE header.
	UserCode string `mapstructure:"BX_CLIENT_USER_ID" required:"true"`
	// ClientAccount is sent as the BX-CLIENT-ACCOUNT header.
	ClientAccount string `mapstructure:"BX_CLIENT_ACCOUNT" required:"true"`
}

// RedisConfig holds the Redis connection details.
type RedisConfig struct {
	// URL has the form redis://[:password@]host[:port][/database].
	URL string `mapstructure:"REDIS_URL" default:"redis://localhost:6379/0"`
	// LocationsTTL is how long region and municipality lists stay cached.
	LocationsTTL time.Duration `mapstructure:"LOCATIONS_CACHE_TTL" default:"24h"`
}

// CheckoutConfig holds the checkout flow settings.
type CheckoutConfig struct {
	// SessionTTL is how long an abandoned checkout session survives.
	SessionTTL time.Duration `mapstructure:"CHECKOUT_SESSION_TTL" default:"2h"`
	// IdempotencyTTL is how long a submitted order is remembered per idempotency key.
	IdempotencyTTL time.Duration `mapstructure:"CHECKOUT_IDEMPOTENCY_TTL" default:"24h"`
	// PendingTTL bounds how long an in-flight submission holds its idempotency key.
	PendingTTL time.Duration `mapstructure:"CHECKOUT_PENDING_TTL" default:"2m"`
	// LookupConcurrency caps parallel product lookups while resolving cart lines.
	LookupConcurrency int `mapstructure:"CATALOG_LOOKUP_CONCURRENCY" default:"4"`
}

// KafkaConfig holds the order event publisher settings.
type KafkaConfig struct {
	// Brokers is a comma-separated broker list. Empty disables publishing.
	Brokers string `mapstructure:"KAFKA_BROKERS"`
	// OrdersTopic receives one message per created order.
	OrdersTopic string `mapstructure:"KAFKA_ORDERS_TOPIC" default:"storefront.orders.created"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags iterates over the struct fields, binds their env keys and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			if err := v.BindEnv(key); err != nil {
				return fmt.Errorf("failed to bind env %s: %w", key, err)
			}
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		required := field.Tag.Get("required")
		if required == "true" {
			value := val.Field(i)
			if isZero(value) {
				key := field.Tag.Get("mapstructure")
				return fmt.Errorf("missing required configuration: %s", key)
			}
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
