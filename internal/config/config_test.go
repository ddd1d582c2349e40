package config_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/delivio/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("POSTGRES_USER", "delivio")
	t.Setenv("POSTGRES_PASSWORD", "secret")
}

func TestNew_Defaults(t *testing.T) {
	setRequired(t)

	conf := config.New()

	require.NoError(t, conf.Validate())
	assert.Equal(t, "development", conf.Env)
	assert.Equal(t, "8080", conf.Http.Port)
	assert.Equal(t, []string{"localhost:9092"}, conf.Kafka.Brokers)
	assert.Equal(t, 30*time.Minute, conf.Session.TTL)
	assert.True(t, conf.Postgres.Migrate)
}

func TestNew_FromEnv(t *testing.T) {
	setRequired(t)
	t.Setenv("ENV", "production")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("CATALOG_TIMEOUT", "3s")
	t.Setenv("SESSION_CAPACITY", "not-a-number")
	t.Setenv("POSTGRES_MIGRATE", "false")

	conf := config.New()

	require.NoError(t, conf.Validate())
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, conf.Kafka.Brokers)
	assert.Equal(t, 3*time.Second, conf.Catalog.Timeout)
	assert.Equal(t, 1000, conf.Session.Capacity)
	assert.False(t, conf.Postgres.Migrate)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(c *config.Config)
	}{
		{name: "unknown env", mutate: func(c *config.Config) { c.Env = "dev" }},
		{name: "missing db user", mutate: func(c *config.Config) { c.Postgres.User = "" }},
		{name: "bad catalog url", mutate: func(c *config.Config) { c.Catalog.BaseURL = "not a url" }},
		{name: "zero session ttl", mutate: func(c *config.Config) { c.Session.TTL = 0 }},
		{name: "kafka enabled without topic", mutate: func(c *config.Config) { c.Kafka.RepliesTopic = "" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setRequired(t)
			conf := config.New()
			tc.mutate(&conf)
			assert.Error(t, conf.Validate())
		})
	}
}

func TestValidate_KafkaDisabled(t *testing.T) {
	setRequired(t)
	t.Setenv("KAFKA_ENABLED", "false")

	conf := config.New()
	conf.Kafka.RepliesTopic = ""
	conf.Kafka.Brokers = nil

	assert.NoError(t, conf.Validate())
}
