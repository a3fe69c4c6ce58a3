package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseFlags_OverridesSelectedFields(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"prog", "-a", ":7070", "-d", "dsn", "-s", "sk", "-t", "24"}

	c := &Config{}
	c.LoadDefaults()
	parseFlags(c)

	assert.Equal(t, ":7070", c.EndpointAddr)
	assert.Equal(t, "dsn", c.DatabaseDSN)
	assert.Equal(t, "sk", c.SecretKey)
	assert.Equal(t, 24*time.Hour, c.SessionValidityDuration)
}

func TestParseFlags_KeepsDefaultsWhenAbsent(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"prog"}

	c := &Config{}
	c.LoadDefaults()
	parseFlags(c)

	assert.Equal(t, ":8081", c.EndpointAddr)
	assert.Equal(t, 7*24*time.Hour, c.SessionValidityDuration)
}
