package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfig(t *testing.T) {
	os.Setenv("API_TELEGRAM_TOKEN", "yohoho")
	os.Setenv("API_TELEGRAM_GROUP_ID", "-1001234567890")
	os.Setenv("API_TELEGRAM_WEBHOOK_PORT", "56789")
	os.Setenv("API_BRIDGE_URI", "http://bridge:8080")
	os.Setenv("API_BRIDGE_TIMEOUT", "3s")
	os.Setenv("DB_TABLE_NAME", "tickets-test")
	os.Setenv("LOG_LEVEL", "4")
	cfg, err := NewConfigFromEnv()
	assert.Nil(t, err)
	assert.Equal(t, "yohoho", cfg.Api.Telegram.Token)
	assert.Equal(t, int64(-1001234567890), cfg.Api.Telegram.GroupId)
	assert.Equal(t, uint16(56789), cfg.Api.Telegram.Webhook.Port)
	assert.Equal(t, "http://bridge:8080", cfg.Api.Bridge.Uri)
	assert.Equal(t, 3*time.Second, cfg.Api.Bridge.Timeout)
	assert.Equal(t, "tickets-test", cfg.Db.Table.Name)
	assert.Equal(t, 4, cfg.Log.Level)
}
