package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Api struct {
		Telegram TelegramConfig
		Bridge   BridgeConfig
		Status   struct {
			Port uint16 `envconfig:"API_STATUS_PORT" default:"8080" required:"true"`
		}
	}
	Db  TicketsDbConfig
	Log struct {
		Level int `envconfig:"LOG_LEVEL" default:"-4" required:"true"`
	}
}

type TelegramConfig struct {
	Token   string `envconfig:"API_TELEGRAM_TOKEN" required:"true"`
	GroupId int64  `envconfig:"API_TELEGRAM_GROUP_ID" required:"true"`
	Webhook struct {
		Host    string `envconfig:"API_TELEGRAM_WEBHOOK_HOST" default:""`
		Path    string `envconfig:"API_TELEGRAM_WEBHOOK_PATH" default:"/"`
		Port    uint16 `envconfig:"API_TELEGRAM_WEBHOOK_PORT" default:"8081"`
		ConnMax uint16 `envconfig:"API_TELEGRAM_WEBHOOK_CONN_MAX" default:"100"`
		Token   string `envconfig:"API_TELEGRAM_WEBHOOK_TOKEN" default:""`
	}
	Poll struct {
		Timeout time.Duration `envconfig:"API_TELEGRAM_POLL_TIMEOUT" default:"10s" required:"true"`
	}
}

type BridgeConfig struct {
	Uri     string        `envconfig:"API_BRIDGE_URI" default:""`
	Timeout time.Duration `envconfig:"API_BRIDGE_TIMEOUT" default:"2s" required:"true"`
}

type TicketsDbConfig struct {
	Uri      string `envconfig:"DB_URI" default:"mongodb://localhost:27017/?retryWrites=true&w=majority" required:"true"`
	Name     string `envconfig:"DB_NAME" default:"bot-telegram" required:"true"`
	UserName string `envconfig:"DB_USERNAME" default:""`
	Password string `envconfig:"DB_PASSWORD" default:""`
	Table    struct {
		Name string `envconfig:"DB_TABLE_NAME" default:"tickets" required:"true"`
	}
	Tls struct {
		Enabled  bool `envconfig:"DB_TLS_ENABLED" default:"false" required:"true"`
		Insecure bool `envconfig:"DB_TLS_INSECURE" default:"false" required:"true"`
	}
}

func NewConfigFromEnv() (cfg Config, err error) {
	err = envconfig.Process("", &cfg)
	return
}
