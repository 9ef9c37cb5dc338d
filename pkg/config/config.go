package config

import "time"

// Chat definition chat_service YAML structure
type Chat struct {
	Port     string          `mapstructure:"port"`
	MongoSQL DatabaseConfig  `mapstructure:"mongo"`
	Redis    RedisConfig     `mapstructure:"redis"`
	WS       WebsocketConfig `mapstructure:"ws"`
	JWT      JWTConfig       `mapstructure:"jwt"`
	Pprof    PprofConfig     `mapstructure:"pprof"`
}

// RedisConfig definition redis setting
// Addr 有值時直接連單機, 否則走 .env 內的 sentinel 設定
type RedisConfig struct {
	RedisDB             int    `mapstructure:"redis_db"`
	Addr                string `mapstructure:"addr"`
	NotificationChannel string `mapstructure:"notification_channel"`
}

// DatabaseConfig definition db setting
type DatabaseConfig struct {
	Host          string        `mapstructure:"host"`
	Port          int           `mapstructure:"port"`
	User          string        `mapstructure:"user"`
	Password      string        `mapstructure:"password"`
	Database      string        `mapstructure:"database"`
	RetryInterval int           `mapstructure:"retry_interval"`
	RetryCount    int           `mapstructure:"retry_count"`
	OpTimeout     time.Duration `mapstructure:"op_timeout"`
}

// WebsocketConfig definition websocket connection tuning
type WebsocketConfig struct {
	SendBuffer   int           `mapstructure:"send_buffer"`
	PingInterval time.Duration `mapstructure:"ping_interval"`
	PongWait     time.Duration `mapstructure:"pong_wait"`
	WriteWait    time.Duration `mapstructure:"write_wait"`
}

// JWTConfig definition token verify setting
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

// PprofConfig definition pprof server
type PprofConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr"`
}

// Defaults 填上未設定的欄位
func (c *Chat) Defaults() {
	if c.Port == "" {
		c.Port = "8080"
	}
	if c.MongoSQL.OpTimeout <= 0 {
		c.MongoSQL.OpTimeout = 5 * time.Second
	}
	if c.Redis.NotificationChannel == "" {
		c.Redis.NotificationChannel = "chat:notification"
	}
	if c.WS.SendBuffer <= 0 {
		c.WS.SendBuffer = 128
	}
	if c.WS.PingInterval <= 0 {
		c.WS.PingInterval = 30 * time.Second
	}
	if c.WS.PongWait <= c.WS.PingInterval {
		c.WS.PongWait = c.WS.PingInterval * 2
	}
	if c.WS.WriteWait <= 0 {
		c.WS.WriteWait = 10 * time.Second
	}
	if c.Pprof.Addr == "" {
		c.Pprof.Addr = "127.0.0.1:6060"
	}
}
