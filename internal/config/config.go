package config

import (
	"fmt"
	"os"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（default 8080）

	DatabaseURL string // Postgres接続文字列

	JWTKey      string // JWT署名キー
	JWTIssuer   string // JWT発行者
	JWTAudience string // JWT対象者
	JWTSubject  string // JWT subject claim

	LogLevel  string // zapのログレベル（default info）
	RedisAddr string // 商品キャッシュ（空なら無効）
	AMQPURL   string // RabbitMQ（空なら無効）
}

// Loadは環境変数から設定を組み立てる。必須値が無ければ起動時エラー。
func Load() (Config, error) {
	cfg := Config{
		Port: os.Getenv("PORT"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		JWTKey:      os.Getenv("JWT_KEY"),
		JWTIssuer:   os.Getenv("JWT_ISSUER"),
		JWTAudience: os.Getenv("JWT_AUDIENCE"),
		JWTSubject:  os.Getenv("JWT_SUBJECT"),

		LogLevel:  os.Getenv("LOG_LEVEL"),
		RedisAddr: os.Getenv("REDIS_ADDR"),
		AMQPURL:   os.Getenv("AMQP_URL"),
	}

	//必須チェック
	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTKey == "" {
		return Config{}, fmt.Errorf("JWT_KEY is required")
	}
	if cfg.JWTIssuer == "" {
		return Config{}, fmt.Errorf("JWT_ISSUER is required")
	}
	if cfg.JWTAudience == "" {
		return Config{}, fmt.Errorf("JWT_AUDIENCE is required")
	}
	if cfg.JWTSubject == "" {
		return Config{}, fmt.Errorf("JWT_SUBJECT is required")
	}

	//任意値のdefault
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}
