// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package config

import (
	"time"

	"ElectroMart/app/core/catalog"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	// Catalog overrides the built-in demo catalog when non-empty.
	Catalog []catalog.Item `json:",optional"`

	RedisConf redis.RedisConf `json:",optional"`
	CartTTL   time.Duration   `json:",default=24h"`

	Session SessionConf

	ChatModel ModelConf `json:",optional"`

	KafkaConf KafkaConf `json:",optional"`

	LogConf logx.LogConf
}

type SessionConf struct {
	Secret string
	Expire time.Duration `json:",default=24h"`
}

type ModelConf struct {
	BaseUrl string `json:",optional"`
	APIKey  string `json:",optional"`
	Model   string `json:",optional"`
}

type KafkaConf struct {
	Broker     []string `json:",optional"`
	OrderTopic string   `json:",optional"`
}
