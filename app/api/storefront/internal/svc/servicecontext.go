package svc

import (
	"context"

	"ElectroMart/app/api/storefront/internal/config"
	"ElectroMart/app/common/middleware"
	"ElectroMart/app/core/catalog"
	cartdal "ElectroMart/app/dal/cart"
	"ElectroMart/app/services/assistant"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/rest"
)

type ServiceContext struct {
	Config config.Config

	SessionMiddleware rest.Middleware

	Catalog   []catalog.Item
	CartStore cartdal.Store
	Pipeline  *assistant.Pipeline
	Turns     *assistant.TurnGate
}

func NewServiceContext(c config.Config) *ServiceContext {
	logx.MustSetup(c.LogConf)

	items := c.Catalog
	if len(items) == 0 {
		items = catalog.DefaultItems()
	}

	var store cartdal.Store
	if c.RedisConf.Host != "" {
		rds, err := redis.NewRedis(c.RedisConf)
		if err != nil {
			logx.Errorw("init redis failed, falling back to in-memory cart store", logx.Field("err", err))
			store = cartdal.NewMemoryStore()
		} else {
			store = cartdal.NewRedisStore(rds, c.CartTTL)
		}
	} else {
		logx.Infow("redis not configured, using in-memory cart store")
		store = cartdal.NewMemoryStore()
	}

	logger := logx.WithContext(context.Background())

	var extractor assistant.Extractor
	if c.ChatModel.Model != "" {
		cm, err := ark.NewChatModel(context.Background(), &ark.ChatModelConfig{
			BaseURL: c.ChatModel.BaseUrl,
			APIKey:  c.ChatModel.APIKey,
			Model:   c.ChatModel.Model,
		})
		if err != nil {
			logx.Errorw("init ark chat model failed", logx.Field("err", err))
		} else {
			ext, err := assistant.NewChainExtractor(context.Background(), logger, cm)
			if err != nil {
				logx.Errorw("init intent extractor failed", logx.Field("err", err))
			} else {
				extractor = ext
				logx.Infow("ark chat model initialized")
			}
		}
	} else {
		logx.Infow("chat model not configured, conversation turns will yield no cart updates")
	}

	return &ServiceContext{
		Config:            c,
		SessionMiddleware: middleware.NewSessionMiddleware(c.Session.Secret, c.Session.Expire).Handle,
		Catalog:           items,
		CartStore:         store,
		Pipeline:          assistant.NewPipeline(logger, extractor, items),
		Turns:             assistant.NewTurnGate(),
	}
}
