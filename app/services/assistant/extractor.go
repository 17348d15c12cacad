package assistant

import (
	"context"
	"fmt"
	"strings"

	"ElectroMart/app/core/catalog"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"github.com/zeromicro/go-zero/core/logx"
)

// Extractor turns a conversation transcript into order intents. The hosted
// model behind it is opaque and unreliable; implementations may fail on
// transport but must never fail on content.
type Extractor interface {
	Extract(ctx context.Context, transcript []Message, items []catalog.Item) ([]OrderIntent, error)
}

type extractChainInput struct {
	Transcript []Message
	Items      []catalog.Item
}

type chainExtractor struct {
	log      logx.Logger
	runnable compose.Runnable[extractChainInput, []OrderIntent]
}

// NewChainExtractor builds the production extractor: prompt assembly, one
// chat-model call, then a defensive decode of whatever came back.
func NewChainExtractor(ctx context.Context, logger logx.Logger, chatModel model.BaseChatModel) (Extractor, error) {
	if chatModel == nil {
		return nil, fmt.Errorf("chat model is required")
	}

	chain := compose.NewChain[extractChainInput, []OrderIntent]()

	chain.AppendLambda(compose.InvokableLambda(func(_ context.Context, in extractChainInput) ([]*schema.Message, error) {
		return []*schema.Message{
			schema.SystemMessage(extractSystemPrompt),
			schema.UserMessage(buildExtractPrompt(in.Transcript, in.Items)),
		}, nil
	}))

	chain.AppendChatModel(chatModel)

	chain.AppendLambda(compose.InvokableLambda(func(_ context.Context, msg *schema.Message) ([]OrderIntent, error) {
		if msg == nil {
			return nil, fmt.Errorf("empty message")
		}
		content := strings.TrimSpace(msg.Content)
		if content == "" {
			return nil, fmt.Errorf("empty response")
		}
		// content that fails to parse is "no intents", not an error
		return decodeIntents(content), nil
	}))

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, err
	}

	return &chainExtractor{
		log:      logger,
		runnable: runnable,
	}, nil
}

func (e *chainExtractor) Extract(ctx context.Context, transcript []Message, items []catalog.Item) ([]OrderIntent, error) {
	if e == nil || e.runnable == nil {
		return nil, fmt.Errorf("extractor unavailable")
	}
	return e.runnable.Invoke(ctx, extractChainInput{
		Transcript: transcript,
		Items:      items,
	})
}
