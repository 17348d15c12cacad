package assistant

import (
	"context"

	"ElectroMart/app/core/cart"
	"ElectroMart/app/core/catalog"

	"github.com/zeromicro/go-zero/core/logx"
)

// Pipeline drives one conversation turn: extract intents from the
// transcript, resolve item names against the catalog, and hand back the cart
// updates ready for the reducer. Every failure on the way degrades to "no
// updates this turn"; the pipeline never surfaces an error to its caller.
type Pipeline struct {
	log       logx.Logger
	extractor Extractor
	items     []catalog.Item
}

func NewPipeline(logger logx.Logger, extractor Extractor, items []catalog.Item) *Pipeline {
	return &Pipeline{
		log:       logger,
		extractor: extractor,
		items:     items,
	}
}

// BuildUpdates returns the resolved updates of one turn plus whether the
// conversation asked to check out. Checkout is surfaced to the caller and
// never folded into the cart here.
func (p *Pipeline) BuildUpdates(ctx context.Context, transcript []Message) ([]cart.Update, bool) {
	updates := make([]cart.Update, 0)
	if p == nil || p.extractor == nil {
		return updates, false
	}

	intents, err := p.extractor.Extract(ctx, transcript, p.items)
	if err != nil {
		p.log.Errorf("intent extraction failed, turn yields no updates: %v", err)
		return updates, false
	}

	checkout := false
	for _, intent := range intents {
		switch intent.Action {
		case ActionAdd, ActionRemove:
			if intent.ItemName == "" {
				continue
			}
			item, err := catalog.Resolve(p.items, intent.ItemName)
			if err != nil {
				p.log.Infof("dropping %s intent, item %q not in catalog", intent.Action, intent.ItemName)
				continue
			}
			updates = append(updates, cart.Update{
				Action:   intent.Action,
				Item:     &item,
				Quantity: intent.Quantity,
			})
		case ActionClear:
			updates = append(updates, cart.Update{Action: cart.ActionClear})
		case ActionCheckout:
			checkout = true
		}
	}

	return updates, checkout
}
