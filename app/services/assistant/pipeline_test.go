package assistant

import (
	"context"
	"errors"
	"testing"

	"ElectroMart/app/core/cart"
	"ElectroMart/app/core/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/logx"
)

type stubExtractor struct {
	intents []OrderIntent
	err     error
}

func (s *stubExtractor) Extract(context.Context, []Message, []catalog.Item) ([]OrderIntent, error) {
	return s.intents, s.err
}

func testMenu() []catalog.Item {
	return []catalog.Item{
		{Id: "1", Name: "Classic Cheeseburger", Price: 6.5},
		{Id: "2", Name: "Iced Coffee", Price: 3.5},
	}
}

func testTranscript() []Message {
	return []Message{
		{Role: "assistant", Content: "Welcome to ElectroMart, how can I help?"},
		{Role: "user", Content: "add two burgers"},
	}
}

func newTestPipeline(ext Extractor) *Pipeline {
	return NewPipeline(logx.WithContext(context.Background()), ext, testMenu())
}

func TestBuildUpdatesResolvesAndOrders(t *testing.T) {
	t.Parallel()

	p := newTestPipeline(&stubExtractor{intents: []OrderIntent{
		{Action: "add", ItemName: "burger", Quantity: 2},
		{Action: "remove", ItemName: "coffee", Quantity: 1},
		{Action: "clear"},
	}})

	updates, checkout := p.BuildUpdates(context.Background(), testTranscript())

	require.Len(t, updates, 3)
	assert.False(t, checkout)
	assert.Equal(t, cart.ActionAdd, updates[0].Action)
	assert.Equal(t, "1", updates[0].Item.Id)
	assert.EqualValues(t, 2, updates[0].Quantity)
	assert.Equal(t, cart.ActionRemove, updates[1].Action)
	assert.Equal(t, "2", updates[1].Item.Id)
	assert.Equal(t, cart.ActionClear, updates[2].Action)
	assert.Nil(t, updates[2].Item)
}

func TestBuildUpdatesDropsUnresolvableItems(t *testing.T) {
	t.Parallel()

	p := newTestPipeline(&stubExtractor{intents: []OrderIntent{
		{Action: "add", ItemName: "pizza", Quantity: 1},
		{Action: "add", ItemName: "burger", Quantity: 1},
		{Action: "remove"},
	}})

	updates, _ := p.BuildUpdates(context.Background(), testTranscript())

	// only the resolvable add survives; the rest of the batch still applies
	require.Len(t, updates, 1)
	assert.Equal(t, "1", updates[0].Item.Id)
}

func TestBuildUpdatesSurfacesCheckoutWithoutApplyingIt(t *testing.T) {
	t.Parallel()

	p := newTestPipeline(&stubExtractor{intents: []OrderIntent{
		{Action: "add", ItemName: "burger", Quantity: 1},
		{Action: "checkout"},
	}})

	updates, checkout := p.BuildUpdates(context.Background(), testTranscript())

	require.Len(t, updates, 1)
	assert.True(t, checkout)
}

func TestBuildUpdatesExtractionFailureYieldsNoUpdates(t *testing.T) {
	t.Parallel()

	p := newTestPipeline(&stubExtractor{err: errors.New("model unreachable")})

	updates, checkout := p.BuildUpdates(context.Background(), testTranscript())

	assert.Empty(t, updates)
	assert.False(t, checkout)
}

func TestBuildUpdatesWithoutExtractorYieldsNoUpdates(t *testing.T) {
	t.Parallel()

	p := newTestPipeline(nil)

	updates, checkout := p.BuildUpdates(context.Background(), testTranscript())

	assert.Empty(t, updates)
	assert.False(t, checkout)
}

// A "add 2 burgers" turn against a one-item menu ends as a single line of
// two at $13.00.
func TestConversationToCartEndToEnd(t *testing.T) {
	t.Parallel()

	menu := []catalog.Item{{Id: "1", Name: "Classic Cheeseburger", Price: 6.5}}
	p := NewPipeline(logx.WithContext(context.Background()), &stubExtractor{intents: []OrderIntent{
		{Action: "add", ItemName: "burger", Quantity: 2},
	}}, menu)

	updates, _ := p.BuildUpdates(context.Background(), testTranscript())
	lines := cart.Reduce(nil, updates)

	require.Len(t, lines, 1)
	assert.Equal(t, "1", lines[0].Item.Id)
	assert.EqualValues(t, 2, lines[0].Quantity)
	assert.InDelta(t, 13.00, cart.Total(lines), 1e-9)
}
