// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

type CatalogItem struct {
	Id          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Emoji       string  `json:"emoji"`
}

type ListCatalogResponse struct {
	StatusCode int           `json:"code"`
	StatusMsg  string        `json:"msg"`
	Items      []CatalogItem `json:"items"`
}

type CartLine struct {
	Item     CatalogItem `json:"item"`
	Quantity int64       `json:"quantity"`
}

type GetCartResponse struct {
	StatusCode int        `json:"code"`
	StatusMsg  string     `json:"msg"`
	Lines      []CartLine `json:"lines"`
	Total      float64    `json:"total"`
}

type AddCartItemRequest struct {
	ItemId string `json:"item_id"`
}

type SetCartQuantityRequest struct {
	ItemId   string `json:"item_id"`
	Quantity int64  `json:"quantity"`
}

type RemoveCartItemRequest struct {
	ItemId string `json:"item_id"`
}

type CartActionResponse struct {
	StatusCode int        `json:"code"`
	StatusMsg  string     `json:"msg"`
	Lines      []CartLine `json:"lines"`
	Total      float64    `json:"total"`
}

type TranscriptMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ConversationTurnRequest struct {
	Transcript []TranscriptMessage `json:"transcript"`
}

type ConversationTurnResponse struct {
	StatusCode        int        `json:"code"`
	StatusMsg         string     `json:"msg"`
	Lines             []CartLine `json:"lines"`
	Total             float64    `json:"total"`
	CheckoutRequested bool       `json:"checkout_requested"`
	Applied           bool       `json:"applied"`
}

type CheckoutRequest struct {
}

type CheckoutResponse struct {
	StatusCode int        `json:"code"`
	StatusMsg  string     `json:"msg"`
	OrderId    string     `json:"order_id"`
	Lines      []CartLine `json:"lines"`
	Total      float64    `json:"total"`
}
