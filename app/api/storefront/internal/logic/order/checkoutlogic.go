// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package order

import (
	"context"
	"time"

	"ElectroMart/app/api/storefront/internal/logic/helper"
	"ElectroMart/app/api/storefront/internal/mq"
	"ElectroMart/app/api/storefront/internal/svc"
	"ElectroMart/app/api/storefront/internal/types"
	"ElectroMart/app/common/consts/errno"
	"ElectroMart/app/common/snowflake"
	"ElectroMart/app/common/util"
	corecart "ElectroMart/app/core/cart"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type CheckoutLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCheckoutLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CheckoutLogic {
	return &CheckoutLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Checkout turns the session cart into a receipt, clears the cart and
// publishes the order event. The cart must not be empty.
func (l *CheckoutLogic) Checkout(req *types.CheckoutRequest) (resp *types.CheckoutResponse, err error) {
	sessionId, err := util.SessionIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	// Read and clear under the session lock so a concurrent turn or cart
	// edit cannot slip between the receipt snapshot and the clear.
	var lines []corecart.Line
	l.svcCtx.Turns.Do(sessionId, func() {
		lines, err = helper.LoadCart(l.ctx, l.svcCtx.CartStore, sessionId)
		if err != nil || len(lines) == 0 {
			return
		}
		err = l.svcCtx.CartStore.Clear(l.ctx, sessionId)
	})
	if err != nil {
		l.Logger.Error("logic: checkout cart access failed: ", err)
		return nil, errors.New(int(errno.CartUnavailable), "cart unavailable")
	}
	if len(lines) == 0 {
		return nil, errors.New(int(errno.CartEmpty), "cart is empty")
	}

	orderId := snowflake.NextOrderID()
	total := corecart.Total(lines)

	evt := mq.OrderPlacedEvent{
		OrderId:   orderId,
		SessionId: sessionId,
		Total:     total,
		PlacedAt:  time.Now().Unix(),
	}
	for _, line := range lines {
		evt.Lines = append(evt.Lines, mq.OrderLine{
			ItemId:   line.Item.Id,
			Name:     line.Item.Name,
			Price:    line.Item.Price,
			Quantity: line.Quantity,
		})
	}
	if err := mq.PublishOrderPlaced(l.svcCtx, evt); err != nil {
		// the receipt still stands; the event is best effort
		l.Logger.Error("logic: publish order event failed: ", err)
	}

	resp = &types.CheckoutResponse{
		StatusCode: errno.StatusOK,
		StatusMsg:  "ok",
		OrderId:    orderId,
		Lines:      helper.ToCartLines(lines),
		Total:      total,
	}

	return
}
