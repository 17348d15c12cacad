// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package cart

import (
	"context"

	"ElectroMart/app/api/storefront/internal/logic/helper"
	"ElectroMart/app/api/storefront/internal/svc"
	"ElectroMart/app/api/storefront/internal/types"
	"ElectroMart/app/common/consts/errno"
	"ElectroMart/app/common/util"
	corecart "ElectroMart/app/core/cart"
	"ElectroMart/app/core/catalog"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type AddCartItemLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewAddCartItemLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AddCartItemLogic {
	return &AddCartItemLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// AddCartItem is the direct add-to-cart control: it increments the item's
// line by one. The conversational path sets quantities instead; the
// difference is deliberate.
func (l *AddCartItemLogic) AddCartItem(req *types.AddCartItemRequest) (resp *types.CartActionResponse, err error) {
	if req == nil || req.ItemId == "" {
		return nil, errors.New(int(errno.InvalidParam), "invalid cart payload")
	}

	sessionId, err := util.SessionIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	var item *catalog.Item
	for _, it := range l.svcCtx.Catalog {
		if it.Id == req.ItemId {
			found := it
			item = &found
			break
		}
	}
	if item == nil {
		return nil, errors.New(int(errno.ItemNotFound), "item not in catalog")
	}

	// Runs under the session lock so it cannot interleave with a
	// conversation turn's own load and put.
	var lines []corecart.Line
	l.svcCtx.Turns.Do(sessionId, func() {
		lines, err = helper.LoadCart(l.ctx, l.svcCtx.CartStore, sessionId)
		if err != nil {
			return
		}
		lines = corecart.Increment(lines, *item)
		err = l.svcCtx.CartStore.Put(l.ctx, sessionId, lines)
	})
	if err != nil {
		l.Logger.Error("logic: update cart failed: ", err)
		return nil, errors.New(int(errno.CartUnavailable), "cart unavailable")
	}

	resp = &types.CartActionResponse{
		StatusCode: errno.StatusOK,
		StatusMsg:  "ok",
		Lines:      helper.ToCartLines(lines),
		Total:      corecart.Total(lines),
	}

	return
}
