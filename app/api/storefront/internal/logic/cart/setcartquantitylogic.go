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

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type SetCartQuantityLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSetCartQuantityLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SetCartQuantityLogic {
	return &SetCartQuantityLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// SetCartQuantity pins a line to the requested quantity; below 1 the line is
// removed, mirroring the quantity stepper in the cart view.
func (l *SetCartQuantityLogic) SetCartQuantity(req *types.SetCartQuantityRequest) (resp *types.CartActionResponse, err error) {
	if req == nil || req.ItemId == "" {
		return nil, errors.New(int(errno.InvalidParam), "invalid cart payload")
	}

	sessionId, err := util.SessionIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	var lines []corecart.Line
	l.svcCtx.Turns.Do(sessionId, func() {
		lines, err = helper.LoadCart(l.ctx, l.svcCtx.CartStore, sessionId)
		if err != nil {
			return
		}
		lines = corecart.SetQuantity(lines, req.ItemId, req.Quantity)
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
