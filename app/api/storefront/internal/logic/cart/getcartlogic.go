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

type GetCartLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetCartLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetCartLogic {
	return &GetCartLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetCartLogic) GetCart() (resp *types.GetCartResponse, err error) {
	sessionId, err := util.SessionIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	lines, err := helper.LoadCart(l.ctx, l.svcCtx.CartStore, sessionId)
	if err != nil {
		l.Logger.Error("logic: load cart failed: ", err)
		return nil, errors.New(int(errno.CartUnavailable), "cart unavailable")
	}

	resp = &types.GetCartResponse{
		StatusCode: errno.StatusOK,
		StatusMsg:  "ok",
		Lines:      helper.ToCartLines(lines),
		Total:      corecart.Total(lines),
	}

	return
}
