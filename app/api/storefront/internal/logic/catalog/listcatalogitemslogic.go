// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package catalog

import (
	"context"

	"ElectroMart/app/api/storefront/internal/logic/helper"
	"ElectroMart/app/api/storefront/internal/svc"
	"ElectroMart/app/api/storefront/internal/types"
	"ElectroMart/app/common/consts/errno"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListCatalogItemsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListCatalogItemsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListCatalogItemsLogic {
	return &ListCatalogItemsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListCatalogItemsLogic) ListCatalogItems() (resp *types.ListCatalogResponse, err error) {
	items := make([]types.CatalogItem, 0, len(l.svcCtx.Catalog))
	for _, item := range l.svcCtx.Catalog {
		items = append(items, helper.ToCatalogItem(item))
	}

	resp = &types.ListCatalogResponse{
		StatusCode: errno.StatusOK,
		StatusMsg:  "ok",
		Items:      items,
	}

	return
}
