// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package catalog

import (
	"net/http"

	"ElectroMart/app/api/storefront/internal/logic/catalog"
	"ElectroMart/app/api/storefront/internal/svc"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func ListCatalogItemsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := catalog.NewListCatalogItemsLogic(r.Context(), svcCtx)
		resp, err := l.ListCatalogItems()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
