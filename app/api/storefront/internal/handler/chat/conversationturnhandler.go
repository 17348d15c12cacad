// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package chat

import (
	"net/http"

	"ElectroMart/app/api/storefront/internal/logic/chat"
	"ElectroMart/app/api/storefront/internal/svc"
	"ElectroMart/app/api/storefront/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func ConversationTurnHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ConversationTurnRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := chat.NewConversationTurnLogic(r.Context(), svcCtx)
		resp, err := l.ConversationTurn(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
