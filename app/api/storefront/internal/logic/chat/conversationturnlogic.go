// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package chat

import (
	"context"

	"ElectroMart/app/api/storefront/internal/logic/helper"
	"ElectroMart/app/api/storefront/internal/svc"
	"ElectroMart/app/api/storefront/internal/types"
	"ElectroMart/app/common/consts/errno"
	"ElectroMart/app/common/util"
	corecart "ElectroMart/app/core/cart"
	"ElectroMart/app/services/assistant"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type ConversationTurnLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewConversationTurnLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ConversationTurnLogic {
	return &ConversationTurnLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// ConversationTurn runs one round of transcript through the assistant
// pipeline and folds the resulting updates into the session cart. Turns of
// one session are serialized; a turn superseded by a newer one while its
// extraction was pending is discarded and reports Applied=false with the
// cart as the newer turn left it.
func (l *ConversationTurnLogic) ConversationTurn(req *types.ConversationTurnRequest) (resp *types.ConversationTurnResponse, err error) {
	if req == nil || len(req.Transcript) == 0 {
		return nil, errors.New(int(errno.InvalidParam), "empty transcript")
	}

	sessionId, err := util.SessionIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	transcript := make([]assistant.Message, 0, len(req.Transcript))
	for _, m := range req.Transcript {
		transcript = append(transcript, assistant.Message{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	token := l.svcCtx.Turns.Begin(sessionId)

	// the only suspending step; runs outside the session lock so a newer
	// turn can supersede this one
	updates, checkoutRequested := l.svcCtx.Pipeline.BuildUpdates(l.ctx, transcript)

	var lines []corecart.Line
	var storeErr error
	applied := l.svcCtx.Turns.Commit(sessionId, token, func() {
		lines, storeErr = helper.LoadCart(l.ctx, l.svcCtx.CartStore, sessionId)
		if storeErr != nil {
			return
		}
		if len(updates) > 0 {
			lines = corecart.Reduce(lines, updates)
			storeErr = l.svcCtx.CartStore.Put(l.ctx, sessionId, lines)
		}
	})
	if storeErr != nil {
		l.Logger.Error("logic: conversation turn cart store failed: ", storeErr)
		return nil, errors.New(int(errno.CartUnavailable), "cart unavailable")
	}
	if !applied {
		l.Logger.Infof("conversation turn superseded, discarding %d updates", len(updates))
		lines, err = helper.LoadCart(l.ctx, l.svcCtx.CartStore, sessionId)
		if err != nil {
			l.Logger.Error("logic: load cart failed: ", err)
			return nil, errors.New(int(errno.CartUnavailable), "cart unavailable")
		}
	}

	resp = &types.ConversationTurnResponse{
		StatusCode:        errno.StatusOK,
		StatusMsg:         "ok",
		Lines:             helper.ToCartLines(lines),
		Total:             corecart.Total(lines),
		CheckoutRequested: checkoutRequested,
		Applied:           applied,
	}

	return
}
