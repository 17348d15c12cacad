package util

import (
	"context"
	"net/http"

	"ElectroMart/app/common/consts/biz"
	"ElectroMart/app/common/consts/errno"

	"github.com/zeromicro/x/errors"
)

func SessionIdFromCtx(ctx context.Context) (string, error) {
	if ctx == nil {
		return "", errors.New(int(errno.SessionEmpty), "missing context")
	}

	switch val := ctx.Value(biz.SESSION_KEY).(type) {
	case string:
		if val != "" {
			return val, nil
		}
	}

	return "", errors.New(int(errno.SessionEmpty), "no session")
}

func InjectSessionId2Ctx(r *http.Request, sessionId string) {
	ctx := context.WithValue(r.Context(), biz.SESSION_KEY, sessionId)
	*r = *r.WithContext(ctx)
}
