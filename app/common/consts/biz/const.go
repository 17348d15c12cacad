package biz

import "time"

type CtxKey string

const (
	SESSION_KEY CtxKey = "session_id"

	SessionExpire = time.Hour * 24

	SESSIONTOKEN = "session_token"
)
