package middleware

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskgo/task-service/api/transport"
	"github.com/taskgo/task-service/domain"
)

// HeaderUserID carries the caller's numeric identity, set by a trusted
// upstream gateway. The value is not verified here.
const HeaderUserID = "X-User-Id"

// UserIDKey is the request user-value under which the parsed identity is stored.
const UserIDKey = "user_id"

// Identity extracts the caller identity from the request header. A missing
// header yields 401, a non-integer value 400; the handler only runs once a
// parsed int64 is stored under UserIDKey.
func Identity(logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			raw := strings.TrimSpace(string(ctx.Request.Header.Peek(HeaderUserID)))
			if raw == "" {
				reject(ctx, fasthttp.StatusUnauthorized, domain.ErrMissingIdentity)
				return
			}

			userID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				logger.Warn("malformed identity header", zap.String("value", raw))
				reject(ctx, fasthttp.StatusBadRequest, domain.ErrInvalidIdentity)
				return
			}

			ctx.SetUserValue(UserIDKey, userID)
			next(ctx)
		}
	}
}

// UserID returns the identity stored by Identity, or false when absent.
func UserID(ctx *fasthttp.RequestCtx) (int64, bool) {
	userID, ok := ctx.UserValue(UserIDKey).(int64)
	return userID, ok
}

func reject(ctx *fasthttp.RequestCtx, status int, err *domain.Error) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(status)
	body, _ := json.Marshal(transport.NewError(string(err.Code), err.Message))
	ctx.SetBody(body)
}
