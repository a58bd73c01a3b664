package utils

import (
	"context"

	"github.com/mmdatafocus/jewelvault_backend/appctx"
)

var (
	ContextKeyUserId        = appctx.ContextKeyUserId
	ContextKeyStoreId       = appctx.ContextKeyStoreId
	ContextKeyUserMobile    = appctx.ContextKeyUserMobile
	ContextKeyCorrelationId = appctx.ContextKeyCorrelationId
)

func GetUserIdFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, ContextKeyUserId)
}

func GetStoreIdFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, ContextKeyStoreId)
}

func GetUserMobileFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, ContextKeyUserMobile)
}

func GetCorrelationIdFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, ContextKeyCorrelationId)
}

func SetUserIdInContext(ctx context.Context, userId string) context.Context {
	return appctx.Set(ctx, ContextKeyUserId, userId)
}

func SetStoreIdInContext(ctx context.Context, storeId string) context.Context {
	return appctx.Set(ctx, ContextKeyStoreId, storeId)
}

func SetUserMobileInContext(ctx context.Context, mobile string) context.Context {
	return appctx.Set(ctx, ContextKeyUserMobile, mobile)
}

func SetCorrelationIdInContext(ctx context.Context, correlationId string) context.Context {
	return appctx.Set(ctx, ContextKeyCorrelationId, correlationId)
}
