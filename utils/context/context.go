package context

import (
	"context"

	"github.com/muhammadheryan/table-booking/constant"
)

func GetUsername(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.UsernameKey)
	if v == nil {
		return "", false
	}
	username, ok := v.(string)
	return username, ok
}

func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, constant.UsernameKey, username)
}
