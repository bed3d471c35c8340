package middleware

import "context"

// requestInfo is filled in by inner middleware and read back by RequestLogger
// once the handler chain returns.
type requestInfo struct {
	clientID string
}

type requestInfoKey struct{}

func withRequestInfo(ctx context.Context) (context.Context, *requestInfo) {
	info := &requestInfo{}
	return context.WithValue(ctx, requestInfoKey{}, info), info
}

func requestInfoFrom(ctx context.Context) (*requestInfo, bool) {
	info, ok := ctx.Value(requestInfoKey{}).(*requestInfo)
	return info, ok
}
