package contact

import "context"

type Service interface {
	SendMessage(ctx context.Context, req SendMessageReq) error
}
