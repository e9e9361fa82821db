package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

type Gateway struct {
	client *resty.Client
}

func New(baseUrl, secret string) *Gateway {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseUrl, "/")).
		SetHeader("accept", "application/json")
	if secret != "" {
		client.SetAuthToken(secret)
	}
	return &Gateway{client: client}
}

func (g *Gateway) Notify(ctx context.Context, notify PushNotifyRequest) error {
	var result BaseResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(notify).
		SetResult(&result).
		SetError(&result).
		Post("/v1/push/notify")
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("code:%d msg:%s details:%s", result.Code, result.Msg, result.Details)
	}
	if result.Code != 0 {
		return errors.New(result.Msg)
	}
	return nil
}
