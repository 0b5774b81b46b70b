package service

import (
	"context"

	"voidspace-backend/internal/domains/newsletter/model"
)

type NewsletterService interface {
	Subscribe(ctx context.Context, req *model.SubscribeRequest) (*model.SubscribeResponse, error)
	Unsubscribe(ctx context.Context, req *model.UnsubscribeRequest) error
	SendCampaign(ctx context.Context, req *model.SendCampaignRequest) (*model.CampaignResult, error)
	Stats(ctx context.Context) (*model.Stats, error)
}
