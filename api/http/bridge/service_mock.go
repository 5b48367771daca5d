package bridge

import (
	"context"

	"github.com/deskrelay/bot-telegram/model/profile"
)

type serviceMock struct{}

func NewServiceMock() Service {
	return serviceMock{}
}

func (sm serviceMock) Profile(ctx context.Context, userId int64) (p profile.Profile, err error) {
	switch userId {
	case 500:
		err = ErrUnavailable
	case 504:
		err = context.DeadlineExceeded
	default:
		p = profile.Profile{
			Name:      "John",
			Sales:     "42",
			Balance:   "1500",
			Status:    "gold",
			Joined:    "2024-01-05",
			Referrals: "3",
			Purchases: "9",
		}
	}
	return
}
