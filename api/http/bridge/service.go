package bridge

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/deskrelay/bot-telegram/model/profile"
)

// Service is the optional profile lookup collaborator. It is queried
// once at ticket creation time and is never load bearing: callers
// degrade to placeholder values on any failure.
type Service interface {
	Profile(ctx context.Context, userId int64) (p profile.Profile, err error)
}

type service struct {
	clientHttp *http.Client
	uriBase    string
}

var ErrUnavailable = errors.New("profile bridge unavailable")

const fmtUriProfile = "%s/profile/%d"

type profileRec struct {
	Name      string `json:"name"`
	Sales     int64  `json:"sales"`
	Balance   string `json:"balance"`
	Status    string `json:"status"`
	Joined    string `json:"joined"`
	Referrals int64  `json:"referrals"`
	Purchases int64  `json:"purchases"`
}

func NewService(clientHttp *http.Client, uriBase string) Service {
	return service{
		clientHttp: clientHttp,
		uriBase:    uriBase,
	}
}

func (svc service) Profile(ctx context.Context, userId int64) (p profile.Profile, err error) {
	var req *http.Request
	req, err = http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf(fmtUriProfile, svc.uriBase, userId), nil)
	var resp *http.Response
	if err == nil {
		resp, err = svc.clientHttp.Do(req)
	}
	switch err {
	case nil:
		defer resp.Body.Close()
		switch resp.StatusCode {
		case http.StatusOK:
			var rec profileRec
			err = sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&rec)
			switch err {
			case nil:
				p = rec.convert()
			default:
				err = fmt.Errorf("%w: %s", ErrUnavailable, err)
			}
		default:
			err = fmt.Errorf("%w: response status %d", ErrUnavailable, resp.StatusCode)
		}
	default:
		err = fmt.Errorf("%w: %s", ErrUnavailable, err)
	}
	return
}

func (rec profileRec) convert() (p profile.Profile) {
	p = profile.Unknown(rec.Name)
	p.Sales = fmt.Sprintf("%d", rec.Sales)
	p.Referrals = fmt.Sprintf("%d", rec.Referrals)
	p.Purchases = fmt.Sprintf("%d", rec.Purchases)
	if rec.Balance != "" {
		p.Balance = rec.Balance
	}
	if rec.Status != "" {
		p.Status = rec.Status
	}
	if rec.Joined != "" {
		p.Joined = rec.Joined
	}
	return
}
