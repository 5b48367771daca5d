package profile

import (
	"strings"
)

// Profile is the descriptive context attached to a ticket at creation
// time. All fields are display strings: the values come either from an
// untrusted deep link payload or from the bridge service, and the bot
// never computes with them.
type Profile struct {
	Name      string
	Sales     string
	Balance   string
	Status    string
	Joined    string
	Referrals string
	Purchases string
}

const ValueUnknown = "Unknown"
const ValueNone = "N/A"

func Unknown(name string) (p Profile) {
	p = Profile{
		Name:      name,
		Sales:     ValueNone,
		Balance:   ValueNone,
		Status:    ValueUnknown,
		Joined:    ValueNone,
		Referrals: ValueNone,
		Purchases: ValueNone,
	}
	return
}

const payloadSep = "_"
const payloadFieldCountMin = 4

// FromPayload decodes the start deep link payload: underscore-delimited
// sales, balance, status and join date tokens. Extra tokens are ignored,
// fewer than 4 means the payload is malformed and discarded.
func FromPayload(name, payload string) (p Profile, ok bool) {
	p = Unknown(name)
	if payload == "" {
		return
	}
	fields := strings.Split(payload, payloadSep)
	if len(fields) < payloadFieldCountMin {
		return
	}
	p.Sales = fields[0]
	p.Balance = fields[1]
	p.Status = fields[2]
	p.Joined = fields[3]
	ok = true
	return
}
