// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PaymentMethod is the top-up channel of a balance entry.
type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentPix        PaymentMethod = "PIX"
)

// BalanceEntry is one top-up returned by GET /user/balance/history.
// Date is kept in the API layout (see [APITimeLayout]).
type BalanceEntry struct {
	ID            string        `json:"id"`
	UserID        string        `json:"id_user"`
	BalanceBefore float64       `json:"old_balance"`
	BalanceAfter  float64       `json:"balance"`
	Method        PaymentMethod `json:"type"`
	Value         float64       `json:"value"`
	Date          string        `json:"date"`
}

// FareEntry is one charged trip returned by GET /user/fare/history/{id}.
type FareEntry struct {
	ID      string  `json:"id"`
	Date    string  `json:"date"`
	BusName string  `json:"name_bus"`
	Fare    float64 `json:"fare_bus"`
}

// APITimeLayout is the timestamp layout used by the fare API.
const APITimeLayout = "2006-01-02T15:04:05-0700"
