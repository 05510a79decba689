// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package scan turns raw scan feed frames into typed outcomes.
//
// A frame is JSON with a "type" discriminator. "success" frames carry the
// card holder and the charged amounts; every other type is a business error
// whose details live in a nested "error" object.
package scan

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-fare-card/models"
)

const typeSuccess = "success"

// errorKinds maps the server error type to a tailored kind. Matching is exact
// and case-sensitive.
var errorKinds = map[string]models.ErrorKind{
	"USER_NOT_FOUND":       models.ErrorKindUserNotFound,
	"INSUFFICIENT_BALANCE": models.ErrorKindInsufficientBalance,
}

// frame is the wire shape. Pointers distinguish absent fields from zero
// values.
type frame struct {
	Type *string `json:"type"`

	ID         *string  `json:"id"`
	Image      *string  `json:"image"`
	Name       *string  `json:"name"`
	Surname    *string  `json:"surname"`
	Fare       *float64 `json:"fare"`
	OldBalance *float64 `json:"old_balance"`
	Balance    *float64 `json:"balance"`

	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Classify parses one feed frame. It returns an error wrapping
// [ErrMalformedMessage] when the frame is not JSON, has no type, or is a
// success frame missing any holder or amount field.
func Classify(raw []byte) (models.ScanOutcome, error) {
	var f frame
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}

	if f.Type == nil {
		return nil, fmt.Errorf("%w: missing type", ErrMalformedMessage)
	}

	if *f.Type == typeSuccess {
		return classifySuccess(f)
	}

	return classifyFailure(f), nil
}

func classifySuccess(f frame) (models.ScanOutcome, error) {
	missing := make([]string, 0)
	if f.ID == nil {
		missing = append(missing, "id")
	}
	if f.Image == nil {
		missing = append(missing, "image")
	}
	if f.Name == nil {
		missing = append(missing, "name")
	}
	if f.Surname == nil {
		missing = append(missing, "surname")
	}
	if f.Fare == nil {
		missing = append(missing, "fare")
	}
	if f.OldBalance == nil {
		missing = append(missing, "old_balance")
	}
	if f.Balance == nil {
		missing = append(missing, "balance")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: success without %v", ErrMalformedMessage, missing)
	}

	return models.ScanSuccess{
		CardID:        *f.ID,
		HolderImage:   *f.Image,
		HolderName:    *f.Name,
		HolderSurname: *f.Surname,
		Fare:          *f.Fare,
		BalanceBefore: *f.OldBalance,
		BalanceAfter:  *f.Balance,
	}, nil
}

func classifyFailure(f frame) models.ScanFailure {
	if f.Error == nil {
		return models.ScanFailure{Kind: models.ErrorKindUnknown}
	}

	kind, ok := errorKinds[f.Error.Type]
	if !ok {
		kind = models.ErrorKindUnknown
	}

	return models.ScanFailure{Kind: kind, Message: f.Error.Message}
}
