// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorKind identifies a business error reported by the fare system for a
// rejected card scan.
type ErrorKind int

const (
	// ErrorKindUnknown is any error type the kiosk has no tailored card for.
	ErrorKindUnknown ErrorKind = iota
	// ErrorKindUserNotFound is reported when the card is not registered.
	ErrorKindUserNotFound
	// ErrorKindInsufficientBalance is reported when the balance does not
	// cover the fare.
	ErrorKindInsufficientBalance
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindUserNotFound:
		return "USER_NOT_FOUND"
	case ErrorKindInsufficientBalance:
		return "INSUFFICIENT_BALANCE"
	default:
		return "UNKNOWN"
	}
}

// ScanOutcome is the classified result of one card scan. It is either a
// [ScanSuccess] or a [ScanFailure].
type ScanOutcome interface {
	isScanOutcome()
}

// ScanSuccess describes an approved tap. Monetary values are copied from the
// server message as-is; the kiosk never recomputes them.
type ScanSuccess struct {
	CardID        string
	HolderImage   string
	HolderName    string
	HolderSurname string
	Fare          float64
	BalanceBefore float64
	BalanceAfter  float64
}

// ScanFailure describes a rejected tap. Message is the server text verbatim.
type ScanFailure struct {
	Kind    ErrorKind
	Message string
}

func (ScanSuccess) isScanOutcome() {}
func (ScanFailure) isScanOutcome() {}

// FullName joins holder name and surname with a single space.
func (s ScanSuccess) FullName() string {
	switch {
	case s.HolderName == "":
		return s.HolderSurname
	case s.HolderSurname == "":
		return s.HolderName
	default:
		return s.HolderName + " " + s.HolderSurname
	}
}
