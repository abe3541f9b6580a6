// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package strategy

import (
	"fmt"
	"time"
)

type Kind uint8

const (
	KindNative  Kind = iota // native
	KindPolling             // polling
)

func (k Kind) String() string {
	switch k {
	case KindNative:
		return "native"
	case KindPolling:
		return "polling"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Strategy describes how a session gets notified about changes.
// Interval and CompareContents only apply to KindPolling.
type Strategy struct {
	Kind            Kind
	Interval        time.Duration
	CompareContents bool
}

const DefaultPollInterval = 2 * time.Second

func Native() Strategy {
	return Strategy{Kind: KindNative}
}

func Polling(interval time.Duration, compareContents bool) Strategy {
	return Strategy{
		Kind:            KindPolling,
		Interval:        interval,
		CompareContents: compareContents,
	}
}

func (s Strategy) String() string {
	if s.Kind != KindPolling {
		return s.Kind.String()
	}

	return fmt.Sprintf("polling(%s, compare contents: %t)",
		s.Interval, s.CompareContents)
}
