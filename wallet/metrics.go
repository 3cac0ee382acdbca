// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wallet

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/thor-tools/txkit/utils/wrappers"
)

const (
	namespace = "txkit_wallet"
	roleLabel = "role"
)

type metrics struct {
	signatures   *prometheus.CounterVec
	signFailures prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		signatures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "signatures",
				Help:      "Number of signatures added to transactions",
			},
			[]string{roleLabel},
		),
		signFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sign_failures",
			Help:      "Number of signing attempts that failed",
		}),
	}

	errs := wrappers.Errs{}
	errs.Add(
		reg.Register(m.signatures),
		reg.Register(m.signFailures),
	)
	return m, errs.Err
}
