package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the flow-level Prometheus metrics. Wallet RPC and HTTP
// metrics are registered by their own packages.
type Metrics struct {
	WithdrawalsCompleted prometheus.Counter
	WithdrawalAmount     prometheus.Histogram
	TipsCompleted        prometheus.Counter
	TipAmount            prometheus.Histogram
	FlowErrors           *prometheus.CounterVec
	LockContention       prometheus.Counter
	BalanceChecks        prometheus.Counter
	RosterAccounts       prometheus.Gauge
	NotificationsSent    *prometheus.CounterVec
	NotificationErrors   *prometheus.CounterVec
}

// New creates and registers all flow metrics.
func New() *Metrics {
	// Duff buckets from one duff up to 100 tao.
	amountBuckets := prometheus.ExponentialBuckets(1, 10, 11)

	return &Metrics{
		WithdrawalsCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tipbot_withdrawals_completed_total",
			Help: "Total number of completed on-chain withdrawals",
		}),
		WithdrawalAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "tipbot_withdrawal_amount_duffs",
			Help:    "Withdrawal amounts in duffs",
			Buckets: amountBuckets,
		}),
		TipsCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tipbot_tips_completed_total",
			Help: "Total number of completed tips",
		}),
		TipAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "tipbot_tip_amount_duffs",
			Help:    "Tip amounts in duffs",
			Buckets: amountBuckets,
		}),
		FlowErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tipbot_flow_errors_total",
				Help: "Flow failures by flow and error type",
			},
			[]string{"flow", "error_type"},
		),
		LockContention: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tipbot_lock_contention_total",
			Help: "Flows rejected because the account was busy",
		}),
		BalanceChecks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tipbot_balance_checks_total",
			Help: "Total number of balance queries served",
		}),
		RosterAccounts: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "tipbot_roster_accounts",
			Help: "Accounts currently known to the roster",
		}),
		NotificationsSent: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tipbot_notifications_sent_total",
				Help: "Chat notifications delivered by kind",
			},
			[]string{"kind"},
		),
		NotificationErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tipbot_notification_errors_total",
				Help: "Chat notification delivery failures by kind",
			},
			[]string{"kind"},
		),
	}
}
