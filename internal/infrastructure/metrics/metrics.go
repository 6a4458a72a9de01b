package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// LedgerMetrics holds all prometheus metrics of the betting pool core.
type LedgerMetrics struct {
	BetsPlacedTotal       prometheus.CounterVec
	BetsPlacedStakeTotal  prometheus.CounterVec
	BetsSettledTotal      prometheus.CounterVec
	BetsSettledPayout     prometheus.CounterVec
	BetsVoidedTotal       prometheus.CounterVec
	CreditRejectionsTotal prometheus.CounterVec

	AwardsIssuedTotal      prometheus.CounterVec
	AwardUnitsIssuedTotal  prometheus.CounterVec
	AwardsVoidedTotal      prometheus.CounterVec
	FreePlayAppliedTotal   prometheus.CounterVec
	StatementsUpsertsTotal prometheus.CounterVec

	WeeksClosedTotal  prometheus.Counter
	WeekCloseDuration prometheus.Histogram
}

func NewLedgerMetrics() *LedgerMetrics {
	return &LedgerMetrics{
		BetsPlacedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bets_placed_total",
				Help: "Number of bets placed",
			},
			[]string{"member_id"},
		),

		BetsPlacedStakeTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bets_placed_stake_units_total",
				Help: "Total stake units placed, split by funding",
			},
			[]string{"member_id", "funding"},
		),

		BetsSettledTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bets_settled_total",
				Help: "Number of bets settled, by result",
			},
			[]string{"member_id", "result"},
		),

		BetsSettledPayout: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bets_settled_payout_units_total",
				Help: "Total cash payout units returned at settlement",
			},
			[]string{"member_id"},
		),

		BetsVoidedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bets_voided_total",
				Help: "Number of bets voided",
			},
			[]string{"member_id"},
		),

		CreditRejectionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "credit_rejections_total",
				Help: "Placements and edits rejected for exceeding available credit",
			},
			[]string{"member_id"},
		),

		AwardsIssuedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "free_play_awards_issued_total",
				Help: "Free play awards issued, by source",
			},
			[]string{"source"},
		),

		AwardUnitsIssuedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "free_play_award_units_issued_total",
				Help: "Free play units issued, by source",
			},
			[]string{"source"},
		),

		AwardsVoidedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "free_play_awards_voided_total",
				Help: "Free play awards voided",
			},
			[]string{"source"},
		),

		FreePlayAppliedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "free_play_applied_units_total",
				Help: "Free play units credited to member balances at week close",
			},
			[]string{"member_id"},
		),

		StatementsUpsertsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "week_statement_upserts_total",
				Help: "Week statement rows written or rewritten",
			},
			[]string{"week_id"},
		),

		WeeksClosedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "weeks_closed_total",
				Help: "Number of weeks closed",
			},
		),

		WeekCloseDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "week_close_duration_seconds",
				Help:    "Duration of the week close pipeline",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

func (m *LedgerMetrics) RecordBetPlaced(memberID string, stakeCash, stakeFreePlay int64) {
	m.BetsPlacedTotal.WithLabelValues(memberID).Inc()
	if stakeCash > 0 {
		m.BetsPlacedStakeTotal.WithLabelValues(memberID, "cash").Add(float64(stakeCash))
	}
	if stakeFreePlay > 0 {
		m.BetsPlacedStakeTotal.WithLabelValues(memberID, "free_play").Add(float64(stakeFreePlay))
	}
}

func (m *LedgerMetrics) RecordCreditRejection(memberID string) {
	m.CreditRejectionsTotal.WithLabelValues(memberID).Inc()
}

func (m *LedgerMetrics) RecordBetSettled(memberID, result string, payoutCashUnits int64) {
	m.BetsSettledTotal.WithLabelValues(memberID, result).Inc()
	if payoutCashUnits > 0 {
		m.BetsSettledPayout.WithLabelValues(memberID).Add(float64(payoutCashUnits))
	}
}

func (m *LedgerMetrics) RecordBetVoided(memberID string) {
	m.BetsVoidedTotal.WithLabelValues(memberID).Inc()
}

func (m *LedgerMetrics) RecordAwardIssued(source string, amountUnits int64) {
	m.AwardsIssuedTotal.WithLabelValues(source).Inc()
	m.AwardUnitsIssuedTotal.WithLabelValues(source).Add(float64(amountUnits))
}

func (m *LedgerMetrics) RecordAwardVoided(source string) {
	m.AwardsVoidedTotal.WithLabelValues(source).Inc()
}

func (m *LedgerMetrics) RecordFreePlayApplied(memberID string, amountUnits int64) {
	m.FreePlayAppliedTotal.WithLabelValues(memberID).Add(float64(amountUnits))
}

func (m *LedgerMetrics) RecordStatementUpsert(weekID string) {
	m.StatementsUpsertsTotal.WithLabelValues(weekID).Inc()
}

func (m *LedgerMetrics) RecordWeekClosed(durationSeconds float64) {
	m.WeeksClosedTotal.Inc()
	m.WeekCloseDuration.Observe(durationSeconds)
}
