package biodataform

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dmitrymomot/biodata/pkg/biodata"
	"github.com/dmitrymomot/biodata/pkg/preview"
)

// Metrics counts form activity. A nil *Metrics records nothing.
type Metrics struct {
	factory promauto.Factory

	fieldValidations *prometheus.CounterVec
	submissions      *prometheus.CounterVec
	photoSelections  *prometheus.CounterVec
	previewsRevoked  *prometheus.CounterVec
}

// NewMetrics registers the form metrics with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		factory: factory,
		fieldValidations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "biodata_field_validations_total",
				Help: "Field validations by field and outcome",
			},
			[]string{"field", "outcome"}, // outcome is a biodata.Reason
		),
		submissions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "biodata_submissions_total",
				Help: "Form submissions by outcome",
			},
			[]string{"outcome"}, // valid or invalid
		),
		photoSelections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "biodata_photo_selections_total",
				Help: "Photo selections by decision",
			},
			[]string{"decision"},
		),
		previewsRevoked: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "biodata_previews_revoked_total",
				Help: "Preview references released by reason",
			},
			[]string{"reason"},
		),
	}
}

// TrackPreviewStore exposes the number of live preview references.
func (m *Metrics) TrackPreviewStore(store preview.Counter) {
	if m == nil || store == nil {
		return
	}
	m.factory.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "biodata_previews_live",
			Help: "Live preview references",
		},
		func() float64 { return float64(store.Len()) },
	)
}

func (m *Metrics) observeField(r biodata.Result) {
	if m == nil {
		return
	}
	m.fieldValidations.WithLabelValues(r.Field.String(), string(r.Reason)).Inc()
}

func (m *Metrics) observeSubmit(res biodata.FormResult) {
	if m == nil {
		return
	}
	outcome := "valid"
	if !res.Valid {
		outcome = "invalid"
	}
	m.submissions.WithLabelValues(outcome).Inc()
	for _, r := range res.Results {
		m.observeField(r)
	}
}

func (m *Metrics) observePhoto(d biodata.PhotoDecision) {
	if m == nil {
		return
	}
	m.photoSelections.WithLabelValues(d.String()).Inc()
}

// ObserveRevoke counts a released preview. It matches the signature of
// preview.WithRevokeCallback.
func (m *Metrics) ObserveRevoke(_ preview.Object, reason preview.RevokeReason) {
	if m == nil {
		return
	}
	m.previewsRevoked.WithLabelValues(string(reason)).Inc()
}
