package observability

import (
	"github.com/riskibarqy/club-brackets/internal/domain/match"
	"github.com/riskibarqy/club-brackets/internal/platform/logging"
)

// BracketObserver logs and counts the fallback labels the resolver had to use.
type BracketObserver struct {
	logger  *logging.Logger
	metrics *Metrics
}

func NewBracketObserver(logger *logging.Logger, metrics *Metrics) *BracketObserver {
	if logger == nil {
		logger = logging.Default()
	}
	return &BracketObserver{logger: logger, metrics: metrics}
}

func (o *BracketObserver) UnknownStage(stage match.Stage) {
	o.logger.Warn("bracket stage has no known label", "stage", string(stage))
	if o.metrics != nil {
		o.metrics.unknownStages.Inc()
	}
}

func (o *BracketObserver) PairingFallback(stage match.Stage, matchIndex int) {
	o.logger.Debug("bracket position label used index-derived group pairing", "stage", string(stage), "match_index", matchIndex)
	if o.metrics != nil {
		o.metrics.pairingFallbacks.WithLabelValues(string(stage)).Inc()
	}
}
