package jobs

import (
	"github.com/admindocentes/backend/services"
	"github.com/admindocentes/backend/store"
	"github.com/sirupsen/logrus"
)

// MetricsDigest returns a cron func that logs a dashboard summary line from
// the current snapshot.
func MetricsDigest(st *store.Store, log *logrus.Logger) func() {
	return func() {
		m := services.ComputeMetrics(st.Snapshot())
		log.WithFields(logrus.Fields{
			"teachers":        m.TotalTeachers,
			"proposals":       m.TotalProposals,
			"accepted":        m.AcceptedProposals,
			"pending":         m.PendingProposals,
			"rejected":        m.RejectedProposals,
			"conversion_rate": m.ConversionRate,
		}).Info("metrics digest")
	}
}
