package services

import (
	"sort"

	"github.com/admindocentes/backend/models"
	"github.com/admindocentes/backend/store"
)

// Revenue attributed to each accepted proposal in the dashboard figures.
const revenuePerAcceptedProposal = 15000

// Metrics is the dashboard summary recomputed from a fresh snapshot on every
// request; nothing here is cached or maintained incrementally.
type Metrics struct {
	TotalUsers           int     `json:"total_users"`
	TotalTeachers        int     `json:"total_teachers"`
	TotalProposals       int     `json:"total_proposals"`
	AcceptedProposals    int     `json:"accepted_proposals"`
	PendingProposals     int     `json:"pending_proposals"`
	RejectedProposals    int     `json:"rejected_proposals"`
	TotalRevenue         float64 `json:"total_revenue"`
	AverageProposalValue float64 `json:"average_proposal_value"`
	ConversionRate       float64 `json:"conversion_rate"`
}

// TeacherStanding is one row of the top-teachers ranking.
type TeacherStanding struct {
	TeacherID string `json:"teacher_id"`
	Name      string `json:"name"`
	Subject   string `json:"subject"`
	Proposals int    `json:"proposals"`
	Accepted  int    `json:"accepted"`
}

// DistributionEntry is a labelled count with its share of the total.
type DistributionEntry struct {
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// ComputeMetrics derives the dashboard numbers from a state snapshot.
// Requesters are deduplicated by email.
func ComputeMetrics(state store.State) Metrics {
	seen := make(map[string]struct{})
	for _, p := range state.Proposals {
		seen[p.Requester.Email] = struct{}{}
	}

	m := Metrics{
		TotalUsers:     len(seen),
		TotalTeachers:  len(state.Teachers),
		TotalProposals: len(state.Proposals),
	}
	for _, p := range state.Proposals {
		switch p.Status {
		case models.ProposalStatusAccepted:
			m.AcceptedProposals++
		case models.ProposalStatusPending:
			m.PendingProposals++
		case models.ProposalStatusRejected:
			m.RejectedProposals++
		}
	}

	m.TotalRevenue = float64(m.AcceptedProposals) * revenuePerAcceptedProposal
	if m.AcceptedProposals > 0 {
		m.AverageProposalValue = m.TotalRevenue / float64(m.AcceptedProposals)
	}
	if m.TotalProposals > 0 {
		m.ConversionRate = float64(m.AcceptedProposals) / float64(m.TotalProposals) * 100
	}
	return m
}

// TopTeachers ranks teachers by accepted proposal count, then by total
// proposals, keeping at most limit rows. Proposals pointing at deleted
// teachers count toward nobody.
func TopTeachers(state store.State, limit int) []TeacherStanding {
	standings := make([]TeacherStanding, 0, len(state.Teachers))
	for _, t := range state.Teachers {
		row := TeacherStanding{TeacherID: t.ID, Name: t.Name, Subject: t.Subject}
		for _, p := range state.Proposals {
			if p.TeacherID != t.ID {
				continue
			}
			row.Proposals++
			if p.Status == models.ProposalStatusAccepted {
				row.Accepted++
			}
		}
		standings = append(standings, row)
	}

	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].Accepted != standings[j].Accepted {
			return standings[i].Accepted > standings[j].Accepted
		}
		return standings[i].Proposals > standings[j].Proposals
	})
	if limit > 0 && len(standings) > limit {
		standings = standings[:limit]
	}
	return standings
}

// SubjectDistribution counts roster teachers per subject.
func SubjectDistribution(state store.State) []DistributionEntry {
	counts := make(map[string]int)
	for _, t := range state.Teachers {
		counts[t.Subject]++
	}
	return toDistribution(counts, len(state.Teachers))
}

// CityDistribution counts roster teachers per location label.
func CityDistribution(state store.State) []DistributionEntry {
	counts := make(map[string]int)
	for _, t := range state.Teachers {
		counts[t.Location]++
	}
	return toDistribution(counts, len(state.Teachers))
}

func toDistribution(counts map[string]int, total int) []DistributionEntry {
	entries := make([]DistributionEntry, 0, len(counts))
	for label, count := range counts {
		entry := DistributionEntry{Label: label, Count: count}
		if total > 0 {
			entry.Percentage = float64(count) / float64(total) * 100
		}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Label < entries[j].Label
	})
	return entries
}
