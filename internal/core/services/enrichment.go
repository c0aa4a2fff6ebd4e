package services

import "github.com/hhsxp/sla-dashboard/internal/core/domain"

// HasEnrichedData classifies a normalized dataset. It returns true iff any
// record carries at least one enrichment field (open/close timestamp,
// analyst, SLA status, ticket type). The flag is computed once per upload
// and decides whether SLA, lead-time and analyst figures are real or the
// simulated baseline. Empty dataset → false.
func HasEnrichedData(records []domain.TicketRecord) bool {
	for i := range records {
		if records[i].HasEnrichment() {
			return true
		}
	}
	return false
}
