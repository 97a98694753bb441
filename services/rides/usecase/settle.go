package usecase

import (
	"fmt"

	"github.com/piresc/tumpangan/internal/pkg/constants"
	"github.com/piresc/tumpangan/internal/pkg/logger"
	"github.com/piresc/tumpangan/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// settleLocked runs departure-triggered payout settlement over the whole
// collection. Called with the collection lock held on every read and before
// every broadcast, so a ride is settled exactly once no matter how often it
// is observed. Returns true when at least one ride was settled.
func (s *rideStore) settleLocked(nowMs int64, e *effects) bool {
	settled := false
	for _, r := range s.rides {
		if r.PayoutProcessed || !r.Departed(nowMs) {
			continue
		}

		paxCount := len(r.Passengers)
		gross := r.Price.Mul(decimal.NewFromInt(int64(paxCount)))

		if paxCount > 0 && gross.IsPositive() {
			rate := decimal.NewFromFloat(s.cfg.Marketplace.CommissionRate)
			commission := gross.Mul(rate).Round(2)
			net := gross.Sub(commission)

			if net.IsPositive() {
				s.wallets.Credit(r.OwnerID, net,
					fmt.Sprintf("Ride payout %s → %s", r.Origin, r.Destination), r.ID)
			}
			s.wallets.AddPoints(r.OwnerID, s.cfg.Marketplace.PointsPerPassenger*paxCount)
			s.revenue.Record(r.ID, commission,
				fmt.Sprintf("Commission for ride %s → %s", r.Origin, r.Destination),
				map[string]interface{}{
					"owner_id":   r.OwnerID,
					"passengers": paxCount,
				})

			e.notes = append(e.notes, models.Notification{
				Recipient: r.OwnerID,
				Title:     "Ride payout settled",
				Body: fmt.Sprintf("%s was credited to your wallet for %s → %s",
					net.StringFixed(2), r.Origin, r.Destination),
				Data: map[string]interface{}{
					"action":  models.NotifyActionPayoutSettled,
					"ride_id": r.ID,
				},
			})

			logger.Info("Ride payout settled",
				logger.String("ride_id", r.ID),
				logger.String("owner_id", r.OwnerID),
				logger.String("gross", gross.String()),
				logger.String("net", net.String()),
				logger.Int("passengers", paxCount))
		}

		// Marked unconditionally, even with zero passengers, so each ride is
		// evaluated exactly once
		r.PayoutProcessed = true
		r.UpdatedAt = nowMs
		e.mirrors = append(e.mirrors, r.Clone())
		eventFor(e, constants.SubjectRideSettled, r)
		settled = true
	}
	return settled
}
