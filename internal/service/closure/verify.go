package closure

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sahakar/accounts-backend/internal/domain"
)

// Verify recomputes the digest of the newest snapshot for the outlet-month
// and compares it with the stored hash. A reopened snapshot is still
// verified and flagged as reopened.
func (s *Service) Verify(ctx context.Context, outletID uuid.UUID, month domain.Month) (VerifyResult, error) {
	snap, err := s.closures.Latest(ctx, outletID, month)
	if errors.Is(err, domain.ErrNotFound) {
		s.metrics.ClosureVerification(false, ReasonNoSnapshot)
		return VerifyResult{Valid: false, Reason: ReasonNoSnapshot}, nil
	}
	if err != nil {
		return VerifyResult{}, fmt.Errorf("latest snapshot: %w", err)
	}

	id := snap.ID
	res := VerifyResult{SnapshotID: &id, StoredHash: snap.SnapshotHash, Reopened: snap.IsReopened()}

	if !snap.HashAlgorithm.IsValid() {
		res.Reason = ReasonUnknownAlgorithm
		s.record(ctx, outletID, month, res)
		return res, nil
	}

	computed, err := Digest(snap.HashAlgorithm, snap.Snapshot, month.Key(), outletID.String())
	if err != nil {
		res.Reason = ReasonUnreadable
		s.record(ctx, outletID, month, res)
		return res, nil
	}

	res.ComputedHash = computed
	res.Valid = computed == snap.SnapshotHash
	s.record(ctx, outletID, month, res)
	return res, nil
}

func (s *Service) record(ctx context.Context, outletID uuid.UUID, month domain.Month, res VerifyResult) {
	s.metrics.ClosureVerification(res.Valid, res.Reason)
	if res.Valid {
		return
	}
	s.log.WarnContext(ctx, "closure snapshot failed verification",
		slog.String("outlet_id", outletID.String()),
		slog.String("month", month.String()),
		slog.String("reason", res.Reason),
		slog.String("stored", res.StoredHash),
		slog.String("computed", res.ComputedHash),
	)
}
