// Package rentmath holds the pure calculation core of the rent ledger:
// rent schedule resolution, billing period generation, balance replay
// and payment allocation. Everything here operates on in-memory domain
// rows so services and repositories apply identical arithmetic.
package rentmath

import (
	"sort"
	"time"

	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ResolveRent returns the rent effective for a room in the given period.
//
// Three-tier fallback:
//  1. the latest rent update effective on or before the period;
//  2. else, the old amount of the chronologically earliest update
//     (the rent that existed before any recorded change);
//  3. else, the room's base rent.
//
// A rent value is therefore always resolvable, even for periods that
// predate the first recorded change.
func ResolveRent(room domain.Room, updates []domain.RentUpdate, period domain.Period) decimal.Decimal {
	if len(updates) == 0 {
		return room.BaseRent
	}

	sorted := make([]domain.RentUpdate, len(updates))
	copy(sorted, updates)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].EffectiveFrom.Before(sorted[j].EffectiveFrom)
	})

	var match *domain.RentUpdate
	for i := range sorted {
		if period.AfterOrEqual(sorted[i].EffectivePeriod()) {
			match = &sorted[i]
		}
	}
	if match != nil {
		return match.NewAmount
	}
	// Period predates every recorded update.
	return sorted[0].OldAmount
}

// PeriodCharges enumerates the billing periods a tenant owes rent for,
// ascending, from the earliest move-in month through the given period.
// A period is owed only if at least one allocation overlaps it; gap
// months (tenant between rooms) are omitted. The rent for a period is
// the sum of the resolved rents of every room occupied in it.
func PeriodCharges(
	allocations []domain.TenantRoomAllocation,
	rooms map[string]domain.Room,
	updatesByRoom map[string][]domain.RentUpdate,
	through domain.Period,
) []domain.PeriodCharge {
	if len(allocations) == 0 {
		return nil
	}

	earliest := allocations[0].MoveInDate
	for _, a := range allocations[1:] {
		if a.MoveInDate.Before(earliest) {
			earliest = a.MoveInDate
		}
	}

	var charges []domain.PeriodCharge
	for _, p := range domain.PeriodsBetween(domain.PeriodOf(earliest), through) {
		rent := decimal.Zero
		owed := false
		for _, a := range allocations {
			if !a.ActiveIn(p) {
				continue
			}
			owed = true
			room, ok := rooms[a.RoomID]
			if !ok {
				continue
			}
			rent = rent.Add(ResolveRent(room, updatesByRoom[a.RoomID], p))
		}
		if owed {
			charges = append(charges, domain.PeriodCharge{Period: p, Rent: rent})
		}
	}
	return charges
}

// LedgerTotalAsOf sums ledger entry amounts up to the point-in-time
// cutoff (transaction date before cutoffDate, or equal with created-at
// tie-break).
func LedgerTotalAsOf(entries []domain.LedgerEntry, cutoffDate, cutoffCreatedAt time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if e.BeforeOrAt(cutoffDate, cutoffCreatedAt) {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// RunningTotals computes, for every entry, the ledger total after that
// entry landed: entries are ordered by transaction date with the
// created-at tie-break, then prefix-summed. Keyed by entry ID.
func RunningTotals(entries []domain.LedgerEntry) map[string]decimal.Decimal {
	ordered := make([]domain.LedgerEntry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].TransactionDate.Equal(ordered[j].TransactionDate) {
			return ordered[i].TransactionDate.Before(ordered[j].TransactionDate)
		}
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	totals := make(map[string]decimal.Decimal, len(ordered))
	running := decimal.Zero
	for _, e := range ordered {
		running = running.Add(e.Amount)
		totals[e.EntryID] = running
	}
	return totals
}

// RentConsumedAsOf sums rent payment amounts whose originating ledger
// entry falls within the same cutoff as LedgerTotalAsOf.
func RentConsumedAsOf(
	payments []domain.RentPayment,
	entriesByID map[string]domain.LedgerEntry,
	cutoffDate, cutoffCreatedAt time.Time,
) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		entry, ok := entriesByID[p.EntryID]
		if !ok {
			continue
		}
		if entry.BeforeOrAt(cutoffDate, cutoffCreatedAt) {
			total = total.Add(p.Amount)
		}
	}
	return total
}

// NetCredit is the tenant's unapplied credit over full history: sum of
// all ledger entries minus all rent consumed. Balance is always derived
// by replaying these rows; there is no cached counter to drift.
func NetCredit(entries []domain.LedgerEntry, payments []domain.RentPayment) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	for _, p := range payments {
		total = total.Sub(p.Amount)
	}
	return total
}

// PaidPeriodSet indexes rent payments by period.
func PaidPeriodSet(payments []domain.RentPayment) map[domain.Period]bool {
	paid := make(map[domain.Period]bool, len(payments))
	for _, p := range payments {
		paid[p.Period] = true
	}
	return paid
}

// AllocationResult is the outcome of AllocateFunds.
type AllocationResult struct {
	Paid      []domain.PeriodCharge
	Remaining decimal.Decimal
}

// AllocateFunds applies funds against unpaid period charges in strict
// chronological order. A period is paid only in full; the first period
// the funds cannot fully cover stops the loop, so money is never
// applied out of order even if a later, cheaper period could be
// covered. Whatever is left stays as unapplied credit.
func AllocateFunds(charges []domain.PeriodCharge, paid map[domain.Period]bool, funds decimal.Decimal) AllocationResult {
	remaining := funds
	var applied []domain.PeriodCharge
	for _, c := range charges {
		if paid[c.Period] {
			continue
		}
		if remaining.LessThan(c.Rent) {
			break
		}
		applied = append(applied, c)
		remaining = remaining.Sub(c.Rent)
	}
	return AllocationResult{Paid: applied, Remaining: remaining}
}

// UnpaidCharges filters charges down to periods without a rent payment.
func UnpaidCharges(charges []domain.PeriodCharge, paid map[domain.Period]bool) []domain.PeriodCharge {
	var unpaid []domain.PeriodCharge
	for _, c := range charges {
		if !paid[c.Period] {
			unpaid = append(unpaid, c)
		}
	}
	return unpaid
}
