package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/apperrors"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/domain"
	portsrepo "github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/ports/repositories"
	portssvc "github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/ports/services"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/utils/rentmath"
)

type reportingService struct {
	BaseService
	tenantRepo  portsrepo.TenantRepositoryFacade
	ledgerRepo  portsrepo.LedgerRepositoryFacade
	scheduleSvc portssvc.RentScheduleSvcFacade
}

// ReportingServiceOption configures a reporting service.
type ReportingServiceOption func(*reportingService)

// WithReportingClock overrides the clock used to determine the current
// billing period.
func WithReportingClock(now func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.now = now
	}
}

// NewReportingService creates a new ReportingService.
func NewReportingService(
	tenantRepo portsrepo.TenantRepositoryFacade,
	ledgerRepo portsrepo.LedgerRepositoryFacade,
	scheduleSvc portssvc.RentScheduleSvcFacade,
	options ...ReportingServiceOption,
) portssvc.ReportingSvcFacade {
	svc := &reportingService{tenantRepo: tenantRepo, ledgerRepo: ledgerRepo, scheduleSvc: scheduleSvc}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// Defaulters lists every tenant with at least one unpaid period through
// the current month, sorted by arrears descending.
func (s *reportingService) Defaulters(ctx context.Context) ([]domain.DefaulterRow, error) {
	tenants, err := s.tenantRepo.ListTenants(ctx)
	if err != nil {
		return nil, err
	}

	through := domain.PeriodOf(s.clock())
	rows := make([]domain.DefaulterRow, 0)
	for _, tenant := range tenants {
		charges, err := s.scheduleSvc.TenantCharges(ctx, tenant.TenantID, through)
		if err != nil {
			return nil, err
		}
		if len(charges) == 0 {
			continue
		}
		payments, err := s.ledgerRepo.FindRentPaymentsByTenantID(ctx, tenant.TenantID)
		if err != nil {
			return nil, err
		}
		unpaid := rentmath.UnpaidCharges(charges, rentmath.PaidPeriodSet(payments))
		if len(unpaid) == 0 {
			continue
		}
		row := domain.DefaulterRow{TenantID: tenant.TenantID, TenantName: tenant.Name}
		for _, c := range unpaid {
			row.UnpaidPeriods = append(row.UnpaidPeriods, c.Period)
			row.ArrearsTotal = row.ArrearsTotal.Add(c.Rent)
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].ArrearsTotal.GreaterThan(rows[j].ArrearsTotal)
	})
	return rows, nil
}

// CollectionRate reports rent due versus rent collected per period over
// an inclusive month range. Due is the sum of resolved rents for every
// tenant owing the period; collected is the sum of rent payments
// recorded against it regardless of when the funds arrived.
func (s *reportingService) CollectionRate(ctx context.Context, from, through domain.Period) (*domain.CollectionReport, error) {
	if through.Before(from) {
		return nil, fmt.Errorf("%w: report range is inverted", apperrors.ErrValidation)
	}

	tenants, err := s.tenantRepo.ListTenants(ctx)
	if err != nil {
		return nil, err
	}

	dueByPeriod := make(map[domain.Period]decimal.Decimal)
	for _, tenant := range tenants {
		charges, err := s.scheduleSvc.TenantCharges(ctx, tenant.TenantID, through)
		if err != nil {
			return nil, err
		}
		for _, c := range charges {
			if c.Period.Before(from) {
				continue
			}
			dueByPeriod[c.Period] = dueByPeriod[c.Period].Add(c.Rent)
		}
	}

	payments, err := s.ledgerRepo.FindRentPaymentsInRange(ctx, from, through)
	if err != nil {
		return nil, err
	}
	collectedByPeriod := make(map[domain.Period]decimal.Decimal)
	for _, p := range payments {
		collectedByPeriod[p.Period] = collectedByPeriod[p.Period].Add(p.Amount)
	}

	report := &domain.CollectionReport{}
	for _, period := range domain.PeriodsBetween(from, through) {
		row := domain.CollectionRateRow{
			Period:        period,
			RentDue:       dueByPeriod[period],
			RentCollected: collectedByPeriod[period],
		}
		if row.RentDue.IsPositive() {
			row.Rate = row.RentCollected.DivRound(row.RentDue, 4)
		}
		report.Rows = append(report.Rows, row)
		report.TotalDue = report.TotalDue.Add(row.RentDue)
		report.TotalCollected = report.TotalCollected.Add(row.RentCollected)
	}
	if report.TotalDue.IsPositive() {
		report.OverallRate = report.TotalCollected.DivRound(report.TotalDue, 4)
	}
	return report, nil
}
