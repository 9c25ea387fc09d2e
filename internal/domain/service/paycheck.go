package service

import (
	"fmt"

	"github.com/assistbot/slack-assistant-bot/internal/domain"
	"github.com/assistbot/slack-assistant-bot/internal/domain/contract"
	"github.com/assistbot/slack-assistant-bot/internal/domain/entity"
	"github.com/jmhodges/clock"
	"github.com/shopspring/decimal"
)

// Flat estimate covering taxes and withholdings, not a real tax table.
var deductionRate = decimal.RequireFromString("0.25")

type paycheckService struct {
	dm   contract.DataManager
	auth contract.AuthStore
	clk  clock.Clock
}

func newPaycheck(dm contract.DataManager, auth contract.AuthStore, clk clock.Clock) *paycheckService {
	return &paycheckService{
		dm:   dm,
		auth: auth,
		clk:  clk,
	}
}

func (s *paycheckService) authorize(requesterID string) error {
	ok, err := s.auth.IsAuthorized(requesterID)
	if err != nil {
		return fmt.Errorf("failed to check authorization: %w", err)
	}
	if !ok {
		return domain.ErrNotAuthorized
	}
	return nil
}

func (s *paycheckService) SetJob(requesterID, jobName string, hourlyWage decimal.Decimal) error {
	if err := s.authorize(requesterID); err != nil {
		return err
	}
	if !hourlyWage.IsPositive() {
		return domain.ErrInvalidAmount
	}

	job := &entity.Job{
		UserID:     requesterID,
		JobName:    jobName,
		HourlyWage: hourlyWage,
		UpdatedAt:  s.clk.Now().UTC(),
	}
	if err := s.dm.Job().Upsert(job); err != nil {
		return fmt.Errorf("failed to save job: %w", err)
	}
	return nil
}

func (s *paycheckService) Estimate(requesterID, targetUserID string, hours decimal.Decimal) (*entity.PaycheckEstimate, error) {
	if err := s.authorize(requesterID); err != nil {
		return nil, err
	}
	if !hours.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}

	job, err := s.dm.Job().GetByUserID(targetUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load job: %w", err)
	}
	if job == nil {
		return nil, domain.ErrNoJobSet
	}

	gross := job.HourlyWage.Mul(hours)
	deductions := gross.Mul(deductionRate)

	return &entity.PaycheckEstimate{
		JobName:    job.JobName,
		HourlyWage: job.HourlyWage,
		Hours:      hours,
		Gross:      gross,
		Deductions: deductions,
		Net:        gross.Sub(deductions),
	}, nil
}
