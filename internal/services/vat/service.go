package vat

import (
	"context"
	"math"

	"go.uber.org/zap"

	"vatcalc/internal/models"
	"vatcalc/internal/validation"
)

// CalculationRequest is the form input for one calculation.
type CalculationRequest struct {
	Country    string
	Amount     float64
	FlatFee    float64
	PercentFee float64
}

// Service resolves countries and validates input before calling Compute.
type Service interface {
	Calculate(ctx context.Context, req CalculationRequest) (*Result, error)
	Defaults(ctx context.Context, country string, percentFee float64) (*Result, error)
	Country(country string) (models.CountryConfig, error)
	Countries() []models.CountryConfig
}

type service struct {
	registry *models.Registry
	metrics  MetricsCollector
	log      *zap.Logger
}

// NewService creates a new calculation service
func NewService(registry *models.Registry, metrics MetricsCollector, log *zap.Logger) Service {
	if registry == nil {
		panic("registry is required")
	}
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &service{
		registry: registry,
		metrics:  metrics,
		log:      log,
	}
}

func (s *service) Calculate(ctx context.Context, req CalculationRequest) (*Result, error) {
	cfg, err := s.registry.Lookup(req.Country)
	if err != nil {
		s.metrics.RecordError("calculate", "unknown_country")
		return nil, err
	}

	if err := validateRequest(req); err != nil {
		s.metrics.RecordError("calculate", "invalid_input")
		return nil, err
	}

	return s.compute("calculate", cfg, req.Amount, req.FlatFee, req.PercentFee)
}

func (s *service) Defaults(ctx context.Context, country string, percentFee float64) (*Result, error) {
	cfg, err := s.registry.Lookup(country)
	if err != nil {
		s.metrics.RecordError("defaults", "unknown_country")
		return nil, err
	}
	if math.IsNaN(percentFee) || math.IsInf(percentFee, 0) {
		s.metrics.RecordError("defaults", "invalid_input")
		return nil, &ValidationError{Fields: []validation.Error{{
			Field:   "percent_fee",
			Message: "must be a finite number",
			Err:     ErrInvalidPercentFee,
		}}}
	}

	return s.compute("defaults", cfg, cfg.DefaultAmount, cfg.DefaultFlatFee, percentFee)
}

func (s *service) Country(country string) (models.CountryConfig, error) {
	return s.registry.Lookup(country)
}

func (s *service) Countries() []models.CountryConfig {
	return s.registry.All()
}

func (s *service) compute(op string, cfg models.CountryConfig, amount, flatFee, percentFee float64) (*Result, error) {
	res := Compute(cfg, amount, flatFee, percentFee)
	if err := checkResult(res); err != nil {
		s.metrics.RecordError(op, "out_of_range")
		return nil, err
	}

	s.metrics.RecordCalculation(cfg.Code)
	s.log.Debug("fee calculated",
		zap.String("country", string(cfg.Code)),
		zap.Float64("amount", res.Amount),
		zap.Float64("total_fee", res.TotalFee),
		zap.Float64("vat", res.VATAmount),
		zap.Float64("net", res.NetReceipt),
	)
	return &res, nil
}

// validateRequest applies the same rule to amount and flat fee: finite and not
// negative. The percent fee only has to be finite; Compute clamps it.
func validateRequest(req CalculationRequest) error {
	v := validation.New()
	v.NonNegative("amount", req.Amount, ErrInvalidAmount)
	v.NonNegative("flat_fee", req.FlatFee, ErrInvalidFlatFee)
	v.Finite("percent_fee", req.PercentFee, ErrInvalidPercentFee)

	if v.Valid() {
		return nil
	}
	return &ValidationError{Fields: v.Errors}
}

// checkResult rejects results that overflowed float64. Finite inputs can still
// produce them, e.g. two amounts near math.MaxFloat64.
func checkResult(res Result) error {
	v := validation.New()
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"variable_fee", res.VariableFee},
		{"total_fee", res.TotalFee},
		{"vat_base", res.VATBase},
		{"vat_amount", res.VATAmount},
		{"net_receipt", res.NetReceipt},
	} {
		ok := !math.IsNaN(f.value) && !math.IsInf(f.value, 0)
		v.Check(ok, f.name, "is out of range", ErrResultOutOfRange)
	}

	if v.Valid() {
		return nil
	}
	return &ValidationError{Fields: v.Errors}
}
