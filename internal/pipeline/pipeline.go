package pipeline

import (
	"log/slog"
	"time"

	"github.com/couchcryptid/pipe-headloss/internal/domain"
	"github.com/couchcryptid/pipe-headloss/internal/observability"
)

// Calculator orchestrates the head-loss computation stages for one
// pipe system: velocity, Reynolds number, range check, friction
// factors, major losses, average, and optional minor losses.
type Calculator struct {
	system  domain.PipeSystem
	average domain.AveragePolicy
	logger  *slog.Logger
	metrics *observability.Metrics
}

// New creates a Calculator with the given system, averaging policy,
// and observability.
func New(system domain.PipeSystem, average domain.AveragePolicy, logger *slog.Logger, metrics *observability.Metrics) *Calculator {
	return &Calculator{
		system:  system,
		average: average,
		logger:  logger,
		metrics: metrics,
	}
}

// Velocity returns the mean flow speed through the pipe section.
func (c *Calculator) Velocity() float64 {
	return domain.FlowVelocity(c.system.FlowRate, c.system.Diameter)
}

// RelativeRoughness returns the pipe roughness normalized by diameter.
func (c *Calculator) RelativeRoughness() float64 {
	return domain.RelativeRoughness(c.system.Roughness, c.system.Diameter)
}

// ReynoldsNumber returns the Reynolds number at the given velocity.
func (c *Calculator) ReynoldsNumber(velocity float64) float64 {
	return domain.ReynoldsNumber(c.system.Density, velocity, c.system.Diameter, c.system.Viscosity)
}

// FrictionFactors evaluates every correlation applicable at the given
// Reynolds number, in evaluation order.
func (c *Calculator) FrictionFactors(relativeRoughness, reynolds float64) []domain.ModelValue {
	models := domain.ModelsFor(reynolds)
	factors := make([]domain.ModelValue, 0, len(models))
	for _, m := range models {
		factors = append(factors, domain.ModelValue{Model: m, Value: m.Factor(relativeRoughness, reynolds)})
		c.metrics.ModelEvaluations.WithLabelValues(m.String()).Inc()
	}
	return factors
}

// MajorHeadloss derives the distributed loss for each friction factor,
// preserving model order.
func (c *Calculator) MajorHeadloss(factors []domain.ModelValue, velocity float64) []domain.ModelValue {
	losses := make([]domain.ModelValue, 0, len(factors))
	for _, f := range factors {
		losses = append(losses, domain.ModelValue{
			Model: f.Model,
			Value: domain.MajorHeadloss(f.Value, c.system.Length, c.system.Diameter, velocity),
		})
	}
	return losses
}

// AverageMajorHeadloss reduces the per-model losses under the
// calculator's averaging policy.
func (c *Calculator) AverageMajorHeadloss(losses []domain.ModelValue) float64 {
	return domain.AverageMajorHeadloss(losses, c.average)
}

// MinorHeadloss sums the fitting coefficients and derives the localized
// loss at the given velocity. Returns domain.ErrNoKFactors when the
// system has no coefficients.
func (c *Calculator) MinorHeadloss(velocity float64) (globalK, headloss float64, err error) {
	if len(c.system.KFactors) == 0 {
		return 0, 0, domain.ErrNoKFactors
	}
	for _, k := range c.system.KFactors {
		globalK += k
	}
	return globalK, domain.MinorHeadloss(globalK, velocity), nil
}

// Run executes the full computation in stage order and assembles the
// result. A Reynolds number at or below domain.ReynoldsFloor returns a
// *domain.ReynoldsRangeError and no result.
func (c *Calculator) Run() (domain.Result, error) {
	start := time.Now()

	c.logger.Debug("computation started",
		"diameter_m", c.system.Diameter,
		"flow_rate_m3s", c.system.FlowRate,
	)

	velocity := c.Velocity()
	reynolds := c.ReynoldsNumber(velocity)

	if err := domain.CheckReynoldsRange(reynolds); err != nil {
		c.logger.Error("reynolds number below applicable range", "reynolds", reynolds)
		c.metrics.ReynoldsRangeAborts.Inc()
		return domain.Result{}, err
	}

	relativeRoughness := c.RelativeRoughness()
	factors := c.FrictionFactors(relativeRoughness, reynolds)
	major := c.MajorHeadloss(factors, velocity)

	result := domain.Result{
		System:               c.system,
		FluidVelocity:        velocity,
		RelativeRoughness:    relativeRoughness,
		ReynoldsNumber:       reynolds,
		FrictionFactors:      factors,
		MajorHeadloss:        major,
		AverageMajorHeadloss: c.AverageMajorHeadloss(major),
	}

	if len(c.system.KFactors) > 0 {
		globalK, minor, err := c.MinorHeadloss(velocity)
		if err != nil {
			return domain.Result{}, err
		}
		result.Minor = &domain.MinorLoss{
			GlobalK:  globalK,
			Headloss: minor,
			Total:    minor + result.AverageMajorHeadloss,
		}
	}

	result.Stamp()

	c.metrics.Computations.Inc()
	c.metrics.ComputationDuration.Observe(time.Since(start).Seconds())
	c.logger.Info("headloss computed",
		"reynolds", reynolds,
		"models", len(factors),
		"average_major_mce", result.AverageMajorHeadloss,
	)

	return result, nil
}
