package calculator

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"tradely/models"
	"tradely/services/distance"
	"tradely/utils"
)

// serviceTally accumulates unrounded per-service totals while components are
// evaluated.
type serviceTally struct {
	request      models.ServiceRequest
	baseCost     decimal.Decimal
	travelCost   decimal.Decimal
	durationMins decimal.Decimal
}

// plannedTravel is a travel component whose legs have been materialized but
// not yet priced: pricing waits for the batched distance lookup.
type plannedTravel struct {
	tallyIdx  int
	component models.PriceComponent
	tier      models.PriceComponentTier
	quantity  float64
	legs      []Leg
	offset    int // index of this component's first leg in the batch
}

// Calculate produces the quote. Any failure aborts the whole calculation;
// no partial or best-effort quote is ever returned.
func (c *DefaultBookingCalculator) Calculate(ctx context.Context, input models.BookingCalculationInput) (*models.BookingCalculationResult, error) {
	logger := utils.GetLogger()

	if err := validateInput(input); err != nil {
		return nil, err
	}

	tallies := make([]serviceTally, 0, len(input.Services))
	var planned []plannedTravel
	var batch []distance.LegQuery

	for _, sr := range input.Services {
		tally := serviceTally{request: sr}
		for _, component := range sr.Service.PriceComponents {
			tier, err := resolveTier(component, sr.Quantity)
			if err != nil {
				return nil, err
			}

			if component.IsTravel() {
				legs := buildRoute(input.Business, sr.Service, input.Addresses)
				if len(legs) == 0 {
					continue
				}
				planned = append(planned, plannedTravel{
					tallyIdx:  len(tallies),
					component: component,
					tier:      tier,
					quantity:  sr.Quantity,
					legs:      legs,
					offset:    len(batch),
				})
				for _, leg := range legs {
					batch = append(batch, distance.LegQuery{
						Origin:      waypoint(leg.From),
						Destination: waypoint(leg.To),
					})
				}
				continue
			}

			est, err := evaluateComponent(component, tier, sr.Quantity)
			if err != nil {
				return nil, err
			}
			tally.baseCost = tally.baseCost.Add(est.Cost)
			tally.durationMins = tally.durationMins.Add(est.DurationMins)
		}
		tallies = append(tallies, tally)
	}

	// One batched lookup covers every leg of every service in this booking.
	var metrics []distance.LegMetric
	if len(batch) > 0 {
		var err error
		metrics, err = c.Distance.BatchDistances(ctx, batch)
		if err != nil {
			return nil, newExternalProviderError(err, "distance lookup failed for %d legs", len(batch))
		}
		if len(metrics) != len(batch) {
			return nil, newExternalProviderError(nil,
				"distance provider returned %d results for %d legs", len(metrics), len(batch))
		}
		for i, m := range metrics {
			if m.Status != distance.StatusOK {
				return nil, newExternalProviderError(nil,
					"distance lookup for leg %d returned status %q", i, m.Status)
			}
		}
	}

	var allSegments []models.TravelSegment
	segmentCosts := make([]decimal.Decimal, 0, len(batch))
	for _, pt := range planned {
		legMetrics := metrics[pt.offset : pt.offset+len(pt.legs)]
		segments, total, err := chargeRoute(pt.component, pt.tier, pt.quantity, pt.legs, legMetrics)
		if err != nil {
			return nil, err
		}
		tally := &tallies[pt.tallyIdx]
		tally.travelCost = tally.travelCost.Add(total.Cost)
		tally.durationMins = tally.durationMins.Add(total.DurationMins)
		for _, se := range segments {
			se.Segment.ServiceID = tally.request.Service.ID
			allSegments = append(allSegments, se.Segment)
			segmentCosts = append(segmentCosts, se.Cost)
		}
	}

	// Final aggregation: this is the only place money is rounded.
	result := &models.BookingCalculationResult{
		Currency:       input.Business.Currency,
		Services:       make([]models.ServiceCostBreakdown, 0, len(tallies)),
		TravelSegments: allSegments,
	}
	for i := range allSegments {
		result.TravelSegments[i].Cost = round2(segmentCosts[i])
	}

	subtotal := decimal.Zero
	totalDuration := decimal.Zero
	for _, tally := range tallies {
		serviceTotal := tally.baseCost.Add(tally.travelCost)
		if minimum := decimal.NewFromFloat(tally.request.Service.MinimumCharge); serviceTotal.LessThan(minimum) {
			serviceTotal = minimum
		}
		subtotal = subtotal.Add(serviceTotal)
		totalDuration = totalDuration.Add(tally.durationMins)
		result.Services = append(result.Services, models.ServiceCostBreakdown{
			ServiceID:            tally.request.Service.ID,
			ServiceName:          tally.request.Service.Name,
			Quantity:             tally.request.Quantity,
			BaseCost:             round2(tally.baseCost),
			TravelCost:           round2(tally.travelCost),
			TotalCost:            round2(serviceTotal),
			EstimatedDurationMin: tally.durationMins.InexactFloat64(),
		})
	}

	fees := applyFees(input.Business, subtotal)
	result.Subtotal = round2(subtotal)
	result.Fees = models.BusinessFees{
		GSTAmount:                  round2(fees.GSTAmount),
		PlatformFeeAmount:          round2(fees.PlatformFee),
		PaymentProcessingFeeAmount: round2(fees.ProcessingFee),
	}
	result.TotalEstimateAmount = round2(fees.Total)
	result.DepositAmount = round2(fees.Deposit)
	result.RemainingBalance = round2(fees.RemainingBalance)
	result.MinimumChargeApplied = fees.MinimumChargeApplied
	result.TotalEstimateTimeInMins = totalDuration.InexactFloat64()

	logger.Debug("booking calculation complete",
		zap.String("businessID", input.Business.ID),
		zap.Int("services", len(result.Services)),
		zap.Int("travelSegments", len(result.TravelSegments)),
		zap.Float64("total", result.TotalEstimateAmount))
	return result, nil
}

// waypoint renders an address for the distance provider, preferring exact
// coordinates over the formatted line.
func waypoint(a models.Address) string {
	if len(a.LocationGeo.Coordinates) >= 2 {
		// GeoJSON stores [longitude, latitude]; providers expect "lat,lng".
		return fmt.Sprintf("%f,%f", a.LocationGeo.Coordinates[1], a.LocationGeo.Coordinates[0])
	}
	return a.FormattedLine
}

func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
