package tipcalc

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"tippy/internal/currency"
	"tippy/internal/handlers"
	"tippy/internal/observability"
	"tippy/internal/tip"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the tip domain's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("tipcalc")

// Handler serves the tip endpoints under a fixed policy. The default
// formatter is used unless the request's Accept-Language names a locale
// with a known currency.
type Handler struct {
	policy    tip.Policy
	formatter *currency.Formatter
}

// NewHandler returns a Handler that evaluates every form under policy and
// formats amounts with formatter unless the request asks for another locale.
func NewHandler(policy tip.Policy, formatter *currency.Formatter) *Handler {
	return &Handler{policy: policy, formatter: formatter}
}

// ---------------------------------------------------------------------------
// Handler — calculation
// ---------------------------------------------------------------------------

// Calculate handles POST /tip/calculate. It recomputes the whole form from the
// raw field values on every call; nothing is remembered between requests.
//
// Unparsable field values never fail the request. They fall back to their
// defaults (0, or one person), the fallback is counted on
// tipcalc.input.fallbacks.total and listed in the span and log, and the body
// still carries a full set of numbers. Only a body that is not JSON is a 400.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	// --- 1. Custom child span ---
	ctx, span := tracer.Start(ctx, "tipcalc.calculate",
		trace.WithAttributes(
			attribute.String("tipcalc.operation", "calculate"),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	// --- 2. Decode request body ---
	var raw tip.RawInputs
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "calculate", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	// --- 3. Sanitize and compute (timed for histogram) ---
	start := time.Now()
	result := tip.Evaluate(raw, h.policy)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	// The request may pick its own locale; otherwise the configured one.
	formatter := currency.FromAcceptLanguage(r.Header.Get("Accept-Language"), h.formatter)

	// --- 4. Record metrics ---
	attrs := metric.WithAttributes(attribute.String("operation", "calculate"))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)
	totalGauge.Record(ctx, result.Outputs.Total, metric.WithAttributes(attribute.String("currency", formatter.Currency())))
	for _, field := range result.Inputs.Defaulted {
		fallbackCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("field", field)))
	}

	// --- 5. Span attributes and completion event ---
	span.SetAttributes(
		attribute.Float64("tip.bill_amount", result.Inputs.BillAmount),
		attribute.Float64("tip.percent", result.Inputs.TipPercent),
		attribute.Float64("tip.people_count", result.Inputs.PeopleCount),
		attribute.Float64("tip.tax_amount", result.Inputs.TaxAmount),
		attribute.StringSlice("tip.defaulted_fields", result.Inputs.Defaulted),
	)
	span.AddEvent("calculation.complete", trace.WithAttributes(
		attribute.Float64("tip_value", result.Outputs.TipValue),
		attribute.Float64("total", result.Outputs.Total),
		attribute.Float64("cost_per_person", result.Outputs.CostPerPerson),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetStatus(codes.Ok, "")

	// --- 6. Structured log with trace correlation ---
	logger.Info("tip calculated",
		zap.Float64("bill_amount", result.Inputs.BillAmount),
		zap.Float64("tip_percent", result.Inputs.TipPercent),
		zap.Float64("people_count", result.Inputs.PeopleCount),
		zap.Float64("tax_amount", result.Inputs.TaxAmount),
		zap.Float64("total", result.Outputs.Total),
		zap.Strings("defaulted", result.Inputs.Defaulted),
		zap.String("currency", formatter.Currency()),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	// --- 7. Write JSON response ---
	handlers.WriteJSON(w, http.StatusOK, CalculateResponse{
		Inputs:  result.Inputs,
		Outputs: result.Outputs,
		Formatted: FormattedOutputs{
			Tip:           formatter.Format(result.Outputs.TipValue),
			Total:         formatter.Format(result.Outputs.Total),
			CostPerPerson: formatter.Format(result.Outputs.CostPerPerson),
		},
		PeopleCount:   int(result.Inputs.PeopleCount),
		ShowPerPerson: result.ShowPerPerson,
		Currency:      formatter.Currency(),
		CurrencyScale: formatter.Scale(),
	})
}

// ---------------------------------------------------------------------------
// Handlers — form controls
// ---------------------------------------------------------------------------

// Split handles POST /tip/split — one press of the split stepper. The client
// holds the count; the stepper resumes from it, so the floor is enforced here
// at the point of mutation and never inside the split computation.
func (h *Handler) Split(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "tipcalc.split",
		trace.WithAttributes(
			attribute.String("tipcalc.operation", "split"),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req SplitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "split", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	// A count already below the floor is lifted before the action applies.
	count, err := tip.StepperAt(req.PeopleCount, h.policy.MinPeopleCount).Apply(req.Action)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "split", err.Error(), err, http.StatusBadRequest, w)
		return
	}

	opsCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", "split"),
		attribute.String("action", string(req.Action)),
	))

	span.SetAttributes(
		attribute.String("tip.split.action", string(req.Action)),
		attribute.Int("tip.split.from", req.PeopleCount),
		attribute.Int("tip.split.to", count),
	)
	span.SetStatus(codes.Ok, "")

	logger.Debug("split count changed",
		zap.String("action", string(req.Action)),
		zap.Int("from", req.PeopleCount),
		zap.Int("to", count),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, SplitResponse{PeopleCount: count})
}

// Entry handles POST /tip/entry — filters one keystroke against the field's
// maximum length. A rejected keystroke is not an error: the response carries
// the unchanged current value with accepted=false.
func (h *Handler) Entry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "tipcalc.entry",
		trace.WithAttributes(
			attribute.String("tipcalc.operation", "entry"),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req EntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "entry", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	limit, err := h.maxChars(req.Field)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "entry", err.Error(), err, http.StatusBadRequest, w)
		return
	}

	value := tip.LimitEntry(req.Current, req.Proposed, limit)
	accepted := value == req.Proposed

	opsCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", "entry"),
		attribute.String("field", req.Field),
	))

	span.SetAttributes(
		attribute.String("tip.entry.field", req.Field),
		attribute.Int("tip.entry.limit", limit),
		attribute.Bool("tip.entry.accepted", accepted),
	)
	span.SetStatus(codes.Ok, "")

	handlers.WriteJSON(w, http.StatusOK, EntryResponse{Value: value, Accepted: accepted})
}

// Policy handles GET /tip/policy so a client can configure its controls:
// field lengths, the stepper floor and, when a slider is on, every stop.
func (h *Handler) Policy(w http.ResponseWriter, r *http.Request) {
	resp := PolicyResponse{
		Policy:        h.policy,
		Locale:        h.formatter.Locale(),
		Currency:      h.formatter.Currency(),
		CurrencyScale: h.formatter.Scale(),
	}
	if h.policy.Slider != nil {
		resp.SliderStops = h.policy.Slider.Stops()
	}

	handlers.WriteJSON(w, http.StatusOK, resp)
}

// maxChars maps a field to its entry limit. The people count is driven by
// the stepper and has no limit.
func (h *Handler) maxChars(field string) (int, error) {
	switch field {
	case "bill_amount", "tax_amount":
		return h.policy.MaxAmountChars, nil
	case "tip_percent":
		return h.policy.MaxPercentChars, nil
	case "people_count":
		return 0, nil
	default:
		return 0, fmt.Errorf("unknown field %q", field)
	}
}
