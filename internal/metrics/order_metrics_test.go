package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestNewOrderMetricsWithRegisterer(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := newOrderMetricsWithRegisterer(reg)

	if metrics == nil {
		t.Fatal("newOrderMetricsWithRegisterer should not return nil")
	}
	if metrics.ordersCreated == nil {
		t.Error("ordersCreated counter should not be nil")
	}
	if metrics.ordersUpdated == nil {
		t.Error("ordersUpdated counter should not be nil")
	}
	if metrics.ordersDeleted == nil {
		t.Error("ordersDeleted counter should not be nil")
	}
	if metrics.validationFailures == nil {
		t.Error("validationFailures counter should not be nil")
	}
	if metrics.pricingDuration == nil {
		t.Error("pricingDuration histogram should not be nil")
	}
}

func TestOrderMetrics_DoubleRegistrationReusesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()

	first := newOrderMetricsWithRegisterer(reg)
	second := newOrderMetricsWithRegisterer(reg)

	first.RecordOrderCreated()
	second.RecordOrderCreated()

	metric := &dto.Metric{}
	if err := first.ordersCreated.Write(metric); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 2.0 {
		t.Errorf("expected shared counter value 2.0, got %f", metric.Counter.GetValue())
	}
}

func TestRecordOrderCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := newOrderMetricsWithRegisterer(reg)

	metrics.RecordOrderCreated()
	metrics.RecordOrderCreated()
	metrics.RecordOrderUpdated()
	metrics.RecordOrderDeleted()
	metrics.RecordValidationFailure()

	checks := []struct {
		name    string
		counter prometheus.Counter
		want    float64
	}{
		{"created", metrics.ordersCreated, 2},
		{"updated", metrics.ordersUpdated, 1},
		{"deleted", metrics.ordersDeleted, 1},
		{"validation failures", metrics.validationFailures, 1},
	}

	for _, check := range checks {
		metric := &dto.Metric{}
		if err := check.counter.Write(metric); err != nil {
			t.Fatalf("write %s: %v", check.name, err)
		}
		if metric.Counter.GetValue() != check.want {
			t.Errorf("%s: expected %f, got %f", check.name, check.want, metric.Counter.GetValue())
		}
	}
}

func TestRecordPricingDuration(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := newOrderMetricsWithRegisterer(reg)

	metrics.RecordPricingDuration(2 * time.Millisecond)
	metrics.RecordPricingDuration(3 * time.Millisecond)

	metric := &dto.Metric{}
	if err := metrics.pricingDuration.Write(metric); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	if metric.Histogram.GetSampleCount() != 2 {
		t.Errorf("expected 2 samples, got %d", metric.Histogram.GetSampleCount())
	}
}

func TestHTTPMetrics_RecordRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := newHTTPMetricsWithRegisterer(reg)

	metrics.RecordRequest("GET", "/orders/:id", "200", 5*time.Millisecond)
	metrics.RecordRequest("GET", "/orders/:id", "200", 7*time.Millisecond)
	metrics.RecordRequest("POST", "/orders", "201", 9*time.Millisecond)

	metric := &dto.Metric{}
	counter, err := metrics.requestsTotal.GetMetricWithLabelValues("GET", "/orders/:id", "200")
	if err != nil {
		t.Fatalf("get counter: %v", err)
	}
	if err := counter.Write(metric); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	if metric.Counter.GetValue() != 2.0 {
		t.Errorf("expected counter value 2.0, got %f", metric.Counter.GetValue())
	}
}
