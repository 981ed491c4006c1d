package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/domain"
	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/ports"
)

type fakeGateway struct {
	id    string
	err   error
	calls int
	got   ports.Submission
}

func (g *fakeGateway) Submit(_ context.Context, s ports.Submission) (string, error) {
	g.calls++
	g.got = s
	return g.id, g.err
}

type fakeSink struct {
	path string
	err  error

	calls int
	name  string
	doc   string
}

func (s *fakeSink) WriteDocument(name, document string) (string, error) {
	s.calls++
	s.name = name
	s.doc = document
	return s.path, s.err
}

func sampleDraft() domain.FrameworkDraft {
	d := domain.NewDraft()
	d.TentativeTitle = "Soil carbon"
	d.Objectives = []string{"", "Map carbon stocks"}
	return d
}

func TestExportFramework_DeliveredToGateway(t *testing.T) {
	gw := &fakeGateway{id: "framework_20261018_101112_abcdef12"}
	sink := &fakeSink{path: "/tmp/x.md"}

	uc := NewExportFramework(sink, WithGateway(gw))
	out, err := uc.Execute(context.Background(), sampleDraft())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !out.Delivered || out.FrameworkID != gw.id {
		t.Fatalf("expected delivery with id, got %+v", out)
	}
	if sink.calls != 0 {
		t.Fatalf("expected no local write on success")
	}
	if gw.got.Document != out.Document {
		t.Fatalf("expected gateway to receive the exported document")
	}
	if !strings.Contains(out.Document, "1. Map carbon stocks") {
		t.Fatalf("expected rendered document, got:\n%s", out.Document)
	}
}

func TestExportFramework_FallsBackOnDeliveryFailure(t *testing.T) {
	deliveryErr := &domain.OpError{Op: "gatewayclient.submit", Kind: domain.KindDelivery, Err: domain.ErrDelivery}
	gw := &fakeGateway{err: deliveryErr}
	sink := &fakeSink{path: "exports/soil-carbon.md"}

	draft := sampleDraft()
	uc := NewExportFramework(sink, WithGateway(gw))
	out, err := uc.Execute(context.Background(), draft)
	if err != nil {
		t.Fatalf("expected fallback to recover, got %v", err)
	}

	if gw.calls != 1 {
		t.Fatalf("expected exactly one delivery attempt, got %d", gw.calls)
	}
	if !out.FellBack() || out.LocalPath != sink.path {
		t.Fatalf("expected local fallback, got %+v", out)
	}
	if !domain.IsKind(out.DeliveryErr, domain.KindDelivery) {
		t.Fatalf("expected delivery error recorded, got %v", out.DeliveryErr)
	}
	if sink.name != "Soil carbon" || sink.doc != out.Document {
		t.Fatalf("expected sink to receive title and document, got name=%q", sink.name)
	}
	if draft.Objectives[0] != "" || len(draft.Objectives) != 2 {
		t.Fatalf("expected caller draft untouched, got %q", draft.Objectives)
	}
}

func TestExportFramework_NoGatewayWritesLocally(t *testing.T) {
	sink := &fakeSink{path: "exports/untitled.md"}

	out, err := NewExportFramework(sink).Execute(context.Background(), domain.NewDraft())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Delivered || out.DeliveryErr != nil || out.FellBack() {
		t.Fatalf("expected plain local export, got %+v", out)
	}
	if sink.name != "Untitled Framework" {
		t.Fatalf("expected untitled name, got %q", sink.name)
	}
}

func TestExportFramework_BothFail(t *testing.T) {
	gw := &fakeGateway{err: errors.New("connection refused")}
	sink := &fakeSink{err: errors.New("disk full")}

	out, err := NewExportFramework(sink, WithGateway(gw)).Execute(context.Background(), sampleDraft())
	if err == nil {
		t.Fatalf("expected error when both deliveries fail")
	}
	if !strings.Contains(err.Error(), "connection refused") || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected both causes, got %v", err)
	}
	if out.Document == "" {
		t.Fatalf("expected document still returned to the caller")
	}
}

func TestExportFramework_NothingConfigured(t *testing.T) {
	_, err := NewExportFramework(nil).Execute(context.Background(), domain.NewDraft())
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}
