package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/domain"
	"github.com/vlai-dev123/vlai-mini-ui-framework-thesis/internal/ports"
)

// ExportOutcome reports where an exported document ended up.
type ExportOutcome struct {
	Document string

	// FrameworkID is set when the gateway accepted the document.
	FrameworkID string
	Delivered   bool

	// DeliveryErr is the gateway failure that triggered the local fallback.
	DeliveryErr error

	// LocalPath is set when the document was written to the local sink.
	LocalPath string
}

// FellBack reports whether a gateway failure was recovered by a local write.
func (o ExportOutcome) FellBack() bool {
	return o.DeliveryErr != nil && o.LocalPath != ""
}

type ExportFramework struct {
	gateway ports.PersistenceGateway
	sink    ports.DocumentSink
	log     *slog.Logger
}

type ExportOption func(*ExportFramework)

// WithGateway enables submission to a persistence gateway. A nil gateway keeps exports local.
func WithGateway(g ports.PersistenceGateway) ExportOption {
	return func(uc *ExportFramework) { uc.gateway = g }
}

func WithExportLogger(l *slog.Logger) ExportOption {
	return func(uc *ExportFramework) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewExportFramework(sink ports.DocumentSink, opts ...ExportOption) *ExportFramework {
	uc := &ExportFramework{
		sink: sink,
		log:  slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute renders draft and delivers it. The gateway is tried once; on failure the
// document is written through the sink instead. The draft is never modified.
func (uc *ExportFramework) Execute(ctx context.Context, draft domain.FrameworkDraft) (ExportOutcome, error) {
	draft = draft.Normalize()
	out := ExportOutcome{Document: domain.ExportDocument(draft)}

	if uc.gateway != nil {
		id, err := uc.gateway.Submit(ctx, ports.Submission{Draft: draft, Document: out.Document})
		if err == nil {
			out.FrameworkID = id
			out.Delivered = true
			uc.log.Info("export.delivered", "framework_id", id)
			return out, nil
		}
		out.DeliveryErr = err
		uc.log.Warn("export.delivery_failed", "err", err)
	}

	if uc.sink == nil {
		if out.DeliveryErr != nil {
			return out, out.DeliveryErr
		}
		return out, &domain.OpError{
			Op:   "usecase.export",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("no gateway and no local sink configured"),
		}
	}

	path, err := uc.sink.WriteDocument(domain.FrameworkTitle(draft), out.Document)
	if err != nil {
		uc.log.Error("export.local_write_failed", "err", err)
		if out.DeliveryErr != nil {
			return out, errors.Join(out.DeliveryErr, err)
		}
		return out, err
	}

	out.LocalPath = path
	uc.log.Info("export.written_locally", "path", path, "fallback", out.DeliveryErr != nil)
	return out, nil
}
