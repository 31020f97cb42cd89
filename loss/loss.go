package loss

import (
	"fmt"
	"io"
	"log"

	"github.com/loss-pager/loss/controller"
	"github.com/loss-pager/loss/docnav"
)

// Pager bundles the running controller model together with the cleanup
// for whatever temp file OpenForViewing may have materialized.
type Pager struct {
	Model   *controller.Model
	cleanup func()
}

// New opens path (transparently decompressing .gz/.bz2 and, if
// WithSourceEncoding is given, transcoding to UTF-8), builds a
// Document, and returns a ready-to-run Pager.
func New(path string, opts ...Option) (*Pager, error) {
	cfg := config{
		chunkSize: docnav.DefaultChunkSize,
		maxChunks: docnav.MaxChunks,
		logger:    log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	reader, cleanup, err := docnav.OpenForViewing(path, cfg.sourceEncoding)
	if err != nil {
		return nil, fmt.Errorf("loss: open %s: %w", path, err)
	}

	docOpts := []docnav.Option{
		docnav.WithChunkSize(cfg.chunkSize),
		docnav.WithMaxChunks(cfg.maxChunks),
	}
	doc, err := docnav.NewDocument(reader, docOpts...)
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("loss: %w", err)
	}

	cfg.logger.Printf("opened %s (%d bytes)", path, doc.DocumentSize())

	model := controller.New(doc, path)
	model.SetFollow(cfg.follow)

	return &Pager{Model: model, cleanup: cleanup}, nil
}

// Close releases any temp file created while opening the source.
func (p *Pager) Close() {
	if p.cleanup != nil {
		p.cleanup()
	}
}
