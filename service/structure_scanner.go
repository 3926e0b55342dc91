package service

import (
	"context"
	"path/filepath"

	"github.com/ludo-technologies/atomscan/domain"
	"github.com/ludo-technologies/atomscan/internal/config"
	"github.com/ludo-technologies/atomscan/internal/scanner"
)

// StructureScannerImpl implements domain.StructureScanner: one directory
// walk for discovery, then fact extraction per unit through the bounded
// executor.
type StructureScannerImpl struct {
	cfg      *config.Config
	progress domain.ProgressManager
	executor *ParallelExecutor
}

// NewStructureScanner creates a scanner service for the given configuration
func NewStructureScanner(cfg *config.Config, progress domain.ProgressManager) *StructureScannerImpl {
	if progress == nil {
		progress = &NoOpProgressManager{}
	}
	workers := cfg.Analysis.MaxWorkers
	if workers == 0 {
		workers = 1
	}
	return &StructureScannerImpl{
		cfg:      cfg,
		progress: progress,
		executor: NewParallelExecutor(workers),
	}
}

// Scan implements domain.StructureScanner. Unit order is lexicographic by
// path and facts are written by index, so results are identical at any
// worker count.
func (s *StructureScannerImpl) Scan(ctx context.Context, root string) (*domain.StructureFacts, error) {
	walker := scanner.NewWalker(s.cfg)
	facts, err := walker.Discover(root)
	if err != nil {
		return nil, err
	}

	extractor := scanner.NewFactExtractor(s.cfg.Conventions)

	task := s.progress.StartTask("Scanning components", len(facts.Units))
	defer task.Complete()

	err = s.executor.ForEach(ctx, len(facts.Units), func(i int) error {
		unit := &facts.Units[i]
		unitDir := filepath.Join(facts.ComponentsDir, filepath.FromSlash(unit.Path))
		extractor.Extract(unit, unitDir)
		task.Increment(1)
		return nil
	})
	if err != nil {
		return nil, domain.NewScanError("fact extraction failed", err)
	}

	return facts, nil
}
