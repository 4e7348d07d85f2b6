package circuits

import (
	"context"
	"os"
	"time"

	"github.com/pingcap/errors"
	"go.uber.org/zap"
)

// Answers are the results of both parts of the puzzle.
type Answers struct {
	Part1 int
	Part2 int
}

// Solve reads cfg.Input and runs both parts on it.
func Solve(ctx context.Context, cfg Config, logger *zap.Logger) (Answers, error) {
	f, err := os.Open(cfg.Input)
	if err != nil {
		return Answers{}, errors.Trace(err)
	}
	defer f.Close()
	boxes, err := Parse(f)
	if err != nil {
		return Answers{}, errors.Annotatef(err, "parse %s", cfg.Input)
	}
	logger.Debug("parsed input", zap.String("input", cfg.Input), zap.Int("boxes", len(boxes)))

	var ans Answers
	t0 := time.Now()
	ans.Part1, err = Part1(ctx, boxes, cfg.Connections, cfg.Top)
	if err != nil {
		return Answers{}, errors.Annotate(err, "part 1")
	}
	logger.Info("part 1", zap.Int("answer", ans.Part1), zap.Duration("took", time.Since(t0).Round(time.Microsecond)))

	t0 = time.Now()
	ans.Part2, err = Part2(ctx, boxes)
	if err != nil {
		return Answers{}, errors.Annotate(err, "part 2")
	}
	logger.Info("part 2", zap.Int("answer", ans.Part2), zap.Duration("took", time.Since(t0).Round(time.Microsecond)))
	return ans, nil
}
