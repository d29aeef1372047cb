package testing

import (
	"context"

	"github.com/go-sif/peek"
	"github.com/go-sif/peek/logging"
	"github.com/go-sif/peek/session"
)

// LocalRunFrame runs a DataFrame on a throwaway Session, collecting at most limit Rows
// (or every Row, if limit is negative). The Session is stopped before returning.
func LocalRunFrame(ctx context.Context, frame peek.DataFrame, opts *session.Options, limit int64) (result []peek.CollectedPartition, err error) {
	if opts == nil {
		opts = &session.Options{}
	}
	opts = session.CloneOptions(opts)
	if len(opts.AppName) == 0 {
		opts.AppName = "peek-test"
	}
	if opts.NumInMemoryPartitions == 0 {
		opts.NumInMemoryPartitions = 10
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	sess, err := session.Builder().Config(opts).Create()
	if err != nil {
		return nil, err
	}
	defer func() {
		if sErr := sess.Stop(); sErr != nil && err == nil {
			err = sErr
		}
	}()
	return sess.Collect(ctx, frame, limit)
}
