package log

import (
	"context"
	"time"
)

const jobPrefix = "[JOB]"

// LogJob writes the final line of a worker job, at WARN when it failed.
func LogJob(ctx context.Context, jobName, version string, startedAt time.Time, err error) {
	fields := []Field{
		String("job-name", jobName),
		String("version", version),
		Duration("elapsed", time.Since(startedAt)),
	}

	if err == nil {
		Info(ctx, jobPrefix, append(fields, String("status", "success"))...)
		return
	}

	Warn(ctx, jobPrefix, append(fields, String("status", "fail"), Err(err))...)
}
