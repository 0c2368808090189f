package jobcontext

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type KeyContext string

var (
	keyJobID        KeyContext = "job_id"
	keyJobType      KeyContext = "job_type"
	keyJobStartTime KeyContext = "job_start_time"
)

// JobMetadata holds metadata for one unit of request work, such as an upload
type JobMetadata struct {
	JobID     string
	JobType   string
	StartTime time.Time
}

// JobBegin attaches job metadata to ctx. No deadline is added: the job runs
// as long as the parent context allows.
func JobBegin(parentCtx context.Context, jobID, jobType string) context.Context {
	ctx := context.WithValue(parentCtx, keyJobID, jobID)
	ctx = context.WithValue(ctx, keyJobType, jobType)
	ctx = context.WithValue(ctx, keyJobStartTime, time.Now())
	return ctx
}

// GetJobID extracts job ID from context
func GetJobID(ctx context.Context) (string, bool) {
	jobID, ok := ctx.Value(keyJobID).(string)
	return jobID, ok
}

// GetJobType extracts job type from context
func GetJobType(ctx context.Context) (string, bool) {
	jobType, ok := ctx.Value(keyJobType).(string)
	return jobType, ok
}

// GetJobStartTime extracts job start time from context
func GetJobStartTime(ctx context.Context) (time.Time, bool) {
	startTime, ok := ctx.Value(keyJobStartTime).(time.Time)
	return startTime, ok
}

// GetJobMetadata extracts all job metadata from context
func GetJobMetadata(ctx context.Context) *JobMetadata {
	jobID, _ := GetJobID(ctx)
	jobType, _ := GetJobType(ctx)
	startTime, _ := GetJobStartTime(ctx)

	return &JobMetadata{
		JobID:     jobID,
		JobType:   jobType,
		StartTime: startTime,
	}
}

// LogFields returns zap fields describing the job in ctx, including the
// time elapsed since JobBegin. It returns nil outside a job.
func LogFields(ctx context.Context) []zap.Field {
	meta := GetJobMetadata(ctx)
	if meta.JobType == "" {
		return nil
	}

	fields := []zap.Field{
		zap.String("job_id", meta.JobID),
		zap.String("job_type", meta.JobType),
	}
	if !meta.StartTime.IsZero() {
		fields = append(fields, zap.Duration("elapsed", time.Since(meta.StartTime)))
	}
	return fields
}
