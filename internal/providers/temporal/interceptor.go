package temporal

import (
	"context"
	"strconv"

	"github.com/getsentry/sentry-go"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/interceptor"
)

// NewSentryActivityInterceptor creates a worker interceptor that gives every
// activity execution its own Sentry hub
func NewSentryActivityInterceptor() interceptor.WorkerInterceptor {
	return &SentryActivityInterceptor{}
}

// SentryActivityInterceptor injects a cloned Sentry hub, tagged with the
// activity and its workflow, into the activity context
type SentryActivityInterceptor struct {
	interceptor.WorkerInterceptorBase
}

func (s *SentryActivityInterceptor) InterceptActivity(ctx context.Context, next interceptor.ActivityInboundInterceptor) interceptor.ActivityInboundInterceptor {
	return &sentryActivityInboundInterceptor{
		ActivityInboundInterceptorBase: interceptor.ActivityInboundInterceptorBase{Next: next},
	}
}

type sentryActivityInboundInterceptor struct {
	interceptor.ActivityInboundInterceptorBase
}

// ExecuteActivity runs the activity with a per-execution hub so that
// logger.ErrorCtx reports carry the step that failed
func (s *sentryActivityInboundInterceptor) ExecuteActivity(ctx context.Context, in *interceptor.ExecuteActivityInput) (interface{}, error) {
	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		for k, v := range activityTags(activity.GetInfo(ctx)) {
			scope.SetTag(k, v)
		}
	})

	return s.Next.ExecuteActivity(sentry.SetHubOnContext(ctx, hub), in)
}

// activityTags names the activity execution in Sentry events
func activityTags(info activity.Info) map[string]string {
	tags := map[string]string{
		"activity_type": info.ActivityType.Name,
		"workflow_id":   info.WorkflowExecution.ID,
		"task_queue":    info.TaskQueue,
		"attempt":       strconv.FormatInt(int64(info.Attempt), 10),
	}
	if info.WorkflowType != nil {
		tags["workflow_type"] = info.WorkflowType.Name
	}
	return tags
}
