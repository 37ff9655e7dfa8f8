package llm

import "context"

type contextKey string

const (
	purposeKey    contextKey = "llm_purpose"
	assessmentKey contextKey = "llm_assessment"
)

// Purpose labels recorded with each request event.
const (
	PurposeDeepReport  = "deep-report"
	PurposeBriefReport = "brief-report"
)

// WithPurpose attaches a purpose label to the context for event logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}

// WithAssessment attaches the assessment a request is made for.
func WithAssessment(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, assessmentKey, id)
}

// AssessmentFrom returns the assessment id attached to ctx, if any.
func AssessmentFrom(ctx context.Context) string {
	v, _ := ctx.Value(assessmentKey).(string)
	return v
}
