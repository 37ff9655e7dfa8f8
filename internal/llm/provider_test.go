package llm

import (
	"context"
	"errors"
	"testing"
)

func TestMockProvider_QueueOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: []byte("深度报告"), Usage: Usage{InputTokens: 1200, OutputTokens: 3000}},
		MockResponse{Err: &ErrRateLimit{}},
	)
	mock.AddResponse(MockText(`{"analysis":"回避评价"}`))
	ctx := context.Background()

	first, err := mock.Generate(ctx, Request{System: "deep"})
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	if first.Text() != "深度报告" || first.Usage.OutputTokens != 3000 || first.StopReason != "end" {
		t.Errorf("first = %+v", first)
	}

	var rl *ErrRateLimit
	if _, err := mock.Generate(ctx, Request{}); !errors.As(err, &rl) {
		t.Errorf("second: expected ErrRateLimit, got %v", err)
	}

	third, err := mock.Generate(ctx, Request{JSONMode: true})
	if err != nil || third.Text() != `{"analysis":"回避评价"}` {
		t.Errorf("third = %v, %v", third, err)
	}

	var unavail *ErrProviderUnavailable
	if _, err := mock.Generate(ctx, Request{}); !errors.As(err, &unavail) {
		t.Errorf("drained queue: expected ErrProviderUnavailable, got %v", err)
	}

	if mock.CallCount() != 4 || mock.Calls[0].System != "deep" || !mock.Calls[2].JSONMode {
		t.Errorf("calls not recorded: %+v", mock.Calls)
	}
	if mock.ModelID() != "mock" {
		t.Errorf("ModelID() = %q", mock.ModelID())
	}
}

func TestResponse_TextNilSafe(t *testing.T) {
	var r *Response
	if r.Text() != "" {
		t.Fatal("nil response should have empty text")
	}
}

func TestRequestContext(t *testing.T) {
	bare := context.Background()
	if PurposeFrom(bare) != "unknown" || AssessmentFrom(bare) != "" {
		t.Fatalf("bare context: %q %q", PurposeFrom(bare), AssessmentFrom(bare))
	}

	ctx := WithAssessment(WithPurpose(bare, PurposeBriefReport), "a-1")
	if PurposeFrom(ctx) != PurposeBriefReport {
		t.Errorf("purpose = %q", PurposeFrom(ctx))
	}
	if AssessmentFrom(ctx) != "a-1" {
		t.Errorf("assessment = %q", AssessmentFrom(ctx))
	}
}
