package services

import (
	"context"
	"log"

	"github.com/Madhav-Gupta-28/sportsmart-backend-go/events"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/Madhav-Gupta-28/sportsmart-backend-go/services")

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return tracer.Start(ctx, name)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// emit publishes a change event. Failures are logged and never reach the caller.
func emit(ctx context.Context, pub events.Publisher, eventType, id string, payload any) {
	if pub == nil {
		return
	}
	e, err := events.NewEnvelope(eventType, id, payload)
	if err == nil {
		err = pub.Publish(ctx, e)
	}
	if err != nil {
		log.Printf("publish %s %s: %v", eventType, id, err)
	}
}
