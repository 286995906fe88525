package logging

import "context"

type contextKey string

const contextFieldsKey contextKey = "filecms.logging.fields"

const (
	FieldRequestID = "request_id"
	FieldMethod    = "method"
	FieldPath      = "path"
)

// ContextWithFields returns a context carrying structured logging fields that
// loggers merge into subsequent entries. Existing fields are kept; new values
// win on key collisions.
func ContextWithFields(ctx context.Context, fields map[string]any) context.Context {
	if ctx == nil || len(fields) == 0 {
		return ctx
	}

	existing := ContextFields(ctx)
	merged := make(map[string]any, len(existing)+len(fields))
	for key, value := range existing {
		merged[key] = value
	}
	for key, value := range fields {
		merged[key] = value
	}
	return context.WithValue(ctx, contextFieldsKey, merged)
}

// ContextFields extracts previously annotated logging fields from the context.
// The returned map is a copy.
func ContextFields(ctx context.Context) map[string]any {
	if ctx == nil {
		return nil
	}
	fields, ok := ctx.Value(contextFieldsKey).(map[string]any)
	if !ok || len(fields) == 0 {
		return nil
	}

	copied := make(map[string]any, len(fields))
	for key, val := range fields {
		copied[key] = val
	}
	return copied
}

// ContextWithRequest annotates ctx with the identifiers of an HTTP request.
func ContextWithRequest(ctx context.Context, requestID, method, path string) context.Context {
	fields := map[string]any{}
	if requestID != "" {
		fields[FieldRequestID] = requestID
	}
	if method != "" {
		fields[FieldMethod] = method
	}
	if path != "" {
		fields[FieldPath] = path
	}
	return ContextWithFields(ctx, fields)
}

// RequestID returns the request identifier stored by ContextWithRequest.
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	fields, _ := ctx.Value(contextFieldsKey).(map[string]any)
	id, _ := fields[FieldRequestID].(string)
	return id
}
