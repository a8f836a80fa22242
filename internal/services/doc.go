// Package services defines the [Service] interface for the notebook backend
// and implements it over its JSON HTTP endpoints.
//
// # Service Interface
//
// The backend is an opaque collaborator: one request per user action, no
// retries, no cancellation of superseded requests. The client checks only
// for the presence of the expected top-level fields; anything else falls
// back to the error-display path.
//
// # Boundary Validation
//
// Generation payloads are loosely typed JSON. Responses are decoded into a
// tagged variant ([StudyAidResult], [SlideResult], [VideoResult],
// [AudioResult]) and validated with go-playground/validator before entering
// the typed data model, so malformed responses surface as
// [shared.ErrMalformedResponse] and never reach the artifact store.
//
// # Upload Preflight
//
// [PreflightSource] rejects unsupported or unreadable source files locally,
// before any network call, mirroring the checks the backend applies
// server-side.
//
// # Error Handling
//
// Services use typed errors from the shared package:
//   - [shared.ErrAPIRequest] : transport failure or non-2xx status
//   - [shared.ErrMalformedResponse] : missing or empty expected fields
//   - [shared.ErrInvalidInput] : local file unreadable
//   - [shared.ErrUnsupportedSource] : not a .pdf or .txt source
package services
