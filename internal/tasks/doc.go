// Package tasks orchestrates notebook operations between the backend service
// and the session state, with real-time progress reporting.
//
// # Core Operations
//
// [StudyEngine] drives every user-initiated action:
//
//  1. [StudyEngine.AddSource] : Upload a local document
//     - Preflights the file locally (.pdf or .txt, non-empty)
//     - Uploads it as multipart form data
//     - Records the source in the session registry
//
//  2. Generation ([StudyEngine.GenerateFlashcards], [StudyEngine.GenerateQuiz],
//     [StudyEngine.GenerateFlowchart], [StudyEngine.GenerateSlides],
//     [StudyEngine.GenerateVideo], [StudyEngine.GenerateAudio])
//     - Refuses before any network call when no sources are registered
//     - Rate-limits outgoing generation requests
//     - Saves durable artifacts to the store under a title derived from the
//       first uploaded source, then opens reviewable ones in the viewer
//
//  3. [StudyEngine.Chat] : Question answering over the uploaded sources,
//     one in-flight query at a time, recorded in the session transcript
//
// # Concurrency
//
// Each operation kind allows a single in-flight request; a second concurrent
// request of the same kind fails fast with [shared.ErrBusy] instead of
// queueing. Progress channels are written non-blocking, so a slow consumer
// drops updates rather than stalling the operation.
package tasks
