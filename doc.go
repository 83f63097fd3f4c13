// Package llmwire adapts OpenAI-compatible and Azure-hosted chat completion
// endpoints to one invocation contract: build the messages from a prompt
// (optionally with an image URL, or from caller-supplied messages), issue the
// request, and shape the outcome into either plain text or a verbatim
// tool-call message.
//
// Every client exposes the same call shapes, Call and CallAsync, each running
// buffered or streamed depending on the configured Stream flag. Streamed
// calls concatenate text deltas in arrival order and notify an optional
// Reporter as they go: INIT once on async calls, RUNNING per delta with the
// cumulative text, and FINISH with the final text. Tool calls surface only on
// buffered calls; the streamed path never reconstructs them and always
// resolves to text.
//
// Transport, authentication and the wire format belong to the openai-go SDK.
// Retries and backoff are the caller's concern; the only throttling here is a
// per-client max-rate-per-period gate applied before each request.
package llmwire
