// Package assistant implements the natural-language storage assistant.
//
// A user query is processed in exactly one cycle: the agent sends the
// conversation and the declared tool specs to the language model, executes
// every requested tool invocation sequentially through the registry, appends
// each result to the conversation in request order, and asks the model once
// more to synthesize the final answer.
//
// # Tools
//
//   - list_buckets: all buckets with creation dates (JSON).
//   - list_objects: objects of one bucket with byte sizes (JSON, bounded page).
//   - upload_file / download_file / remove_file: file transfer operations.
//   - search_objects: case-insensitive key search across all buckets,
//     tolerant of individual buckets failing to list.
//
// Tool failures never abort a cycle. Storage errors are demoted to
// descriptive text so the model can react to them, while a structured
// StorageError is kept for logging. An unknown tool name requested by the
// model yields a synthesized error result.
//
// # Surfaces
//
// The same cycle is reachable from the REPL (cmd chat), one-shot queries
// (cmd ask) and the HTTP endpoint (POST /chat).
package assistant
