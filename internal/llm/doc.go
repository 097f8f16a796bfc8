// Package llm provides the language model abstraction and the extraction
// pipeline built on it. It supports multiple text-generation providers
// (local Ollama server, OpenAI, Anthropic) behind a single Client
// interface, with tolerant JSON extraction from model output and
// fallback-safe pipeline operations that never fail a batch.
package llm
