// Package experiment owns the process-wide registry of named experiment
// configurations and the checks applied to experiment documents: restriction
// predicates, schema-version compatibility, and JSON-schema validation.
// Config packages register zero-argument factories at init time; callers look
// a factory up by name and receive a freshly built configuration per call.
package experiment
