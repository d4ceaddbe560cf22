// Package classify maps free-text messages to intents and extracted
// requirements, and drives the one-way conversation phase machine
// (discovery -> requirements -> blueprint -> implementation).
//
// Intent resolution is an ordered keyword table, not cascading
// conditionals: the keyword sets overlap on purpose, and the first matching
// rule in priority order wins. Rule order and the fallback are therefore
// unit-testable in isolation.
package classify
