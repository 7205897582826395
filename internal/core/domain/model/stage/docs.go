// Package stage models the fulfillment pipeline stages and the JSON payload
// persisted per (order, stage). The payload codec is deliberately tolerant:
// historical writers stored ids as numbers or strings, labour lists as plain
// strings and whole payloads double-encoded, and all of it must still load.
package stage
