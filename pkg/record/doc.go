// Package record defines the host records the viewer can inspect: plain
// content posts and order-like records (orders and subscriptions). Callers
// resolve the host's ambient "current object" once into a Variant and pass it
// explicitly to the rest of the pipeline.
package record
