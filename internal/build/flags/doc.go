// Package flags resolves integer build flags through a cached store.
//
// A flag value is resolved in this order:
//
//  1. An override passed on this invocation as name=value, if non-negative
//  2. The value already cached in the Env under the flag name
//  3. The caller's default
//
// The resolved value is written back to the Env, so later lookups in the
// same build run see it even without an override. Env can be persisted
// to a YAML file so the cache survives across invocations.
package flags
