// Package persist stores a single application-defined state value in
// the platform-conventional per-user configuration directory. The
// value is wrapped in an Envelope carrying the UTC instant at which it
// was serialized and written as one text document through a
// serialization Backend; exactly one backend (JSON by default, TOML
// under the persist_toml build tag) is active in a given build.
package persist

// Version is the library version reported by the persist CLI.
const Version = "0.1.0"
