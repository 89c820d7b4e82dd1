//go:build !persist_toml

package persist

// activeBackend is the serialization strategy linked into this build.
// The default build uses JSON; build with -tags persist_toml for TOML.
var activeBackend Backend = jsonBackend{}
