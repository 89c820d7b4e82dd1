//go:build persist_toml

package persist

// activeBackend is the serialization strategy linked into this build.
var activeBackend Backend = tomlBackend{}
