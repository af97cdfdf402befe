// Package session implements the single-slot model session: at most one model
// file is considered loaded at a time, and generation is a deterministic
// offline stub derived from the loaded model's label and the prompt. It is
// structured into small files by concern:
//
//   - session.go: core Session type, constructor, simple getters.
//   - config.go: SessionConfig and package defaults; NewWithConfig applies defaults.
//   - types.go: state types (State, LoadedModel, Snapshot).
//   - errors.go: error types and helpers (IsPathEmpty, IsModelNotAccessible).
//   - load.go: Load/Unload lifecycle.
//   - generate.go: stub generation and label/tail derivation.
//   - status.go: Status/Snapshot reporting helpers.
//   - events.go: lifecycle event publishing.
//
// Build tags and verification:
//
//   - Default builds verify a model path by opening the file
//     (verify_stub.go). Builds with `-tags=llama` additionally load the
//     model via go-llama.cpp and free it, catching corrupt files early
//     (verify_llama.go).
//
// External packages should treat this package as the session core and use
// public methods only (New/NewWithConfig, Load, Unload, Loaded, Generate,
// Status). Internal fields are subject to change.
package session
