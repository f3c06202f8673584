// Package versionlifecycle owns the asset version lifecycle of the
// Enablement Hub: draft, scheduled, published, expired, and archived states,
// the transitions between them, and the download access policy.
//
// The module keeps domain/application logic decoupled from runtime/platform
// concerns through ports and adapter composition.
package versionlifecycle
