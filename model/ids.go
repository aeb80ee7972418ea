// Package model holds the identity and geometry primitives shared by the
// platform contract and the core engine, kept dependency-free (aside
// from the uuid leaf package) so either side can import it without a
// cycle.
package model

import "github.com/google/uuid"

// WindowID identifies an OS window. It is unique process-wide and is
// treated as globally unique by the rest of the system (spec.md §3).
type WindowID uint32

// ApplicationID identifies an OS process hosting zero or more windows.
type ApplicationID uint32

// DisplayID identifies an OS display (monitor).
type DisplayID uint32

// DisplayUUID is the stable, cross-API identifier macOS hands out for a
// display (CGDisplayCreateUUIDFromDisplayID) alongside its numeric
// DisplayID; the two must be translated between each other at the
// platform boundary (spec.md §4.2). It is a plain uuid.UUID so the
// platform layer can build it from the display's 16 raw UUID bytes with
// uuid.FromBytes.
type DisplayUUID = uuid.UUID

// WorkspaceID identifies a virtual desktop ("space"), scoped to one
// display: the same numeric id on two displays names two different
// workspaces.
type WorkspaceID int
