// Package sync contains the building blocks of SyncDirectory.
//
// The sync pipeline is split into a scanner, which discovers local source
// files, and a planner, which compares them with the files of the remote
// folder. Execution lives in the root crowdin package so that it reuses the
// same upload path as UpdateOrCreateFile.
package sync
