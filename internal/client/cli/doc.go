// Package cli provides the interactive photokeeper command-line client.
//
// It wires configuration, the local cache database, the API client, and an
// interactive REPL. Typical flow: restore the persisted session, start the
// background refresh poller, and execute user commands until exit.
//
// Key features:
//   - Register / Login / Logout
//   - Upload batches of local files
//   - List, search, and inspect records
//   - Review and resolve duplicate groups
//   - Manage albums and their membership
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
