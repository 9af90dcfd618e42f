// Package pair implements automatic bracket-pair management: typing an
// opening delimiter auto-inserts its closer, typing the closer directly
// after an auto-inserted one skips over it, and deleting between a
// matching pair removes both characters.
//
// The package is built around a Session that owns the closed-bracket
// tracker for one document. All decisions are total: an operation either
// produces an edit plan or reports "not applicable", in which case the
// host falls back to default insertion or deletion. Rejects never mutate
// the tracker or the selection.
//
// The subsystem is single-threaded by contract: every operation runs to
// completion inside one host dispatch callback, and tracker updates are
// applied atomically with the edit they belong to. A multi-threaded host
// must serialize all calls into a Session.
package pair
