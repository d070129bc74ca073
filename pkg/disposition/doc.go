// Package disposition decides what happens to a config file on disk during
// package install, upgrade or erase.
//
// The core is a three-way digest comparison between the previously shipped
// content, the current on-disk content and the newly shipped content. The
// decision is a pure function over digests and flags; applying it to the
// filesystem is pkg/executor's job.
package disposition
