// SPDX-License-Identifier: EPL-2.0

// Package batch runs the augmentation pipeline over a folder of media files.
//
// A run validates its arguments, creates the output folder and then handles
// every recognised file independently: a file that cannot be decoded or
// encoded is reported, counted as skipped and leaves no outputs behind. Files
// with other extensions are skipped; subfolders are ignored.
//
// Every output copy draws from its own generator seeded by the run seed, the
// file's position in name order and the copy number, so a seeded run
// produces the same files whatever the worker count.
package batch
