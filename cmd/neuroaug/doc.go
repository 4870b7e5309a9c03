// SPDX-License-Identifier: EPL-2.0

// Command neuroaug writes randomly augmented copies of every image or audio
// file in a folder.
//
//	neuroaug image <input_folder> <output_folder> <count>
//	neuroaug audio <input_folder> <output_folder> <count>
//
// Settings come from an optional TOML file (--config) and are overridden by
// flags. "neuroaug config init" writes a commented sample file.
package main
