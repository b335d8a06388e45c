// Package source provides the input adapters feeding the fill pipeline:
// file reads, multi-file drops and clipboard-style pastes.
//
// Adapters enforce the size and type guards before any content is read and
// return raw JSON bytes; they never parse beyond the paste pre-filter.
package source
