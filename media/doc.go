// Package media defines [Format], the immutable descriptor for a media
// track or container: codec identity, container and elementary-stream
// MIME types, video geometry and timing, audio layout, subtitle timing,
// track-selection hints, and DRM linkage.
//
// Formats are produced by the category constructors (NewVideoSampleFormat
// and friends), by the With* evolution methods, by [Format.WithManifestInfo]
// merging, or by [Parse] decoding the wire form. They are never mutated in
// place; every derivation allocates a new value and shares initialization
// data and the DRM reference with its source.
package media
