// Package drm holds the content-protection metadata referenced by media
// formats. An [InitData] is an opaque, immutable bundle of per-scheme
// initialization payloads (e.g. a PSSH box) keyed by the scheme's UUID.
// It supports value equality, a stable hash, and participates in the
// media wire codec as a nested unit.
package drm

import (
	"bytes"
	"hash/fnv"

	"github.com/google/uuid"
)

// Well-known DRM scheme UUIDs.
var (
	WidevineUUID  = uuid.MustParse("edef8ba9-79d6-4ace-a3c8-27dcd51d21ed")
	PlayReadyUUID = uuid.MustParse("9a04f079-9840-4286-ab92-e65be0885f95")
	ClearKeyUUID  = uuid.MustParse("e2719d58-a985-b3c9-781a-b030af78d30e")
)

// SchemeData carries the initialization payload for a single DRM scheme.
type SchemeData struct {
	// SchemeID identifies the DRM scheme this payload belongs to.
	SchemeID uuid.UUID
	// MimeType describes the payload encoding (e.g. "video/mp4" for a
	// PSSH box extracted from an ISO BMFF container).
	MimeType string
	// Data is the opaque scheme-specific payload.
	Data []byte
}

// InitData is an ordered set of scheme payloads for a protected stream.
// It is immutable after construction and may be shared freely across
// formats and goroutines.
type InitData struct {
	schemes []SchemeData
}

// NewInitData builds an InitData from the given scheme payloads. The
// payload order is preserved and significant for equality.
func NewInitData(schemes ...SchemeData) *InitData {
	return &InitData{schemes: schemes}
}

// SchemeCount returns the number of scheme payloads.
func (d *InitData) SchemeCount() int {
	return len(d.schemes)
}

// Scheme returns the i-th scheme payload.
func (d *InitData) Scheme(i int) SchemeData {
	return d.schemes[i]
}

// Equal reports whether two InitData carry the same schemes, in the
// same order, with byte-identical payloads. Either side may be nil.
func (d *InitData) Equal(other *InitData) bool {
	if d == other {
		return true
	}
	if d == nil || other == nil {
		return false
	}
	if len(d.schemes) != len(other.schemes) {
		return false
	}
	for i := range d.schemes {
		a, b := d.schemes[i], other.schemes[i]
		if a.SchemeID != b.SchemeID || a.MimeType != b.MimeType || !bytes.Equal(a.Data, b.Data) {
			return false
		}
	}
	return true
}

// Hash returns a stable hash of the InitData, consistent with Equal.
// A nil InitData hashes to zero.
func (d *InitData) Hash() uint64 {
	if d == nil {
		return 0
	}
	h := fnv.New64a()
	h.Write(d.AppendWire(nil))
	return h.Sum64()
}
