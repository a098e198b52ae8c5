// Package atlas bin-packs rendered frame sequences into fixed-size
// texture pages.
//
// The packer trims each frame to its tight non-transparent bounding box,
// sorts by trimmed height and places frames greedily on shelves, flushing
// a page whenever the next frame would overflow it:
//
//	pages, err := atlas.Pack(frames, "slash_01_LR_once_30fps_24f", atlas.Options{
//	    MaxPageSize: 2048,
//	    Padding:     2,
//	    Trim:        true,
//	})
//
// Every page carries a PNG image plus a texture-packer-compatible frame
// index keyed by the original frame index, so consumers can both reposition
// trimmed sprites within their full-frame bounds and recover playback
// order. Multi-page outputs suffix image and index names with "_p<N>".
//
// Pack is a pure function: no shared state, safe to call concurrently with
// independent inputs. Failure modes are *PackingOverflowError (one frame
// can never fit a page) and *EncodeExhaustedError (page encode failed even
// through the fallback path); both are fatal for the invocation.
package atlas
