// Package media resolves image resources referenced by slide snapshots.
//
// A [Prober] reads images from data URIs and local files, reports their
// intrinsic size and, when an OCR recogniser is attached, describes images
// that have no alternative text. Results are memoised per source, since the
// same logo usually appears on every slide.
//
// # Supported Formats
//
// PNG, JPEG and GIF through the standard decoders, WebP, BMP and TIFF
// through golang.org/x/image, and SVG through its width, height or viewBox
// attributes.
//
// # Usage
//
//	prober := media.NewProber(media.Config{BaseDir: "slides/"})
//	w, h, err := prober.ProbeSize(ctx, "img/logo.png")
//
// A Prober satisfies the snapshot.ImageProber and snapshot.AltTexter
// interfaces and is normally passed through snapshot.HTMLOptions.
package media
