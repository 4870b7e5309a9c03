// SPDX-License-Identifier: EPL-2.0

// Package raster holds the in-memory image buffer the image kernels work on.
//
// Every Image is opaque RGB: decoding converts paletted, grayscale, CMYK and
// transparent images by dropping alpha, so kernels can treat each channel as
// a plain byte. Output is always JPEG.
//
//	img, err := raster.Decode(f)
//	if err != nil {
//	    return err
//	}
//	err = raster.EncodeJPEG(out, img, raster.DefaultJPEGQuality)
package raster
