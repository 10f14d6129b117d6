package render

import "image/color"

// fillGrayRGBA expands 8-bit gray pixels into RGBA in buf, scaling each
// intensity by the tint so the background stays behind the contour lines.
func fillGrayRGBA(buf []byte, gray []uint8, tint color.Color) {
	r, g, b, a := tint.RGBA()
	for i, v := range gray {
		base := i * 4
		buf[base+0] = uint8(uint32(v) * (r >> 8) / 255)
		buf[base+1] = uint8(uint32(v) * (g >> 8) / 255)
		buf[base+2] = uint8(uint32(v) * (b >> 8) / 255)
		buf[base+3] = uint8(a >> 8)
	}
}
