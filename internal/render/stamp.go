package render

import (
	svg "github.com/ajstarks/svgo"
	qrcode "github.com/skip2/go-qrcode"
)

const (
	stampMargin  = 8
	stampPadding = 2
)

// drawStamp draws content as a QR code in the bottom-right corner. Each dark
// run of a row becomes one rect.
func drawStamp(canvas *svg.SVG, width, height int, content string) error {
	q, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return err
	}
	q.DisableBorder = true
	bits := q.Bitmap()

	size := len(bits)
	module := min(width, height) / 150
	if module < 1 {
		module = 1
	}
	side := size * module
	x0 := width - side - stampMargin - stampPadding
	y0 := height - side - stampMargin - stampPadding

	canvas.Gid("stamp")
	canvas.Rect(x0-stampPadding, y0-stampPadding, side+2*stampPadding, side+2*stampPadding, attr("fill", "#ffffff"))
	for row, line := range bits {
		for col := 0; col < len(line); {
			if !line[col] {
				col++
				continue
			}
			start := col
			for col < len(line) && line[col] {
				col++
			}
			canvas.Rect(x0+start*module, y0+row*module, (col-start)*module, module, attr("fill", "#000000"))
		}
	}
	canvas.Gend()
	return nil
}
