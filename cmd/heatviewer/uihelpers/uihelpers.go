package uihelpers

// ComputeChartDimensions applies width/height clamp rules used for the chart image.
// Input: desired raw width (e.g., canvas width). Returns clamped width & height.
func ComputeChartDimensions(rawW int) (int, int) {
	w := rawW
	if w < 800 {
		w = 800
	}
	h := int(float32(w) * 0.4)
	if h < 320 {
		h = 320
	}
	if h > 600 {
		h = 600
	}
	return w, h
}

// ChartSize clamps the width like ComputeChartDimensions but keeps an explicitly
// requested height; a non-positive rawH falls back to the derived height.
func ChartSize(rawW, rawH int) (int, int) {
	w, h := ComputeChartDimensions(rawW)
	if rawH > 0 {
		h = rawH
	}
	return w, h
}

// ContainRect returns where an imgW x imgH image lands inside a viewW x viewH area when
// scaled to fit while keeping its aspect ratio (Fyne's ImageFillContain), plus the scale.
func ContainRect(imgW, imgH, viewW, viewH float32) (x, y, w, h, scale float32) {
	if imgW <= 0 || imgH <= 0 || viewW <= 0 || viewH <= 0 {
		return 0, 0, 0, 0, 0
	}
	sx := viewW / imgW
	sy := viewH / imgH
	scale = sx
	if sy < sx {
		scale = sy
	}
	w = imgW * scale
	h = imgH * scale
	x = (viewW - w) / 2
	y = (viewH - h) / 2
	return x, y, w, h, scale
}

// ViewToImage maps a point in view coordinates back to image pixels. ok is false when the
// point falls in the letterbox outside the drawn image.
func ViewToImage(px, py, imgW, imgH, viewW, viewH float32) (ix, iy float32, ok bool) {
	x, y, w, h, scale := ContainRect(imgW, imgH, viewW, viewH)
	if scale <= 0 || px < x || px > x+w || py < y || py > y+h {
		return 0, 0, false
	}
	return (px - x) / scale, (py - y) / scale, true
}

// ImageToView is the inverse of ViewToImage.
func ImageToView(ix, iy, imgW, imgH, viewW, viewH float32) (float32, float32) {
	x, y, _, _, scale := ContainRect(imgW, imgH, viewW, viewH)
	return x + ix*scale, y + iy*scale
}
