// Package preview renders controls to raster images.
//
// A Renderer lays a control out, records its drawing into a
// graphics.DisplayList and replays the list onto a RasterCanvas, which fills
// per-corner rounded rectangles with golang.org/x/image/vector and draws
// labels with the basicfont face:
//
//	r := preview.NewRenderer(theme.DefaultLightTheme())
//	img := r.RenderThreeWay(sw)
//	err := preview.EncodePNG(w, img)
package preview
