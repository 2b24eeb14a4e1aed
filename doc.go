// Package scrollarea is a custom-styled scroll container for [Ebitengine].
//
// An [Area] hides the host's notion of scrolling entirely: it clips an
// arbitrarily large content node to a viewport and renders its own slider
// tracks, sized and positioned from the ratio of visible to total content.
// Sliders are draggable, tracks are clickable (one-viewport paging), and the
// mouse wheel scrolls the content under the pointer (Shift redirects the
// wheel to the horizontal axis).
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := scrollarea.NewScene()
//	area := scrollarea.New(scene, scrollarea.DefaultConfig())
//	scene.Root().AddChild(area.Node())
//
//	area.SetViewport(scrollarea.Rect{X: 20, Y: 20, Width: 300, Height: 200})
//	area.SetContent(buildContent()) // any node tree
//	area.SetContentSize(900, 600)
//
//	scrollarea.Run(scene, scrollarea.RunConfig{
//		Title: "Scroll Area", Width: 640, Height: 480,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly.
//
// # Visibility modes
//
// [Config.Visibility] selects when tracks are shown: [VisibilityHover]
// (default) reveals them while the pointer is over the area,
// [VisibilityScroll] reveals a track while its axis scrolls and for a short
// settle window afterwards, [VisibilityAlways] and [VisibilityNever] are
// constant. Show/hide transitions fade via [gween] tweens.
//
// # Live content
//
// Content is usually a static node, but [Area.SetContentFunc] accepts a
// producer that is re-evaluated with the live viewport, content extent, and
// scroll offsets on every recompute pass. A producer that panics is
// swallowed (and logged) and the previous content is kept.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package scrollarea
