// Package lineage is an interactive family-tree viewer for [Ebitengine].
//
// A tree is fetched from a genealogy backend as nested JSON, laid out as a
// tidy top-down tree and drawn onto a pannable, zoomable canvas. People are
// circles colored by gender with their name above; parent-child links are
// straight lines.
//
// # Quick start
//
// The simplest way to open a viewer is [Run]:
//
//	cfg := lineage.DefaultConfig()
//	cfg.FamilyID, cfg.RootID = "12", "345"
//	if err := lineage.Run(cfg, lineage.NewLogger(os.Stderr, "info")); err != nil {
//		log.Fatal(err)
//	}
//
// # Pieces
//
// [Loader] issues HTTP requests in the background and delivers
// [FetchResult] values on a channel. [Renderer] lays out the live
// [Hierarchy] with [TreeLayout] and records drawing into a [Canvas].
// [CommandBuffer] is the recording canvas; [CommandBuffer.Submit] replays it
// onto an ebiten image. [Controller] turns pointer, wheel, touch and keyboard
// input into view transforms and visibility toggles.
//
// Everything except [App] and [CommandBuffer.Submit] runs without a GPU, so
// the layout, renderer and controller are tested against a [CommandBuffer].
//
// [Ebitengine]: https://ebitengine.org
package lineage
