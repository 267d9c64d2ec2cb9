// Package dock implements a dockable panel layout engine for terminal UIs.
//
// Core abstractions:
//   - Panel: capability interface any content type implements (title,
//     closeable, zoomable, state dump); the interface value is the
//     type-erased handle heterogeneous panels share
//   - Tree/Node: pure binary split tree used to author and serialize
//     layouts (never a second source of runtime truth)
//   - ResizablePanelGroup: linear sequence of sibling regions with
//     min/max/fixed/grow size constraints and drag handles
//   - StackPanel: recursive container owning a ResizablePanelGroup of
//     child panels, with automatic collapse of emptied containers
//   - TabPanel: leaf container managing an ordered set of tabs with one
//     active tab
//   - DockArea: root object holding the top-level StackPanel, the zoom
//     slot, and pluggable persistence hooks
//
// The engine arranges opaque panels and delegates their drawing to each
// panel's content view; it runs on the single Bubble Tea event loop and
// is not safe for concurrent use.
package dock
