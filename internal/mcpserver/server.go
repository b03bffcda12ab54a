package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"scrollindicator/internal/geometry"
	"scrollindicator/internal/orchestrator"
	"scrollindicator/internal/output"
)

// defaultOrthogonal is the crosswise container size used when a call omits it.
const defaultOrthogonal = 100

// Server wraps the MCP server with indicator evaluation tools.
type Server struct {
	mcpServer *mcp.Server
	base      orchestrator.Options
	variant   orchestrator.Variant
}

// Config holds configuration for the MCP server.
type Config struct {
	ServerName    string
	ServerVersion string
	// Variant and Options are the defaults each tool call starts from.
	Variant orchestrator.Variant
	Options orchestrator.Options
}

// NewServer creates a new MCP server instance.
func NewServer(cfg Config) (*Server, error) {
	if err := cfg.Options.Validate(); err != nil {
		return nil, fmt.Errorf("invalid indicator options: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    cfg.ServerName,
		Version: cfg.ServerVersion,
	}
	s := &Server{
		mcpServer: mcp.NewServer(impl, nil),
		base:      cfg.Options,
		variant:   cfg.Variant,
	}
	s.registerTools()
	return s, nil
}

// ProbeArgs describes the container every tool evaluates.
type ProbeArgs struct {
	ContentSize    float64 `json:"content_size" jsonschema:"content length along the scroll axis"`
	VisibleSize    float64 `json:"visible_size" jsonschema:"visible length along the scroll axis"`
	OrthogonalSize float64 `json:"orthogonal_size,omitempty" jsonschema:"container size across the scroll axis (default 100)"`
	Offset         float64 `json:"offset,omitempty" jsonschema:"scroll offset; negative or past the end means overscroll"`
	Horizontal     bool    `json:"horizontal,omitempty" jsonschema:"scroll along x instead of y"`
	Container      string  `json:"container,omitempty" jsonschema:"container kind: content or list"`
	Position       string  `json:"position,omitempty" jsonschema:"edge name (left, right, top, bottom) or a percentage"`
	Inverted       bool    `json:"inverted,omitempty" jsonschema:"list grows from the far end"`
	Persistent     bool    `json:"persistent,omitempty" jsonschema:"show the indicator even without overflow"`
	Girth          float64 `json:"girth,omitempty" jsonschema:"indicator thickness across the axis"`
}

// GeometryResult is the output of indicator_geometry.
type GeometryResult struct {
	Length    float64 `json:"length" jsonschema:"indicator length"`
	Travel    float64 `json:"travel" jsonschema:"distance the indicator can travel"`
	Overflows bool    `json:"overflows" jsonschema:"content is larger than the visible area"`
}

// FrameResult is the output of indicator_frame.
type FrameResult struct {
	IndicatorOffset float64 `json:"indicator_offset" jsonschema:"unclamped indicator offset"`
	RawScale        float64 `json:"raw_scale" jsonschema:"unclamped shrink factor"`
	Translation     float64 `json:"translation" jsonschema:"drawn offset along the track"`
	Scale           float64 `json:"scale" jsonschema:"drawn shrink factor in [0,1]"`
	Start           float64 `json:"start" jsonschema:"near end of the covered span"`
	End             float64 `json:"end" jsonschema:"far end of the covered span"`
	Visible         bool    `json:"visible" jsonschema:"whether the indicator is rendered"`
}

// LocationResult is the output of indicator_location.
type LocationResult struct {
	Position string  `json:"position" jsonschema:"resolved position"`
	Edge     string  `json:"edge" jsonschema:"edge the offset is measured from"`
	Offset   float64 `json:"offset" jsonschema:"distance of the indicator from that edge"`
}

// DragArgs describes a drag on the indicator of a probed container.
type DragArgs struct {
	ContentSize    float64 `json:"content_size" jsonschema:"content length along the scroll axis"`
	VisibleSize    float64 `json:"visible_size" jsonschema:"visible length along the scroll axis"`
	OrthogonalSize float64 `json:"orthogonal_size,omitempty" jsonschema:"container size across the scroll axis (default 100)"`
	Offset         float64 `json:"offset,omitempty" jsonschema:"scroll offset before the drag"`
	Horizontal     bool    `json:"horizontal,omitempty" jsonschema:"scroll along x instead of y"`
	Container      string  `json:"container,omitempty" jsonschema:"container kind: content or list"`
	Inverted       bool    `json:"inverted,omitempty" jsonschema:"list grows from the far end"`
	Grab           float64 `json:"grab,omitempty" jsonschema:"where the pointer lands inside the indicator, from its near end"`
	Delta          float64 `json:"delta" jsonschema:"pointer movement along the axis"`
}

func (a DragArgs) probeArgs() ProbeArgs {
	return ProbeArgs{
		ContentSize:    a.ContentSize,
		VisibleSize:    a.VisibleSize,
		OrthogonalSize: a.OrthogonalSize,
		Offset:         a.Offset,
		Horizontal:     a.Horizontal,
		Container:      a.Container,
		Inverted:       a.Inverted,
	}
}

// DragResult is the output of indicator_drag.
type DragResult struct {
	ContentOffset float64 `json:"content_offset" jsonschema:"where the container was scrolled to"`
	Translation   float64 `json:"translation" jsonschema:"indicator offset after the drag"`
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "indicator_geometry",
		Description: "Compute the indicator length and travel range for a content size and a visible size.",
	}, s.handleGeometry)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "indicator_frame",
		Description: "Compute the indicator offset, shrink factor and drawn span for a scroll offset, including overscroll.",
	}, s.handleFrame)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "indicator_location",
		Description: "Resolve where the indicator sits across the scroll axis for an edge name or a percentage.",
	}, s.handleLocation)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "indicator_drag",
		Description: "Press the indicator, move the pointer by delta and report where the container scrolled.",
	}, s.handleDrag)
}

// probe turns tool arguments into a probe over the server defaults.
func (s *Server) probe(args ProbeArgs) (output.Probe, error) {
	if args.VisibleSize <= 0 {
		return output.Probe{}, errors.New("visible_size must be positive")
	}
	if args.ContentSize < 0 {
		return output.Probe{}, errors.New("content_size must not be negative")
	}

	variant := s.variant
	switch args.Container {
	case "":
	case orchestrator.VariantContent.String():
		variant = orchestrator.VariantContent
	case orchestrator.VariantList.String():
		variant = orchestrator.VariantList
	default:
		return output.Probe{}, fmt.Errorf("invalid container: %s (must be 'content' or 'list')", args.Container)
	}

	opts := s.base.
		WithHorizontal(args.Horizontal).
		WithInverted(args.Inverted || s.base.Inverted).
		WithPersistentScrollbar(args.Persistent || s.base.PersistentScrollbar)
	if args.Horizontal != s.base.Horizontal {
		opts = opts.WithPosition(geometry.Position{})
	}
	if args.Position != "" {
		pos, err := geometry.ParsePosition(args.Position)
		if err != nil {
			return output.Probe{}, err
		}
		opts = opts.WithPosition(pos)
	}
	if args.Girth > 0 {
		opts = opts.WithStyle(orchestrator.IndicatorStyle{Girth: args.Girth})
	}

	orth := args.OrthogonalSize
	if orth <= 0 {
		orth = defaultOrthogonal
	}
	return output.Probe{
		Variant:        variant,
		Options:        opts,
		ContentSize:    args.ContentSize,
		VisibleSize:    args.VisibleSize,
		OrthogonalSize: orth,
		Offset:         args.Offset,
	}, nil
}

func (s *Server) run(args ProbeArgs) (output.Snapshot, error) {
	p, err := s.probe(args)
	if err != nil {
		return output.Snapshot{}, err
	}
	return output.Run(p)
}

// handleGeometry reports indicator length and travel.
func (s *Server) handleGeometry(ctx context.Context, _ *mcp.CallToolRequest, args ProbeArgs) (*mcp.CallToolResult, GeometryResult, error) {
	snap, err := s.run(args)
	if err != nil {
		return nil, GeometryResult{}, fmt.Errorf("geometry failed: %w", err)
	}
	return nil, GeometryResult{
		Length:    snap.Geometry.Length,
		Travel:    snap.Geometry.Travel,
		Overflows: snap.Geometry.Overflows(args.VisibleSize),
	}, nil
}

// handleFrame reports the render values for one scroll offset.
func (s *Server) handleFrame(ctx context.Context, _ *mcp.CallToolRequest, args ProbeArgs) (*mcp.CallToolResult, FrameResult, error) {
	snap, err := s.run(args)
	if err != nil {
		return nil, FrameResult{}, fmt.Errorf("frame failed: %w", err)
	}
	return nil, FrameResult{
		IndicatorOffset: snap.IndicatorOffset,
		RawScale:        snap.Scale,
		Translation:     snap.Frame.Translation,
		Scale:           snap.Frame.Scale,
		Start:           snap.Frame.Start,
		End:             snap.Frame.End(),
		Visible:         snap.Visible,
	}, nil
}

// handleLocation reports the crosswise placement.
func (s *Server) handleLocation(ctx context.Context, _ *mcp.CallToolRequest, args ProbeArgs) (*mcp.CallToolResult, LocationResult, error) {
	snap, err := s.run(args)
	if err != nil {
		return nil, LocationResult{}, fmt.Errorf("location failed: %w", err)
	}
	return nil, LocationResult{
		Position: snap.Position.String(),
		Edge:     string(snap.Location.Edge),
		Offset:   snap.Location.Offset,
	}, nil
}

// handleDrag simulates a pointer drag on the indicator.
func (s *Server) handleDrag(ctx context.Context, _ *mcp.CallToolRequest, args DragArgs) (*mcp.CallToolResult, DragResult, error) {
	p, err := s.probe(args.probeArgs())
	if err != nil {
		return nil, DragResult{}, fmt.Errorf("drag failed: %w", err)
	}
	snap, err := output.RunDrag(p, output.Drag{Grab: args.Grab, Delta: args.Delta})
	if err != nil {
		return nil, DragResult{}, fmt.Errorf("drag failed: %w", err)
	}
	return nil, DragResult{
		ContentOffset: snap.ContentOffset,
		Translation:   snap.Frame.Translation,
	}, nil
}

// Start starts the MCP server using stdio transport.
func (s *Server) Start(ctx context.Context) error {
	fmt.Fprintf(os.Stderr, "Starting scroll indicator MCP server on stdio...\n")
	transport := &mcp.StdioTransport{}
	return s.mcpServer.Run(ctx, transport)
}
