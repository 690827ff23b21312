package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) handlePlaceWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args PlaceWindowInput) (*mcpsdk.CallToolResult, PlaceWindowOutput, error) {
	data, err := s.client.Place(args.Placement, args.Style)
	if err != nil {
		return nil, PlaceWindowOutput{}, err
	}
	return nil, PlaceWindowOutput{
		Placement: data.Placement,
		Style:     data.Style,
	}, nil
}

func (s *Server) handleMoveToScreen(_ context.Context, _ *mcpsdk.CallToolRequest, args MoveToScreenInput) (*mcpsdk.CallToolResult, MoveToScreenOutput, error) {
	data, err := s.client.MoveToScreen(args.Index, args.Style)
	if err != nil {
		return nil, MoveToScreenOutput{}, err
	}
	return nil, MoveToScreenOutput{
		Index: data.Index,
		Style: data.Style,
	}, nil
}

func (s *Server) handleListStyles(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListStylesInput) (*mcpsdk.CallToolResult, ListStylesOutput, error) {
	data, err := s.client.ListStyles()
	if err != nil {
		return nil, ListStylesOutput{}, err
	}

	out := ListStylesOutput{DefaultStyle: data.DefaultStyle}
	for _, st := range data.Styles {
		out.Styles = append(out.Styles, StyleEntry{
			Name:       st.Name,
			DurationMS: st.DurationMS,
		})
	}
	return nil, out, nil
}

func (s *Server) handleGetMonitors(_ context.Context, _ *mcpsdk.CallToolRequest, _ GetMonitorsInput) (*mcpsdk.CallToolResult, GetMonitorsOutput, error) {
	data, err := s.client.GetMonitors()
	if err != nil {
		return nil, GetMonitorsOutput{}, err
	}

	out := GetMonitorsOutput{}
	for _, m := range data.Monitors {
		out.Monitors = append(out.Monitors, MonitorEntry{
			ID:           m.ID,
			Name:         m.Name,
			X:            m.X,
			Y:            m.Y,
			Width:        m.Width,
			Height:       m.Height,
			UsableWidth:  m.UsableWidth,
			UsableHeight: m.UsableHeight,
		})
	}
	return nil, out, nil
}
