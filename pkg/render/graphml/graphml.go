// Package graphml writes admin graph diagrams as yEd GraphML.
//
// The output uses the yFiles ShapeNode and PolyLineEdge extensions so that
// shapes, fill colors, edge colors, widths and line styles survive a round
// trip through the yEd Graph Editor. Node ids are the node names; edges are
// numbered in request order.
//
// yEd does not compute a layout on open. After loading the file:
//
//  1. Tools → Fit Node to Label
//  2. Layout → Circular (or any other layout)
package graphml

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/powergraph/adminviz/pkg/render"
)

// Extension is the file extension of GraphML output.
const Extension = "graphml"

// Default geometry of a node before "Fit Node to Label".
const (
	nodeHeight    = 30.0
	charWidth     = 8.0
	minNodeWidth  = 30.0
	nodeKeyID     = "data_node"
	edgeKeyID     = "data_edge"
	borderColor   = "#000000"
	arrowStandard = "standard"
)

// Backend accumulates nodes and edges and writes them as GraphML.
type Backend struct {
	render.Diagram
}

// New creates a GraphML backend.
func New() *Backend { return &Backend{} }

// Extension implements render.Backend.
func (b *Backend) Extension() string { return Extension }

// Persist implements render.Backend.
func (b *Backend) Persist(_ context.Context, path string) error {
	data, err := b.Marshal()
	if err != nil {
		return err
	}
	return render.WriteFile(path, data)
}

// Marshal returns the GraphML document for the accumulated diagram.
func (b *Backend) Marshal() ([]byte, error) {
	doc := document{
		XMLNS:          "http://graphml.graphdrawing.org/xmlns",
		XMLNSJava:      "http://www.yworks.com/xml/yfiles-common/1.0/java",
		XMLNSSys:       "http://www.yworks.com/xml/yfiles-common/markup/primitives/2.0",
		XMLNSX:         "http://www.yworks.com/xml/yfiles-common/markup/2.0",
		XMLNSXSI:       "http://www.w3.org/2001/XMLSchema-instance",
		XMLNSY:         "http://www.yworks.com/xml/graphml",
		XMLNSYed:       "http://www.yworks.com/xml/yed/3",
		SchemaLocation: "http://graphml.graphdrawing.org/xmlns http://www.yworks.com/xml/schema/graphml/1.1/ygraphml.xsd",
		Keys: []key{
			{For: "node", ID: nodeKeyID, YType: "nodegraphics"},
			{For: "edge", ID: edgeKeyID, YType: "edgegraphics"},
		},
		Graph: graph{ID: "G", EdgeDefault: "directed"},
	}

	for _, n := range b.Nodes() {
		doc.Graph.Nodes = append(doc.Graph.Nodes, toNode(n))
	}
	for i, e := range b.Edges() {
		doc.Graph.Edges = append(doc.Graph.Edges, toEdge(i+1, e))
	}

	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="no"?>` + "\n")
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode graphml: %w", err)
	}
	buf.WriteString("\n")
	return buf.Bytes(), nil
}

func toNode(n render.DiagramNode) node {
	width := float64(utf8.RuneCountInString(n.Label)) * charWidth
	if width < minNodeWidth {
		width = minNodeWidth
	}
	return node{
		ID: n.ID,
		Data: nodeData{
			Key: nodeKeyID,
			Shape: shapeNode{
				Geometry: geometry{Height: fmtFloat(nodeHeight), Width: fmtFloat(width)},
				Fill:     fill{Color: n.Fill, Transparent: "false"},
				Border:   lineStyle{Color: borderColor, Type: string(render.LineSolid), Width: "1.0"},
				Label:    label{Text: n.Label},
				Shape:    shape{Type: n.Shape},
			},
		},
	}
}

func toEdge(seq int, e render.DiagramEdge) edge {
	return edge{
		ID:     "e" + strconv.Itoa(seq),
		Source: e.From,
		Target: e.To,
		Data: edgeData{
			Key: edgeKeyID,
			PolyLine: polyLineEdge{
				Line:   lineStyle{Color: e.Color, Type: string(e.Line), Width: fmtFloat(e.Width)},
				Arrows: arrows{Source: "none", Target: arrowStandard},
			},
		},
	}
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 1, 64)
}

// =============================================================================
// XML Schema
// =============================================================================

type document struct {
	XMLName        xml.Name `xml:"graphml"`
	XMLNS          string   `xml:"xmlns,attr"`
	XMLNSJava      string   `xml:"xmlns:java,attr"`
	XMLNSSys       string   `xml:"xmlns:sys,attr"`
	XMLNSX         string   `xml:"xmlns:x,attr"`
	XMLNSXSI       string   `xml:"xmlns:xsi,attr"`
	XMLNSY         string   `xml:"xmlns:y,attr"`
	XMLNSYed       string   `xml:"xmlns:yed,attr"`
	SchemaLocation string   `xml:"xsi:schemaLocation,attr"`
	Keys           []key    `xml:"key"`
	Graph          graph    `xml:"graph"`
}

type key struct {
	For   string `xml:"for,attr"`
	ID    string `xml:"id,attr"`
	YType string `xml:"yfiles.type,attr"`
}

type graph struct {
	EdgeDefault string `xml:"edgedefault,attr"`
	ID          string `xml:"id,attr"`
	Nodes       []node `xml:"node"`
	Edges       []edge `xml:"edge"`
}

type node struct {
	ID   string   `xml:"id,attr"`
	Data nodeData `xml:"data"`
}

type nodeData struct {
	Key   string    `xml:"key,attr"`
	Shape shapeNode `xml:"y:ShapeNode"`
}

type shapeNode struct {
	Geometry geometry  `xml:"y:Geometry"`
	Fill     fill      `xml:"y:Fill"`
	Border   lineStyle `xml:"y:BorderStyle"`
	Label    label     `xml:"y:NodeLabel"`
	Shape    shape     `xml:"y:Shape"`
}

type geometry struct {
	Height string `xml:"height,attr"`
	Width  string `xml:"width,attr"`
}

type fill struct {
	Color       string `xml:"color,attr"`
	Transparent string `xml:"transparent,attr"`
}

type lineStyle struct {
	Color string `xml:"color,attr"`
	Type  string `xml:"type,attr"`
	Width string `xml:"width,attr"`
}

type label struct {
	Text string `xml:",chardata"`
}

type shape struct {
	Type string `xml:"type,attr"`
}

type edge struct {
	ID     string   `xml:"id,attr"`
	Source string   `xml:"source,attr"`
	Target string   `xml:"target,attr"`
	Data   edgeData `xml:"data"`
}

type edgeData struct {
	Key      string       `xml:"key,attr"`
	PolyLine polyLineEdge `xml:"y:PolyLineEdge"`
}

type polyLineEdge struct {
	Line   lineStyle `xml:"y:LineStyle"`
	Arrows arrows    `xml:"y:Arrows"`
}

type arrows struct {
	Source string `xml:"source,attr"`
	Target string `xml:"target,attr"`
}
