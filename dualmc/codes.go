package dualmc

// cellCode is the 8-bit inside/outside mask of a cell's corners. Bit k is
// set when corner k samples at or above the iso value. Corner numbering:
//
//	0:(0,0,0) 1:(1,0,0) 2:(0,1,0) 3:(1,1,0)
//	4:(0,0,1) 5:(1,0,1) 6:(0,1,1) 7:(1,1,1)
type cellCode uint8

// pointCode is a 12-bit mask over the cell edges that contribute to one
// dual point. A single set bit doubles as the edge code of that edge.
type pointCode uint16

// Cell edge bits. Bottom ring 0..3, top ring 4..7, verticals 8..11:
//
//	0:0-1 1:1-5 2:4-5  3:0-4
//	4:2-3 5:3-7 6:6-7  7:2-6
//	8:0-2 9:1-3 10:5-7 11:4-6
const (
	edge0 pointCode = 1 << iota
	edge1
	edge2
	edge3
	edge4
	edge5
	edge6
	edge7
	edge8
	edge9
	edge10
	edge11
)
